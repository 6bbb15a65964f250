// Package reserve implements the fixed-capacity LIFO stack of reserved pieces.
package reserve

import "github.com/roach88/nextpiece/internal/piece"

// Stack is a bounded LIFO of pieces. Slot 0 is the bottom.
//
// Stack is not safe for concurrent use; it is owned by a single game loop.
type Stack struct {
	slots []piece.Piece
	size  int
}

// New creates an empty stack with the given capacity.
// Panics if capacity < 1.
func New(capacity int) *Stack {
	if capacity < 1 {
		panic("reserve: capacity must be at least 1")
	}
	return &Stack{slots: make([]piece.Piece, capacity)}
}

// Cap returns the fixed capacity.
func (s *Stack) Cap() int { return len(s.slots) }

// Len returns the number of stored pieces.
func (s *Stack) Len() int { return s.size }

// IsEmpty reports whether the stack holds no pieces.
func (s *Stack) IsEmpty() bool { return s.size == 0 }

// IsFull reports whether the stack is at capacity.
func (s *Stack) IsFull() bool { return s.size == len(s.slots) }

// Push adds p on top. Returns false, leaving the stack unchanged, if full.
func (s *Stack) Push(p piece.Piece) bool {
	if s.IsFull() {
		return false
	}
	s.slots[s.size] = p
	s.size++
	return true
}

// Pop removes and returns the top piece.
// Returns (piece.Piece{}, false) if the stack is empty.
func (s *Stack) Pop() (piece.Piece, bool) {
	if s.IsEmpty() {
		return piece.Piece{}, false
	}
	s.size--
	p := s.slots[s.size]
	s.slots[s.size] = piece.Piece{}
	return p, true
}

// Top returns the top piece without removing it.
func (s *Stack) Top() (piece.Piece, bool) {
	return s.At(s.size - 1)
}

// At returns the piece at position i, where 0 is the bottom.
func (s *Stack) At(i int) (piece.Piece, bool) {
	if i < 0 || i >= s.size {
		return piece.Piece{}, false
	}
	return s.slots[i], true
}

// Set replaces the piece at position i, where 0 is the bottom.
// Returns false, leaving the stack unchanged, if i is outside [0, Len()).
func (s *Stack) Set(i int, p piece.Piece) bool {
	if i < 0 || i >= s.size {
		return false
	}
	s.slots[i] = p
	return true
}

// Snapshot returns the stored pieces in top-to-bottom order.
func (s *Stack) Snapshot() []piece.Piece {
	out := make([]piece.Piece, s.size)
	for i := range out {
		out[i] = s.slots[s.size-1-i]
	}
	return out
}
