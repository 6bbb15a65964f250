// Package queue implements the fixed-capacity circular FIFO that holds the
// upcoming pieces.
package queue

import "github.com/roach88/nextpiece/internal/piece"

// Queue is a bounded circular FIFO of pieces.
//
// front indexes the oldest piece, back indexes the most recently enqueued
// one, and count is the number of stored pieces. Both indices wrap modulo the
// capacity, which is fixed at construction.
//
// Queue is not safe for concurrent use; it is owned by a single game loop.
type Queue struct {
	slots []piece.Piece
	front int
	back  int
	count int
}

// New creates an empty queue with the given capacity.
// Panics if capacity < 1.
func New(capacity int) *Queue {
	if capacity < 1 {
		panic("queue: capacity must be at least 1")
	}
	return &Queue{
		slots: make([]piece.Piece, capacity),
		front: 0,
		back:  capacity - 1, // first Enqueue lands at slot 0
	}
}

// Cap returns the fixed capacity.
func (q *Queue) Cap() int { return len(q.slots) }

// Len returns the number of stored pieces.
func (q *Queue) Len() int { return q.count }

// IsEmpty reports whether the queue holds no pieces.
func (q *Queue) IsEmpty() bool { return q.count == 0 }

// IsFull reports whether the queue is at capacity.
func (q *Queue) IsFull() bool { return q.count == len(q.slots) }

// Enqueue appends p at the back.
//
// Enqueue on a full queue is a no-op and returns false. Game actions keep the
// queue topped up so this path is only reached defensively.
func (q *Queue) Enqueue(p piece.Piece) bool {
	if q.IsFull() {
		return false
	}
	q.back = (q.back + 1) % len(q.slots)
	q.slots[q.back] = p
	q.count++
	return true
}

// Dequeue removes and returns the front piece.
// Returns (piece.Piece{}, false) if the queue is empty.
func (q *Queue) Dequeue() (piece.Piece, bool) {
	if q.IsEmpty() {
		return piece.Piece{}, false
	}
	p := q.slots[q.front]
	q.slots[q.front] = piece.Piece{}
	q.front = (q.front + 1) % len(q.slots)
	q.count--
	return p, true
}

// Front returns the front piece without removing it.
func (q *Queue) Front() (piece.Piece, bool) {
	return q.At(0)
}

// Back returns the most recently enqueued piece without removing it.
func (q *Queue) Back() (piece.Piece, bool) {
	return q.At(q.count - 1)
}

// At returns the i-th piece counting from the front.
// Returns false if i is outside [0, Len()).
func (q *Queue) At(i int) (piece.Piece, bool) {
	if i < 0 || i >= q.count {
		return piece.Piece{}, false
	}
	return q.slots[q.slot(i)], true
}

// Set replaces the i-th piece counting from the front.
// Returns false, leaving the queue unchanged, if i is outside [0, Len()).
func (q *Queue) Set(i int, p piece.Piece) bool {
	if i < 0 || i >= q.count {
		return false
	}
	q.slots[q.slot(i)] = p
	return true
}

// Snapshot returns the stored pieces in front-to-back order.
func (q *Queue) Snapshot() []piece.Piece {
	out := make([]piece.Piece, q.count)
	for i := range out {
		out[i] = q.slots[q.slot(i)]
	}
	return out
}

// slot maps a front-relative position to a physical slot index.
func (q *Queue) slot(i int) int {
	return (q.front + i) % len(q.slots)
}
