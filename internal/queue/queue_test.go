package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/nextpiece/internal/piece"
)

func p(kind piece.Kind, id int) piece.Piece {
	return piece.Piece{Kind: kind, ID: id}
}

func TestQueue_New(t *testing.T) {
	q := New(5)
	assert.Equal(t, 5, q.Cap())
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.IsEmpty())
	assert.False(t, q.IsFull())
	assert.Empty(t, q.Snapshot())
}

func TestQueue_New_PanicsOnZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { New(0) })
}

func TestQueue_FIFO(t *testing.T) {
	q := New(5)
	a, b := p(piece.KindI, 0), p(piece.KindO, 1)

	require.True(t, q.Enqueue(a))
	require.True(t, q.Enqueue(b))

	got, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, a, got)

	got, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, b, got)

	assert.True(t, q.IsEmpty())
}

func TestQueue_Dequeue_Empty(t *testing.T) {
	q := New(3)
	_, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_Enqueue_FullIsNoOp(t *testing.T) {
	q := New(2)
	require.True(t, q.Enqueue(p(piece.KindI, 0)))
	require.True(t, q.Enqueue(p(piece.KindO, 1)))
	require.True(t, q.IsFull())

	before := q.Snapshot()
	assert.False(t, q.Enqueue(p(piece.KindT, 2)), "enqueue on full queue must be rejected")
	assert.Equal(t, before, q.Snapshot())
	assert.Equal(t, 2, q.Len())
}

func TestQueue_WrapAround(t *testing.T) {
	q := New(3)
	next := 0
	enqueue := func() {
		require.True(t, q.Enqueue(p(piece.KindL, next)))
		next++
	}

	// Interleave operations so front and back wrap several times.
	enqueue()
	enqueue()
	enqueue()
	want := 0
	for round := 0; round < 10; round++ {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got.ID, "round %d", round)
		want++
		enqueue()
	}

	assert.Equal(t, []int{10, 11, 12}, ids(q.Snapshot()))
}

func TestQueue_FrontBack(t *testing.T) {
	q := New(3)
	_, ok := q.Front()
	assert.False(t, ok)
	_, ok = q.Back()
	assert.False(t, ok)

	q.Enqueue(p(piece.KindI, 0))
	q.Enqueue(p(piece.KindO, 1))

	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, 0, front.ID)

	back, ok := q.Back()
	require.True(t, ok)
	assert.Equal(t, 1, back.ID)
}

func TestQueue_AtSet(t *testing.T) {
	q := New(3)
	for i := 0; i < 3; i++ {
		q.Enqueue(p(piece.KindI, i))
	}
	q.Dequeue()
	q.Enqueue(p(piece.KindT, 3)) // physical slot 0, logical position 2

	got, ok := q.At(2)
	require.True(t, ok)
	assert.Equal(t, 3, got.ID)

	require.True(t, q.Set(2, p(piece.KindL, 99)))
	assert.Equal(t, []int{1, 2, 99}, ids(q.Snapshot()))

	_, ok = q.At(3)
	assert.False(t, ok)
	_, ok = q.At(-1)
	assert.False(t, ok)
	assert.False(t, q.Set(3, p(piece.KindO, 100)))
	assert.Equal(t, []int{1, 2, 99}, ids(q.Snapshot()))
}

func TestQueue_SnapshotIsCopy(t *testing.T) {
	q := New(2)
	q.Enqueue(p(piece.KindI, 0))

	snap := q.Snapshot()
	snap[0] = p(piece.KindO, 42)

	front, _ := q.Front()
	assert.Equal(t, 0, front.ID)
}

func ids(pieces []piece.Piece) []int {
	out := make([]int, len(pieces))
	for i, pc := range pieces {
		out[i] = pc.ID
	}
	return out
}
