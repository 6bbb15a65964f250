package game

import (
	"io"
	"log/slog"

	"github.com/roach88/nextpiece/internal/piece"
	"github.com/roach88/nextpiece/internal/queue"
	"github.com/roach88/nextpiece/internal/reserve"
)

// Action names a user-facing move.
type Action string

const (
	ActionPlay        Action = "play"
	ActionReserve     Action = "reserve"
	ActionUseReserved Action = "use_reserved"
	ActionSwapTop     Action = "swap_top"
	ActionSwapBlock   Action = "swap_block"
)

// Actions lists every move in menu order.
var Actions = []Action{ActionPlay, ActionReserve, ActionUseReserved, ActionSwapTop, ActionSwapBlock}

// Exchange records one slot pair swapped between the queue and the reserve.
// ToQueue is the piece that moved into the queue; ToReserve moved into the reserve.
type Exchange struct {
	QueuePos   int         `json:"queue_pos"`
	ReservePos int         `json:"reserve_pos"`
	ToQueue    piece.Piece `json:"to_queue"`
	ToReserve  piece.Piece `json:"to_reserve"`
}

// Outcome describes the effect of a successful action.
type Outcome struct {
	Action Action `json:"action"`

	// Piece is the piece played, reserved or used. Nil for swaps.
	Piece *piece.Piece `json:"piece,omitempty"`

	// Generated is the refill piece appended to the queue. Nil when the
	// action does not deplete the queue.
	Generated *piece.Piece `json:"generated,omitempty"`

	// Exchanges lists the swapped slot pairs for SwapTop and SwapBlock.
	Exchanges []Exchange `json:"exchanges,omitempty"`
}

// State is a read-only snapshot of both containers.
type State struct {
	// Queue is in front-to-back order.
	Queue    []piece.Piece `json:"queue"`
	QueueCap int           `json:"queue_cap"`

	// Reserve is in top-to-bottom order.
	Reserve    []piece.Piece `json:"reserve"`
	ReserveCap int           `json:"reserve_cap"`

	// NextID is the id the next generated piece will carry.
	NextID int `json:"next_id"`
}

// Game owns the queue, the reserve stack and the piece source.
type Game struct {
	queue   *queue.Queue
	reserve *reserve.Stack
	source  *piece.Source
	logger  *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for action diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a game over the given containers and source.
// The containers are used as-is; call Fill to pre-fill the queue.
func New(q *queue.Queue, r *reserve.Stack, src *piece.Source, opts ...Option) *Game {
	g := &Game{
		queue:   q,
		reserve: r,
		source:  src,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewWithCapacity creates a game with fresh containers of the given capacities.
// Panics if either capacity is < 1.
func NewWithCapacity(queueCap, reserveCap int, src *piece.Source, opts ...Option) *Game {
	return New(queue.New(queueCap), reserve.New(reserveCap), src, opts...)
}

// Fill generates pieces until the queue is full and returns how many were added.
func (g *Game) Fill() int {
	added := 0
	for !g.queue.IsFull() {
		p := g.source.Generate()
		g.queue.Enqueue(p)
		added++
	}
	g.logger.Debug("queue filled", "added", added, "capacity", g.queue.Cap())
	return added
}

// State returns a snapshot of both containers.
func (g *Game) State() State {
	return State{
		Queue:      g.queue.Snapshot(),
		QueueCap:   g.queue.Cap(),
		Reserve:    g.reserve.Snapshot(),
		ReserveCap: g.reserve.Cap(),
		NextID:     g.source.Next(),
	}
}

// refill generates one piece and appends it to the queue.
func (g *Game) refill() *piece.Piece {
	p := g.source.Generate()
	if !g.queue.Enqueue(p) {
		// Unreachable while actions dequeue before refilling.
		g.logger.Warn("refill dropped: queue full", "piece", p.String())
		return nil
	}
	return &p
}
