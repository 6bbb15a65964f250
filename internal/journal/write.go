package journal

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/roach88/nextpiece/internal/game"
)

// ErrNoSession is returned by Record before Begin has been called.
var ErrNoSession = errors.New("journal: no active session")

// SessionInfo describes the configuration a session was played with.
type SessionInfo struct {
	Seed            uint64
	QueueCapacity   int
	ReserveCapacity int
	Kinds           string
	Lang            string
}

// Begin starts a new session and makes it current. Returns the session id.
func (j *Journal) Begin(ctx context.Context, info SessionInfo) (string, error) {
	id := j.ids.Generate()

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO sessions
		(id, seed, queue_capacity, reserve_capacity, kinds, lang, started_seq)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		strconv.FormatUint(info.Seed, 10),
		info.QueueCapacity,
		info.ReserveCapacity,
		info.Kinds,
		info.Lang,
		j.clock.Current(),
	)
	if err != nil {
		return "", fmt.Errorf("begin session: %w", err)
	}

	j.session = id
	return id, nil
}

// Record appends a move to the current session.
// Rejected moves are recorded too, with status "error" and their code.
func (j *Journal) Record(ctx context.Context, m game.Move) error {
	if j.session == "" {
		return ErrNoSession
	}

	pieceCol, err := marshalPiece(m.Outcome.Piece)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	generatedCol, err := marshalPiece(m.Outcome.Generated)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	exchanges, err := marshalExchanges(m.Outcome.Exchanges)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	queueJSON, err := marshalPieces(m.State.Queue)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	reserveJSON, err := marshalPieces(m.State.Reserve)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}

	status := StatusOK
	if !m.OK() {
		status = StatusError
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	// The seq is only consumed once the row is stored.
	seq := j.clock.Current() + 1
	_, err = j.db.ExecContext(ctx, `
		INSERT INTO moves
		(session_id, seq, selection, input, action, status, error_code,
		 piece, generated, exchanges, queue, reserve)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		j.session,
		seq,
		int(m.Selection),
		m.Input,
		string(m.Outcome.Action),
		status,
		string(game.CodeOf(m.Err)),
		pieceCol,
		generatedCol,
		exchanges,
		queueJSON,
		reserveJSON,
	)
	if err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	j.clock.Next()

	return nil
}
