package journal

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/roach88/nextpiece/internal/game"
	"github.com/roach88/nextpiece/internal/piece"
)

// Move status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// SessionRecord is a stored session with its move count.
type SessionRecord struct {
	ID              string `json:"id"`
	Seed            uint64 `json:"seed"`
	QueueCapacity   int    `json:"queue_capacity"`
	ReserveCapacity int    `json:"reserve_capacity"`
	Kinds           string `json:"kinds"`
	Lang            string `json:"lang"`
	StartedSeq      int64  `json:"started_seq"`
	Moves           int    `json:"moves"`
}

// MoveRecord is a stored move.
type MoveRecord struct {
	Seq       int64           `json:"seq"`
	SessionID string          `json:"session_id"`
	Selection int             `json:"selection"`
	Input     string          `json:"input"`
	Action    string          `json:"action,omitempty"`
	Status    string          `json:"status"`
	ErrorCode string          `json:"error_code,omitempty"`
	Piece     *piece.Piece    `json:"piece,omitempty"`
	Generated *piece.Piece    `json:"generated,omitempty"`
	Exchanges []game.Exchange `json:"exchanges,omitempty"`
	Queue     []piece.Piece   `json:"queue"`
	Reserve   []piece.Piece   `json:"reserve"`
}

// Sessions returns every session in start order.
func (j *Journal) Sessions(ctx context.Context) ([]SessionRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT s.id, s.seed, s.queue_capacity, s.reserve_capacity, s.kinds, s.lang,
		       s.started_seq, COUNT(m.id)
		FROM sessions s
		LEFT JOIN moves m ON m.session_id = s.id
		GROUP BY s.id
		ORDER BY s.started_seq ASC, s.id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var seed string
		if err := rows.Scan(&rec.ID, &seed, &rec.QueueCapacity, &rec.ReserveCapacity,
			&rec.Kinds, &rec.Lang, &rec.StartedSeq, &rec.Moves); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.Seed, err = strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse seed for session %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

// Moves returns the moves of one session in seq order.
// Returns an empty slice for an unknown session.
func (j *Journal) Moves(ctx context.Context, sessionID string) ([]MoveRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, session_id, selection, input, action, status, error_code,
		       piece, generated, exchanges, queue, reserve
		FROM moves
		WHERE session_id = ?
		ORDER BY seq ASC, id ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	out := []MoveRecord{}
	for rows.Next() {
		rec, err := scanMove(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate moves: %w", err)
	}
	return out, nil
}

func scanMove(rows *sql.Rows) (MoveRecord, error) {
	var (
		rec                        MoveRecord
		pieceCol, generatedCol     sql.NullString
		exchanges, queue, reserveS string
	)
	if err := rows.Scan(&rec.Seq, &rec.SessionID, &rec.Selection, &rec.Input, &rec.Action,
		&rec.Status, &rec.ErrorCode, &pieceCol, &generatedCol, &exchanges, &queue, &reserveS); err != nil {
		return rec, fmt.Errorf("scan move: %w", err)
	}

	var err error
	if rec.Piece, err = unmarshalPiece(pieceCol); err != nil {
		return rec, fmt.Errorf("move %d: %w", rec.Seq, err)
	}
	if rec.Generated, err = unmarshalPiece(generatedCol); err != nil {
		return rec, fmt.Errorf("move %d: %w", rec.Seq, err)
	}
	if rec.Exchanges, err = unmarshalExchanges(exchanges); err != nil {
		return rec, fmt.Errorf("move %d: %w", rec.Seq, err)
	}
	if rec.Queue, err = unmarshalPieces(queue); err != nil {
		return rec, fmt.Errorf("move %d: %w", rec.Seq, err)
	}
	if rec.Reserve, err = unmarshalPieces(reserveS); err != nil {
		return rec, fmt.Errorf("move %d: %w", rec.Seq, err)
	}
	return rec, nil
}
