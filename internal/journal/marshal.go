package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/roach88/nextpiece/internal/game"
	"github.com/roach88/nextpiece/internal/piece"
)

// marshalPieces encodes a snapshot. A nil slice encodes as "[]".
func marshalPieces(pieces []piece.Piece) (string, error) {
	if pieces == nil {
		pieces = []piece.Piece{}
	}
	data, err := json.Marshal(pieces)
	if err != nil {
		return "", fmt.Errorf("marshal pieces: %w", err)
	}
	return string(data), nil
}

func unmarshalPieces(s string) ([]piece.Piece, error) {
	var pieces []piece.Piece
	if err := json.Unmarshal([]byte(s), &pieces); err != nil {
		return nil, fmt.Errorf("unmarshal pieces: %w", err)
	}
	return pieces, nil
}

// marshalPiece encodes an optional piece as a nullable column.
func marshalPiece(p *piece.Piece) (sql.NullString, error) {
	if p == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal piece: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func unmarshalPiece(ns sql.NullString) (*piece.Piece, error) {
	if !ns.Valid {
		return nil, nil
	}
	var p piece.Piece
	if err := json.Unmarshal([]byte(ns.String), &p); err != nil {
		return nil, fmt.Errorf("unmarshal piece: %w", err)
	}
	return &p, nil
}

func marshalExchanges(ex []game.Exchange) (string, error) {
	if ex == nil {
		ex = []game.Exchange{}
	}
	data, err := json.Marshal(ex)
	if err != nil {
		return "", fmt.Errorf("marshal exchanges: %w", err)
	}
	return string(data), nil
}

func unmarshalExchanges(s string) ([]game.Exchange, error) {
	var ex []game.Exchange
	if err := json.Unmarshal([]byte(s), &ex); err != nil {
		return nil, fmt.Errorf("unmarshal exchanges: %w", err)
	}
	return ex, nil
}
