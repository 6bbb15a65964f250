package console

import (
	"errors"
	"strings"

	"golang.org/x/text/message"

	"github.com/roach88/nextpiece/internal/game"
	"github.com/roach88/nextpiece/internal/piece"
)

// RenderQueue formats the queue front to back:
//
//	Queue (5/5): [I 0] -> [O 1] -> [T 2] -> [L 3] -> [I 4]
func RenderQueue(p *message.Printer, st game.State) string {
	return p.Sprintf(msgQueue, len(st.Queue), st.QueueCap) + joinPieces(p, st.Queue)
}

// RenderReserve formats the reserve top to bottom.
func RenderReserve(p *message.Printer, st game.State) string {
	return p.Sprintf(msgReserve, len(st.Reserve), st.ReserveCap) + joinPieces(p, st.Reserve)
}

func joinPieces(p *message.Printer, pieces []piece.Piece) string {
	if len(pieces) == 0 {
		return p.Sprintf(msgEmpty)
	}
	parts := make([]string, len(pieces))
	for i, pc := range pieces {
		parts[i] = pc.String()
	}
	return strings.Join(parts, " -> ")
}

// DescribeOutcome returns the report lines for a successful action.
func DescribeOutcome(p *message.Printer, out game.Outcome) []string {
	var lines []string
	switch out.Action {
	case game.ActionPlay:
		lines = append(lines, p.Sprintf(msgPlayed, out.Piece.String()))
	case game.ActionReserve:
		lines = append(lines, p.Sprintf(msgReserved, out.Piece.String()))
	case game.ActionUseReserved:
		lines = append(lines, p.Sprintf(msgUsed, out.Piece.String()))
	case game.ActionSwapTop:
		ex := out.Exchanges[0]
		lines = append(lines, p.Sprintf(msgSwapped, ex.ToReserve.String(), ex.ToQueue.String()))
	case game.ActionSwapBlock:
		lines = append(lines, p.Sprintf(msgBlock, len(out.Exchanges)))
	}
	if out.Generated != nil {
		lines = append(lines, p.Sprintf(msgGenerated, out.Generated.String()))
	}
	return lines
}

// DescribeError returns the diagnostic for a rejected action.
func DescribeError(p *message.Printer, err error, st game.State) string {
	switch game.CodeOf(err) {
	case game.ErrCodeEmptySource:
		if containerOf(err) == game.ContainerReserve {
			return p.Sprintf(msgErrReserveEmpty)
		}
		return p.Sprintf(msgErrQueueEmpty)
	case game.ErrCodeFullDestination:
		return p.Sprintf(msgErrReserveFull, len(st.Reserve), st.ReserveCap)
	case game.ErrCodeDestinationNotFull:
		return p.Sprintf(msgErrReserveNotFull, st.ReserveCap)
	case game.ErrCodeInsufficientSource:
		return p.Sprintf(msgErrQueueShort, st.ReserveCap, len(st.Queue))
	case game.ErrCodeInvalidSelection:
		return p.Sprintf(msgErrInvalidSelected)
	default:
		return err.Error()
	}
}

func containerOf(err error) string {
	var ae *game.ActionError
	if errors.As(err, &ae) {
		return ae.Container
	}
	return ""
}
