package game

import (
	"strconv"
	"strings"
)

// Selection is a menu code.
type Selection int

// Menu codes.
const (
	SelectionQuit        Selection = 0
	SelectionPlay        Selection = 1
	SelectionReserve     Selection = 2
	SelectionUseReserved Selection = 3
	SelectionSwapTop     Selection = 4
	SelectionSwapBlock   Selection = 5
)

// selectionActions maps menu codes to actions.
var selectionActions = map[Selection]Action{
	SelectionPlay:        ActionPlay,
	SelectionReserve:     ActionReserve,
	SelectionUseReserved: ActionUseReserved,
	SelectionSwapTop:     ActionSwapTop,
	SelectionSwapBlock:   ActionSwapBlock,
}

// ParseSelection parses one line of menu input.
// Surrounding whitespace is ignored. Non-integer input yields an
// InvalidSelection error.
func ParseSelection(input string) (Selection, error) {
	trimmed := strings.TrimSpace(input)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, NewInvalidSelectionError(trimmed)
	}
	return Selection(n), nil
}

// ActionFor returns the action bound to a menu code.
func ActionFor(sel Selection) (Action, bool) {
	a, ok := selectionActions[sel]
	return a, ok
}

// SelectionFor returns the menu code bound to an action.
func SelectionFor(a Action) (Selection, bool) {
	for sel, act := range selectionActions {
		if act == a {
			return sel, true
		}
	}
	return 0, false
}

// Apply runs the action bound to sel.
//
// SelectionQuit and unknown codes yield InvalidSelection; the caller is
// expected to handle quit before calling Apply.
func (g *Game) Apply(sel Selection) (Outcome, error) {
	a, ok := ActionFor(sel)
	if !ok {
		return g.reject(NewInvalidSelectionError(strconv.Itoa(int(sel))))
	}
	return g.Do(a)
}

// Do runs the named action.
func (g *Game) Do(a Action) (Outcome, error) {
	switch a {
	case ActionPlay:
		return g.Play()
	case ActionReserve:
		return g.Reserve()
	case ActionUseReserved:
		return g.UseReserved()
	case ActionSwapTop:
		return g.SwapTop()
	case ActionSwapBlock:
		return g.SwapBlock()
	default:
		return g.reject(NewInvalidSelectionError(string(a)))
	}
}
