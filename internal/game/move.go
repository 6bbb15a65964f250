package game

// Move is one processed menu command, successful or not.
// Recorders (the journal) receive a Move after every non-quit command.
type Move struct {
	// Selection is the parsed menu code. Zero when the input did not parse.
	Selection Selection

	// Input is the raw trimmed input line.
	Input string

	// Outcome is the action result. Only meaningful when Err is nil.
	Outcome Outcome

	// Err is the rejection, if any. Always an *ActionError.
	Err error

	// State is the snapshot after the command.
	State State
}

// OK reports whether the move succeeded.
func (m Move) OK() bool {
	return m.Err == nil
}
