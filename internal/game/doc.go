// Package game implements the five moves that transfer or swap pieces between
// the upcoming-piece queue and the reserve stack.
//
// Every action validates all of its preconditions before touching either
// container, so a failed action leaves both containers exactly as they were
// and returns an *ActionError naming the failed condition. No action error is
// fatal: callers report it and accept the next command.
//
// Refill rule: an action that removes a piece from the queue without putting
// another one back (Play, Reserve) generates a fresh piece from the Source and
// enqueues it, so the queue returns to full capacity. UseReserved never
// touches the queue and never generates. The swaps change no sizes and never
// generate.
//
// The Game is driven by a single loop. It performs no locking.
package game
