// Package piece defines the Piece value type and the Source that mints pieces.
//
// A Piece is an immutable (kind, id) pair. Ids come from a counter owned by a
// Source, which is created once per game and passed to whatever needs to
// generate pieces. There is no package-level counter: tests build their own
// Source and get a deterministic id sequence starting wherever they choose.
//
// Kind selection is delegated to a Picker so that interactive play can use a
// seeded random picker while tests and scenarios replay a fixed sequence.
package piece
