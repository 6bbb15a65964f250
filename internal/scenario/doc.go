// Package scenario runs scripted move sequences against a fresh game and
// checks the results.
//
// A scenario is a YAML file naming the configuration, the sequence of piece
// kinds the source should produce, the steps to apply and the assertions on
// the final state:
//
//	name: reserve-moves-front
//	description: Reserving moves the queue front onto the reserve and refills.
//	sequence: [I, O, T, L]
//	steps:
//	  - action: reserve
//	    expect:
//	      piece: I0
//	      generated: O5
//	assertions:
//	  - type: queue
//	    pieces: [O1, T2, L3, I4, O5]
//	  - type: reserve
//	    pieces: [I0]
//
// Pieces are written in compact form (kind followed by id). Reserve pieces are
// listed top to bottom, queue pieces front to back.
//
// Every run uses its own Source and a SequencePicker, so the same scenario
// always produces the same trace. Traces can be compared against golden files
// with RunWithGolden.
package scenario
