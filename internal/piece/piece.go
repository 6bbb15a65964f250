package piece

import (
	"fmt"
	"unicode/utf8"
)

// Kind is one symbol of the piece alphabet (e.g. "I", "O", "T", "L").
type Kind string

// Standard kinds.
const (
	KindI Kind = "I"
	KindO Kind = "O"
	KindT Kind = "T"
	KindL Kind = "L"
)

// DefaultAlphabet is the alphabet used when none is configured.
const DefaultAlphabet = "IOTL"

// Piece is a single game piece. Pieces are copied by value between containers.
type Piece struct {
	Kind Kind `json:"kind" yaml:"kind"`
	ID   int  `json:"id" yaml:"id"`
}

// String renders the piece as "[I 0]".
func (p Piece) String() string {
	return fmt.Sprintf("[%s %d]", p.Kind, p.ID)
}

// Label renders the piece as "I0", the compact form used in traces.
func (p Piece) Label() string {
	return fmt.Sprintf("%s%d", p.Kind, p.ID)
}

// ParseAlphabet splits an alphabet string into one Kind per rune.
// Returns an error for an empty alphabet or a repeated symbol.
func ParseAlphabet(s string) ([]Kind, error) {
	if s == "" {
		return nil, fmt.Errorf("alphabet is empty")
	}
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("alphabet %q is not valid UTF-8", s)
	}

	seen := make(map[rune]bool, len(s))
	kinds := make([]Kind, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if seen[r] {
			return nil, fmt.Errorf("alphabet %q repeats symbol %q", s, r)
		}
		seen[r] = true
		kinds = append(kinds, Kind(string(r)))
	}
	return kinds, nil
}

// Labels renders a slice of pieces in compact form.
func Labels(pieces []Piece) []string {
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = p.Label()
	}
	return out
}
