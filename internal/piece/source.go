package piece

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
)

// Picker chooses an index into an alphabet of n kinds.
type Picker interface {
	Pick(n int) int
}

// RandomPicker picks uniformly using a seeded PCG generator.
//
// Two RandomPickers built from the same seed produce the same sequence.
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker creates a picker seeded with seed.
func NewRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns a uniform index in [0, n).
func (p *RandomPicker) Pick(n int) int {
	return p.rng.IntN(n)
}

// SequencePicker replays a fixed list of kinds, cycling when exhausted.
// Listing the kinds of the first few pieces is enough for a scenario.
//
// Thread-safety: SequencePicker is safe for concurrent use via internal mutex.
type SequencePicker struct {
	mu       sync.Mutex
	kinds    []Kind
	alphabet []Kind
	idx      int
}

// NewSequencePicker creates a picker that returns kinds in order over alphabet.
// Panics if kinds is empty or names a kind outside alphabet.
func NewSequencePicker(alphabet []Kind, kinds ...Kind) *SequencePicker {
	if len(kinds) == 0 {
		panic("piece: sequence picker needs at least one kind")
	}
	for _, k := range kinds {
		if !slices.Contains(alphabet, k) {
			panic(fmt.Sprintf("piece: sequence kind %q not in alphabet", k))
		}
	}
	return &SequencePicker{kinds: slices.Clone(kinds), alphabet: slices.Clone(alphabet)}
}

// Pick returns the alphabet index of the next kind in the sequence.
// Panics if that index is not below n, i.e. the picker was built over a
// different alphabet than the source it serves.
func (p *SequencePicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	k := p.kinds[p.idx%len(p.kinds)]
	p.idx++

	i := slices.Index(p.alphabet, k)
	if i >= n {
		panic(fmt.Sprintf("piece: sequence kind %q has index %d, source has %d kinds", k, i, n))
	}
	return i
}

// Source generates pieces with a random kind and a strictly increasing id.
//
// The id counter starts at the value given on construction and is never
// reset or decremented. A Source is owned by a single game loop; it performs
// no locking.
type Source struct {
	alphabet []Kind
	picker   Picker
	next     int
}

// NewSource creates a source whose first piece gets id 0.
func NewSource(alphabet []Kind, picker Picker) *Source {
	return NewSourceAt(0, alphabet, picker)
}

// NewSourceAt creates a source whose first piece gets id start.
// Panics on an empty alphabet, a nil picker or a negative start.
func NewSourceAt(start int, alphabet []Kind, picker Picker) *Source {
	if len(alphabet) == 0 {
		panic("piece: source alphabet must not be empty")
	}
	if picker == nil {
		panic("piece: source picker must not be nil")
	}
	if start < 0 {
		panic(fmt.Sprintf("piece: source start must be non-negative, got %d", start))
	}
	return &Source{alphabet: slices.Clone(alphabet), picker: picker, next: start}
}

// Generate returns a new piece and advances the id counter.
// Panics if the picker returns an index outside the alphabet.
func (s *Source) Generate() Piece {
	idx := s.picker.Pick(len(s.alphabet))
	if idx < 0 || idx >= len(s.alphabet) {
		panic(fmt.Sprintf("piece: picker returned index %d for %d kinds", idx, len(s.alphabet)))
	}
	p := Piece{Kind: s.alphabet[idx], ID: s.next}
	s.next++
	return p
}

// Next returns the id the next generated piece will carry.
func (s *Source) Next() int {
	return s.next
}

// Alphabet returns a copy of the kinds this source draws from.
func (s *Source) Alphabet() []Kind {
	out := make([]Kind, len(s.alphabet))
	copy(out, s.alphabet)
	return out
}
