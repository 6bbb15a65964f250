package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultAlphabet(t *testing.T) []Kind {
	t.Helper()
	kinds, err := ParseAlphabet(DefaultAlphabet)
	require.NoError(t, err)
	return kinds
}

func TestSource_IDsStrictlyIncrease(t *testing.T) {
	src := NewSource(defaultAlphabet(t), NewRandomPicker(42))

	prev := -1
	for i := 0; i < 100; i++ {
		p := src.Generate()
		assert.Greater(t, p.ID, prev, "id must be strictly greater than all previous ids")
		prev = p.ID
	}
	assert.Equal(t, 100, src.Next())
}

func TestSource_StartsAtZero(t *testing.T) {
	src := NewSource(defaultAlphabet(t), NewRandomPicker(1))
	assert.Equal(t, 0, src.Next())
	assert.Equal(t, 0, src.Generate().ID)
	assert.Equal(t, 1, src.Next())
}

func TestSource_StartsAt(t *testing.T) {
	src := NewSourceAt(7, defaultAlphabet(t), NewRandomPicker(1))
	assert.Equal(t, 7, src.Generate().ID)

}

func TestNewSourceAt_RejectsMisuse(t *testing.T) {
	alphabet := defaultAlphabet(t)

	assert.PanicsWithValue(t, "piece: source start must be non-negative, got -3", func() {
		NewSourceAt(-3, alphabet, NewRandomPicker(1))
	})
	assert.PanicsWithValue(t, "piece: source alphabet must not be empty", func() {
		NewSource(nil, NewRandomPicker(1))
	})
	assert.PanicsWithValue(t, "piece: source picker must not be nil", func() {
		NewSource(alphabet, nil)
	})
}

type fixedPicker int

func (f fixedPicker) Pick(int) int { return int(f) }

func TestSource_Generate_PickerOutOfRange(t *testing.T) {
	src := NewSource(defaultAlphabet(t), fixedPicker(4))
	assert.PanicsWithValue(t, "piece: picker returned index 4 for 4 kinds", func() {
		src.Generate()
	})
}

func TestSource_KindsWithinAlphabet(t *testing.T) {
	alphabet := defaultAlphabet(t)
	src := NewSource(alphabet, NewRandomPicker(99))

	seen := map[Kind]bool{}
	for i := 0; i < 200; i++ {
		p := src.Generate()
		assert.Contains(t, alphabet, p.Kind)
		seen[p.Kind] = true
	}
	assert.Len(t, seen, len(alphabet), "200 draws should hit every kind")
}

func TestRandomPicker_SameSeedSameSequence(t *testing.T) {
	a := NewRandomPicker(2024)
	b := NewRandomPicker(2024)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Pick(4), b.Pick(4))
	}
}

func TestSequencePicker_CyclesThroughKinds(t *testing.T) {
	alphabet := defaultAlphabet(t)
	src := NewSource(alphabet, NewSequencePicker(alphabet, KindL, KindT))

	got := []Kind{}
	for i := 0; i < 5; i++ {
		got = append(got, src.Generate().Kind)
	}
	assert.Equal(t, []Kind{KindL, KindT, KindL, KindT, KindL}, got)
}

func TestNewSequencePicker_UnknownKind(t *testing.T) {
	alphabet := defaultAlphabet(t)
	assert.PanicsWithValue(t, `piece: sequence kind "Z" not in alphabet`, func() {
		NewSequencePicker(alphabet, KindI, "Z")
	})
}

func TestNewSequencePicker_Empty(t *testing.T) {
	assert.PanicsWithValue(t, "piece: sequence picker needs at least one kind", func() {
		NewSequencePicker(defaultAlphabet(t))
	})
}

func TestSequencePicker_AlphabetMismatch(t *testing.T) {
	p := NewSequencePicker(defaultAlphabet(t), KindL)
	assert.PanicsWithValue(t, `piece: sequence kind "L" has index 3, source has 2 kinds`, func() {
		p.Pick(2)
	})
}

func TestSource_AlphabetIsCopy(t *testing.T) {
	src := NewSource(defaultAlphabet(t), NewRandomPicker(1))
	a := src.Alphabet()
	a[0] = "X"
	assert.Equal(t, KindI, src.Alphabet()[0])
}
