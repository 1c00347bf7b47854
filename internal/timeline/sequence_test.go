package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(s *Sequence) []string {
	var out []string
	for _, e := range s.Entries() {
		out = append(out, e.Item.(string))
	}
	return out
}

func TestBuildSingle(t *testing.T) {
	seq, err := BuildSingle(List{Label: "items", Items: []any{"x", "y", "z"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, labels(seq))
	assert.Equal(t, 2, seq.At(2).SourceIndex)
	assert.Equal(t, "items", seq.At(0).List)
}

func TestBuildDualAlternates(t *testing.T) {
	a := List{Label: "good", Items: []any{"a0", "a1", "a2"}}
	b := List{Label: "bad", Items: []any{"b0", "b1"}}

	seq, err := BuildDual(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "b0", "a1", "b1", "a2"}, labels(seq))

	last := seq.At(4)
	assert.Equal(t, "good", last.List)
	assert.Equal(t, 2, last.SourceIndex)
}

func TestBuildDualLongerSecondList(t *testing.T) {
	a := List{Label: "good", Items: []any{"a0"}}
	b := List{Label: "bad", Items: []any{"b0", "b1", "b2"}}

	seq, err := BuildDual(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "b0", "b1", "b2"}, labels(seq))
}

func TestBuildDualOneEmpty(t *testing.T) {
	seq, err := BuildDual(List{Label: "good"}, List{Label: "bad", Items: []any{"b0"}})
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Len())
	assert.Equal(t, "bad", seq.At(0).List)
}

func TestBuildEmpty(t *testing.T) {
	_, err := BuildSingle(List{})
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = BuildDual(List{}, List{})
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestReversedKeepsSourceIndex(t *testing.T) {
	seq, err := BuildSingle(List{Items: []any{"x", "y", "z"}})
	require.NoError(t, err)

	rev := seq.Reversed()
	assert.Equal(t, []string{"z", "y", "x"}, labels(rev))
	assert.Equal(t, 2, rev.At(0).SourceIndex)
	assert.Equal(t, 0, rev.IndexOf("", 2))
	assert.Equal(t, -1, rev.IndexOf("other", 2))
	// original untouched
	assert.Equal(t, []string{"x", "y", "z"}, labels(seq))
}
