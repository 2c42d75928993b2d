package texttable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	require.Equal(t, Lines{"a", "b", ""}, SplitLines("a\r\nb\n"))
	require.Equal(t, Lines{""}, SplitLines(""))
}

func TestLines(t *testing.T) {
	lines := Lines{"a", "b"}
	require.Equal(t, 2, lines.LineCount())
	require.Equal(t, "b", lines.LineAt(1))
	require.Equal(t, "", lines.LineAt(2))
	require.Equal(t, "", lines.LineAt(-1))
}

func TestRange(t *testing.T) {
	empty := EmptyRange(3)
	require.True(t, empty.IsEmpty())
	require.Equal(t, 0, empty.LineCount())
	require.Equal(t, "empty@3", empty.String())
	require.False(t, empty.Contains(3))

	r := Range{Start: 2, End: 4}
	require.False(t, r.IsEmpty())
	require.Equal(t, 3, r.LineCount())
	require.Equal(t, "2-4", r.String())
	require.True(t, r.Contains(2))
	require.True(t, r.Contains(4))
	require.False(t, r.Contains(5))

	require.True(t, r.Overlaps(Range{Start: 4, End: 6}))
	require.False(t, r.Overlaps(Range{Start: 5, End: 6}))
	require.False(t, r.Overlaps(EmptyRange(3)))
}

func TestRangeText(t *testing.T) {
	doc := Lines{"x", "a|b", "-|-", "y"}
	require.Equal(t, "a|b\n-|-", RangeText(doc, Range{Start: 1, End: 2}))
	require.Equal(t, "", RangeText(doc, EmptyRange(1)))
}
