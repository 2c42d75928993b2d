package texttable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCellInfo(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		widths   *WidthCounter
		wantSize int
		wantDiff int
	}{
		{name: "ASCII", text: "abc", wantSize: 3, wantDiff: 0},
		{name: "empty", text: "", wantSize: 0, wantDiff: 0},
		{name: "wide", text: "漢字", wantSize: 4, wantDiff: 2},
		{name: "mixed", text: "a漢b", wantSize: 4, wantDiff: 1},
		{name: "ambiguous", text: "±", wantSize: 1, wantDiff: 0},
		{name: "explicit fullwidth", text: "±a", widths: NewWidthCounter([]string{"±"}), wantSize: 3, wantDiff: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := NewCellInfo(tt.text, DelimiterPipe, CellContent, AlignNone, tt.widths)
			require.Equal(t, tt.text, cell.Text)
			require.Equal(t, tt.wantSize, cell.Size)
			require.Equal(t, tt.wantDiff, cell.Diff)
			require.Equal(t, DelimiterPipe, cell.Delimiter)
			require.True(t, cell.IsValid())
		})
	}
}

func TestNewIndentCellInfo(t *testing.T) {
	cell := newIndentCellInfo("\t  ", DelimiterPlus)
	require.Equal(t, "\t  ", cell.Text)
	require.Equal(t, 3, cell.Size)
	require.Equal(t, 0, cell.Diff)
	require.Equal(t, CellBlank, cell.Type)
	require.Equal(t, DelimiterPlus, cell.Delimiter)
}

func TestCellInfo_With(t *testing.T) {
	cell := NewCellInfo("-", DelimiterPipe, CellMinusSeparator, AlignNone, nil)

	changed := cell.WithType(CellContent).WithSize(5).WithAlign(AlignRight).WithPadding(2)
	require.Equal(t, CellContent, changed.Type)
	require.Equal(t, 5, changed.Size)
	require.Equal(t, AlignRight, changed.Align)
	require.Equal(t, 2, changed.Padding)

	// Value receiver, the original is unchanged
	require.Equal(t, CellMinusSeparator, cell.Type)
	require.Equal(t, 1, cell.Size)

	require.False(t, cell.WithSize(-1).IsValid())
}

func TestCellType(t *testing.T) {
	for _, cellType := range []CellType{CellMinusSeparator, CellEqualSeparator, CellMarkdownLeftSeparator, CellMarkdownRightSeparator, CellMarkdownCenterSeparator} {
		require.True(t, cellType.IsSeparator(), cellType.String())
		require.False(t, cellType.IsTextilePrefix(), cellType.String())
		require.False(t, cellType.IsContentOrBlank(), cellType.String())
	}
	for _, cellType := range []CellType{CellTextileHeaderPrefix, CellTextileLeftPrefix, CellTextileRightPrefix, CellTextileCenterPrefix} {
		require.True(t, cellType.IsTextilePrefix(), cellType.String())
		require.False(t, cellType.IsSeparator(), cellType.String())
	}
	require.True(t, CellMarkdownCenterSeparator.IsMarkdownSeparator())
	require.False(t, CellMinusSeparator.IsMarkdownSeparator())
	require.True(t, CellBlank.IsContentOrBlank())
	require.True(t, CellContent.IsContentOrBlank())

	require.Equal(t, "MarkdownLeftSeparator", CellMarkdownLeftSeparator.String())
	require.Equal(t, "CellType(invalid)", CellType(99).String())
	require.Equal(t, "Plus", DelimiterPlus.String())
	require.Equal(t, "Center", AlignCenter.String())
}

func TestPadText(t *testing.T) {
	tests := []struct {
		text      string
		runeCount int
		align     CellAlign
		want      string
	}{
		{text: "a", runeCount: 3, align: AlignNone, want: "a  "},
		{text: "a", runeCount: 3, align: AlignLeft, want: "a  "},
		{text: "a", runeCount: 3, align: AlignRight, want: "  a"},
		{text: "a", runeCount: 3, align: AlignCenter, want: " a "},
		{text: "ab", runeCount: 5, align: AlignCenter, want: " ab  "},
		{text: "abc", runeCount: 2, align: AlignRight, want: "abc"},
		{text: "", runeCount: 2, align: AlignNone, want: "  "},
		{text: "漢", runeCount: 2, align: AlignRight, want: " 漢"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, padText(tt.text, tt.runeCount, tt.align))
		})
	}
}

func TestWidthCounter_StringWidth(t *testing.T) {
	var nilCounter *WidthCounter
	require.Equal(t, 5, nilCounter.StringWidth("a漢字"))

	counter := NewWidthCounter([]string{"±§", "±"})
	require.Equal(t, 4, counter.StringWidth("±§"))
	require.Equal(t, 4, counter.StringWidth("漢字"), "wide characters are not counted twice")
	require.Equal(t, 2, NewWidthCounter(nil).StringWidth("±§"))
}
