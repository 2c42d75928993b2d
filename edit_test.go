package texttable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCurrent(t *testing.T) {
	doc := Lines{
		"Text",
		"a|bb",
		"-|-",
		"1|2",
		"",
		"-- --",
		"a  bb",
		"-- --",
	}

	edit, ok := FormatCurrent(doc, 2, nil)
	require.True(t, ok)
	require.Equal(t, Edit{
		Range: Range{Start: 1, End: 3},
		Text:  "| a   | bb  |\n| --- | --- |\n| 1   | 2   |",
	}, edit)

	edit, ok = FormatCurrent(doc, 6, nil)
	require.True(t, ok)
	require.Equal(t, Range{Start: 5, End: 7}, edit.Range)
	require.Equal(t, []string{"---  ---", "a    bb", "---  ---"}, edit.Lines())

	_, ok = FormatCurrent(doc, 0, nil)
	require.False(t, ok)
	_, ok = FormatCurrent(doc, 4, nil)
	require.False(t, ok)
}

func TestFormatAll(t *testing.T) {
	doc := Lines{
		"# Title",
		"",
		"a|bb",
		"-|-",
		"1|2",
		"",
		"| x   | y   |",
		"| --- | --- |",
		"",
		"===  ==",
		"key  value",
		"===  ==",
		"",
		"+-+",
		"|z|",
		"+-+",
	}
	edits := FormatAll(doc, nil)
	require.Equal(t, []Edit{
		{Range: Range{Start: 2, End: 4}, Text: "| a   | bb  |\n| --- | --- |\n| 1   | 2   |"},
		{Range: Range{Start: 9, End: 11}, Text: "===  =====\nkey  value\n===  ====="},
		{Range: Range{Start: 13, End: 15}, Text: "+---+\n| z |\n+---+"},
	}, edits)

	formatted, err := ApplyEdits(doc, edits)
	require.NoError(t, err)
	require.Len(t, formatted, len(doc))
	require.Empty(t, FormatAll(Lines(formatted), nil), "formatted document needs no edits")

	require.Empty(t, FormatAll(Lines{"no tables here"}, nil))
}

func TestApplyEdits(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4"}

	result, err := ApplyEdits(lines, []Edit{
		{Range: Range{Start: 3, End: 4}, Text: "three"},
		{Range: Range{Start: 0, End: 0}, Text: "zero\nnew"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"zero", "new", "1", "2", "three"}, result)
	require.Equal(t, []string{"0", "1", "2", "3", "4"}, lines, "input not modified")

	result, err = ApplyEdits(lines, nil)
	require.NoError(t, err)
	require.Equal(t, lines, result)

	_, err = ApplyEdits(lines, []Edit{{Range: Range{Start: 4, End: 5}}})
	require.Error(t, err)
	_, err = ApplyEdits(lines, []Edit{{Range: EmptyRange(2)}})
	require.Error(t, err)
	_, err = ApplyEdits(lines, []Edit{
		{Range: Range{Start: 0, End: 2}},
		{Range: Range{Start: 2, End: 3}},
	})
	require.Error(t, err)
}
