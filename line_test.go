package texttable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		text string
		want LineFlag
	}{
		{text: "", want: 0},
		{text: " \t ", want: 0},
		{text: "a|b", want: LineNotEmpty | LineHasPipe},
		{text: "  | a | b |  ", want: LineNotEmpty | LineHasPipe},
		{text: "+--+==+", want: LineNotEmpty | LineGridSeparator},
		{text: "+", want: LineNotEmpty | LineGridSeparator},
		{text: "---  ----", want: LineNotEmpty | LineSimpleSeparator},
		{text: "=== \t===", want: LineNotEmpty | LineSimpleSeparator},
		{text: "-- ==", want: LineNotEmpty},
		{text: "-|-", want: LineNotEmpty | LineHasPipe},
		{text: "text", want: LineNotEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyLine(tt.text), ClassifyLine(tt.text).String())
		})
	}
}

func TestIsTableLine(t *testing.T) {
	require.True(t, IsTableLine("a|b", FormatNormal))
	require.True(t, IsTableLine("+---+", FormatNormal))
	require.False(t, IsTableLine("---  ---", FormatNormal))
	require.True(t, IsTableLine("---  ---", FormatSimple))
	require.True(t, IsTableLine("any text", FormatSimple))
	require.False(t, IsTableLine("   ", FormatSimple))
}

func TestLineFlag_String(t *testing.T) {
	require.Equal(t, "HasPipe|NotEmpty", (LineHasPipe | LineNotEmpty).String())
	require.Equal(t, "no LineFlag", LineFlag(0).String())
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		formatType FormatType
		want       SplitResult
	}{
		{
			name: "framed pipes",
			text: "| a | b |",
			want: SplitResult{Cells: []string{"", " a ", " b "}, Delimiter: DelimiterPipe},
		},
		{
			name: "no leading pipe",
			text: "a|bb",
			want: SplitResult{Cells: []string{"", "a", "bb"}, Delimiter: DelimiterPipe, HeadInserted: true},
		},
		{
			name: "indented",
			text: "  | a",
			want: SplitResult{Cells: []string{"  ", " a"}, Delimiter: DelimiterPipe, Indent: "  "},
		},
		{
			name: "indented without leading pipe",
			text: "\ta | b",
			want: SplitResult{Cells: []string{"", "\ta ", " b"}, Delimiter: DelimiterPipe, HeadInserted: true, Indent: "\t"},
		},
		{
			name: "grid separator",
			text: "+--+---+",
			want: SplitResult{Cells: []string{"", "--", "---"}, Delimiter: DelimiterPlus},
		},
		{
			name: "empty cells",
			text: "|a||",
			want: SplitResult{Cells: []string{"", "a", ""}, Delimiter: DelimiterPipe},
		},
		{
			name: "no delimiter",
			text: "plain",
			want: SplitResult{Cells: []string{"", "plain"}, Delimiter: DelimiterNone, HeadInserted: true},
		},
		{
			name:       "simple",
			text:       "a  'b c'  d",
			formatType: FormatSimple,
			want:       SplitResult{Cells: []string{"", "a", "'b c'", "d"}, Delimiter: DelimiterSpace, HeadInserted: true},
		},
		{
			name:       "simple indented",
			text:       "  x y  ",
			formatType: FormatSimple,
			want:       SplitResult{Cells: []string{"", "x", "y"}, Delimiter: DelimiterSpace, Indent: "  "},
		},
		{
			name:       "simple quote inside word",
			text:       `it's "a b"`,
			formatType: FormatSimple,
			want:       SplitResult{Cells: []string{"", "it's", `"a b"`}, Delimiter: DelimiterSpace, HeadInserted: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitLine(tt.text, tt.formatType))
		})
	}
}

func TestClassifyCell(t *testing.T) {
	tests := []struct {
		trimmed    string
		formatType FormatType
		wantType   CellType
		wantAlign  CellAlign
		wantText   string
	}{
		{trimmed: "", wantType: CellBlank},
		{trimmed: "-", wantType: CellMinusSeparator, wantText: "-"},
		{trimmed: "---", wantType: CellMinusSeparator, wantText: "---"},
		{trimmed: "===", wantType: CellEqualSeparator, wantText: "==="},
		{trimmed: ":--", wantType: CellMarkdownLeftSeparator, wantAlign: AlignLeft, wantText: ":--"},
		{trimmed: "--:", wantType: CellMarkdownRightSeparator, wantAlign: AlignRight, wantText: "--:"},
		{trimmed: ":-:", wantType: CellMarkdownCenterSeparator, wantAlign: AlignCenter, wantText: ":-:"},
		{trimmed: "-:-", wantType: CellContent, wantText: "-:-"},
		{trimmed: ":", wantType: CellContent, wantText: ":"},
		{trimmed: "_. head", wantType: CellTextileHeaderPrefix, wantText: "head"},
		{trimmed: "<.x", wantType: CellTextileLeftPrefix, wantAlign: AlignLeft, wantText: "x"},
		{trimmed: ">. 1", wantType: CellTextileRightPrefix, wantAlign: AlignRight, wantText: "1"},
		{trimmed: "=. c", wantType: CellTextileCenterPrefix, wantAlign: AlignCenter, wantText: "c"},
		{trimmed: "=.", wantType: CellTextileCenterPrefix, wantAlign: AlignCenter, wantText: ""},
		{trimmed: "abc", wantType: CellContent, wantText: "abc"},
		{trimmed: ":--", formatType: FormatSimple, wantType: CellContent, wantText: ":--"},
		{trimmed: "_. x", formatType: FormatSimple, wantType: CellContent, wantText: "_. x"},
		{trimmed: "==", formatType: FormatSimple, wantType: CellEqualSeparator, wantText: "=="},
	}
	for _, tt := range tests {
		t.Run(tt.formatType.String()+"/"+tt.trimmed, func(t *testing.T) {
			cellType, align, text := ClassifyCell(tt.trimmed, tt.formatType)
			require.Equal(t, tt.wantType, cellType)
			require.Equal(t, tt.wantAlign, align)
			require.Equal(t, tt.wantText, text)
		})
	}
}

func TestTextilePrefix(t *testing.T) {
	require.Equal(t, "_.", textilePrefix(CellTextileHeaderPrefix))
	require.Equal(t, ">.", textilePrefix(CellTextileRightPrefix))
	require.Equal(t, "", textilePrefix(CellContent))
}
