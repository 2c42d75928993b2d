package texttable

import (
	"slices"
	"strings"

	"github.com/domonda/go-texttable/logging"
)

// TableProperty holds the structural properties of a table
// inferred from its normalized grid.
type TableProperty struct {
	// IsMarkdown is true for pipe tables with the canonical
	// "header / --- / body" shape in the first three rows.
	IsMarkdown bool `json:"isMarkdown"`

	// HasDelimiterAtLineHead is true if any line of the table
	// started with a delimiter character after its indentation.
	HasDelimiterAtLineHead bool `json:"hasDelimiterAtLineHead"`

	// MarkdownTableHeaderIndexes are the rows before the first separator row.
	MarkdownTableHeaderIndexes []int `json:"markdownTableHeaderIndexes,omitempty"`

	// GridTableHeaderIndexes are the rows between a leading "+---+"
	// border and the first "+===+" separator.
	GridTableHeaderIndexes []int `json:"gridTableHeaderIndexes,omitempty"`

	// SimpleTableHeaderIndexes are the rows between a leading "=== ==="
	// line and the next one.
	SimpleTableHeaderIndexes []int `json:"simpleTableHeaderIndexes,omitempty"`
}

// HeaderIndexes returns the header rows used for formatType.
// FormatNormal tables use the Markdown and grid header rows,
// only one of them can be non empty for a table.
func (p *TableProperty) HeaderIndexes(formatType FormatType) []int {
	if formatType == FormatSimple {
		return p.SimpleTableHeaderIndexes
	}
	if len(p.MarkdownTableHeaderIndexes) > 0 {
		return p.MarkdownTableHeaderIndexes
	}
	return p.GridTableHeaderIndexes
}

// IsHeaderRow returns if row is a header row for formatType.
func (p *TableProperty) IsHeaderRow(row int, formatType FormatType) bool {
	return slices.Contains(p.HeaderIndexes(formatType), row)
}

// TableInfo is a detected table with its normalized cell grid.
// Every TableInfo owns its grid, it is never shared.
type TableInfo struct {
	rng        Range
	formatType FormatType
	grid       [][]CellInfo
	separators []SeparatorType
	property   TableProperty
}

// NewTableInfo parses the lines of r in doc as a table of formatType,
// normalizes the grid and infers the TableProperty.
// An empty range results in an invalid TableInfo.
func NewTableInfo(doc Document, r Range, formatType FormatType, config *Config) *TableInfo {
	config = configOrDefault(config)
	widths := config.widthCounter()

	info := &TableInfo{rng: r, formatType: formatType}
	rows := make([][]CellInfo, 0, r.LineCount())
	for line := r.Start; line <= r.End; line++ {
		row, headInserted := parseRow(doc.LineAt(line), formatType, widths)
		if !headInserted {
			info.property.HasDelimiterAtLineHead = true
		}
		rows = append(rows, row)
	}

	info.grid, info.separators = NormalizeGrid(rows, config)
	info.property.IsMarkdown = isMarkdown(info.grid, info.separators)
	info.property.MarkdownTableHeaderIndexes = markdownTableHeaderIndexes(info.separators)
	info.property.GridTableHeaderIndexes = gridTableHeaderIndexes(info.separators)
	info.property.SimpleTableHeaderIndexes = simpleTableHeaderIndexes(info.separators)

	rowCount, colCount := info.Size()
	logging.Logger().Debug("parsed table",
		"range", r.String(),
		"format", formatType.String(),
		"rows", rowCount,
		"cols", colCount,
		"markdown", info.property.IsMarkdown,
	)
	return info
}

// parseRow splits text into classified cells.
// The first cell holds the indentation of the line.
func parseRow(text string, formatType FormatType, widths *WidthCounter) (row []CellInfo, headInserted bool) {
	split := SplitLine(text, formatType)
	row = make([]CellInfo, 0, len(split.Cells))
	row = append(row, newIndentCellInfo(split.Indent, split.Delimiter))
	for _, cell := range split.Cells[1:] {
		cellType, align, str := ClassifyCell(strings.TrimSpace(cell), formatType)
		row = append(row, NewCellInfo(str, split.Delimiter, cellType, align, widths))
	}
	return row, split.HeadInserted
}

// Range returns the line range of the table in the document.
func (t *TableInfo) Range() Range { return t.rng }

// FormatType returns the format the table was parsed with.
func (t *TableInfo) FormatType() FormatType { return t.formatType }

// CellGrid returns the normalized grid.
// Column 0 of every row is the indentation of the line.
func (t *TableInfo) CellGrid() [][]CellInfo { return t.grid }

// Size returns the number of rows and columns of the grid
// including the indentation column.
func (t *TableInfo) Size() (rows, cols int) {
	if len(t.grid) == 0 {
		return 0, 0
	}
	return len(t.grid), len(t.grid[0])
}

// Property returns the inferred structural properties.
func (t *TableInfo) Property() *TableProperty { return &t.property }

// RowSeparator returns the SeparatorType of row
// or SeparatorNone for an out of bounds row.
func (t *TableInfo) RowSeparator(row int) SeparatorType {
	if row < 0 || row >= len(t.separators) {
		return SeparatorNone
	}
	return t.separators[row]
}

// IsValid returns false if the range or grid is empty,
// the grid does not match the range, rows have different lengths
// or any cell is invalid.
func (t *TableInfo) IsValid() bool {
	if t == nil || t.rng.IsEmpty() || len(t.grid) == 0 || len(t.grid) != t.rng.LineCount() {
		return false
	}
	numCols := len(t.grid[0])
	if numCols == 0 {
		return false
	}
	for _, row := range t.grid {
		if len(row) != numCols {
			return false
		}
		for _, cell := range row {
			if !cell.IsValid() {
				return false
			}
		}
	}
	return true
}

// MaxCellSizeList returns the width of every column.
// Column 0 gets the minimum indentation of all rows,
// the other columns the maximum cell size.
func (t *TableInfo) MaxCellSizeList() []int {
	_, numCols := t.Size()
	widths := make([]int, numCols)
	for r, row := range t.grid {
		for c, cell := range row {
			switch {
			case c == 0 && r == 0:
				widths[c] = cell.Size
			case c == 0:
				widths[c] = min(widths[c], cell.Size)
			default:
				widths[c] = max(widths[c], cell.Size)
			}
		}
	}
	return widths
}

func isPipeRow(grid [][]CellInfo, separators []SeparatorType, r int, sep SeparatorType) bool {
	return grid[r][0].Delimiter == DelimiterPipe && separators[r] == sep
}

func isMarkdown(grid [][]CellInfo, separators []SeparatorType) bool {
	return len(grid) >= 3 &&
		isPipeRow(grid, separators, 0, SeparatorNone) &&
		isPipeRow(grid, separators, 1, SeparatorMinus) &&
		isPipeRow(grid, separators, 2, SeparatorNone)
}

// headerIndexes returns the header rows of a normalized grid,
// the Simple table rows for space delimited grids,
// else the Markdown or grid table rows.
func headerIndexes(grid [][]CellInfo, separators []SeparatorType) []int {
	if len(grid) > 0 && grid[0][0].Delimiter == DelimiterSpace {
		return simpleTableHeaderIndexes(separators)
	}
	if indexes := markdownTableHeaderIndexes(separators); len(indexes) > 0 {
		return indexes
	}
	return gridTableHeaderIndexes(separators)
}

// markdownTableHeaderIndexes returns the leading content rows before
// the first separator row. A table without separator or without
// rows after the separator has no header.
func markdownTableHeaderIndexes(separators []SeparatorType) []int {
	var indexes []int
	for r, sep := range separators {
		if sep == SeparatorNone {
			indexes = append(indexes, r)
			continue
		}
		if r == len(separators)-1 {
			return nil
		}
		return indexes
	}
	return nil
}

// gridTableHeaderIndexes returns the content rows between a leading
// minus separator and the first equal separator.
func gridTableHeaderIndexes(separators []SeparatorType) []int {
	if len(separators) == 0 || separators[0] != SeparatorMinus {
		return nil
	}
	var indexes []int
	for r := 1; r < len(separators); r++ {
		switch separators[r] {
		case SeparatorEqual:
			return indexes
		case SeparatorMinus:
			return nil
		default:
			indexes = append(indexes, r)
		}
	}
	return nil
}

// simpleTableHeaderIndexes returns the content rows between a leading
// equal separator and the next one. Minus separators in between are skipped.
func simpleTableHeaderIndexes(separators []SeparatorType) []int {
	if len(separators) == 0 || separators[0] != SeparatorEqual {
		return nil
	}
	var indexes []int
	for r := 1; r < len(separators); r++ {
		switch separators[r] {
		case SeparatorEqual:
			return indexes
		case SeparatorMinus:
		default:
			indexes = append(indexes, r)
		}
	}
	return nil
}
