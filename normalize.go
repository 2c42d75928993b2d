package texttable

import "slices"

// SeparatorType classifies a whole row of a normalized grid.
type SeparatorType int

const (
	// SeparatorNone is a row with content.
	SeparatorNone SeparatorType = iota
	// SeparatorMinus is a row of dash separators like "|---|---|" or "+---+".
	SeparatorMinus
	// SeparatorEqual is a row of equal sign separators like "+===+===+".
	SeparatorEqual
)

func (s SeparatorType) String() string {
	switch s {
	case SeparatorNone:
		return "None"
	case SeparatorMinus:
		return "Minus"
	case SeparatorEqual:
		return "Equal"
	}
	return "SeparatorType(invalid)"
}

func (s SeparatorType) cellType() CellType {
	if s == SeparatorEqual {
		return CellEqualSeparator
	}
	return CellMinusSeparator
}

// NormalizeGrid turns the ragged rows of parsed cells into a rectangular
// grid and resolves cell types, sizes and alignment.
// The passed rows are not modified, the returned grid holds new rows.
//
// The passes in order:
//  1. pad every row with blank cells to the maximum row length
//  2. classify every row as content or separator row,
//     separator cells in content rows become content,
//     blank cells in separator rows become separators
//  3. set the size of separator cells to their minimum width
//  4. reserve padding in columns where any cell has a Textile prefix
//  5. propagate Markdown separator alignment to the whole column,
//     the bottom-most separator wins
//  6. apply the alignment of Textile prefix cells
//  7. right align numeric columns if Common.RightAlignedNumeric is set,
//     header rows keep their alignment
//
// NormalizeGrid never fails, inconsistent input degrades to content cells.
// The returned separators hold the SeparatorType of every row.
func NormalizeGrid(rows [][]CellInfo, config *Config) (grid [][]CellInfo, separators []SeparatorType) {
	config = configOrDefault(config)

	grid = padRows(rows)
	separators = resolveSeparatorRows(grid)

	for _, row := range grid {
		for c := range row {
			if row[c].Type.IsSeparator() {
				row[c].Size = separatorMinSize(row[c].Type, row[c].Delimiter, config.Markdown.OneSpacePadding)
			}
		}
	}

	applyTextilePadding(grid)
	applyMarkdownAlignment(grid)
	applyTextileAlignment(grid)

	if config.Common.RightAlignedNumeric {
		alignNumericColumns(grid, separators, headerIndexes(grid, separators), config.numberParser())
	}
	return grid, separators
}

// padRows copies rows and pads them to the same length.
// All cells of a row get the delimiter of the row.
func padRows(rows [][]CellInfo) [][]CellInfo {
	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	grid := make([][]CellInfo, len(rows))
	for r, row := range rows {
		delimiter := DelimiterNone
		if len(row) > 0 {
			delimiter = row[0].Delimiter
		}
		padded := make([]CellInfo, numCols)
		copy(padded, row)
		for c := range padded {
			if c >= len(row) {
				padded[c] = CellInfo{Type: CellBlank}
			}
			padded[c].Delimiter = delimiter
		}
		grid[r] = padded
	}
	return grid
}

func resolveSeparatorRows(grid [][]CellInfo) []SeparatorType {
	separators := make([]SeparatorType, len(grid))
	for r, row := range grid {
		sep := rowSeparatorType(row)
		separators[r] = sep
		for c := range row {
			switch {
			case sep == SeparatorNone && row[c].Type.IsSeparator():
				// Dashes in a content row are literal text
				row[c].Type = CellContent
				row[c].Align = AlignNone
			case sep != SeparatorNone && c > 0 && row[c].Type == CellBlank:
				row[c].Type = sep.cellType()
			}
		}
	}
	return separators
}

// rowSeparatorType returns SeparatorNone if any cell has content.
// Plus delimited rows are grid table borders and default to SeparatorMinus,
// an equal sign separator cell makes the row SeparatorEqual.
func rowSeparatorType(row []CellInfo) SeparatorType {
	sep := SeparatorNone
	if len(row) > 0 && row[0].Delimiter == DelimiterPlus {
		sep = SeparatorMinus
	}
	for _, cell := range row {
		switch {
		case cell.Type == CellContent:
			return SeparatorNone
		case cell.Type == CellEqualSeparator:
			sep = SeparatorEqual
		case cell.Type.IsSeparator() && sep != SeparatorEqual:
			sep = SeparatorMinus
		}
	}
	return sep
}

// separatorMinSize returns the size of a separator cell.
// The separator run needs at least 3 characters, 4 for ":---" and "---:"
// and 5 for ":---:". When the spaces between delimiter and run
// are filled with separator characters, the size is 2 less.
func separatorMinSize(cellType CellType, delimiter DelimiterType, oneSpacePadding bool) int {
	size := 3
	switch cellType {
	case CellMarkdownLeftSeparator, CellMarkdownRightSeparator:
		size = 4
	case CellMarkdownCenterSeparator:
		size = 5
	}
	if separatorFillsPadding(delimiter, oneSpacePadding) {
		size -= 2
	}
	return size
}

// separatorFillsPadding returns if separator runs extend over
// the spaces next to the delimiters, like "|-----|" or "+-----+".
func separatorFillsPadding(delimiter DelimiterType, oneSpacePadding bool) bool {
	switch delimiter {
	case DelimiterPipe:
		return !oneSpacePadding
	case DelimiterPlus:
		return true
	}
	return false
}

const textilePrefixPadding = 2

func applyTextilePadding(grid [][]CellInfo) {
	if len(grid) == 0 {
		return
	}
	padded := make([]bool, len(grid[0]))
	for _, row := range grid {
		for c, cell := range row {
			if cell.Type.IsTextilePrefix() {
				padded[c] = true
			}
		}
	}
	for _, row := range grid {
		for c := range row {
			if padded[c] {
				row[c].Padding = textilePrefixPadding
			}
		}
	}
}

func applyMarkdownAlignment(grid [][]CellInfo) {
	if len(grid) == 0 {
		return
	}
	colAlign := make([]CellAlign, len(grid[0]))
	for r := len(grid) - 1; r >= 0; r-- {
		for c, cell := range grid[r] {
			if colAlign[c] == AlignNone && cell.Type.IsMarkdownSeparator() {
				colAlign[c] = cell.Align
			}
		}
	}
	for _, row := range grid {
		for c := range row {
			if colAlign[c] != AlignNone {
				row[c].Align = colAlign[c]
			}
		}
	}
}

func applyTextileAlignment(grid [][]CellInfo) {
	for _, row := range grid {
		for c := range row {
			switch row[c].Type {
			case CellTextileLeftPrefix:
				row[c].Align = AlignLeft
			case CellTextileRightPrefix:
				row[c].Align = AlignRight
			case CellTextileCenterPrefix:
				row[c].Align = AlignCenter
			}
		}
	}
}

// alignNumericColumns right aligns the body cells of columns
// where every content cell is numeric.
//
// Header rows are neither scanned nor aligned. The remaining content rows
// of all body sections are scanned from bottom to top, separator rows
// in between are skipped. A column is only numeric if it has at least
// one number, and a column that has been found non numeric
// is never reconsidered.
//
// A non numeric cell in the first row of a table without header rows
// on top of numbers is treated as the column title:
// it does not clear the column and keeps its own alignment.
func alignNumericColumns(grid [][]CellInfo, separators []SeparatorType, headers []int, parser NumberParser) {
	if len(grid) == 0 {
		return
	}
	var (
		numCols   = len(grid[0])
		candidate = make([]bool, numCols)
		hasNumber = make([]bool, numCols)
		titleCell = make([]bool, numCols)
		remaining = numCols - 1
		isBody    = func(r int) bool {
			return separators[r] == SeparatorNone && !slices.Contains(headers, r)
		}
	)
	for c := 1; c < numCols; c++ {
		candidate[c] = true
	}

	for r := len(grid) - 1; r >= 0 && remaining > 0; r-- {
		if !isBody(r) {
			continue
		}
		row := grid[r]
		for c := 1; c < numCols; c++ {
			if !candidate[c] || row[c].Type != CellContent {
				continue
			}
			switch {
			case parser.IsNumeric(row[c].Text):
				hasNumber[c] = true
			case r == 0 && hasNumber[c]:
				titleCell[c] = true
			default:
				candidate[c] = false
				remaining--
			}
		}
	}
	if remaining == 0 {
		return
	}

	for r, row := range grid {
		if !isBody(r) {
			continue
		}
		for c := 1; c < numCols; c++ {
			cell := &row[c]
			if !candidate[c] || !hasNumber[c] || (r == 0 && titleCell[c]) {
				continue
			}
			if cell.Type.IsContentOrBlank() && cell.Align == AlignNone {
				cell.Align = AlignRight
			}
		}
	}
}
