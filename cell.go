package texttable

import "unicode/utf8"

// DelimiterType identifies the character separating the cells of a row.
type DelimiterType int

const (
	DelimiterNone DelimiterType = iota
	DelimiterPipe
	DelimiterPlus
	DelimiterSpace
)

func (d DelimiterType) String() string {
	switch d {
	case DelimiterNone:
		return "None"
	case DelimiterPipe:
		return "Pipe"
	case DelimiterPlus:
		return "Plus"
	case DelimiterSpace:
		return "Space"
	}
	return "DelimiterType(invalid)"
}

// CellType is the syntactic role of a cell.
// A cell has exactly one type, but the type may change
// during grid normalization, for example a lone "-" cell
// in a row with content becomes CellContent.
type CellType int

const (
	CellBlank CellType = iota
	CellContent
	CellMinusSeparator
	CellEqualSeparator
	CellMarkdownLeftSeparator
	CellMarkdownRightSeparator
	CellMarkdownCenterSeparator
	CellTextileHeaderPrefix
	CellTextileLeftPrefix
	CellTextileRightPrefix
	CellTextileCenterPrefix
)

func (t CellType) String() string {
	switch t {
	case CellBlank:
		return "Blank"
	case CellContent:
		return "Content"
	case CellMinusSeparator:
		return "MinusSeparator"
	case CellEqualSeparator:
		return "EqualSeparator"
	case CellMarkdownLeftSeparator:
		return "MarkdownLeftSeparator"
	case CellMarkdownRightSeparator:
		return "MarkdownRightSeparator"
	case CellMarkdownCenterSeparator:
		return "MarkdownCenterSeparator"
	case CellTextileHeaderPrefix:
		return "TextileHeaderPrefix"
	case CellTextileLeftPrefix:
		return "TextileLeftPrefix"
	case CellTextileRightPrefix:
		return "TextileRightPrefix"
	case CellTextileCenterPrefix:
		return "TextileCenterPrefix"
	}
	return "CellType(invalid)"
}

// IsSeparator returns true for the dash, equals
// and Markdown alignment separator types.
func (t CellType) IsSeparator() bool {
	switch t {
	case CellMinusSeparator, CellEqualSeparator,
		CellMarkdownLeftSeparator, CellMarkdownRightSeparator, CellMarkdownCenterSeparator:
		return true
	}
	return false
}

// IsMarkdownSeparator returns true for the Markdown
// alignment separators ":--", "--:" and ":-:".
func (t CellType) IsMarkdownSeparator() bool {
	switch t {
	case CellMarkdownLeftSeparator, CellMarkdownRightSeparator, CellMarkdownCenterSeparator:
		return true
	}
	return false
}

// IsTextilePrefix returns true for cells starting
// with one of the Textile markers "_.", "<.", ">." or "=.".
func (t CellType) IsTextilePrefix() bool {
	switch t {
	case CellTextileHeaderPrefix, CellTextileLeftPrefix, CellTextileRightPrefix, CellTextileCenterPrefix:
		return true
	}
	return false
}

// IsContentOrBlank returns true for CellContent and CellBlank.
func (t CellType) IsContentOrBlank() bool {
	return t == CellContent || t == CellBlank
}

// CellAlign is the horizontal alignment of a cell.
// AlignNone means unset and renders left aligned.
type CellAlign int

const (
	AlignNone CellAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a CellAlign) String() string {
	switch a {
	case AlignNone:
		return "None"
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	}
	return "CellAlign(invalid)"
}

// CellInfo describes one cell of a table row.
//
// CellInfo is a value type, rows hold copies and the
// grid normalization returns new rows instead of modifying
// the parsed ones.
type CellInfo struct {
	// Text is the trimmed cell text without Textile prefix markers.
	Text string
	// Size is the display width of Text where wide characters count as 2 columns.
	// For the phantom column 0 Text is the leading whitespace of the line
	// and Size its rune count.
	Size int
	// Diff is Size minus the rune count of Text.
	// It converts a display width into the rune count
	// used for padding.
	Diff int
	// Delimiter of the row the cell belongs to.
	Delimiter DelimiterType
	Type      CellType
	Align     CellAlign
	// Padding is extra indentation reserved for columns
	// where some rows carry a Textile prefix.
	Padding int
}

// NewCellInfo returns a CellInfo for text with its Size
// and Diff computed by widths.
func NewCellInfo(text string, delimiter DelimiterType, cellType CellType, align CellAlign, widths *WidthCounter) CellInfo {
	size := widths.StringWidth(text)
	return CellInfo{
		Text:      text,
		Size:      size,
		Diff:      size - utf8.RuneCountInString(text),
		Delimiter: delimiter,
		Type:      cellType,
		Align:     align,
	}
}

// newIndentCellInfo returns the phantom column 0 cell
// holding the leading whitespace of a line.
// A tab counts as one column.
func newIndentCellInfo(indent string, delimiter DelimiterType) CellInfo {
	return CellInfo{
		Text:      indent,
		Size:      utf8.RuneCountInString(indent),
		Delimiter: delimiter,
		Type:      CellBlank,
	}
}

// IsValid returns false for a cell with negative size.
func (c CellInfo) IsValid() bool {
	return c.Size >= 0
}

// WithType returns a copy of the cell with the passed type.
func (c CellInfo) WithType(cellType CellType) CellInfo {
	c.Type = cellType
	return c
}

// WithSize returns a copy of the cell with the passed size.
// Diff is left unchanged.
func (c CellInfo) WithSize(size int) CellInfo {
	c.Size = size
	return c
}

// WithAlign returns a copy of the cell with the passed alignment.
func (c CellInfo) WithAlign(align CellAlign) CellInfo {
	c.Align = align
	return c
}

// WithPadding returns a copy of the cell with the passed padding.
func (c CellInfo) WithPadding(padding int) CellInfo {
	c.Padding = padding
	return c
}
