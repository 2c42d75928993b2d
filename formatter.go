package texttable

import (
	"strings"
	"unicode"

	"github.com/domonda/go-texttable/logging"
)

// Formatter renders a TableInfo as aligned text.
//
// A Formatter is immutable after creation and can be shared,
// it only holds the Config it was created with.
//
// Example:
//
//	doc := Lines{"a|bb", "-|-", "1|2"}
//	info := NewTableInfo(doc, DetectRange(doc, 0, FormatNormal), FormatNormal, nil)
//	text := NewFormatter(nil).FormatTable(info)
//	// | a   | bb  |
//	// | --- | --- |
//	// | 1   | 2   |
type Formatter struct {
	config *Config
}

// NewFormatter returns a Formatter for config.
// A nil config uses NewDefaultConfig().
func NewFormatter(config *Config) *Formatter {
	return &Formatter{config: configOrDefault(config)}
}

// Config returns the configuration of the Formatter.
func (f *Formatter) Config() *Config {
	return f.config
}

// IsBorderless returns if the outer pipes of info
// are omitted when formatting.
//
// Only tables where every line is pipe delimited and no cell
// has a Textile prefix can be borderless.
// With TableEdgesAuto a table is borderless if none of its lines
// starts with a delimiter and it is not a canonical Markdown table
// with a separator as second row.
func (f *Formatter) IsBorderless(info *TableInfo) bool {
	if info.formatType != FormatNormal {
		return false
	}
	for _, row := range info.grid {
		for _, cell := range row {
			if cell.Delimiter != DelimiterPipe || cell.Type.IsTextilePrefix() {
				return false
			}
		}
	}
	switch f.config.Markdown.TableEdgesType {
	case TableEdgesBorderless:
		return true
	case TableEdgesNormal:
		return false
	}
	return !info.property.IsMarkdown && !info.property.HasDelimiterAtLineHead
}

// FormatTable returns the formatted lines of info joined by "\n",
// or an empty string if info is not valid.
// The result has as many lines as the range of info.
func (f *Formatter) FormatTable(info *TableInfo) string {
	if !info.IsValid() {
		return ""
	}
	var (
		widths     = info.MaxCellSizeList()
		indent     = minIndent(info.grid)
		borderless = f.IsBorderless(info)
		lines      = make([]string, len(info.grid))
	)
	for r, row := range info.grid {
		header := f.config.Common.CenterAlignedHeader && info.property.IsHeaderRow(r, info.formatType)
		var line string
		if row[0].Delimiter == DelimiterSpace {
			line = f.formatSpaceRow(row, widths, indent, header)
		} else {
			line = f.formatDelimitedRow(row, widths, indent, header, borderless)
		}
		if f.config.Common.TrimTrailingWhitespace {
			line = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		lines[r] = line
	}
	logging.Logger().Debug("formatted table",
		"range", info.rng.String(),
		"format", info.formatType.String(),
		"borderless", borderless,
	)
	return strings.Join(lines, "\n")
}

// minIndent returns the indentation text of the least indented row.
func minIndent(grid [][]CellInfo) string {
	indent := grid[0][0]
	for _, row := range grid[1:] {
		if row[0].Size < indent.Size {
			indent = row[0]
		}
	}
	return indent.Text
}

func (f *Formatter) cellAlign(cell CellInfo, header bool) CellAlign {
	if header && cell.Type == CellContent {
		return AlignCenter
	}
	return cell.Align
}

func (f *Formatter) formatDelimitedRow(row []CellInfo, widths []int, indent string, header, borderless bool) string {
	var (
		b         strings.Builder
		delimiter = delimiterChar(row[0].Delimiter)
		fillSlots = separatorFillsPadding(row[0].Delimiter, f.config.Markdown.OneSpacePadding)
		last      = len(row) - 1
	)
	b.WriteString(indent)
	if !borderless {
		b.WriteByte(delimiter)
	}
	for c := 1; c <= last; c++ {
		var (
			cell      = row[c]
			width     = widths[c]
			leftSlot  = !(borderless && c == 1)
			rightSlot = !(borderless && c == last)
		)
		switch {
		case cell.Type.IsSeparator():
			run := width + cell.Padding
			slot := " "
			if fillSlots {
				if leftSlot {
					run++
				}
				if rightSlot {
					run++
				}
				slot = ""
			}
			if leftSlot {
				b.WriteString(slot)
			}
			b.WriteString(separatorRun(cell.Type, run))
			if rightSlot {
				b.WriteString(slot)
			}

		case cell.Type.IsTextilePrefix():
			b.WriteString(textilePrefix(cell.Type))
			if width > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(padText(cell.Text, width-cell.Diff, f.cellAlign(cell, header)))
			if rightSlot {
				b.WriteByte(' ')
			}

		default:
			if leftSlot && width > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.Repeat(" ", cell.Padding))
			b.WriteString(padText(cell.Text, width-cell.Diff, f.cellAlign(cell, header)))
			if rightSlot {
				b.WriteByte(' ')
			}
		}
		if rightSlot {
			b.WriteByte(delimiter)
		}
	}
	return b.String()
}

// formatSpaceRow formats a row of a simple table
// with two spaces between the columns.
func (f *Formatter) formatSpaceRow(row []CellInfo, widths []int, indent string, header bool) string {
	var b strings.Builder
	b.WriteString(indent)
	for c := 1; c < len(row); c++ {
		if c > 1 {
			b.WriteString("  ")
		}
		cell := row[c]
		width := widths[c] + cell.Padding
		if cell.Type.IsSeparator() {
			b.WriteString(separatorRun(cell.Type, width))
		} else {
			b.WriteString(padText(cell.Text, width-cell.Diff, f.cellAlign(cell, header)))
		}
	}
	return b.String()
}

func delimiterChar(delimiter DelimiterType) byte {
	if delimiter == DelimiterPlus {
		return '+'
	}
	return '|'
}

// separatorRun returns a run of n separator characters
// with the colons of Markdown alignment separators.
func separatorRun(cellType CellType, n int) string {
	switch cellType {
	case CellEqualSeparator:
		return strings.Repeat("=", n)
	case CellMarkdownLeftSeparator:
		return ":" + strings.Repeat("-", max(n-1, 1))
	case CellMarkdownRightSeparator:
		return strings.Repeat("-", max(n-1, 1)) + ":"
	case CellMarkdownCenterSeparator:
		return ":" + strings.Repeat("-", max(n-2, 1)) + ":"
	}
	return strings.Repeat("-", n)
}
