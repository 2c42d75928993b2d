package texttable

import (
	"fmt"
	"slices"
	"strings"
)

// Edit replaces the lines of Range with Text.
// Text holds the new lines joined by "\n".
type Edit struct {
	Range Range  `json:"range"`
	Text  string `json:"text"`
}

// Lines returns the replacement lines of the edit.
func (e Edit) Lines() []string {
	return strings.Split(e.Text, "\n")
}

// FormatCurrent formats the table containing line.
// FormatNormal tables are tried before FormatSimple tables.
// The result is false if there is no valid table at line.
func FormatCurrent(doc Document, line int, config *Config) (Edit, bool) {
	formatter := NewFormatter(config)
	for _, formatType := range []FormatType{FormatNormal, FormatSimple} {
		r := DetectRange(doc, line, formatType)
		if r.IsEmpty() {
			continue
		}
		text := formatter.FormatTable(NewTableInfo(doc, r, formatType, formatter.config))
		if text == "" {
			continue
		}
		return Edit{Range: r, Text: text}, true
	}
	return Edit{}, false
}

// FormatAll formats all tables of doc.
// The returned edits do not overlap and are ordered by their start line.
// Tables that are already formatted produce no edit.
func FormatAll(doc Document, config *Config) []Edit {
	formatter := NewFormatter(config)
	var edits []Edit
	for _, table := range DetectAllRanges(doc) {
		text := formatter.FormatTable(NewTableInfo(doc, table.Range, table.FormatType, formatter.config))
		if text == "" || text == RangeText(doc, table.Range) {
			continue
		}
		edits = append(edits, Edit{Range: table.Range, Text: text})
	}
	return edits
}

// ApplyEdits returns a copy of lines with edits applied.
// The edits may be passed in any order but must not overlap
// and must be within lines.
func ApplyEdits(lines []string, edits []Edit) ([]string, error) {
	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, func(a, b Edit) int {
		return a.Range.Start - b.Range.Start
	})
	for i, edit := range sorted {
		if edit.Range.IsEmpty() || edit.Range.Start < 0 || edit.Range.End >= len(lines) {
			return nil, fmt.Errorf("edit range %s out of bounds of %d lines", edit.Range, len(lines))
		}
		if i > 0 && sorted[i-1].Range.Overlaps(edit.Range) {
			return nil, fmt.Errorf("edit range %s overlaps %s", edit.Range, sorted[i-1].Range)
		}
	}

	result := make([]string, 0, len(lines))
	next := 0
	for _, edit := range sorted {
		result = append(result, lines[next:edit.Range.Start]...)
		result = append(result, edit.Lines()...)
		next = edit.Range.End + 1
	}
	return append(result, lines[next:]...), nil
}
