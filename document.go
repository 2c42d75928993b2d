package texttable

import (
	"fmt"
	"strings"
)

// Document provides the lines of a text buffer.
// Line indices are zero based.
type Document interface {
	LineCount() int
	LineAt(index int) string
}

// Lines is a Document implementation using a string slice
// with one element per line without line endings.
type Lines []string

var _ Document = Lines(nil)

// SplitLines splits text at "\n" and removes a trailing "\r"
// from every line.
func SplitLines(text string) Lines {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineCount returns the number of lines.
func (l Lines) LineCount() int { return len(l) }

// LineAt returns the line at index
// or an empty string if index is out of bounds.
func (l Lines) LineAt(index int) string {
	if index < 0 || index >= len(l) {
		return ""
	}
	return l[index]
}

// Range is a range of lines from Start to End including End.
// A Range with End < Start is empty.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// EmptyRange returns an empty Range located at line.
func EmptyRange(line int) Range {
	return Range{Start: line, End: line - 1}
}

// IsEmpty returns true if the range contains no lines.
func (r Range) IsEmpty() bool {
	return r.End < r.Start
}

// LineCount returns the number of lines in the range.
func (r Range) LineCount() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains returns if line is within the range.
func (r Range) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// Overlaps returns if r and other share at least one line.
func (r Range) Overlaps(other Range) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.Start <= other.End && other.Start <= r.End
}

func (r Range) String() string {
	if r.IsEmpty() {
		return fmt.Sprintf("empty@%d", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// RangeText returns the lines of r joined with "\n".
func RangeText(doc Document, r Range) string {
	var b strings.Builder
	for i := r.Start; i <= r.End; i++ {
		if i > r.Start {
			b.WriteByte('\n')
		}
		b.WriteString(doc.LineAt(i))
	}
	return b.String()
}
