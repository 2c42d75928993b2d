package texttable

import (
	"slices"

	"github.com/domonda/go-texttable/logging"
)

// DetectRange returns the range of the table of formatType
// containing line, or an empty range if there is no such table.
func DetectRange(doc Document, line int, formatType FormatType) Range {
	return DetectRangeWithin(doc, line, formatType, 0, doc.LineCount())
}

// DetectRangeWithin works like DetectRange but restricts the table
// to the lines [minLine, minLine+count).
//
// FormatNormal tables consist of consecutive lines containing a '|'
// or grid separator lines like "+---+---+".
//
// FormatSimple tables are blocks of non empty lines where the first
// and the last line are simple separator lines like "----  ----"
// and at least one line in between is not a separator.
// Requiring the separators at both ends prevents treating
// arbitrary paragraphs of text as tables.
func DetectRangeWithin(doc Document, line int, formatType FormatType, minLine, count int) Range {
	minLine = max(minLine, 0)
	maxLine := min(minLine+count, doc.LineCount()) - 1
	if line < minLine || line > maxLine {
		return EmptyRange(line)
	}

	flags := tableLineFlags(formatType)
	isTableLine := func(i int) bool {
		return ClassifyLine(doc.LineAt(i)).Has(flags)
	}
	if !isTableLine(line) {
		return EmptyRange(line)
	}

	start := line
	for start > minLine && isTableLine(start-1) {
		start--
	}
	end := line
	for end < maxLine && isTableLine(end+1) {
		end++
	}
	r := Range{Start: start, End: end}

	if formatType == FormatSimple && !isSimpleTableBlock(doc, r) {
		return EmptyRange(line)
	}
	return r
}

func isSimpleTableBlock(doc Document, r Range) bool {
	isSeparator := func(i int) bool {
		return ClassifyLine(doc.LineAt(i)).Has(LineSimpleSeparator)
	}
	if r.LineCount() < 3 || !isSeparator(r.Start) || !isSeparator(r.End) {
		return false
	}
	for i := r.Start + 1; i < r.End; i++ {
		if !isSeparator(i) {
			return true
		}
	}
	return false
}

// FreeInterval returns the interval [minLine, minLine+count) of lines
// between already claimed table ranges that contains line.
//
// claimed holds the start and end lines of the claimed ranges
// in ascending order: start0, end0, start1, end1, ...
// The result is false if line is within a claimed range
// or outside of the lineCount lines of the document.
func FreeInterval(line int, claimed []int, lineCount int) (minLine, count int, ok bool) {
	if line < 0 || line >= lineCount {
		return 0, 0, false
	}
	lower := 0
	for i := 0; i+1 < len(claimed); i += 2 {
		start, end := claimed[i], claimed[i+1]
		if line < start {
			return lower, start - lower, true
		}
		if line <= end {
			return 0, 0, false
		}
		lower = end + 1
	}
	return lower, lineCount - lower, true
}

// TableRange is a detected table range with the format it was detected with.
type TableRange struct {
	Range      Range      `json:"range"`
	FormatType FormatType `json:"formatType"`
}

// DetectAllRanges returns the ranges of all tables in doc
// ordered by their start line.
//
// FormatNormal tables are detected first from top to bottom,
// every detected range is claimed before the scan continues.
// Then FormatSimple tables are searched only in the intervals
// between the claimed ranges, so the results never overlap.
func DetectAllRanges(doc Document) []TableRange {
	var (
		log       = logging.Logger()
		lineCount = doc.LineCount()
		ranges    []TableRange
		claimed   []int
	)
	for line := 0; line < lineCount; {
		r := DetectRange(doc, line, FormatNormal)
		if r.IsEmpty() {
			line++
			continue
		}
		log.Debug("detected table", "range", r.String(), "format", FormatNormal.String())
		ranges = append(ranges, TableRange{Range: r, FormatType: FormatNormal})
		claimed = append(claimed, r.Start, r.End)
		line = r.End + 1
	}

	for line := 0; line < lineCount; {
		if !ClassifyLine(doc.LineAt(line)).Has(LineSimpleSeparator) {
			line++
			continue
		}
		minLine, count, ok := FreeInterval(line, claimed, lineCount)
		if !ok {
			line++
			continue
		}
		r := DetectRangeWithin(doc, line, FormatSimple, minLine, count)
		if r.IsEmpty() {
			line++
			continue
		}
		log.Debug("detected table", "range", r.String(), "format", FormatSimple.String())
		ranges = append(ranges, TableRange{Range: r, FormatType: FormatSimple})
		line = r.End + 1
	}

	slices.SortFunc(ranges, func(a, b TableRange) int {
		return a.Range.Start - b.Range.Start
	})
	return ranges
}
