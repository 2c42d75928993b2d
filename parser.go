package texttable

import (
	"regexp"
	"strconv"
	"strings"
)

// NumberParser is the interface used by the numeric column detection
// to decide if the text of a cell looks like a number.
//
// Implementations only have to answer the question "is this a number",
// the parsed value itself is never used for formatting, cells keep
// their original text.
//
// Example usage:
//
//	parser := NewStringParser()
//	parser.IsNumeric("42")       // true
//	parser.IsNumeric("-3,14")    // true (comma decimal)
//	parser.IsNumeric("1,234.50") // true (thousands grouping)
//	parser.IsNumeric("12%")      // true
//	parser.IsNumeric("Score")    // false
type NumberParser interface {
	// IsNumeric returns true if the trimmed text looks like a number.
	IsNumeric(text string) bool
}

// Ensure StringParser implements NumberParser
var _ NumberParser = new(StringParser)

// StringParser is a configurable NumberParser based on strconv
// that additionally handles comma decimal separators,
// thousands grouping and percentages.
//
// Textual special values accepted by strconv.ParseFloat like
// "Inf", "NaN" or hexadecimal floats are not treated as numbers,
// a number has to start with a digit, a sign or a decimal separator
// followed by a digit.
type StringParser struct {
	// AllowPercent accepts a trailing '%' sign.
	AllowPercent bool `json:"allowPercent"`

	// AllowThousandsGrouping accepts ',' or '.' as thousands separator
	// in groups of three digits like "1,234,567.89" or "1.234.567,89".
	AllowThousandsGrouping bool `json:"allowThousandsGrouping"`
}

// NewStringParser creates a new StringParser with sensible defaults:
// percentages and thousands grouping are accepted.
func NewStringParser() *StringParser {
	return &StringParser{
		AllowPercent:           true,
		AllowThousandsGrouping: true,
	}
}

var (
	numberStart         = regexp.MustCompile(`^[+-]?[.,]?[0-9]`)
	groupedDotDecimal   = regexp.MustCompile(`^[+-]?[0-9]{1,3}(,[0-9]{3})+(\.[0-9]+)?$`)
	groupedCommaDecimal = regexp.MustCompile(`^[+-]?[0-9]{1,3}(\.[0-9]{3})+(,[0-9]+)?$`)
)

// ParseFloat parses a string into a 64-bit floating point number with locale awareness.
// This method tries multiple strategies to handle different number formats:
//
//  1. Standard parsing using strconv.ParseFloat (handles "123.45")
//  2. If that fails, tries handling comma as decimal separator ("123,45" -> "123.45")
//  3. If thousands grouping is allowed, removes the grouping
//     ("1,234.5" -> "1234.5", "1.234,5" -> "1234.5")
//
// Example:
//
//	f, _ := parser.ParseFloat("3.14")     // 3.14 (standard)
//	f, _ := parser.ParseFloat("3,14")     // 3.14 (comma decimal)
//	f, _ := parser.ParseFloat("1.234,5")  // 1234.5 (grouped)
func (p *StringParser) ParseFloat(str string) (float64, error) {
	f, err := strconv.ParseFloat(str, 64)
	if err == nil {
		return f, nil
	}
	numDot := strings.Count(str, ".")
	numComma := strings.Count(str, ",")
	switch {
	case p.AllowThousandsGrouping && groupedDotDecimal.MatchString(str):
		f, e := strconv.ParseFloat(strings.ReplaceAll(str, ",", ""), 64)
		if e != nil {
			return 0, err // return original error
		}
		return f, nil

	case p.AllowThousandsGrouping && groupedCommaDecimal.MatchString(str):
		str = strings.ReplaceAll(str, ".", "")
		f, e := strconv.ParseFloat(strings.ReplaceAll(str, ",", "."), 64)
		if e != nil {
			return 0, err // return original error
		}
		return f, nil

	case numComma == 1 && numDot == 0:
		f, e := strconv.ParseFloat(strings.ReplaceAll(str, ",", "."), 64)
		if e != nil {
			return 0, err // return original error
		}
		return f, nil
	}
	return 0, err
}

// IsNumeric implements NumberParser.
func (p *StringParser) IsNumeric(text string) bool {
	text = strings.TrimSpace(text)
	if p.AllowPercent {
		text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
	}
	if !numberStart.MatchString(text) {
		return false
	}
	if strings.ContainsAny(text, "_xXpP") {
		// strconv accepts underscores and hex floats
		return false
	}
	_, err := p.ParseFloat(text)
	return err == nil
}
