package texttable

import (
	"strings"
	"unicode"
)

// ClassifyLine returns the LineFlag bits describing text.
// The flags are computed independently of each other,
// empty or whitespace only lines return zero.
func ClassifyLine(text string) LineFlag {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	flags := LineNotEmpty
	if strings.ContainsRune(trimmed, '|') {
		flags |= LineHasPipe
	}
	if isGridSeparatorLine(trimmed) {
		flags |= LineGridSeparator
	}
	if isSimpleSeparatorLine(trimmed) {
		flags |= LineSimpleSeparator
	}
	return flags
}

// IsTableLine returns if text can be a line
// of a table of the passed formatType.
func IsTableLine(text string, formatType FormatType) bool {
	return ClassifyLine(text).Has(tableLineFlags(formatType))
}

func isGridSeparatorLine(trimmed string) bool {
	hasPlus := false
	for _, r := range trimmed {
		switch r {
		case '+':
			hasPlus = true
		case '-', '=':
		default:
			return false
		}
	}
	return hasPlus
}

func isSimpleSeparatorLine(trimmed string) bool {
	var sep rune
	for _, r := range trimmed {
		switch r {
		case ' ', '\t':
		case '-', '=':
			if sep != 0 && sep != r {
				return false
			}
			sep = r
		default:
			return false
		}
	}
	return sep != 0
}

// SplitResult is the result of SplitLine.
type SplitResult struct {
	// Cells holds the untrimmed cell strings.
	// Cells[0] is the (possibly empty) text before the first delimiter
	// and never contains content, the last cell is never empty.
	Cells []string
	// Delimiter is the character the line was split at.
	Delimiter DelimiterType
	// HeadInserted is true if the line did not start with a delimiter
	// and an empty leading cell was synthesized.
	HeadInserted bool
	// Indent is the leading whitespace of the line.
	Indent string
}

// SplitLine splits text into cells.
//
// FormatNormal splits at '|' if the line contains one, else at '+'.
// FormatSimple splits at runs of whitespace where single or double
// quoted spans starting a cell are kept together.
func SplitLine(text string, formatType FormatType) SplitResult {
	result := SplitResult{
		Indent: text[:len(text)-len(strings.TrimLeftFunc(text, unicode.IsSpace))],
	}

	var tokens []string
	switch {
	case formatType == FormatSimple:
		result.Delimiter = DelimiterSpace
		tokens = splitFields(text)
	case strings.ContainsRune(text, '|'):
		result.Delimiter = DelimiterPipe
		tokens = strings.Split(text, "|")
	case strings.ContainsRune(text, '+'):
		result.Delimiter = DelimiterPlus
		tokens = strings.Split(text, "+")
	default:
		result.Delimiter = DelimiterNone
		tokens = []string{text}
	}

	if len(tokens) == 0 || strings.TrimSpace(tokens[0]) != "" {
		tokens = append([]string{""}, tokens...)
		result.HeadInserted = true
	}
	if n := len(tokens); n > 1 && strings.TrimSpace(tokens[n-1]) == "" {
		tokens = tokens[:n-1]
	}
	result.Cells = tokens
	return result
}

// splitFields splits text at runs of whitespace.
// Leading whitespace results in an empty first field.
// A field starting with a quote character extends
// to the matching closing quote.
func splitFields(text string) []string {
	var (
		fields []string
		field  strings.Builder
		quote  rune
		inWord bool
	)
	for i, r := range text {
		switch {
		case quote != 0:
			field.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case unicode.IsSpace(r):
			if inWord || i == 0 {
				fields = append(fields, field.String())
				field.Reset()
				inWord = false
			}
		default:
			if !inWord && (r == '"' || r == '\'') {
				quote = r
			}
			field.WriteRune(r)
			inWord = true
		}
	}
	if inWord || quote != 0 {
		fields = append(fields, field.String())
	}
	return fields
}
