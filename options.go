package texttable

import "strings"

// FormatType selects the table grammar used for
// range detection, line splitting and cell classification.
type FormatType int

const (
	// FormatNormal covers pipe and plus delimited tables
	// including Markdown, Textile and grid tables.
	FormatNormal FormatType = iota
	// FormatSimple covers whitespace aligned tables
	// bounded by lines of dashes or equal signs.
	FormatSimple
)

func (t FormatType) String() string {
	switch t {
	case FormatNormal:
		return "Normal"
	case FormatSimple:
		return "Simple"
	}
	return "FormatType(invalid)"
}

// LineFlag is a bit set describing the table related
// properties of a single line of text.
type LineFlag int

const (
	// LineHasPipe is set if the line contains a '|'.
	LineHasPipe LineFlag = 1 << iota
	// LineGridSeparator is set if the line consists only of
	// '-', '=' and '+' with at least one '+', like "+---+===+".
	LineGridSeparator
	// LineSimpleSeparator is set if the line consists only of
	// '-' and spaces or only of '=' and spaces, like "---  ----".
	LineSimpleSeparator
	// LineNotEmpty is set if the line has non whitespace characters.
	LineNotEmpty
)

// Has returns if any bit of flag is set.
// Combine flags with | to test for any of them.
func (f LineFlag) Has(flag LineFlag) bool {
	return f&flag != 0
}

func (f LineFlag) String() string {
	var b strings.Builder
	for _, x := range []struct {
		flag LineFlag
		name string
	}{
		{LineHasPipe, "HasPipe"},
		{LineGridSeparator, "GridSeparator"},
		{LineSimpleSeparator, "SimpleSeparator"},
		{LineNotEmpty, "NotEmpty"},
	} {
		if !f.Has(x.flag) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString(x.name)
	}
	if b.Len() == 0 {
		return "no LineFlag"
	}
	return b.String()
}

// tableLineFlags returns the flags of which at least one
// has to be set for a line to belong to a table of formatType.
func tableLineFlags(formatType FormatType) LineFlag {
	if formatType == FormatSimple {
		return LineNotEmpty
	}
	return LineHasPipe | LineGridSeparator
}
