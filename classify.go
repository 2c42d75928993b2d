package texttable

import (
	"regexp"
	"strings"
)

var (
	markdownLeftSeparator   = regexp.MustCompile(`^:-+$`)
	markdownRightSeparator  = regexp.MustCompile(`^-+:$`)
	markdownCenterSeparator = regexp.MustCompile(`^:-+:$`)
)

// textilePrefixes in match order with the type and alignment they imply.
var textilePrefixes = []struct {
	prefix   string
	cellType CellType
	align    CellAlign
}{
	{"_.", CellTextileHeaderPrefix, AlignNone},
	{"<.", CellTextileLeftPrefix, AlignLeft},
	{">.", CellTextileRightPrefix, AlignRight},
	{"=.", CellTextileCenterPrefix, AlignCenter},
}

// ClassifyCell returns the type and alignment of the trimmed cell text
// together with the text to keep for the cell.
//
// Rules are tried in order, the first match wins:
//  1. empty text is CellBlank
//  2. only '-' is CellMinusSeparator, only '=' is CellEqualSeparator
//  3. Markdown ":--", "--:", ":-:" separators (FormatNormal only)
//  4. Textile "_.", "<.", ">.", "=." prefixes (FormatNormal only),
//     the prefix and following whitespace are removed from the returned text
//  5. everything else is CellContent
func ClassifyCell(trimmed string, formatType FormatType) (cellType CellType, align CellAlign, text string) {
	switch {
	case trimmed == "":
		return CellBlank, AlignNone, ""
	case consistsOf(trimmed, '-'):
		return CellMinusSeparator, AlignNone, trimmed
	case consistsOf(trimmed, '='):
		return CellEqualSeparator, AlignNone, trimmed
	}

	if formatType == FormatSimple {
		return CellContent, AlignNone, trimmed
	}

	switch {
	case markdownLeftSeparator.MatchString(trimmed):
		return CellMarkdownLeftSeparator, AlignLeft, trimmed
	case markdownRightSeparator.MatchString(trimmed):
		return CellMarkdownRightSeparator, AlignRight, trimmed
	case markdownCenterSeparator.MatchString(trimmed):
		return CellMarkdownCenterSeparator, AlignCenter, trimmed
	}

	for _, p := range textilePrefixes {
		if strings.HasPrefix(trimmed, p.prefix) {
			return p.cellType, p.align, strings.TrimSpace(trimmed[len(p.prefix):])
		}
	}

	return CellContent, AlignNone, trimmed
}

func consistsOf(str string, char rune) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r != char {
			return false
		}
	}
	return true
}

// textilePrefix returns the marker written in front
// of a cell of the passed Textile prefix type.
func textilePrefix(cellType CellType) string {
	for _, p := range textilePrefixes {
		if p.cellType == cellType {
			return p.prefix
		}
	}
	return ""
}
