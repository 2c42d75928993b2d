package texttable

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

var defaultWidthCounter = NewWidthCounter(nil)

// WidthCounter computes the display width of strings
// where East Asian wide and fullwidth characters count as 2 columns.
//
// Ambiguous width characters count as 1 column independent
// of the locale of the process, so formatting results are reproducible.
// Characters that a terminal or editor font renders wider than
// the Unicode tables say can be forced to 2 columns
// with explicitFullwidthChars.
type WidthCounter struct {
	cond      *runewidth.Condition
	fullwidth map[rune]struct{}
}

// NewWidthCounter returns a WidthCounter that additionally counts
// every rune of explicitFullwidthChars as 2 columns wide.
func NewWidthCounter(explicitFullwidthChars []string) *WidthCounter {
	w := &WidthCounter{
		cond: &runewidth.Condition{
			EastAsianWidth:     false,
			StrictEmojiNeutral: true,
		},
	}
	for _, chars := range explicitFullwidthChars {
		for _, r := range chars {
			if w.fullwidth == nil {
				w.fullwidth = make(map[rune]struct{})
			}
			w.fullwidth[r] = struct{}{}
		}
	}
	return w
}

// StringWidth returns the display width of str.
// A nil WidthCounter uses the default settings.
func (w *WidthCounter) StringWidth(str string) int {
	if w == nil {
		w = defaultWidthCounter
	}
	width := w.cond.StringWidth(str)
	if len(w.fullwidth) == 0 {
		return width
	}
	for _, r := range str {
		if _, ok := w.fullwidth[r]; !ok {
			continue
		}
		if rw := w.cond.RuneWidth(r); rw < 2 {
			width += 2 - rw
		}
	}
	return width
}

// padText pads text with spaces to runeCount runes
// according to align. AlignNone pads like AlignLeft.
// Text that is already longer is returned unchanged.
func padText(text string, runeCount int, align CellAlign) string {
	padTotal := runeCount - utf8.RuneCountInString(text)
	if padTotal <= 0 {
		return text
	}
	var padLeft, padRight int
	switch align {
	case AlignRight:
		padLeft = padTotal
	case AlignCenter:
		padLeft = padTotal / 2
		padRight = (padTotal + 1) / 2
	default:
		padRight = padTotal
	}
	b := make([]byte, 0, len(text)+padTotal)
	for i := 0; i < padLeft; i++ {
		b = append(b, ' ')
	}
	b = append(b, text...)
	for i := 0; i < padRight; i++ {
		b = append(b, ' ')
	}
	return string(b)
}
