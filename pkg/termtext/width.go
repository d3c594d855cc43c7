// Package termtext measures how many terminal columns a string occupies.
//
// Measurement ignores SGR colour codes and OSC 8 hyperlinks and counts every
// remaining code point as one or two columns. Grapheme clusters are not
// segmented: combining marks and emoji modifiers count as separate narrow
// code points.
package termtext

import (
	runewidth "github.com/mattn/go-runewidth"
)

// VisibleWidth returns the number of columns s occupies once escape sequences
// are removed, using the default CJK classifier.
func VisibleWidth(s string) int {
	return CJK.Width(s)
}

// Measurer computes column widths. Implementations must be safe for
// concurrent use.
type Measurer interface {
	RuneWidth(r rune) int
	Width(s string) int
}

// TableMeasurer classifies code points with the built-in range table.
type TableMeasurer struct {
	// NarrowPunct disables the CJK punctuation allowlist.
	NarrowPunct bool
}

var (
	// CJK is the default measurer, tuned for Chinese-language output.
	CJK Measurer = TableMeasurer{}
	// CJKNarrowPunct keeps CJK blocks wide but treats dashes, quotes and the
	// ellipsis as narrow.
	CJKNarrowPunct Measurer = TableMeasurer{NarrowPunct: true}
)

func (m TableMeasurer) RuneWidth(r rune) int {
	if inRanges(wideRanges, r) {
		return 2
	}
	if !m.NarrowPunct && inRanges(cjkPunctRanges, r) {
		return 2
	}
	return 1
}

func (m TableMeasurer) Width(s string) int {
	return sumWidths(m, s)
}

// EastAsianMeasurer uses the full Unicode East Asian Width property.
type EastAsianMeasurer struct {
	cond *runewidth.Condition
}

// NewEastAsian returns a measurer backed by go-runewidth. When ambiguousWide
// is set, ambiguous-width characters count as two columns.
func NewEastAsian(ambiguousWide bool) *EastAsianMeasurer {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = ambiguousWide
	return &EastAsianMeasurer{cond: cond}
}

// RuneWidth never returns 0: zero-width and control runes count as one column
// so that the result stays within the 1-or-2 contract.
func (m *EastAsianMeasurer) RuneWidth(r rune) int {
	if m.cond.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

func (m *EastAsianMeasurer) Width(s string) int {
	return sumWidths(m, s)
}

func sumWidths(m Measurer, s string) int {
	width := 0
	for _, r := range StripANSI(s) {
		width += m.RuneWidth(r)
	}
	return width
}
