package termtext

import "sort"

type runeRange struct {
	lo, hi rune
}

// wideRanges lists the blocks rendered in two columns. Sorted, non-overlapping.
var wideRanges = []runeRange{
	{0x3000, 0x303F},   // CJK symbols and punctuation
	{0x3040, 0x30FF},   // Hiragana, Katakana
	{0x3400, 0x4DBF},   // CJK extension A
	{0x4E00, 0x9FFF},   // CJK unified ideographs
	{0xAC00, 0xD7AF},   // Hangul syllables
	{0xFF00, 0xFF60},   // fullwidth ASCII and punctuation
	{0xFFE0, 0xFFE6},   // fullwidth signs
	{0x20000, 0x2A6DF}, // CJK extension B
	{0x2A700, 0x2EBEF}, // CJK extensions C-F
	{0x30000, 0x3134F}, // CJK extension G
}

// cjkPunctRanges are ambiguous-width in Unicode but typeset full width in
// Chinese text.
var cjkPunctRanges = []runeRange{
	{0x2014, 0x2015}, // em dash, horizontal bar
	{0x2018, 0x2019}, // single quotation marks
	{0x201C, 0x201D}, // double quotation marks
	{0x2026, 0x2026}, // horizontal ellipsis
}

func inRanges(table []runeRange, r rune) bool {
	i := sort.Search(len(table), func(i int) bool { return table[i].hi >= r })
	return i < len(table) && table[i].lo <= r
}

// IsWide reports whether r occupies two terminal columns.
//
// This is a practical subset of East Asian Width covering CJK ideographs,
// Kana, Hangul, fullwidth forms and common CJK punctuation. Use NewEastAsian
// for the full Unicode property.
func IsWide(r rune) bool {
	return inRanges(wideRanges, r) || inRanges(cjkPunctRanges, r)
}

// RuneWidth returns 2 for wide runes and 1 otherwise.
func RuneWidth(r rune) int {
	if IsWide(r) {
		return 2
	}
	return 1
}
