package termtext

import "regexp"

// escapePattern matches the two escape families that never occupy columns:
// SGR colour codes (ESC [ params m) and OSC 8 hyperlink openers/closers
// terminated by ST (ESC \) or BEL.
var escapePattern = regexp.MustCompile(
	`\x1b\]8;[^;\x07\x1b]*;[^\x07\x1b]*(?:\x1b\\|\x07)` +
		`|\x1b\[[0-9;]*m`,
)

// StripANSI removes SGR and OSC 8 sequences from s. Other escape sequences are
// left in place and count as ordinary narrow characters.
//
// Removal repeats until nothing matches, so a sequence split around another
// one ("\x1b[\x1b[0m1m") cannot survive and the result is always stable.
func StripANSI(s string) string {
	for s != "" {
		out := escapePattern.ReplaceAllString(s, "")
		if len(out) == len(s) {
			return out
		}
		s = out
	}
	return s
}

// EscapeSpans returns the [start, end) byte offsets of the bytes StripANSI
// removes from s, in order. A sequence rebuilt around a nested one is a
// single span, and adjacent sequences merge.
func EscapeSpans(s string) [][]int {
	matches := escapePattern.FindAllStringIndex(s, -1)
	if matches == nil {
		return nil
	}

	removed := make([]bool, len(s))
	for matches != nil {
		for _, m := range matches {
			for i := m[0]; i < m[1]; i++ {
				removed[i] = true
			}
		}
		// offsets maps each byte of the remaining text back into s.
		var rest []byte
		var offsets []int
		for i := 0; i < len(s); i++ {
			if !removed[i] {
				rest = append(rest, s[i])
				offsets = append(offsets, i)
			}
		}
		matches = escapePattern.FindAllIndex(rest, -1)
		for i, m := range matches {
			matches[i] = []int{offsets[m[0]], offsets[m[1]-1] + 1}
		}
	}

	var spans [][]int
	for i := 0; i < len(s); i++ {
		if !removed[i] {
			continue
		}
		start := i
		for i < len(s) && removed[i] {
			i++
		}
		spans = append(spans, []int{start, i})
	}
	return spans
}
