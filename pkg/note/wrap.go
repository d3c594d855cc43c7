package note

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"termnote/pkg/termtext"
)

// MinLineBudget is the smallest column budget a wrapped line gets, however
// much of maxWidth the indent and bullet consume.
const MinLineBudget = 10

// WrapLine wraps one logical line to maxWidth columns using the default
// measurer.
func WrapLine(line string, maxWidth int) []string {
	return WrapLineWith(termtext.CJK, line, maxWidth)
}

// WrapLineWith wraps one logical line to maxWidth columns.
//
// Leading indentation and a "-", "*" or "•" bullet are kept on the first
// physical line; continuation lines repeat the indentation and replace the
// bullet with spaces of the same width. Blank lines are returned unchanged.
func WrapLineWith(m termtext.Measurer, line string, maxWidth int) []string {
	if strings.TrimSpace(line) == "" {
		return []string{line}
	}

	indent, bullet, content := splitPrefix(line)
	firstPrefix := indent + bullet
	nextPrefix := indent
	if bullet != "" {
		nextPrefix += strings.Repeat(" ", m.Width(bullet))
	}

	w := &lineWriter{
		m:          m,
		prefix:     firstPrefix,
		available:  max(MinLineBudget, maxWidth-m.Width(firstPrefix)),
		nextPrefix: nextPrefix,
		nextWidth:  max(MinLineBudget, maxWidth-m.Width(nextPrefix)),
	}

	words := strings.Fields(content)
	for _, word := range words {
		if w.current == "" {
			w.startWith(word)
			continue
		}
		candidate := w.current + " " + word
		if m.Width(candidate) <= w.available {
			w.current = candidate
			continue
		}
		w.emit(w.current)
		w.current = ""
		w.startWith(word)
	}

	if w.current != "" || len(words) == 0 {
		w.emit(w.current)
	}
	return w.lines
}

type lineWriter struct {
	m          termtext.Measurer
	lines      []string
	current    string
	prefix     string
	available  int
	nextPrefix string
	nextWidth  int
}

// emit appends a physical line and switches to the continuation prefix.
func (w *lineWriter) emit(text string) {
	w.lines = append(w.lines, w.prefix+text)
	w.prefix = w.nextPrefix
	w.available = w.nextWidth
}

// startWith begins a new physical line with word, hard-splitting it when it
// cannot fit on a line of its own. Every piece of a split word, the last one
// included, becomes its own line.
func (w *lineWriter) startWith(word string) {
	if w.m.Width(word) <= w.available {
		w.current = word
		return
	}
	rest := word
	for rest != "" {
		var part string
		part, rest = cutToWidth(w.m, rest, w.available)
		w.emit(part)
	}
}

// splitPrefix separates leading whitespace and an optional bullet marker with
// its trailing whitespace from the rest of the line.
func splitPrefix(line string) (indent, bullet, content string) {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)
	indent = line[:len(line)-len(rest)]

	marker, size := utf8.DecodeRuneInString(rest)
	if marker == '-' || marker == '*' || marker == '•' {
		after := rest[size:]
		body := strings.TrimLeftFunc(after, unicode.IsSpace)
		if len(body) < len(after) {
			return indent, rest[:len(rest)-len(body)], body
		}
	}
	return indent, "", rest
}

// cutToWidth returns the longest head of s that fits in width columns and the
// remaining tail. Escape sequences count zero columns and are never cut; they
// stay with the text that precedes them. The head always holds at least one
// visible code point, so a single code point wider than width is returned on
// its own.
func cutToWidth(m termtext.Measurer, s string, width int) (head, tail string) {
	spans := termtext.EscapeSpans(s)
	used := 0
	i := 0
	for i < len(s) {
		if len(spans) > 0 && spans[0][0] == i {
			i = spans[0][1]
			spans = spans[1:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		rw := m.RuneWidth(r)
		if used > 0 && used+rw > width {
			break
		}
		used += rw
		i += size
	}
	return s[:i], s[i:]
}
