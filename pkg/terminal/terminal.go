// Package terminal inspects the output terminal: its width and whether
// colour should be used.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultColumns is used when the width cannot be detected.
const DefaultColumns = 80

// Color modes accepted by ResolveColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Columns returns the width of f when it is a terminal, then falls back to
// the COLUMNS environment variable and finally DefaultColumns.
func Columns(f *os.File) int {
	if f != nil {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && cols > 0 {
		return cols
	}
	return DefaultColumns
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// ResolveColor decides whether to emit colour. In auto mode colour is used
// only on a terminal and only when NO_COLOR is unset.
func ResolveColor(mode string, isTTY bool, getenv func(string) string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if getenv != nil && getenv("NO_COLOR") != "" {
			return false
		}
		return isTTY
	}
}
