package termtext

import "github.com/charmbracelet/x/ansi"

// Link wraps text in an OSC 8 hyperlink. Terminals without OSC 8 support show
// the text alone. An empty url returns text unchanged.
func Link(url, text string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}
