// Package banner formats the one-line CLI banner shown at startup.
package banner

import (
	"fmt"
	"strings"

	"termnote/pkg/styles"
	"termnote/pkg/termtext"
)

// DefaultColumns is assumed when Options.Columns is zero.
const DefaultColumns = 120

// Info is the content of the banner.
type Info struct {
	Title   string // e.g. "🐵 termnote"
	Version string
	Commit  string // empty renders as "unknown"
	Tagline string
}

// Options controls banner layout.
type Options struct {
	Columns int
	Rich    bool
}

// FormatLine renders the banner on one line when it fits in the columns,
// otherwise on two lines with the tagline indented past the title's leading
// icon.
func FormatLine(info Info, opts Options) string {
	columns := opts.Columns
	if columns == 0 {
		columns = DefaultColumns
	}
	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}

	heading, version, muted, tagline := plain, plain, plain, plain
	if opts.Rich {
		heading = render(styles.BannerHeadingStyle.Render)
		version = render(styles.BannerInfoStyle.Render)
		muted = render(styles.BannerMutedStyle.Render)
		tagline = render(styles.BannerTaglineStyle.Render)
	}

	head := fmt.Sprintf("%s %s %s", heading(info.Title), version(info.Version), muted("("+commit+")"))
	if info.Tagline == "" {
		return head
	}

	full := fmt.Sprintf("%s %s (%s) — %s", info.Title, info.Version, commit, info.Tagline)
	if termtext.VisibleWidth(full) <= columns {
		return head + " " + muted("—") + " " + tagline(info.Tagline)
	}
	indent := strings.Repeat(" ", termtext.VisibleWidth(iconPrefix(info.Title)))
	return head + "\n" + indent + tagline(info.Tagline)
}

func plain(s string) string { return s }

func render(fn func(...string) string) func(string) string {
	return func(s string) string { return fn(s) }
}

// iconPrefix returns the first word of title and its trailing space when the
// title has more than one word, otherwise "".
func iconPrefix(title string) string {
	if i := strings.IndexByte(title, ' '); i > 0 {
		return title[:i+1]
	}
	return ""
}

// ShouldEmit reports whether the banner belongs on stdout for this
// invocation: only on a terminal, and never for machine-readable or version
// output.
func ShouldEmit(argv []string, isTTY bool) bool {
	if !isTTY {
		return false
	}
	for _, arg := range argv {
		switch {
		case arg == "--json", strings.HasPrefix(arg, "--json="):
			return false
		case arg == "--version", arg == "-V", arg == "-v":
			return false
		}
	}
	return true
}
