// Package styles provides the colour theme and box glyphs used by notes and
// the banner.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors
var (
	ColorAccent       = lipgloss.Color("141")
	ColorAccentBright = lipgloss.Color("219")
	ColorAccentDim    = lipgloss.Color("98")
	ColorInfo         = lipgloss.Color("117")
	ColorTextMuted    = lipgloss.Color("245")
	ColorBorderMuted  = lipgloss.Color("244")
)

// Note styles
var (
	// NoteBorderStyle colours the box frame in rich mode
	NoteBorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorderMuted)

	// NoteTitleStyle colours the title embedded in the top border
	NoteTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)

// Banner styles
var (
	BannerHeadingStyle = lipgloss.NewStyle().
				Foreground(ColorAccentBright).
				Bold(true)

	BannerInfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	BannerMutedStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	BannerTaglineStyle = lipgloss.NewStyle().
				Foreground(ColorAccentDim)

	BannerArtFillStyle = lipgloss.NewStyle().
				Foreground(ColorAccentBright)

	BannerArtShadeStyle = lipgloss.NewStyle().
				Foreground(ColorAccentDim)
)

// Box defines the glyphs used to draw a note frame. Each glyph must be a
// single narrow code point so the frame width is predictable.
type Box struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Horizontal, Vertical                       string
}

// SharpBox uses square corners. It is the default note frame.
var SharpBox = Box{
	TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	Horizontal: "─", Vertical: "│",
}

// RoundedBox uses rounded corners.
var RoundedBox = Box{
	TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
	Horizontal: "─", Vertical: "│",
}

// IsZero reports whether no glyphs are set.
func (b Box) IsZero() bool {
	return b == Box{}
}

// BoxByName maps a config value to a glyph set. Unknown names fall back to
// SharpBox and report false.
func BoxByName(name string) (Box, bool) {
	switch name {
	case "", "sharp":
		return SharpBox, true
	case "rounded":
		return RoundedBox, true
	default:
		return SharpBox, false
	}
}
