// Package note wraps CLI messages to a column budget and frames them in a
// bordered box that stays aligned for CJK text and coloured input.
//
// All functions are pure and safe for concurrent use.
package note

import (
	"fmt"
	"io"
	"strings"

	"termnote/pkg/styles"
	"termnote/pkg/termtext"
)

const (
	// DefaultColumns is assumed when Options.Columns is zero.
	DefaultColumns = 80
	// MinMaxWidth is the smallest derived wrap width.
	MinMaxWidth = 40
	// columnsMargin is subtracted from the terminal width to derive MaxWidth.
	columnsMargin = 10
	// padding is the number of spaces between the frame and the text.
	padding = 1
)

// Options controls wrapping and rendering.
type Options struct {
	// Columns is the terminal width. Zero means DefaultColumns.
	Columns int
	// MaxWidth is the wrap width. Zero or negative derives it from Columns.
	MaxWidth int
	// PadLines right-pads every wrapped line to MaxWidth (WrapMessage only).
	PadLines bool
	// Style selects the frame glyphs. The zero value is styles.SharpBox.
	Style styles.Box
	// Rich colours the frame and title.
	Rich bool
	// Measurer computes widths. Nil means termtext.CJK.
	Measurer termtext.Measurer
	// TitleURL turns the title into an OSC 8 hyperlink. With an empty title
	// the URL itself is shown.
	TitleURL string
}

func (o Options) measurer() termtext.Measurer {
	if o.Measurer == nil {
		return termtext.CJK
	}
	return o.Measurer
}

func (o Options) box() styles.Box {
	if o.Style.IsZero() {
		return styles.SharpBox
	}
	return o.Style
}

// ResolveMaxWidth returns the wrap width: MaxWidth when positive, otherwise
// Columns minus a margin, never below MinMaxWidth.
func ResolveMaxWidth(opts Options) int {
	if opts.MaxWidth > 0 {
		return opts.MaxWidth
	}
	columns := opts.Columns
	if columns == 0 {
		columns = DefaultColumns
	}
	return max(MinMaxWidth, columns-columnsMargin)
}

// WrapMessage wraps every line of message and joins the result with "\n".
// Blank lines are kept as paragraph separators. With PadLines set, lines
// narrower than the wrap width are padded with spaces up to it.
func WrapMessage(message string, opts Options) string {
	maxWidth := ResolveMaxWidth(opts)
	m := opts.measurer()
	lines := wrapLines(m, message, maxWidth)
	if opts.PadLines {
		for i, line := range lines {
			lines[i] = padEnd(m, line, maxWidth)
		}
	}
	return strings.Join(lines, "\n")
}

func wrapLines(m termtext.Measurer, message string, maxWidth int) []string {
	message = strings.ReplaceAll(message, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(message, "\n") {
		lines = append(lines, WrapLineWith(m, line, maxWidth)...)
	}
	return lines
}

func padEnd(m termtext.Measurer, text string, width int) string {
	if gap := width - m.Width(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

// Format renders message inside a bordered box with an optional title in the
// top border. Every line of the result has the same visible width: the
// widest wrapped line plus padding, or the title segment if that is wider.
func Format(message, title string, opts Options) string {
	m := opts.measurer()
	box := opts.box()
	url := strings.Map(dropControl, opts.TitleURL)
	title = lineBreaks.Replace(title)
	if title == "" {
		title = url
	}
	border := func(s string) string { return s }
	if opts.Rich {
		border = func(s string) string { return styles.NoteBorderStyle.Render(s) }
		if title != "" {
			title = styles.NoteTitleStyle.Render(title)
		}
	}
	if title != "" {
		title = termtext.Link(url, title)
	}

	titleSegment := ""
	if title != "" {
		titleSegment = " " + title + " "
	}
	titleWidth := m.Width(titleSegment)

	bodyLines := wrapLines(m, message, ResolveMaxWidth(opts))
	bodyWidth := 0
	for _, line := range bodyLines {
		bodyWidth = max(bodyWidth, m.Width(line))
	}

	innerWidth := max(bodyWidth+padding*2, titleWidth)
	contentWidth := max(0, innerWidth-padding*2)
	pad := strings.Repeat(" ", padding)

	out := make([]string, 0, len(bodyLines)+2)
	out = append(out, border(box.TopLeft)+titleSegment+
		border(rule(m, box.Horizontal, innerWidth-titleWidth))+
		border(box.TopRight))
	for _, line := range bodyLines {
		out = append(out, border(box.Vertical)+pad+padEnd(m, line, contentWidth)+pad+border(box.Vertical))
	}
	out = append(out, border(box.BottomLeft)+border(rule(m, box.Horizontal, innerWidth))+border(box.BottomRight))

	return strings.Join(out, "\n")
}

// lineBreaks flattens a title onto the top border.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// dropControl removes C0 controls and DEL, which would end an OSC 8
// sequence early or break the border line.
func dropControl(r rune) rune {
	if r < 0x20 || r == 0x7f {
		return -1
	}
	return r
}

// rule fills exactly n columns with glyph. When the measurer counts glyph as
// wide, an odd remainder is filled with a space.
func rule(m termtext.Measurer, glyph string, n int) string {
	if n <= 0 {
		return ""
	}
	gw := max(1, m.Width(glyph))
	return strings.Repeat(glyph, n/gw) + strings.Repeat(" ", n%gw)
}

// Write renders a note and writes it to w followed by a newline.
func Write(w io.Writer, message, title string, opts Options) error {
	if _, err := fmt.Fprintln(w, Format(message, title, opts)); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}
