package banner

import (
	"strings"

	"termnote/pkg/styles"
	"termnote/pkg/termtext"
)

const (
	artFill  = '█'
	artShade = '░'
)

// artFont draws each letter on a 5x5 grid; '#' is filled.
var artFont = map[rune][5]string{
	'T': {"#####", "..#..", "..#..", "..#..", "..#.."},
	'E': {"#####", "#....", "####.", "#....", "#####"},
	'R': {"####.", "#...#", "####.", "#..#.", "#...#"},
	'M': {"#...#", "##.##", "#.#.#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", ".###."},
}

const artWord = "TERMNOTE"

// artCaption is centred under the block letters.
const artCaption = "🐵 对齐 无所不能 🐵"

// FormatArt renders the block-letter banner with a caption. Rich mode
// colours filled and shaded cells.
func FormatArt(rich bool) string {
	rows := make([]string, 0, 5)
	for row := 0; row < 5; row++ {
		var b strings.Builder
		for i, letter := range artWord {
			if i > 0 {
				b.WriteRune(artShade)
			}
			for _, cell := range artFont[letter][row] {
				if cell == '#' {
					b.WriteRune(artFill)
				} else {
					b.WriteRune(artShade)
				}
			}
		}
		rows = append(rows, b.String())
	}

	width := termtext.VisibleWidth(rows[0])
	indent := strings.Repeat(" ", max(0, (width-termtext.VisibleWidth(artCaption))/2))
	if !rich {
		return strings.Join(rows, "\n") + "\n" + indent + artCaption
	}

	for i, row := range rows {
		rows[i] = colourRuns(row)
	}
	return strings.Join(rows, "\n") + "\n" + indent + styles.BannerInfoStyle.Render(artCaption)
}

// colourRuns styles each run of identical cells with one escape pair.
func colourRuns(row string) string {
	var b strings.Builder
	runes := []rune(row)
	for start := 0; start < len(runes); {
		end := start
		for end < len(runes) && runes[end] == runes[start] {
			end++
		}
		run := string(runes[start:end])
		if runes[start] == artFill {
			b.WriteString(styles.BannerArtFillStyle.Render(run))
		} else {
			b.WriteString(styles.BannerArtShadeStyle.Render(run))
		}
		start = end
	}
	return b.String()
}
