// Package palette holds the ANSI color palettes behind the built-in themes.
package palette

import "strconv"

// SGR attribute sequences.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette is a set of foreground color sequences, one per semantic style.
type Palette struct {
	Text      string
	Strong    string
	Emphasis  string
	Underline string
}

func fg(n int) string {
	return "\x1b[38;5;" + strconv.Itoa(n) + "m"
}

var (
	PaletteDefault = Palette{
		Text:      "",
		Strong:    fg(81),
		Emphasis:  fg(180),
		Underline: fg(114),
	}
	PaletteGruvbox = Palette{
		Text:      fg(223),
		Strong:    fg(214),
		Emphasis:  fg(175),
		Underline: fg(142),
	}
	PaletteDracula = Palette{
		Text:      fg(231),
		Strong:    fg(212),
		Emphasis:  fg(228),
		Underline: fg(117),
	}
	PaletteNord = Palette{
		Text:      fg(253),
		Strong:    fg(110),
		Emphasis:  fg(152),
		Underline: fg(108),
	}
	PaletteSolarizedDark = Palette{
		Text:      fg(246),
		Strong:    fg(136),
		Emphasis:  fg(37),
		Underline: fg(64),
	}
	PaletteTokyoNight = Palette{
		Text:      fg(189),
		Strong:    fg(111),
		Emphasis:  fg(141),
		Underline: fg(115),
	}
)
