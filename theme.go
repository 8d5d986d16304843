package rtfconv

import (
	"sort"
	"strings"

	"pkt.systems/rtfconv/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the styles used by the ANSI converter. Active font styles
// compose in Bold, Italic, Underline order on top of Text.
type Styles struct {
	Text      Style
	Bold      Style
	Italic    Style
	Underline Style
}

// Theme provides named styles for ANSI rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:      style(p.Text),
		Bold:      style(palette.Bold, p.Strong),
		Italic:    style(palette.Italic, p.Emphasis),
		Underline: style(palette.Underline, p.Underline),
	}
}

// prefix returns the combined prefix for an active style set.
func (s Styles) prefix(set StyleSet) string {
	var b strings.Builder
	b.WriteString(s.Text.Prefix)
	if set.Has(Bold) {
		b.WriteString(s.Bold.Prefix)
	}
	if set.Has(Italic) {
		b.WriteString(s.Italic.Prefix)
	}
	if set.Has(Underline) {
		b.WriteString(s.Underline.Prefix)
	}
	return b.String()
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"tokyo-night":    theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"mono":           theme{name: "mono", styles: monoStyles},
}

var monoStyles = Styles{
	Bold:      style(palette.Bold),
	Italic:    style(palette.Italic),
	Underline: style(palette.Underline),
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
