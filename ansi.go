package rtfconv

import (
	"strings"

	"pkt.systems/rtfconv/internal/palette"
)

// ANSIConverter renders theme-styled terminal text. Unlike the TeX target,
// every active style contributes to the prefix.
type ANSIConverter struct {
	b      strings.Builder
	styles Styles
	active StyleSet
	open   string
}

// NewANSIConverter returns an ANSI converter using theme, or the default
// theme when theme is nil.
func NewANSIConverter(theme Theme) *ANSIConverter {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &ANSIConverter{styles: theme.Styles()}
}

func (c *ANSIConverter) converter() {}

// Target returns TargetANSI.
func (c *ANSIConverter) Target() Target { return TargetANSI }

// Character appends r, switching the style prefix when it changed.
func (c *ANSIConverter) Character(r rune) {
	if isControlRune(r) {
		return
	}
	if prefix := c.styles.prefix(c.active); prefix != c.open {
		c.closeStyle()
		c.b.WriteString(prefix)
		c.open = prefix
	}
	c.b.WriteRune(r)
}

// FontToggle flips s in the active style set.
func (c *ANSIConverter) FontToggle(s FontStyle) {
	c.active.Toggle(s)
}

// Paragraph resets styling and ends the line.
func (c *ANSIConverter) Paragraph() {
	c.closeStyle()
	c.b.WriteByte('\n')
}

// Finalize returns the text so far with any open style reset.
func (c *ANSIConverter) Finalize() Result {
	text := c.b.String()
	if c.open != "" {
		text += palette.Reset
	}
	return Result{Target: TargetANSI, Text: text}
}

func (c *ANSIConverter) closeStyle() {
	if c.open != "" {
		c.b.WriteString(palette.Reset)
		c.open = ""
	}
}
