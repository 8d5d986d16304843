package rtfconv

import "strings"

// PlainConverter renders characters verbatim and ignores font styles.
type PlainConverter struct {
	b      strings.Builder
	styles StyleSet
}

func (c *PlainConverter) converter() {}

// Target returns TargetPlain.
func (c *PlainConverter) Target() Target { return TargetPlain }

// Character appends r unchanged.
func (c *PlainConverter) Character(r rune) {
	c.b.WriteRune(r)
}

// FontToggle updates the style state only; plain text has no styling.
func (c *PlainConverter) FontToggle(s FontStyle) {
	c.styles.Toggle(s)
}

// Paragraph appends a single line break.
func (c *PlainConverter) Paragraph() {
	c.b.WriteByte('\n')
}

// Finalize returns the text accumulated so far.
func (c *PlainConverter) Finalize() Result {
	return Result{Target: TargetPlain, Text: c.b.String()}
}
