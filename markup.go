package rtfconv

import "strings"

// MarkupConverter renders TeX. Specials are escaped with a backslash and
// styled characters are wrapped one at a time.
type MarkupConverter struct {
	b      strings.Builder
	styles StyleSet
}

func (c *MarkupConverter) converter() {}

// Target returns TargetMarkup.
func (c *MarkupConverter) Target() Target { return TargetMarkup }

// Character appends r, escaped and wrapped for the active styles.
func (c *MarkupConverter) Character(r rune) {
	open, end := texWrap(c.styles)
	c.b.WriteString(open)
	if isTeXSpecial(r) {
		c.b.WriteByte('\\')
	}
	c.b.WriteRune(r)
	c.b.WriteString(end)
}

// FontToggle flips s in the active style set.
func (c *MarkupConverter) FontToggle(s FontStyle) {
	c.styles.Toggle(s)
}

// Paragraph ends the paragraph with a blank line.
func (c *MarkupConverter) Paragraph() {
	c.b.WriteString("\n\n")
}

// Finalize returns the TeX accumulated so far.
func (c *MarkupConverter) Finalize() Result {
	return Result{Target: TargetMarkup, Text: c.b.String()}
}

func isTeXSpecial(r rune) bool {
	switch r {
	case '&', '%', '$', '#', '_', '{', '}':
		return true
	}
	return false
}

// texWrap picks at most one wrapping, in precedence order. Underline is only
// used when neither bold nor italic is active.
func texWrap(set StyleSet) (string, string) {
	switch {
	case set.Empty():
		return "", ""
	case set.Has(Bold) && set.Has(Italic):
		return `\textbf{\textit{`, "}}"
	case set.Has(Bold):
		return `\textbf{`, "}"
	case set.Has(Italic):
		return `\textit{`, "}"
	case set.Has(Underline):
		return `\underline{`, "}"
	}
	return "", ""
}
