package rtfconv

import (
	"slices"
	"strings"
)

// WidgetKind distinguishes character records from paragraph markers.
type WidgetKind uint8

const (
	// WidgetText is a single styled character.
	WidgetText WidgetKind = iota
	// WidgetParagraph marks a paragraph boundary.
	WidgetParagraph
)

// Widget is one record produced by WidgetConverter.
type Widget struct {
	Kind WidgetKind
	Text rune
	// Font is the style label in effect when the record was produced.
	Font string
}

func (w Widget) String() string {
	if w.Kind == WidgetParagraph {
		return "Paragraph"
	}
	return "TextWidget{text='" + string(w.Text) + "', font='" + w.Font + "'}"
}

// WidgetConverter emits one record per character, labelled with the active
// styles, and a sentinel record per paragraph.
type WidgetConverter struct {
	records []Widget
	styles  StyleSet
}

func (c *WidgetConverter) converter() {}

// Target returns TargetWidgets.
func (c *WidgetConverter) Target() Target { return TargetWidgets }

// Character records r with the current style label.
func (c *WidgetConverter) Character(r rune) {
	c.records = append(c.records, Widget{Kind: WidgetText, Text: r, Font: c.styles.Label()})
}

// FontToggle flips s in the active style set.
func (c *WidgetConverter) FontToggle(s FontStyle) {
	c.styles.Toggle(s)
}

// Paragraph records a paragraph boundary.
func (c *WidgetConverter) Paragraph() {
	c.records = append(c.records, Widget{Kind: WidgetParagraph})
}

// Finalize returns a copy of the records and their text form, one per line.
func (c *WidgetConverter) Finalize() Result {
	var b strings.Builder
	for i, w := range c.records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(w.String())
	}
	return Result{Target: TargetWidgets, Text: b.String(), Widgets: slices.Clone(c.records)}
}
