package rtfconv

import (
	"errors"
	"fmt"
	"strings"
)

// Target selects an output representation.
type Target uint8

const (
	// TargetPlain emits raw characters and one newline per paragraph.
	TargetPlain Target = iota
	// TargetMarkup emits TeX with escaped specials and style commands.
	TargetMarkup
	// TargetWidgets emits one styled record per character.
	TargetWidgets
	// TargetANSI emits theme-styled terminal text.
	TargetANSI

	numTargets
)

var targetNames = [numTargets]string{
	TargetPlain:   "plain",
	TargetMarkup:  "markup",
	TargetWidgets: "widgets",
	TargetANSI:    "ansi",
}

// ErrUnknownTarget reports a target name or value outside the supported set.
var ErrUnknownTarget = errors.New("unknown target")

func (t Target) String() string {
	if t < numTargets {
		return targetNames[t]
	}
	return fmt.Sprintf("Target(%d)", uint8(t))
}

// Targets returns every supported target in declaration order.
func Targets() []Target {
	out := make([]Target, 0, numTargets)
	for t := TargetPlain; t < numTargets; t++ {
		out = append(out, t)
	}
	return out
}

// ParseTarget resolves a target name. A few historical aliases are accepted.
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "ascii", "text":
		return TargetPlain, nil
	case "markup", "tex", "latex":
		return TargetMarkup, nil
	case "widgets", "widget", "widget_list", "widget-list":
		return TargetWidgets, nil
	case "ansi", "terminal":
		return TargetANSI, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownTarget, name)
}

// Converter receives dispatched tokens and accumulates one target's output.
// The set of implementations is closed; use NewConverter.
type Converter interface {
	Character(r rune)
	FontToggle(s FontStyle)
	Paragraph()
	// Finalize returns the output accumulated so far. It may be called
	// repeatedly.
	Finalize() Result
	Target() Target

	converter()
}

// Result is a finalized conversion. Widgets is set only for TargetWidgets.
type Result struct {
	Target  Target
	Text    string
	Widgets []Widget
}

func (r Result) String() string {
	return r.Text
}

// NewConverter returns an empty converter for target.
func NewConverter(target Target, opts ...RenderOption) (Converter, error) {
	switch target {
	case TargetPlain:
		return &PlainConverter{}, nil
	case TargetMarkup:
		return &MarkupConverter{}, nil
	case TargetWidgets:
		return &WidgetConverter{}, nil
	case TargetANSI:
		cfg := newRenderConfig(opts)
		return NewANSIConverter(cfg.theme), nil
	}
	return nil, fmt.Errorf("new converter: %w %s", ErrUnknownTarget, target)
}
