package rtfconv

import (
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrappable reports whether a target's output is running text. TeX and widget
// records are line-structured and never rewrapped.
func wrappable(t Target) bool {
	return t == TargetPlain || t == TargetANSI
}

func wrapText(text string, width int, soft bool) string {
	if width <= 0 || text == "" {
		return text
	}
	if !needsWrap(text, width) {
		return text
	}
	out := wordwrap.String(text, width)
	if soft {
		out = wrap.String(out, width)
	}
	return out
}

func needsWrap(text string, width int) bool {
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			if ansi.PrintableRuneWidth(text[start:i]) > width {
				return true
			}
			start = i + 1
		}
	}
	return false
}
