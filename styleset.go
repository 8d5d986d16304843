package rtfconv

import "strings"

// StyleSet records which font styles are active. The zero value is empty.
type StyleSet uint8

func styleBit(s FontStyle) StyleSet {
	return 1 << s
}

// Toggle inserts s if absent and removes it if present.
func (set *StyleSet) Toggle(s FontStyle) {
	if s >= numFontStyles {
		return
	}
	*set ^= styleBit(s)
}

// Has reports whether s is active.
func (set StyleSet) Has(s FontStyle) bool {
	return s < numFontStyles && set&styleBit(s) != 0
}

// Empty reports whether no style is active.
func (set StyleSet) Empty() bool {
	return set == 0
}

// Active returns the active styles in Bold, Italic, Underline order.
func (set StyleSet) Active() []FontStyle {
	if set == 0 {
		return nil
	}
	out := make([]FontStyle, 0, numFontStyles)
	for s := Bold; s < numFontStyles; s++ {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// Label names the set for widget records: "normal" when empty, otherwise the
// active keywords joined by '+' in enumeration order.
func (set StyleSet) Label() string {
	if set == 0 {
		return "normal"
	}
	return styleLabels[set&allStyles]
}

const allStyles StyleSet = 1<<numFontStyles - 1

var styleLabels = func() [1 << numFontStyles]string {
	var out [1 << numFontStyles]string
	for set := StyleSet(1); set <= allStyles; set++ {
		names := make([]string, 0, numFontStyles)
		for _, s := range set.Active() {
			names = append(names, s.String())
		}
		out[set] = strings.Join(names, "+")
	}
	return out
}()
