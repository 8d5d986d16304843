package rtfconv

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// markupFor encodes text as one {char} token per rune and {par} per newline.
func markupFor(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r == '\n' {
			b.WriteString("{par}")
			continue
		}
		b.WriteString("{char:")
		b.WriteRune(r)
		b.WriteByte('}')
	}
	return b.String()
}

func renderString(t *testing.T, src string, target Target, width int, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	if _, err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Target:  target,
		Width:   width,
		Options: opts,
	}); err != nil {
		t.Fatalf("render %s: %v", target, err)
	}
	return out.String()
}

func readSample(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return data
}
