package rtfconv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Target  Target
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render reads markup from Reader, converts it and writes the result to
// Writer. Plain and ANSI output is wrapped to Width when Width > 0. It returns
// the unparsed residue. In strict mode the output is still written and the
// residue is also reported as a *ResidueError.
func Render(req RenderRequest) (string, error) {
	if req.Reader == nil {
		return "", fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return "", fmt.Errorf("render: writer is nil")
	}
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)
	if _, err := buf.ReadFrom(req.Reader); err != nil {
		return "", fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(buf.Bytes()); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	opts := req.Options
	if req.Theme != nil {
		opts = append(opts[:len(opts):len(opts)], WithTheme(req.Theme))
	}
	cfg := newRenderConfig(opts)
	res, residue, convErr := Convert(buf.String(), req.Target, opts...)
	var residueErr *ResidueError
	if convErr != nil && !errors.As(convErr, &residueErr) {
		return "", fmt.Errorf("render: %w", convErr)
	}
	out := res.Text
	if wrappable(req.Target) {
		out = wrapText(out, req.Width, cfg.softWrap)
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return residue, fmt.Errorf("render: write: %w", err)
	}
	return residue, convErr
}
