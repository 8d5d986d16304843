package rtfconv

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Target  Target
	Width   int
	Theme   Theme
	Options []RenderOption
}

// HTTPRender fetches markup over HTTP(S) and renders it. It returns the
// unparsed residue like Render.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) (string, error) {
	if req.URL == "" {
		return "", fmt.Errorf("render http: URL is required")
	}
	if req.Writer == nil {
		return "", fmt.Errorf("render http: Writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return "", fmt.Errorf("render http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return "", fmt.Errorf("render http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("render http: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("render http: status %s", resp.Status)
	}
	return Render(RenderRequest{
		Reader:  resp.Body,
		Writer:  req.Writer,
		Target:  req.Target,
		Width:   req.Width,
		Theme:   req.Theme,
		Options: req.Options,
	})
}
