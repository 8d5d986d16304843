package rtfconv

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(helloMarkup + "!"))
	}))
	defer srv.Close()

	var out bytes.Buffer
	residue, err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    srv.URL,
		Client: srv.Client(),
		Writer: &out,
		Target: TargetMarkup,
	})
	if err != nil {
		t.Fatalf("http render: %v", err)
	}
	if out.String() != "Hi\\textbf{!}\n\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if residue != "!" {
		t.Fatalf("residue = %q", residue)
	}
}

func TestHTTPRenderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	var out bytes.Buffer
	if _, err := HTTPRender(context.Background(), HTTPRenderRequest{URL: srv.URL, Writer: &out}); err == nil {
		t.Fatalf("expected status error")
	}
}

func TestHTTPRenderRejectsScheme(t *testing.T) {
	var out bytes.Buffer
	if _, err := HTTPRender(context.Background(), HTTPRenderRequest{URL: "ftp://example.com/doc", Writer: &out}); err == nil {
		t.Fatalf("expected unsupported scheme error")
	}
}
