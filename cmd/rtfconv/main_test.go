package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/rtfconv"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunPlainFromStdin(t *testing.T) {
	code, out, errOut := runCLI(t, "{char:H}{char:i}{font:bold}{char:!}{font:bold}{par}")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "Hi!\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestRunMarkupTarget(t *testing.T) {
	code, out, errOut := runCLI(t, "{font:bold}{char:&}", "-t", "tex")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != `\textbf{\&}` {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunWarnsAboutResidue(t *testing.T) {
	code, out, errOut := runCLI(t, "{char:A}XYZ{char:B}")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "AB" {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(errOut, "warning: unparsed input remains: XYZ") {
		t.Fatalf("missing residue warning: %q", errOut)
	}
}

func TestRunStrictFails(t *testing.T) {
	code, out, errOut := runCLI(t, "{char:A}XYZ", "--strict")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if out != "A" {
		t.Fatalf("strict mode should still write output, got %q", out)
	}
	if !strings.Contains(errOut, "strict mode") {
		t.Fatalf("missing strict error: %q", errOut)
	}
}

func TestRunAllTargets(t *testing.T) {
	code, out, errOut := runCLI(t, "", "--sample", "--target", "all")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	for _, want := range []string{
		"Input:\n" + rtfconv.SampleInput,
		"Plain conversion:\nHelloWorld!\nABC\n",
		"TeX conversion:\nHello\\textbf{W}",
		"Text widget conversion:\nTextWidget{text='H', font='normal'}",
		"ANSI conversion:\nHelloWorld!\nABC\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("NO_COLOR output contains escapes")
	}
	if strings.Count(errOut, "unparsed input remains") != 1 {
		t.Fatalf("expected a single residue warning: %q", errOut)
	}
}

func TestRunUsageErrors(t *testing.T) {
	cases := [][]string{
		{"--target", "pdf"},
		{"--theme", "nope"},
		{"--color", "sometimes"},
		{"--no-such-flag"},
	}
	for _, args := range cases {
		if code, _, _ := runCLI(t, "", args...); code != 2 {
			t.Fatalf("args %v: expected exit 2, got %d", args, code)
		}
	}
}

func TestRunListThemes(t *testing.T) {
	code, out, _ := runCLI(t, "", "--list-themes")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.TrimSpace(out) != strings.Join(rtfconv.AvailableThemes(), "\n") {
		t.Fatalf("unexpected theme list %q", out)
	}
}

func TestRunOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "hi.txt")
	code, out, errOut := runCLI(t, "{char:x}", "-o", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "" {
		t.Fatalf("unexpected stdout %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "x" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestRunUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rtfconv.toml")
	if err := os.WriteFile(path, []byte("target = \"widgets\"\nstrict = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	code, out, errOut := runCLI(t, "{char:a}", "--config", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "TextWidget{text='a', font='normal'}" {
		t.Fatalf("config target not applied: %q", out)
	}
	code, out, _ = runCLI(t, "{char:a}", "--config", path, "-t", "plain")
	if code != 0 || out != "a" {
		t.Fatalf("flag should override config: exit %d output %q", code, out)
	}
	if code, _, _ := runCLI(t, "{char:a}?", "--config", path); code != 1 {
		t.Fatalf("config strict not applied: exit %d", code)
	}
}

func TestOpenInputFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.rtf")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	reader, closer, err := openInputs([]string{path}, nil)
	if err != nil {
		t.Fatalf("openInputs file: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ := io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}

	fileURL := "file://" + path
	reader, closer, err = openInputs([]string{fileURL}, nil)
	if err != nil {
		t.Fatalf("openInputs file URL: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "hello" {
		t.Fatalf("unexpected file URL content: %q", string(buf))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stream"))
	}))
	defer srv.Close()
	reader, closer, err = openInputs([]string{srv.URL}, nil)
	if err != nil {
		t.Fatalf("openInputs http: %v", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	buf, _ = io.ReadAll(reader)
	if string(buf) != "stream" {
		t.Fatalf("unexpected http content: %q", string(buf))
	}
}

func TestOpenInputsConcatenates(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.rtf")
	second := filepath.Join(dir, "b.rtf")
	if err := os.WriteFile(first, []byte("{char:a}"), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("{char:b}"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}
	code, out, errOut := runCLI(t, "", first, second)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "ab" {
		t.Fatalf("unexpected concatenated output: %q", out)
	}
}

func TestResolveColor(t *testing.T) {
	cases := map[string]bool{
		"on":     true,
		"off":    false,
		"always": true,
		"0":      false,
	}
	for input, want := range cases {
		got, err := resolveColor(input, io.Discard)
		if err != nil {
			t.Fatalf("resolveColor(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("resolveColor(%q)=%v want %v", input, got, want)
		}
	}
	if _, err := resolveColor("nope", io.Discard); err == nil {
		t.Fatalf("expected error for invalid color value")
	}
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	if got, _ := resolveColor("auto", io.Discard); got {
		t.Fatalf("auto should disable color for non-terminals")
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	styles := boringTheme().Styles()
	for _, prefix := range []string{
		styles.Text.Prefix,
		styles.Bold.Prefix,
		styles.Italic.Prefix,
		styles.Underline.Prefix,
	} {
		if prefix != "" {
			t.Fatalf("expected empty prefix, got %q", prefix)
		}
	}
}
