package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"pkt.systems/rtfconv"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultTarget    = "plain"
	targetAll        = "all"
	maxResidueWidth  = 60
)

var (
	headerColor    = color.New(color.FgGreen, color.Bold)
	separatorColor = color.New(color.FgBlue, color.Bold)
	warnColor      = color.New(color.FgYellow, color.Bold)
	errorColor     = color.New(color.FgRed, color.Bold)
)

func init() {
	version.SetDefaultModule("pkt.systems/rtfconv")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	target      string
	themeName   string
	width       int
	softWrap    bool
	outPath     string
	colorMode   string
	strict      bool
	configPath  string
	sample      bool
	listThemes  bool
	showVersion bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("rtfconv", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.target, "target", "t", defaultTarget, "Output target: plain|markup|widgets|ansi|all")
	flags.StringVar(&opts.themeName, "theme", defaultThemeName, "Theme name for the ansi target")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.IntVarP(&opts.width, "width", "w", 0, "Wrap width for plain and ansi output (0 uses terminal width if available)")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the wrap width")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVar(&opts.colorMode, "color", "auto", "Color output: auto|on|off")
	flags.BoolVar(&opts.strict, "strict", false, "Fail when input remains unparsed")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/rtfconv/config.toml)")
	flags.BoolVar(&opts.sample, "sample", false, "Convert the built-in sample document")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: rtfconv [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, markup is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		for _, name := range rtfconv.AvailableThemes() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	configPath, explicit := opts.configPath, flags.Changed("config")
	if !explicit {
		configPath = defaultConfigPath()
	}
	cfg, err := loadConfig(configPath, explicit)
	if err != nil {
		errorf(stderr, "config: %v", err)
		return 2
	}
	applyConfig(&opts, cfg, flags)

	var targets []rtfconv.Target
	if strings.EqualFold(strings.TrimSpace(opts.target), targetAll) {
		targets = rtfconv.Targets()
	} else {
		target, err := rtfconv.ParseTarget(opts.target)
		if err != nil {
			errorf(stderr, "invalid --target: %v", err)
			return 2
		}
		targets = []rtfconv.Target{target}
	}

	theme, ok := rtfconv.ThemeByName(opts.themeName)
	if !ok {
		errorf(stderr, "unknown theme %q", opts.themeName)
		fmt.Fprintln(stderr, "available:", strings.Join(rtfconv.AvailableThemes(), ", "))
		return 2
	}

	var reader io.Reader
	if opts.sample {
		reader = strings.NewReader(rtfconv.SampleInput)
	} else {
		r, closer, err := openInputs(flags.Args(), stdin)
		if err != nil {
			errorf(stderr, "open input: %v", err)
			return 1
		}
		if closer != nil {
			defer func() { _ = closer.Close() }()
		}
		reader = r
	}

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		errorf(stderr, "open output: %v", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	useColor, err := resolveColor(opts.colorMode, writer)
	if err != nil {
		errorf(stderr, "invalid --color %q: %v", opts.colorMode, err)
		return 2
	}
	color.NoColor = !useColor
	if !useColor {
		theme = boringTheme()
	}

	renderOpts := []rtfconv.RenderOption{
		rtfconv.WithSoftWrap(opts.softWrap),
		rtfconv.WithStrict(opts.strict),
	}
	width := resolveWidth(opts.width, writer)

	var residue string
	if len(targets) == 1 {
		residue, err = rtfconv.Render(rtfconv.RenderRequest{
			Reader:  reader,
			Writer:  writer,
			Target:  targets[0],
			Width:   width,
			Theme:   theme,
			Options: renderOpts,
		})
	} else {
		residue, err = renderAll(reader, writer, targets, width, theme, renderOpts)
	}
	if residue != "" {
		warnf(stderr, "unparsed input remains: %s", truncate.StringWithTail(residue, maxResidueWidth, "…"))
	}
	if err != nil {
		if errors.Is(err, rtfconv.ErrUnparsedResidue) {
			errorf(stderr, "strict mode: input was not fully parsed")
		} else {
			errorf(stderr, "render: %v", err)
		}
		return 1
	}
	return 0
}

// applyConfig fills options not set on the command line from the config file.
func applyConfig(opts *options, cfg fileConfig, flags *pflag.FlagSet) {
	if cfg.Target != "" && !flags.Changed("target") {
		opts.target = cfg.Target
	}
	if cfg.Theme != "" && !flags.Changed("theme") {
		opts.themeName = cfg.Theme
	}
	if cfg.Width > 0 && !flags.Changed("width") {
		opts.width = cfg.Width
	}
	if cfg.SoftWrap && !flags.Changed("soft-wrap") {
		opts.softWrap = true
	}
	if cfg.Color != "" && !flags.Changed("color") {
		opts.colorMode = cfg.Color
	}
	if cfg.Strict && !flags.Changed("strict") {
		opts.strict = true
	}
}

// renderAll converts the same input to every target concurrently and prints
// the outputs in target order under section headers.
func renderAll(r io.Reader, w io.Writer, targets []rtfconv.Target, width int, theme rtfconv.Theme, opts []rtfconv.RenderOption) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	outputs := make([]bytes.Buffer, len(targets))
	residues := make([]string, len(targets))
	errs := make([]error, len(targets))
	var g errgroup.Group
	for i, target := range targets {
		g.Go(func() error {
			residues[i], errs[i] = rtfconv.Render(rtfconv.RenderRequest{
				Reader:  bytes.NewReader(src),
				Writer:  &outputs[i],
				Target:  target,
				Width:   width,
				Theme:   theme,
				Options: opts,
			})
			var residueErr *rtfconv.ResidueError
			if errs[i] != nil && !errors.As(errs[i], &residueErr) {
				return fmt.Errorf("%s: %w", target, errs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	headerColor.Fprintln(w, "Input:")
	fmt.Fprintln(w, string(src))
	for i, target := range targets {
		fmt.Fprintln(w)
		headerColor.Fprintf(w, "%s conversion:\n", sectionTitle(target))
		fmt.Fprintln(w, outputs[i].String())
		separatorColor.Fprintln(w, "-----------------------------")
	}
	return residues[0], errs[0]
}

func sectionTitle(t rtfconv.Target) string {
	switch t {
	case rtfconv.TargetPlain:
		return "Plain"
	case rtfconv.TargetMarkup:
		return "TeX"
	case rtfconv.TargetWidgets:
		return "Text widget"
	case rtfconv.TargetANSI:
		return "ANSI"
	}
	return t.String()
}

func warnf(w io.Writer, format string, args ...any) {
	warnColor.Fprint(w, "warning:")
	fmt.Fprintf(w, " "+format+"\n", args...)
}

func errorf(w io.Writer, format string, args ...any) {
	errorColor.Fprint(w, "error:")
	fmt.Fprintf(w, " "+format+"\n", args...)
}

func boringTheme() rtfconv.Theme {
	return rtfconv.NewTheme("boring", rtfconv.Styles{})
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return rtfconv.DetectColorSupport(isTerminal(w)), nil
	case "on", "true", "1", "yes", "always":
		return true, nil
	case "off", "false", "0", "no", "never":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

// resolveWidth returns the wrap width. Zero disables wrapping, which is the
// default when writing to something other than a terminal.
func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if !isTerminal(w) {
		return 0
	}
	return terminalWidth(w.(*os.File), 0)
}

func terminalWidth(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

// multiInputReader concatenates inputs, opening each one lazily.
type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return inputSource{open: func() (io.Reader, io.Closer, error) {
			return os.Stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
