package rtfconv

import (
	"errors"
	"fmt"
)

// ErrReaderDone is returned when a Reader is asked to run a second time.
var ErrReaderDone = errors.New("reader already finished")

// ErrUnparsedResidue is matched by a *ResidueError in strict mode.
var ErrUnparsedResidue = errors.New("unparsed input remains")

// ResidueError carries the residue of a strict conversion.
type ResidueError struct {
	Residue string
	Spans   []Span
}

func (e *ResidueError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnparsedResidue, e.Residue)
}

func (e *ResidueError) Unwrap() error {
	return ErrUnparsedResidue
}

type readerState uint8

const (
	readerScanning readerState = iota
	readerDone
)

// Reader dispatches scanned tokens to a single Converter.
type Reader struct {
	conv    Converter
	state   readerState
	scanner *Scanner
}

// NewReader returns a Reader that feeds conv.
func NewReader(conv Converter) *Reader {
	return &Reader{conv: conv}
}

// Parse scans markup, dispatches every token and finalizes the converter. It
// returns the result and the concatenated residue. A Reader runs once.
func (r *Reader) Parse(markup string) (Result, string, error) {
	if r.conv == nil {
		return Result{}, "", fmt.Errorf("parse: converter is nil")
	}
	if r.state == readerDone {
		return Result{}, "", fmt.Errorf("parse: %w", ErrReaderDone)
	}
	r.scanner = NewScanner(markup)
	for tok := range r.scanner.All() {
		dispatch(r.conv, tok)
	}
	r.state = readerDone
	return r.conv.Finalize(), r.scanner.Residue(), nil
}

// ResidueSpans returns the unmatched spans of the last Parse.
func (r *Reader) ResidueSpans() []Span {
	if r.scanner == nil {
		return nil
	}
	return r.scanner.ResidueSpans()
}

func dispatch(conv Converter, tok Token) {
	switch tok.Kind {
	case TokenCharacter:
		conv.Character(tok.Char)
	case TokenFontToggle:
		conv.FontToggle(tok.Style)
	case TokenParagraph:
		conv.Paragraph()
	}
}

// Run converts markup with conv and returns the result and residue.
func Run(markup string, conv Converter) (Result, string) {
	res, residue, _ := NewReader(conv).Parse(markup)
	return res, residue
}

// Convert converts markup to target with a fresh converter. The error is
// ErrUnknownTarget for an unsupported target, or a *ResidueError when
// WithStrict is set and residue remains; the result is valid in the latter
// case.
func Convert(markup string, target Target, opts ...RenderOption) (Result, string, error) {
	cfg := newRenderConfig(opts)
	conv, err := NewConverter(target, WithTheme(cfg.theme))
	if err != nil {
		return Result{}, "", fmt.Errorf("convert: %w", err)
	}
	reader := NewReader(conv)
	res, residue, err := reader.Parse(markup)
	if err != nil {
		return Result{}, "", fmt.Errorf("convert: %w", err)
	}
	if cfg.strict && residue != "" {
		return res, residue, &ResidueError{Residue: residue, Spans: reader.ResidueSpans()}
	}
	return res, residue, nil
}
