package rtfconv

import (
	"iter"
	"strings"
	"unicode/utf8"
)

var tagNames = [...]string{"char", "font", "par"}

// Span is a run of input that no token matched.
type Span struct {
	Pos  int
	Text string
}

// Scanner splits markup into tokens in a single forward pass.
//
// A match has the shape {name} or {name:value} where name is char, font or par
// and value is a non-empty run of bytes other than '}'. Matches whose value is
// unusable ({char:AB}, {font:blink}) are consumed without producing a token.
// Bytes outside every match are collected as residue.
type Scanner struct {
	src      string
	pos      int
	consumed int
	residue  []Span
	done     bool
}

// NewScanner returns a scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next well-formed token, or false once the input is exhausted.
func (s *Scanner) Next() (Token, bool) {
	for !s.done {
		start, end, name, value, ok := s.find()
		if !ok {
			s.finish()
			break
		}
		if start > s.pos {
			s.residue = append(s.residue, Span{Pos: s.pos, Text: s.src[s.pos:start]})
		}
		s.consumed += end - start
		s.pos = end
		if tok, ok := makeToken(name, value, start); ok {
			return tok, true
		}
	}
	return Token{}, false
}

// All returns the remaining tokens as a sequence. Stopping the iteration early
// leaves the scanner where it stopped.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Done reports whether the input has been fully scanned.
func (s *Scanner) Done() bool {
	return s.done
}

// Consumed returns the number of input bytes covered by matches so far,
// including matches that produced no token.
func (s *Scanner) Consumed() int {
	return s.consumed
}

// Residue returns the unmatched input seen so far, concatenated in input order.
func (s *Scanner) Residue() string {
	switch len(s.residue) {
	case 0:
		return ""
	case 1:
		return s.residue[0].Text
	}
	var b strings.Builder
	for _, span := range s.residue {
		b.WriteString(span.Text)
	}
	return b.String()
}

// ResidueSpans returns the unmatched spans seen so far.
func (s *Scanner) ResidueSpans() []Span {
	return s.residue
}

func (s *Scanner) finish() {
	s.done = true
	if s.pos < len(s.src) {
		s.residue = append(s.residue, Span{Pos: s.pos, Text: s.src[s.pos:]})
	}
}

// find locates the leftmost match at or after the cursor.
func (s *Scanner) find() (start, end int, name, value string, ok bool) {
	for from := s.pos; from < len(s.src); {
		i := strings.IndexByte(s.src[from:], '{')
		if i < 0 {
			break
		}
		start = from + i
		if end, name, value, ok = matchAt(s.src, start); ok {
			return start, end, name, value, true
		}
		from = start + 1
	}
	return 0, 0, "", "", false
}

func matchAt(src string, start int) (end int, name, value string, ok bool) {
	rest := src[start+1:]
	for _, tag := range tagNames {
		if strings.HasPrefix(rest, tag) {
			name = tag
			break
		}
	}
	if name == "" {
		return 0, "", "", false
	}
	k := start + 1 + len(name)
	if k >= len(src) {
		return 0, "", "", false
	}
	switch src[k] {
	case '}':
		return k + 1, name, "", true
	case ':':
		// An empty value fails the value group, and ':' cannot close the tag.
		closeIdx := strings.IndexByte(src[k+1:], '}')
		if closeIdx <= 0 {
			return 0, "", "", false
		}
		return k + 2 + closeIdx, name, src[k+1 : k+1+closeIdx], true
	}
	return 0, "", "", false
}

func makeToken(name, value string, pos int) (Token, bool) {
	switch name {
	case "char":
		if value == "" {
			return Token{}, false
		}
		r, size := utf8.DecodeRuneInString(value)
		if size != len(value) || (r == utf8.RuneError && size == 1) {
			return Token{}, false
		}
		return Token{Kind: TokenCharacter, Char: r, Pos: pos}, true
	case "font":
		style, ok := ParseFontStyle(value)
		if !ok {
			return Token{}, false
		}
		return Token{Kind: TokenFontToggle, Style: style, Pos: pos}, true
	case "par":
		return Token{Kind: TokenParagraph, Pos: pos}, true
	}
	return Token{}, false
}

// Scan tokenizes src in one call and returns the tokens and the residue.
func Scan(src string) ([]Token, string) {
	s := NewScanner(src)
	var tokens []Token
	for tok := range s.All() {
		tokens = append(tokens, tok)
	}
	return tokens, s.Residue()
}
