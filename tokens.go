package rtfconv

// FontStyle is a font attribute toggled by a {font:...} token.
type FontStyle uint8

const (
	// Bold is toggled by {font:bold}.
	Bold FontStyle = iota
	// Italic is toggled by {font:italic}.
	Italic
	// Underline is toggled by {font:underline}.
	Underline

	numFontStyles
)

var fontStyleNames = [numFontStyles]string{
	Bold:      "bold",
	Italic:    "italic",
	Underline: "underline",
}

// String returns the style keyword used in the markup and in widget labels.
func (s FontStyle) String() string {
	if s < numFontStyles {
		return fontStyleNames[s]
	}
	return "unknown"
}

// ParseFontStyle maps a style keyword to its FontStyle. Matching is exact.
func ParseFontStyle(name string) (FontStyle, bool) {
	switch name {
	case "bold":
		return Bold, true
	case "italic":
		return Italic, true
	case "underline":
		return Underline, true
	}
	return 0, false
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and tests.
type TokenKind = tokenKind

const (
	tokenCharacter tokenKind = iota
	tokenFontToggle
	tokenParagraph
)

const (
	// TokenCharacter carries exactly one character in Token.Char.
	TokenCharacter tokenKind = tokenCharacter
	// TokenFontToggle carries the toggled style in Token.Style.
	TokenFontToggle tokenKind = tokenFontToggle
	// TokenParagraph marks a paragraph break.
	TokenParagraph tokenKind = tokenParagraph
)

func (k tokenKind) String() string {
	switch k {
	case tokenCharacter:
		return "char"
	case tokenFontToggle:
		return "font"
	case tokenParagraph:
		return "par"
	}
	return "unknown"
}

// Token is a single parsed markup unit. Only the field matching Kind is set.
type Token struct {
	Kind  TokenKind
	Char  rune
	Style FontStyle
	// Pos is the byte offset of the token's opening brace in the input.
	Pos int
}
