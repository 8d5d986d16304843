// Package rtfconv converts a small tagged markup into plain text, TeX, styled
// widget records or themed ANSI text.
//
// The markup is a sequence of tokens:
//
//	{char:X}                       one character
//	{font:bold|italic|underline}   toggle a font style
//	{par}                          paragraph break
//
// A Scanner turns the markup into tokens, a Reader dispatches them to one
// Converter, and the Converter's Finalize returns the Result. Text that matches
// no token is reported as residue rather than failing the conversion.
//
// Example:
//
//	res, residue, err := rtfconv.Convert("{char:H}{font:bold}{char:i}{font:bold}{par}", rtfconv.TargetMarkup)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if residue != "" {
//		log.Printf("unparsed: %q", residue)
//	}
//	fmt.Print(res.Text) // H\textbf{i}
//
// Render and HTTPRender wrap the same pipeline with input validation, width
// wrapping and io.Writer output.
package rtfconv
