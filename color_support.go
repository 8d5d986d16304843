package rtfconv

import (
	"os"
	"strings"
)

// DetectColorSupport reports whether ANSI styling should be emitted to an
// output that is (or is not) a terminal. NO_COLOR disables styling,
// CLICOLOR_FORCE enables it for non-terminals, and TERM=dumb disables it.
func DetectColorSupport(isTerminal bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}
	if !isTerminal {
		return false
	}
	return !strings.EqualFold(os.Getenv("TERM"), "dumb")
}
