package document

import (
	"strings"
	"unicode"
)

// CleanText normalizes author-supplied text. Blank checks and every renderer
// go through it, so a value that cleans to "" counts as absent everywhere:
// line endings become \n, control characters other than \n and \t are dropped
// and surrounding whitespace is trimmed.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == '\n' || r == '\t':
			result.WriteRune(r)
		case r == unicode.ReplacementChar:
			// invalid UTF-8 in the source
		case unicode.IsControl(r):
		default:
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
