package export

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/jonathan/docexport/internal/document"
	"github.com/jonathan/docexport/internal/rendering"
)

// DefaultFilename returns {author name or kind}_{YYYY-MM-DD}.{ext}.
func DefaultFilename(doc *document.Document, f Format) string {
	base := sanitize(doc.Author.FullName)
	if base == "" {
		base = doc.Kind.Slug()
	}
	return base + "_" + doc.CreatedAt.Format(rendering.FooterDateLayout) + "." + f.Extension()
}

// ResolveFilename returns the sanitized hint with the format's extension, or
// the default filename when the hint is blank.
func ResolveFilename(doc *document.Document, f Format, hint string) string {
	base := filepath.Base(strings.TrimSpace(hint))
	if ext := filepath.Ext(base); isExportExtension(ext) {
		base = strings.TrimSuffix(base, ext)
	}
	base = sanitize(base)
	if base == "" {
		return DefaultFilename(doc, f)
	}
	return base + "." + f.Extension()
}

func isExportExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pdf", ".docx", ".txt":
		return true
	}
	return false
}

// sanitize keeps letters, digits, '.', '-' and '_', turning whitespace runs
// into a single underscore.
func sanitize(s string) string {
	var sb strings.Builder
	pendingSep := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsSpace(r):
			pendingSep = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.':
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(r)
		}
	}
	return strings.Trim(sb.String(), "._")
}
