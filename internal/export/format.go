// Package export is the single entry point for turning a document into a
// downloadable file.
package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/docexport/internal/pagination"
	"github.com/jonathan/docexport/internal/wordproc"
)

// Format is an export target.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatWord Format = "word"
	FormatText Format = "txt"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatPDF, FormatWord, FormatText}
}

// ParseFormat converts user input into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "word", "docx":
		return FormatWord, nil
	case "txt", "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want pdf, word or txt)", s)
	}
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatWord:
		return "docx"
	case FormatText:
		return "txt"
	default:
		return "bin"
	}
}

// MimeType returns the media type of exported files.
func (f Format) MimeType() string {
	switch f {
	case FormatPDF:
		return pagination.MimeType
	case FormatWord:
		return wordproc.MimeType
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// Label is the name used in user-facing messages.
func (f Format) Label() string {
	switch f {
	case FormatPDF:
		return "PDF"
	case FormatWord:
		return "Word"
	case FormatText:
		return "Text"
	default:
		return strings.ToUpper(string(f))
	}
}
