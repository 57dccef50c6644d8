// Package observability provides structured logging and formatted output for
// verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/docexport/internal/document"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of entries listed per section
	maxItemsToShow = 5
)

// ExportSummary is the subset of an export result the printer shows.
type ExportSummary struct {
	Success  bool
	Message  string
	Filename string
	MimeType string
	Size     int
	Pages    int
	ExportID string
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// PrintDocumentOutline outputs the sections of a document and their sizes.
func (p *Printer) PrintDocumentOutline(doc *document.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Kind:     %s\n", doc.Kind.Label()))
	sb.WriteString(fmt.Sprintf("Author:   %s\n", doc.Author.DisplayName()))
	if target := doc.TargetLine(); target != "" {
		sb.WriteString(target + "\n")
	}
	sb.WriteString("\n")

	visible := doc.VisibleSections()
	if len(visible) == 0 {
		sb.WriteString("No sections with content")
		p.printBox("DOCUMENT OUTLINE", sb.String())
		return
	}

	for _, section := range visible {
		switch content := section.Content.(type) {
		case document.FreeText:
			sb.WriteString(fmt.Sprintf("• %s (%d words)\n", section.Title, len(strings.Fields(content.Text))))
		case document.EntryList:
			sb.WriteString(fmt.Sprintf("• %s (%d entries)\n", section.Title, len(content.Entries)))
			count := min(len(content.Entries), maxItemsToShow)
			for j := 0; j < count; j++ {
				sb.WriteString(fmt.Sprintf("    %s\n", content.Entries[j].Primary))
			}
			if len(content.Entries) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("    ... and %d more\n", len(content.Entries)-maxItemsToShow))
			}
		case document.SkillGroups:
			skills := 0
			for _, g := range content.Groups {
				skills += len(g.NonEmpty())
			}
			sb.WriteString(fmt.Sprintf("• %s (%d skills)\n", section.Title, skills))
		}
	}

	p.printBox("DOCUMENT OUTLINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the outcome of one export.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResult(res ExportSummary) {
	if !res.Success {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "❌ EXPORT FAILED")
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(res.Message, boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", res.Filename))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", res.MimeType))
	sb.WriteString(fmt.Sprintf("Size:     %s\n", humanSize(res.Size)))
	if res.Pages > 0 {
		sb.WriteString(fmt.Sprintf("Pages:    %d\n", res.Pages))
	}
	sb.WriteString(fmt.Sprintf("ID:       %s", res.ExportID))

	p.printBox("✅ "+res.Message, sb.String())
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
