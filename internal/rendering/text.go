// Package rendering turns a document into its plain-text serialization and into
// the self-contained HTML used as the PDF rasterization source.
package rendering

import (
	"strings"

	"github.com/jonathan/docexport/internal/document"
)

// DefaultGenerator is the product name written in every footer.
const DefaultGenerator = "Application Document Builder"

// FooterDateLayout is the date format of footers and default filenames.
const FooterDateLayout = "2006-01-02"

// Footer returns the "Generated by ... on ..." line shared by all renderers.
func Footer(doc *document.Document) string {
	return "Generated by " + DefaultGenerator + " on " + doc.CreatedAt.Format(FooterDateLayout)
}

// RenderText walks the document and emits its plain-text serialization.
// It never fails: blank fields degrade to placeholder text.
func RenderText(doc *document.Document) string {
	var sb strings.Builder

	name := document.CleanText(doc.Author.DisplayName())
	sb.WriteString(strings.ToUpper(name) + "\n")
	sb.WriteString(underline(name, "=") + "\n")
	sb.WriteString(document.CleanText(strings.Join(doc.Author.ContactParts(), " | ")) + "\n")
	if target := doc.TargetLine(); target != "" {
		sb.WriteString(document.CleanText(target) + "\n")
	}
	sb.WriteString("\n")

	for _, section := range doc.VisibleSections() {
		title := document.CleanText(section.Title)
		sb.WriteString(strings.ToUpper(title) + "\n")
		sb.WriteString(underline(title, "-") + "\n")

		switch content := section.Content.(type) {
		case document.FreeText:
			sb.WriteString(document.CleanText(content.Text) + "\n\n")
		case document.EntryList:
			label := section.Role.OpenEndedLabel()
			for _, entry := range content.Entries {
				for _, line := range EntryLines(entry, label) {
					sb.WriteString(line.Text + "\n")
				}
				sb.WriteString("\n")
			}
		case document.SkillGroups:
			for _, group := range content.Groups {
				if len(group.NonEmpty()) == 0 {
					continue
				}
				sb.WriteString(document.CleanText(group.Line()) + "\n")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(Footer(doc) + "\n")
	return sb.String()
}

// underline returns a run of ch as long as s in runes.
func underline(s, ch string) string {
	return strings.Repeat(ch, len([]rune(s)))
}
