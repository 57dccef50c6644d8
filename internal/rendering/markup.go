package rendering

import (
	"embed"
	"html/template"
	"strings"

	"github.com/jonathan/docexport/internal/document"
)

//go:embed templates/document.html.tmpl
var templateFS embed.FS

var markupTemplate = template.Must(
	template.New("document.html.tmpl").ParseFS(templateFS, "templates/document.html.tmpl"))

type markupView struct {
	Title      string
	Stylesheet template.CSS
	Name       string
	Contact    string
	Target     string
	Sections   []markupSection
	Footer     string
}

type markupSection struct {
	Title   string
	Text    string
	Entries [][]EntryLine
	Skills  []markupSkill
}

type markupSkill struct {
	Category string
	List     string
}

// RenderMarkup renders the document as a complete, self-contained HTML page:
// one inline stylesheet in <head>, no external resources. All author text is
// escaped by html/template.
func RenderMarkup(doc *document.Document) (string, error) {
	if doc == nil {
		return "", &RenderError{Message: "document is nil"}
	}

	var sb strings.Builder
	if err := markupTemplate.Execute(&sb, buildMarkupView(doc)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute document template",
			Cause:   err,
		}
	}
	return sb.String(), nil
}

func buildMarkupView(doc *document.Document) markupView {
	name := document.CleanText(doc.Author.DisplayName())
	view := markupView{
		Title:      name + " - " + doc.Kind.Label(),
		Stylesheet: template.CSS(Stylesheet()),
		Name:       name,
		Contact:    document.CleanText(strings.Join(doc.Author.ContactParts(), " | ")),
		Target:     document.CleanText(doc.TargetLine()),
		Footer:     Footer(doc),
	}

	for _, section := range doc.VisibleSections() {
		ms := markupSection{Title: document.CleanText(section.Title)}
		switch content := section.Content.(type) {
		case document.FreeText:
			ms.Text = document.CleanText(content.Text)
		case document.EntryList:
			label := section.Role.OpenEndedLabel()
			for _, entry := range content.Entries {
				ms.Entries = append(ms.Entries, EntryLines(entry, label))
			}
		case document.SkillGroups:
			for _, group := range content.Groups {
				skills := group.NonEmpty()
				if len(skills) == 0 {
					continue
				}
				ms.Skills = append(ms.Skills, markupSkill{
					Category: document.CleanText(group.Category),
					List:     document.CleanText(strings.Join(skills, ", ")),
				})
			}
		}
		view.Sections = append(view.Sections, ms)
	}

	return view
}
