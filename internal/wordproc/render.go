package wordproc

import (
	"strings"

	"github.com/jonathan/docexport/internal/document"
	"github.com/jonathan/docexport/internal/rendering"
)

// Font sizes in half-points.
const (
	sizeTitle   = 36
	sizeHeading = 28
	sizePrimary = 24
	sizeBody    = 22
	sizeContact = 20
	sizeDates   = 18
	sizeFooter  = 16
)

var (
	accent = strings.TrimPrefix(rendering.AccentColor, "#")
	muted  = strings.TrimPrefix(rendering.MutedColor, "#")
)

// Render walks the document and produces the paragraph tree of the Word
// export. Text content matches rendering.RenderText line for line.
func Render(doc *document.Document) []Paragraph {
	var out []Paragraph

	out = append(out,
		Paragraph{
			Style:        StyleTitle,
			Align:        AlignCenter,
			SpacingAfter: 60,
			Runs: []Run{{
				Text:  document.CleanText(doc.Author.DisplayName()),
				Bold:  true,
				Size:  sizeTitle,
				Color: accent,
			}},
		},
		Paragraph{
			Align: AlignCenter,
			Runs: []Run{{
				Text:  document.CleanText(strings.Join(doc.Author.ContactParts(), " | ")),
				Size:  sizeContact,
				Color: muted,
			}},
		},
	)
	if target := doc.TargetLine(); target != "" {
		out = append(out, Paragraph{
			Align: AlignCenter,
			Runs:  []Run{{Text: document.CleanText(target), Italic: true, Size: sizeContact, Color: muted}},
		})
	}

	for _, section := range doc.VisibleSections() {
		out = append(out, Paragraph{
			Style:         StyleHeading1,
			SpacingBefore: 240,
			SpacingAfter:  120,
			Runs: []Run{{
				Text:  document.CleanText(section.Title),
				Bold:  true,
				Size:  sizeHeading,
				Color: accent,
			}},
		})

		switch content := section.Content.(type) {
		case document.FreeText:
			out = append(out, Paragraph{
				Align:        AlignBoth,
				SpacingAfter: 120,
				Runs:         []Run{{Text: document.CleanText(content.Text), Size: sizeBody}},
			})
		case document.EntryList:
			label := section.Role.OpenEndedLabel()
			for _, entry := range content.Entries {
				out = append(out, entryParagraphs(rendering.EntryLines(entry, label))...)
			}
		case document.SkillGroups:
			for _, group := range content.Groups {
				skills := group.NonEmpty()
				if len(skills) == 0 {
					continue
				}
				out = append(out, Paragraph{
					SpacingAfter: 40,
					Runs: []Run{
						{Text: document.CleanText(group.Category) + ": ", Bold: true, Size: sizeBody},
						{Text: document.CleanText(strings.Join(skills, ", ")), Size: sizeBody},
					},
				})
			}
		}
	}

	out = append(out, Paragraph{
		Align:         AlignCenter,
		SpacingBefore: 480,
		Runs:          []Run{{Text: rendering.Footer(doc), Italic: true, Size: sizeFooter, Color: muted}},
	})
	return out
}

func entryParagraphs(lines []rendering.EntryLine) []Paragraph {
	paras := make([]Paragraph, 0, len(lines))
	for _, line := range lines {
		var p Paragraph
		switch line.Tier {
		case rendering.TierPrimary:
			p.Runs = []Run{{Text: line.Text, Bold: true, Size: sizePrimary}}
		case rendering.TierSecondary:
			p.Runs = []Run{{Text: line.Text, Italic: true, Size: sizeBody}}
		case rendering.TierDates:
			p.Runs = []Run{{Text: line.Text, Size: sizeDates, Color: muted}}
		case rendering.TierDescription:
			p.SpacingBefore = 40
			p.Runs = []Run{{Text: line.Text, Size: sizeBody}}
		default:
			p.Runs = []Run{
				{Text: line.Label + ": ", Bold: true, Size: sizeBody},
				{Text: line.Value, Size: sizeBody},
			}
		}
		paras = append(paras, p)
	}
	if n := len(paras); n > 0 {
		paras[n-1].SpacingAfter = 160
	}
	return paras
}
