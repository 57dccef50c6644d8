package rendering

import "github.com/jonathan/docexport/internal/document"

// LineTier is the visual tier of one rendered entry line.
type LineTier int

const (
	TierPrimary LineTier = iota
	TierSecondary
	TierDates
	TierDescription
	TierDetail
)

// EntryLine is one line of an entry with its tier. Detail lines keep the
// label separate so structured renderers can bold it.
type EntryLine struct {
	Tier  LineTier
	Text  string
	Label string
	Value string
}

// EntryLines flattens an entry into the fixed line sequence every renderer
// emits: primary, secondary, dates, then description and details when present.
func EntryLines(e document.Entry, openLabel string) []EntryLine {
	lines := []EntryLine{
		{Tier: TierPrimary, Text: document.CleanText(document.Placeholder(e.Primary, document.NotSpecified))},
		{Tier: TierSecondary, Text: document.CleanText(document.Placeholder(e.Secondary, document.NotProvided))},
		{Tier: TierDates, Text: document.CleanText(e.Dates.Format(openLabel))},
	}
	if e.HasDescription() {
		lines = append(lines, EntryLine{Tier: TierDescription, Text: document.CleanText(e.Description)})
	}
	for _, d := range e.PresentDetails() {
		label, value := document.CleanText(d.Label), document.CleanText(d.Value)
		lines = append(lines, EntryLine{
			Tier:  TierDetail,
			Text:  label + ": " + value,
			Label: label,
			Value: value,
		})
	}
	return lines
}
