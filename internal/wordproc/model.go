// Package wordproc renders a document as a WordprocessingML (.docx) package.
package wordproc

import "strings"

// Style names a paragraph style defined in word/styles.xml.
type Style string

const (
	StyleNormal   Style = ""
	StyleTitle    Style = "Title"
	StyleHeading1 Style = "Heading1"
)

// Align is a paragraph justification value.
type Align string

const (
	AlignLeft   Align = ""
	AlignCenter Align = "center"
	AlignBoth   Align = "both"
)

// Paragraph is one block-level paragraph. Spacing is in twentieths of a point.
type Paragraph struct {
	Style         Style
	Align         Align
	SpacingBefore int
	SpacingAfter  int
	Runs          []Run
}

// Run is a span of uniformly formatted text. Size is in half-points; Color is
// an RGB hex string without the leading '#'. A newline in Text becomes a line
// break.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int
	Color  string
}

// Text concatenates the text of all runs.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
