package export

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/docexport/internal/document"
	"github.com/jonathan/docexport/internal/rendering"
	"github.com/jonathan/docexport/internal/wordproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nonBlankLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func textLines(doc *document.Document) []string {
	var out []string
	for _, line := range nonBlankLines(rendering.RenderText(doc)) {
		if strings.Trim(line, "=") == "" || strings.Trim(line, "-") == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func wordLines(doc *document.Document) []string {
	var out []string
	for _, p := range wordproc.Render(doc) {
		out = append(out, nonBlankLines(p.Text())...)
	}
	return out
}

func markupLines(t *testing.T, doc *document.Document) []string {
	t.Helper()
	html, err := rendering.RenderMarkup(doc)
	require.NoError(t, err)
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	var out []string
	dom.Find("h1, h2, p").Each(func(_ int, s *goquery.Selection) {
		out = append(out, nonBlankLines(s.Text())...)
	})
	return out
}

func assertSameLines(t *testing.T, want, got []string, renderer string) {
	t.Helper()
	require.Len(t, got, len(want), renderer)
	for i := range want {
		assert.True(t, strings.EqualFold(want[i], got[i]), "%s line %d: text %q, got %q", renderer, i, want[i], got[i])
	}
}

func TestFormatEquivalence(t *testing.T) {
	sop, err := document.FromSOPForm(document.SOPForm{
		PersonalInfo: document.PersonalInfoForm{FullName: "Jane Doe", TargetProgram: "MSc", TargetUniversity: "ETH"},
		Statement: document.StatementForm{
			Introduction: "Paragraph one.\n\nParagraph two.",
			CareerGoals:  "Build tools.",
		},
		Research: []document.ProjectForm{{ProjectName: "Settling", Organization: "Lab", IsOngoing: true}},
	}, fixedNow)
	require.NoError(t, err)

	docs := map[string]*document.Document{
		"jane doe":     janeDoe(t),
		"rich resume":  richResume(t),
		"statement":    sop,
		"empty resume": mustEmptyResume(t),
		"control only": controlOnlyResume(t),
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			want := textLines(doc)
			assertSameLines(t, want, wordLines(doc), "word")
			assertSameLines(t, want, markupLines(t, doc), "markup")
		})
	}
}

func mustEmptyResume(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.FromResumeForm(document.ResumeForm{}, fixedNow)
	require.NoError(t, err)
	return doc
}

func TestEmptySectionsOmittedEverywhere(t *testing.T) {
	doc := janeDoe(t)

	for _, header := range []string{"Work Experience", "Projects", "Awards & Achievements"} {
		assert.NotContains(t, strings.ToLower(strings.Join(textLines(doc), "\n")), strings.ToLower(header))
		assert.NotContains(t, wordLines(doc), header)
		assert.NotContains(t, markupLines(t, doc), header)
	}
}

func TestPresentAndOngoingLabels(t *testing.T) {
	doc := richResume(t)

	for renderer, lines := range map[string][]string{
		"text":   textLines(doc),
		"word":   wordLines(doc),
		"markup": markupLines(t, doc),
	} {
		assert.Contains(t, lines, "2021-01 - Present", renderer)
		assert.Contains(t, lines, "2024-03 - Ongoing", renderer)
		assert.NotContains(t, lines, "2021-01 - 2022-01", renderer)
	}
}

func controlOnlyResume(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.FromResumeForm(document.ResumeForm{
		PersonalInfo: document.PersonalInfoForm{FullName: "Jane Doe", LinkedIn: "\u0007"},
		Summary:      "\u0000\u0007",
		Skills: document.SkillsForm{
			Technical: []string{"\u0001", "\ufffd"},
			Tools:     []string{"Go", "\u0002"},
		},
		Education: []document.EducationForm{{
			InstitutionName: "MIT",
			DegreeType:      "bachelors",
			StartDate:       "2016-09",
			EndDate:         "2020-06",
			GPA:             "\u0002",
			Achievements:    "\r\n\u0003",
		}},
	}, fixedNow)
	require.NoError(t, err)
	return doc
}

func TestControlOnlyValuesOmittedEverywhere(t *testing.T) {
	doc := controlOnlyResume(t)

	want := textLines(doc)
	assertSameLines(t, want, wordLines(doc), "word")
	assertSameLines(t, want, markupLines(t, doc), "markup")

	for renderer, lines := range map[string][]string{
		"text":   want,
		"word":   wordLines(doc),
		"markup": markupLines(t, doc),
	} {
		joined := strings.ToLower(strings.Join(lines, "\n"))
		assert.NotContains(t, joined, "professional summary", renderer)
		assert.NotContains(t, joined, "technical skills", renderer)
		assert.NotContains(t, joined, "gpa", renderer)
		assert.NotContains(t, joined, "achievements", renderer)
		assert.Contains(t, lines, "Tools & Technologies: Go", renderer)
	}
}
