package wordproc

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"testing"
	"time"

	"github.com/jonathan/docexport/internal/document"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func sampleResume(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.FromResumeForm(document.ResumeForm{
		PersonalInfo: document.PersonalInfoForm{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Location: "Boston, MA",
		},
		Summary: "Backend engineer.\nLikes\tclean pipelines & <tidy> XML.",
		Experience: []document.ExperienceForm{{
			JobTitle:    "Software Engineer",
			CompanyName: "Acme Corp",
			StartDate:   "2021-01",
			EndDate:     "2024-01",
			IsCurrent:   true,
		}},
		Education: []document.EducationForm{{
			InstitutionName: "MIT",
			DegreeType:      "bachelor",
			EndDate:         "2020-05",
			GPA:             "4.8",
		}},
		Skills: document.SkillsForm{Technical: []string{"Go", "SQL"}},
	}, fixedNow)
	require.NoError(t, err)
	return doc
}

func janeDoe(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.FromResumeForm(document.ResumeForm{
		PersonalInfo: document.PersonalInfoForm{FullName: "Jane Doe"},
		Education: []document.EducationForm{{
			InstitutionName: "MIT",
			DegreeType:      "bachelor",
			EndDate:         "2020-05",
		}},
	}, fixedNow)
	require.NoError(t, err)
	return doc
}

// readPart returns the contents of one package part.
func readPart(t *testing.T, pkg []byte, name string) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	require.NoError(t, err)
	for _, f := range reader.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

type parsedRun struct {
	Text   string
	Bold   bool
	Italic bool
}

type parsedParagraph struct {
	Style string
	Runs  []parsedRun
}

func (p parsedParagraph) text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

// parseDocumentXML decodes word/document.xml back into paragraphs and runs.
func parseDocumentXML(t *testing.T, body string) []parsedParagraph {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader([]byte(body)))
	var (
		paras  []parsedParagraph
		cur    *parsedParagraph
		run    *parsedRun
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				paras = append(paras, parsedParagraph{})
				cur = &paras[len(paras)-1]
			case "pStyle":
				for _, a := range el.Attr {
					if a.Name.Local == "val" {
						cur.Style = a.Value
					}
				}
			case "r":
				cur.Runs = append(cur.Runs, parsedRun{})
				run = &cur.Runs[len(cur.Runs)-1]
			case "b":
				run.Bold = true
			case "i":
				run.Italic = true
			case "t":
				inText = true
			case "br":
				run.Text += "\n"
			case "tab":
				run.Text += "\t"
			}
		case xml.EndElement:
			if el.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				run.Text += string(el)
			}
		}
	}
	return paras
}
