package wordproc

import (
	"strings"
	"testing"

	"github.com/jonathan/docexport/internal/document"
	"github.com/jonathan/docexport/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isUnderline(line string) bool {
	return strings.Trim(line, "=") == "" || strings.Trim(line, "-") == ""
}

func TestRender_MatchesPlainText(t *testing.T) {
	doc := sampleResume(t)

	var want []string
	for _, line := range strings.Split(rendering.RenderText(doc), "\n") {
		if line == "" || isUnderline(line) {
			continue
		}
		want = append(want, line)
	}

	var got []string
	for _, p := range Render(doc) {
		for _, line := range strings.Split(p.Text(), "\n") {
			if line != "" {
				got = append(got, line)
			}
		}
	}

	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, strings.EqualFold(want[i], got[i]), "line %d: text %q, word %q", i, want[i], got[i])
	}
}

func TestRender_EducationEntryFormatting(t *testing.T) {
	paras := Render(janeDoe(t))

	var idx int
	for i, p := range paras {
		if p.Style == StyleHeading1 && p.Text() == "Education" {
			idx = i
		}
	}
	require.NotZero(t, idx, "education heading not found")

	primary, secondary, dates := paras[idx+1], paras[idx+2], paras[idx+3]
	assert.Equal(t, "Bachelor's Degree", primary.Text())
	assert.True(t, primary.Runs[0].Bold)
	assert.Equal(t, "MIT", secondary.Text())
	assert.True(t, secondary.Runs[0].Italic)
	assert.Equal(t, "Not specified - 2020-05", dates.Text())
	assert.Less(t, dates.Runs[0].Size, primary.Runs[0].Size)
}

func TestRender_SkillLineHasBoldCategory(t *testing.T) {
	paras := Render(sampleResume(t))

	for _, p := range paras {
		if strings.HasPrefix(p.Text(), "Technical Skills") {
			require.Len(t, p.Runs, 2)
			assert.Equal(t, "Technical Skills: ", p.Runs[0].Text)
			assert.True(t, p.Runs[0].Bold)
			assert.Equal(t, "Go, SQL", p.Runs[1].Text)
			assert.False(t, p.Runs[1].Bold)
			return
		}
	}
	t.Fatal("skill line not found")
}

func TestRender_OmitsEmptySections(t *testing.T) {
	paras := Render(janeDoe(t))

	var headings []string
	for _, p := range paras {
		if p.Style == StyleHeading1 {
			headings = append(headings, p.Text())
		}
	}
	assert.Equal(t, []string{"Education"}, headings)
}

func TestRender_Placeholders(t *testing.T) {
	doc, err := document.FromResumeForm(document.ResumeForm{}, fixedNow)
	require.NoError(t, err)

	paras := Render(doc)
	assert.Equal(t, StyleTitle, paras[0].Style)
	assert.Equal(t, "Your Name", paras[0].Text())
	assert.Equal(t, "Not provided | Not provided | Not provided", paras[1].Text())
	assert.Equal(t, "Generated by Application Document Builder on 2026-10-19", paras[len(paras)-1].Text())
}

func TestRender_SOPTargetLine(t *testing.T) {
	doc, err := document.FromSOPForm(document.SOPForm{
		PersonalInfo: document.PersonalInfoForm{TargetUniversity: "ETH Zurich"},
	}, fixedNow)
	require.NoError(t, err)

	paras := Render(doc)
	assert.Equal(t, "Target Program: Not specified at ETH Zurich", paras[2].Text())
}
