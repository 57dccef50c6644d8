package rendering

import (
	"testing"
	"time"

	"github.com/jonathan/docexport/internal/document"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func janeDoeResume(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.FromResumeForm(document.ResumeForm{
		PersonalInfo: document.PersonalInfoForm{FullName: "Jane Doe", Email: "jane@example.com"},
		Education: []document.EducationForm{{
			ID:              "1",
			InstitutionName: "MIT",
			DegreeType:      "bachelor",
			IsCurrent:       false,
			EndDate:         "2020-05",
		}},
	}, fixedNow)
	require.NoError(t, err)
	return doc
}

func fullResume(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.FromResumeForm(document.ResumeForm{
		PersonalInfo: document.PersonalInfoForm{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Location: "Boston, MA",
			LinkedIn: "linkedin.com/in/janedoe",
		},
		Summary: "Backend engineer focused on data pipelines.",
		Experience: []document.ExperienceForm{{
			JobTitle:    "Software Engineer",
			CompanyName: "Acme Corp",
			Location:    "Remote",
			StartDate:   "2021-01",
			EndDate:     "2024-01",
			IsCurrent:   true,
			Description: "Built the billing export service.",
		}},
		Education: []document.EducationForm{{
			InstitutionName: "MIT",
			DegreeType:      "bachelor",
			FieldOfStudy:    "Computer Science",
			StartDate:       "2016-09",
			EndDate:         "2020-05",
			GPA:             "4.8",
		}},
		Projects: []document.ProjectForm{{
			ProjectName:  "Tiny Compiler",
			Role:         "Author",
			Technologies: "Go, LLVM",
			StartDate:    "2023-02",
			IsOngoing:    true,
		}},
		Skills: document.SkillsForm{
			Technical: []string{"Go", "PostgreSQL"},
			Soft:      []string{"Mentoring"},
		},
		Awards: []document.AwardForm{{Title: "Dean's List", Issuer: "MIT", Date: "2019-06"}},
	}, fixedNow)
	require.NoError(t, err)
	return doc
}
