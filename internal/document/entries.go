package document

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var degreeLabels = map[string]string{
	"highschool":  "High School Diploma",
	"high_school": "High School Diploma",
	"diploma":     "Diploma",
	"certificate": "Certificate",
	"associate":   "Associate Degree",
	"bachelor":    "Bachelor's Degree",
	"bachelors":   "Bachelor's Degree",
	"master":      "Master's Degree",
	"masters":     "Master's Degree",
	"mba":         "Master of Business Administration",
	"phd":         "Doctorate (PhD)",
	"doctorate":   "Doctorate (PhD)",
	"postdoc":     "Postdoctoral Fellowship",
}

var titleCaser = cases.Title(language.English)

// DegreeLabel maps the wizard's degreeType value to display text. Unknown
// values are title-cased; blank values become "Not specified".
func DegreeLabel(degreeType string) string {
	key := strings.ToLower(strings.TrimSpace(degreeType))
	if key == "" {
		return NotSpecified
	}
	if label, ok := degreeLabels[key]; ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// joinPresent joins the non-blank parts with sep.
func joinPresent(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := CleanText(p); v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, sep)
}

func educationEntry(f EducationForm) Entry {
	primary := DegreeLabel(f.DegreeType)
	if field := CleanText(f.FieldOfStudy); field != "" {
		primary += " in " + field
	}
	return Entry{
		ID:        string(f.ID),
		Primary:   primary,
		Secondary: Placeholder(f.InstitutionName, NotProvided),
		Dates:     DateRange{Start: f.StartDate, End: f.EndDate, Open: f.IsCurrent},
		Details: []Detail{
			{Label: "GPA", Value: f.GPA},
			{Label: "Achievements", Value: f.Achievements},
		},
	}
}

func experienceEntry(f ExperienceForm) Entry {
	return Entry{
		ID:          string(f.ID),
		Primary:     Placeholder(f.JobTitle, NotSpecified),
		Secondary:   Placeholder(joinPresent(", ", f.CompanyName, f.Location), NotProvided),
		Dates:       DateRange{Start: f.StartDate, End: f.EndDate, Open: f.IsCurrent},
		Description: CleanText(f.Description),
	}
}

func projectEntry(f ProjectForm) Entry {
	return Entry{
		ID:          string(f.ID),
		Primary:     Placeholder(f.ProjectName, NotSpecified),
		Secondary:   Placeholder(joinPresent(" at ", f.Role, f.Organization), NotSpecified),
		Dates:       DateRange{Start: f.StartDate, End: f.EndDate, Open: f.IsOngoing},
		Description: CleanText(f.Description),
		Details: []Detail{
			{Label: "Technologies", Value: f.Technologies},
			{Label: "Link", Value: f.URL},
		},
	}
}

func certificationEntry(f CertificationForm) Entry {
	return Entry{
		ID:        string(f.ID),
		Primary:   Placeholder(f.Name, NotSpecified),
		Secondary: Placeholder(f.IssuingOrganization, NotProvided),
		Dates:     DateRange{Start: f.IssueDate, Single: true},
		Details: []Detail{
			{Label: "Expires", Value: f.ExpiryDate},
			{Label: "Credential ID", Value: f.CredentialID},
			{Label: "Credential URL", Value: f.CredentialURL},
		},
	}
}

func awardEntry(f AwardForm) Entry {
	return Entry{
		ID:          string(f.ID),
		Primary:     Placeholder(f.Title, NotSpecified),
		Secondary:   Placeholder(f.Issuer, NotProvided),
		Dates:       DateRange{Start: f.Date, Single: true},
		Description: CleanText(f.Description),
	}
}

func activityEntry(f ActivityForm) Entry {
	return Entry{
		ID:          string(f.ID),
		Primary:     Placeholder(f.ActivityName, NotSpecified),
		Secondary:   Placeholder(joinPresent(" at ", f.Role, f.Organization), NotProvided),
		Dates:       DateRange{Start: f.StartDate, End: f.EndDate, Open: f.IsOngoing},
		Description: CleanText(f.Description),
	}
}

func publicationEntry(f PublicationForm) Entry {
	return Entry{
		ID:        string(f.ID),
		Primary:   Placeholder(f.Title, NotSpecified),
		Secondary: Placeholder(f.Venue, NotProvided),
		Dates:     DateRange{Start: f.Date, Single: true},
		Details: []Detail{
			{Label: "Authors", Value: f.Authors},
			{Label: "Link", Value: f.URL},
		},
	}
}

func mapEntries[T any](items []T, fn func(T) Entry) EntryList {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, fn(item))
	}
	return EntryList{Entries: entries}
}
