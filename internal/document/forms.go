package document

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// EntryID is the wizard's list key. The wizard stamps entries with a
// millisecond timestamp, older drafts use strings; both decode.
type EntryID string

// UnmarshalJSON accepts a JSON number or string.
func (id *EntryID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = EntryID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*id = EntryID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = EntryID(n.String())
	return nil
}

// PersonalInfoForm is the wizard's personal information step.
type PersonalInfoForm struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Location         string `json:"location"`
	LinkedIn         string `json:"linkedin"`
	Website          string `json:"website"`
	TargetProgram    string `json:"targetProgram"`
	TargetUniversity string `json:"targetUniversity"`
}

// EducationForm is one education entry.
type EducationForm struct {
	ID              EntryID `json:"id"`
	InstitutionName string  `json:"institutionName"`
	DegreeType      string  `json:"degreeType"`
	FieldOfStudy    string  `json:"fieldOfStudy"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	IsCurrent       bool    `json:"isCurrent"`
	GPA             string  `json:"gpa"`
	Achievements    string  `json:"achievements"`
}

// ExperienceForm is one work experience entry.
type ExperienceForm struct {
	ID          EntryID `json:"id"`
	JobTitle    string  `json:"jobTitle"`
	CompanyName string  `json:"companyName"`
	Location    string  `json:"location"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	IsCurrent   bool    `json:"isCurrent"`
	Description string  `json:"description"`
}

// ProjectForm is one project or research entry.
type ProjectForm struct {
	ID           EntryID `json:"id"`
	ProjectName  string  `json:"projectName"`
	Organization string  `json:"organization"`
	Role         string  `json:"role"`
	Technologies string  `json:"technologies"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	IsOngoing    bool    `json:"isOngoing"`
	Description  string  `json:"description"`
	URL          string  `json:"url"`
}

// SkillsForm is the wizard's skills step.
type SkillsForm struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Languages []string `json:"languages"`
	Tools     []string `json:"tools"`
}

// CertificationForm is one certification entry.
type CertificationForm struct {
	ID                  EntryID `json:"id"`
	Name                string  `json:"name"`
	IssuingOrganization string  `json:"issuingOrganization"`
	IssueDate           string  `json:"issueDate"`
	ExpiryDate          string  `json:"expiryDate"`
	CredentialID        string  `json:"credentialId"`
	CredentialURL       string  `json:"credentialUrl"`
}

// AwardForm is one award or achievement entry.
type AwardForm struct {
	ID          EntryID `json:"id"`
	Title       string  `json:"title"`
	Issuer      string  `json:"issuer"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// ActivityForm is one extracurricular activity entry.
type ActivityForm struct {
	ID           EntryID `json:"id"`
	ActivityName string  `json:"activityName"`
	Organization string  `json:"organization"`
	Role         string  `json:"role"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	IsOngoing    bool    `json:"isOngoing"`
	Description  string  `json:"description"`
}

// PublicationForm is one publication entry.
type PublicationForm struct {
	ID      EntryID `json:"id"`
	Title   string  `json:"title"`
	Authors string  `json:"authors"`
	Venue   string  `json:"venue"`
	Date    string  `json:"date"`
	URL     string  `json:"url"`
}

// ResumeForm is the Resume wizard's complete form state.
type ResumeForm struct {
	PersonalInfo   PersonalInfoForm    `json:"personalInfo"`
	Summary        string              `json:"summary"`
	Experience     []ExperienceForm    `json:"experience"`
	Education      []EducationForm     `json:"education"`
	Projects       []ProjectForm       `json:"projects"`
	Skills         SkillsForm          `json:"skills"`
	Certifications []CertificationForm `json:"certifications"`
	Awards         []AwardForm         `json:"awards"`
	Activities     []ActivityForm      `json:"activities"`
	Publications   []PublicationForm   `json:"publications"`
}

// StatementForm holds the free-text blocks of an SOP.
type StatementForm struct {
	Introduction           string `json:"introduction"`
	AcademicBackground     string `json:"academicBackground"`
	ProfessionalExperience string `json:"professionalExperience"`
	ResearchInterests      string `json:"researchInterests"`
	CareerGoals            string `json:"careerGoals"`
	WhyThisProgram         string `json:"whyThisProgram"`
	Conclusion             string `json:"conclusion"`
}

// SOPForm is the Statement of Purpose wizard's complete form state.
type SOPForm struct {
	PersonalInfo PersonalInfoForm `json:"personalInfo"`
	Statement    StatementForm    `json:"statement"`
	Education    []EducationForm  `json:"education"`
	Experience   []ExperienceForm `json:"experience"`
	Research     []ProjectForm    `json:"research"`
	Awards       []AwardForm      `json:"awards"`
}
