package document

// Role is the explicit section-kind tag. Renderers dispatch on the role's
// content variant instead of inspecting which entry fields happen to be set.
type Role string

const (
	RoleSummary        Role = "summary"
	RoleEducation      Role = "education"
	RoleExperience     Role = "experience"
	RoleProjects       Role = "projects"
	RoleResearch       Role = "research"
	RoleSkills         Role = "skills"
	RoleCertifications Role = "certifications"
	RoleAwards         Role = "awards"
	RoleActivities     Role = "activities"
	RolePublications   Role = "publications"

	RoleIntroduction       Role = "introduction"
	RoleAcademicBackground Role = "academic_background"
	RoleProfessionalStory  Role = "professional_experience"
	RoleResearchInterests  Role = "research_interests"
	RoleCareerGoals        Role = "career_goals"
	RoleWhyProgram         Role = "why_program"
	RoleConclusion         Role = "conclusion"
)

type roleInfo struct {
	title     string
	content   ContentKind
	openLabel string
}

var roles = map[Role]roleInfo{
	RoleSummary:        {"Professional Summary", ContentFreeText, ""},
	RoleEducation:      {"Education", ContentEntryList, OpenPresent},
	RoleExperience:     {"Work Experience", ContentEntryList, OpenPresent},
	RoleProjects:       {"Projects", ContentEntryList, OpenOngoing},
	RoleResearch:       {"Research Experience", ContentEntryList, OpenOngoing},
	RoleSkills:         {"Skills", ContentSkillGroups, ""},
	RoleCertifications: {"Certifications", ContentEntryList, OpenPresent},
	RoleAwards:         {"Awards & Achievements", ContentEntryList, OpenPresent},
	RoleActivities:     {"Extracurricular Activities", ContentEntryList, OpenOngoing},
	RolePublications:   {"Publications", ContentEntryList, OpenPresent},

	RoleIntroduction:       {"Introduction", ContentFreeText, ""},
	RoleAcademicBackground: {"Academic Background", ContentFreeText, ""},
	RoleProfessionalStory:  {"Professional Experience", ContentFreeText, ""},
	RoleResearchInterests:  {"Research Interests", ContentFreeText, ""},
	RoleCareerGoals:        {"Career Goals", ContentFreeText, ""},
	RoleWhyProgram:         {"Why This Program", ContentFreeText, ""},
	RoleConclusion:         {"Conclusion", ContentFreeText, ""},
}

// Known reports whether the role is one the renderers understand.
func (r Role) Known() bool {
	_, ok := roles[r]
	return ok
}

// ContentKind returns the content variant a section of this role always carries.
// Unknown roles are treated as free text.
func (r Role) ContentKind() ContentKind {
	if info, ok := roles[r]; ok {
		return info.content
	}
	return ContentFreeText
}

// DefaultTitle is the header used when a section is built without one.
func (r Role) DefaultTitle() string {
	if info, ok := roles[r]; ok {
		return info.title
	}
	return string(r)
}

// OpenEndedLabel is the word shown instead of an end date for current entries:
// "Present" for education and work, "Ongoing" for projects and activities.
func (r Role) OpenEndedLabel() string {
	if info, ok := roles[r]; ok && info.openLabel != "" {
		return info.openLabel
	}
	return OpenPresent
}
