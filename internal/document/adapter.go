package document

import "time"

// sectionBuilder accumulates sections and remembers the first construction error.
type sectionBuilder struct {
	sections []Section
	err      error
}

func (b *sectionBuilder) add(role Role, content Content) {
	if b.err != nil {
		return
	}
	s, err := NewSection(role, "", content)
	if err != nil {
		b.err = err
		return
	}
	b.sections = append(b.sections, s)
}

func personalInfo(f PersonalInfoForm) PersonalInfo {
	return PersonalInfo{
		FullName:         CleanText(f.FullName),
		Email:            CleanText(f.Email),
		Phone:            CleanText(f.Phone),
		Location:         CleanText(f.Location),
		LinkedIn:         CleanText(f.LinkedIn),
		Website:          CleanText(f.Website),
		TargetProgram:    CleanText(f.TargetProgram),
		TargetUniversity: CleanText(f.TargetUniversity),
	}
}

// FromResumeForm builds a Resume document from the wizard's form state.
func FromResumeForm(f ResumeForm, now time.Time) (*Document, error) {
	b := &sectionBuilder{}
	b.add(RoleSummary, FreeText{Text: CleanText(f.Summary)})
	b.add(RoleExperience, mapEntries(f.Experience, experienceEntry))
	b.add(RoleEducation, mapEntries(f.Education, educationEntry))
	b.add(RoleProjects, mapEntries(f.Projects, projectEntry))
	b.add(RoleSkills, SkillGroups{Groups: []SkillGroup{
		{Category: "Technical Skills", Skills: f.Skills.Technical},
		{Category: "Tools & Technologies", Skills: f.Skills.Tools},
		{Category: "Soft Skills", Skills: f.Skills.Soft},
		{Category: "Languages", Skills: f.Skills.Languages},
	}})
	b.add(RoleCertifications, mapEntries(f.Certifications, certificationEntry))
	b.add(RoleAwards, mapEntries(f.Awards, awardEntry))
	b.add(RoleActivities, mapEntries(f.Activities, activityEntry))
	b.add(RolePublications, mapEntries(f.Publications, publicationEntry))
	if b.err != nil {
		return nil, b.err
	}

	return &Document{
		Kind:      KindResume,
		Author:    personalInfo(f.PersonalInfo),
		Sections:  b.sections,
		CreatedAt: now,
	}, nil
}

// FromSOPForm builds a Statement of Purpose document from the wizard's form state.
func FromSOPForm(f SOPForm, now time.Time) (*Document, error) {
	st := f.Statement
	b := &sectionBuilder{}
	b.add(RoleIntroduction, FreeText{Text: CleanText(st.Introduction)})
	b.add(RoleAcademicBackground, FreeText{Text: CleanText(st.AcademicBackground)})
	b.add(RoleEducation, mapEntries(f.Education, educationEntry))
	b.add(RoleProfessionalStory, FreeText{Text: CleanText(st.ProfessionalExperience)})
	b.add(RoleExperience, mapEntries(f.Experience, experienceEntry))
	b.add(RoleResearch, mapEntries(f.Research, projectEntry))
	b.add(RoleResearchInterests, FreeText{Text: CleanText(st.ResearchInterests)})
	b.add(RoleAwards, mapEntries(f.Awards, awardEntry))
	b.add(RoleCareerGoals, FreeText{Text: CleanText(st.CareerGoals)})
	b.add(RoleWhyProgram, FreeText{Text: CleanText(st.WhyThisProgram)})
	b.add(RoleConclusion, FreeText{Text: CleanText(st.Conclusion)})
	if b.err != nil {
		return nil, b.err
	}

	return &Document{
		Kind:      KindSOP,
		Author:    personalInfo(f.PersonalInfo),
		Sections:  b.sections,
		CreatedAt: now,
	}, nil
}
