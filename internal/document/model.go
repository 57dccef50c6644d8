// Package document provides the format-agnostic model of an application document
// (Statement of Purpose or Resume) that every export renderer walks.
package document

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies which wizard produced a document.
type Kind string

const (
	KindSOP    Kind = "sop"
	KindResume Kind = "resume"
)

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sop", "statement", "statement-of-purpose":
		return KindSOP, nil
	case "resume", "cv":
		return KindResume, nil
	default:
		return "", fmt.Errorf("unknown document kind %q (want sop or resume)", s)
	}
}

// Label returns the human readable name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindSOP:
		return "Statement of Purpose"
	case KindResume:
		return "Resume"
	default:
		return "Document"
	}
}

// Slug is the filename-safe form of the kind, used when no author name is known.
func (k Kind) Slug() string {
	switch k {
	case KindSOP:
		return "Statement_of_Purpose"
	case KindResume:
		return "Resume"
	default:
		return "Document"
	}
}

// Document is the canonical in-memory representation of an SOP or Resume.
// It is built fresh from wizard form state before every export and discarded afterwards.
type Document struct {
	Kind     Kind
	Author   PersonalInfo
	Sections []Section
	// CreatedAt drives the footer date and the default filename date.
	CreatedAt time.Time
}

// PersonalInfo holds the title block of a document.
type PersonalInfo struct {
	FullName         string
	Email            string
	Phone            string
	Location         string
	LinkedIn         string
	Website          string
	TargetProgram    string
	TargetUniversity string
}

// DisplayName returns the author's name or the "Your Name" placeholder.
func (p PersonalInfo) DisplayName() string {
	return Placeholder(p.FullName, YourName)
}

// ContactParts returns the contact fields in display order. Email, phone and
// location always appear (with placeholders); links only when present.
func (p PersonalInfo) ContactParts() []string {
	parts := []string{
		Placeholder(p.Email, NotProvided),
		Placeholder(p.Phone, NotProvided),
		Placeholder(p.Location, NotProvided),
	}
	if v := CleanText(p.LinkedIn); v != "" {
		parts = append(parts, v)
	}
	if v := CleanText(p.Website); v != "" {
		parts = append(parts, v)
	}
	return parts
}

// TargetLine returns "Target Program: X at Y" for SOP documents and "" otherwise.
func (d *Document) TargetLine() string {
	if d.Kind != KindSOP {
		return ""
	}
	return fmt.Sprintf("Target Program: %s at %s",
		Placeholder(d.Author.TargetProgram, NotSpecified),
		Placeholder(d.Author.TargetUniversity, NotSpecified))
}

// VisibleSections returns the sections that have content, in document order.
func (d *Document) VisibleSections() []Section {
	out := make([]Section, 0, len(d.Sections))
	for _, s := range d.Sections {
		if !s.IsEmpty() {
			out = append(out, s)
		}
	}
	return out
}

// Section is a named, ordered block of a document.
type Section struct {
	Role    Role
	Title   string
	Content Content
}

// NewSection builds a section and checks that the content variant matches the role.
func NewSection(role Role, title string, content Content) (Section, error) {
	if content == nil {
		return Section{}, fmt.Errorf("section %q: nil content", role)
	}
	if want := role.ContentKind(); content.kind() != want {
		return Section{}, fmt.Errorf("section %q: expected %s content, got %s", role, want, content.kind())
	}
	if strings.TrimSpace(title) == "" {
		title = role.DefaultTitle()
	}
	return Section{Role: role, Title: title, Content: content}, nil
}

// IsEmpty reports whether the section has nothing to render.
func (s Section) IsEmpty() bool {
	if s.Content == nil {
		return true
	}
	return s.Content.empty()
}

// ContentKind names one of the three section content variants.
type ContentKind string

const (
	ContentFreeText    ContentKind = "free_text"
	ContentEntryList   ContentKind = "entry_list"
	ContentSkillGroups ContentKind = "skill_groups"
)

// Content is the sealed sum type of section bodies: FreeText, EntryList or SkillGroups.
type Content interface {
	kind() ContentKind
	empty() bool
}

// FreeText is a single block of prose.
type FreeText struct {
	Text string
}

func (FreeText) kind() ContentKind { return ContentFreeText }
func (t FreeText) empty() bool     { return CleanText(t.Text) == "" }

// EntryList is an ordered list of structured records.
type EntryList struct {
	Entries []Entry
}

func (EntryList) kind() ContentKind { return ContentEntryList }
func (l EntryList) empty() bool     { return len(l.Entries) == 0 }

// SkillGroups is an ordered mapping of category name to skills.
type SkillGroups struct {
	Groups []SkillGroup
}

// SkillGroup is one category of skills.
type SkillGroup struct {
	Category string
	Skills   []string
}

func (SkillGroups) kind() ContentKind { return ContentSkillGroups }

func (g SkillGroups) empty() bool {
	for _, grp := range g.Groups {
		if len(grp.NonEmpty()) > 0 {
			return false
		}
	}
	return true
}

// NonEmpty returns the cleaned skills, dropping values that clean to nothing.
func (g SkillGroup) NonEmpty() []string {
	out := make([]string, 0, len(g.Skills))
	for _, s := range g.Skills {
		if v := CleanText(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Line renders "Category: a, b, c".
func (g SkillGroup) Line() string {
	return g.Category + ": " + strings.Join(g.NonEmpty(), ", ")
}

// Entry is one record in a list section, already normalized into the
// primary / secondary / dates hierarchy every renderer reproduces.
type Entry struct {
	// ID keys the entry in the wizard's lists; it is never rendered.
	ID          string
	Primary     string
	Secondary   string
	Dates       DateRange
	Description string
	Details     []Detail
}

// Detail is an optional labelled line of an entry.
type Detail struct {
	Label string
	Value string
}

// Line renders "Label: value".
func (d Detail) Line() string {
	return d.Label + ": " + d.Value
}

// PresentDetails returns the details whose cleaned value is not blank.
func (e Entry) PresentDetails() []Detail {
	out := make([]Detail, 0, len(e.Details))
	for _, d := range e.Details {
		if v := CleanText(d.Value); v != "" {
			out = append(out, Detail{Label: d.Label, Value: v})
		}
	}
	return out
}

// HasDescription reports whether the description is non-blank once cleaned.
func (e Entry) HasDescription() bool {
	return CleanText(e.Description) != ""
}
