package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/jonathan/docexport/internal/document"
	"github.com/jonathan/docexport/internal/sandbox"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func janeDoe(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.FromResumeForm(document.ResumeForm{
		PersonalInfo: document.PersonalInfoForm{FullName: "Jane Doe"},
		Education: []document.EducationForm{{
			InstitutionName: "MIT",
			DegreeType:      "bachelor",
			IsCurrent:       false,
			EndDate:         "2020-05",
		}},
	}, fixedNow)
	require.NoError(t, err)
	return doc
}

func richResume(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.FromResumeForm(document.ResumeForm{
		PersonalInfo: document.PersonalInfoForm{FullName: "Jane Doe", Email: "jane@example.com", Website: "jane.dev"},
		Summary:      "Builds reliable systems.",
		Experience: []document.ExperienceForm{{
			JobTitle: "Engineer", CompanyName: "Acme", StartDate: "2021-01", EndDate: "2022-01", IsCurrent: true,
			Description: "Owned the export pipeline.",
		}},
		Projects: []document.ProjectForm{{ProjectName: "Parser", IsOngoing: true, StartDate: "2024-03", URL: "https://example.com/parser"}},
		Skills:   document.SkillsForm{Technical: []string{"Go"}, Languages: []string{"English", "German"}},
		Certifications: []document.CertificationForm{{
			Name: "CKA", IssuingOrganization: "CNCF", IssueDate: "2023-04", CredentialID: "ABC-123",
		}},
		Publications: []document.PublicationForm{{Title: "On Settling", Venue: "SysConf", Date: "2025", Authors: "J. Doe"}},
	}, fixedNow)
	require.NoError(t, err)
	return doc
}

// tallPNG encodes a white bitmap of the given size.
func tallPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

type fakeSandbox struct {
	mu      sync.Mutex
	png     []byte
	capErr  error
	panicOn string
	opened  int
	closed  int
	loaded  []string
}

func (f *fakeSandbox) Open(context.Context, sandbox.Viewport) (sandbox.Surface, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened++
	return &fakeSurface{parent: f}, nil
}

// live reports how many surfaces are open.
func (f *fakeSandbox) live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened - f.closed
}

type fakeSurface struct {
	parent *fakeSandbox
}

func (s *fakeSurface) Load(_ context.Context, html string) error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()
	s.parent.loaded = append(s.parent.loaded, html)
	return nil
}

func (s *fakeSurface) ContentHeight(context.Context) (int, error) {
	return 1200, nil
}

func (s *fakeSurface) Capture(context.Context, float64) ([]byte, error) {
	if s.parent.panicOn == "capture" {
		panic("renderer crashed")
	}
	if s.parent.capErr != nil {
		return nil, s.parent.capErr
	}
	return s.parent.png, nil
}

func (s *fakeSurface) Close() error {
	s.parent.mu.Lock()
	defer s.parent.mu.Unlock()
	s.parent.closed++
	return nil
}

func fastRaster() sandbox.Options {
	opts := sandbox.DefaultOptions()
	opts.Settle = sandbox.SettleOptions{Interval: time.Millisecond, StableSamples: 2, Timeout: time.Second, Fallback: time.Millisecond}
	return opts
}
