package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/docexport/internal/document"
	"github.com/jonathan/docexport/internal/export"
	"github.com/jonathan/docexport/internal/rendering"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// exportRequest collects the path and query parameters of an export.
type exportRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=resume cv sop statement statement-of-purpose"`
	Format   string `json:"format" validate:"required,oneof=pdf word docx txt text"`
	Filename string `json:"filename" validate:"omitempty,max=200"`
}

// checkRequest validates req and converts the first failure to ErrValidation.
func checkRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("failed '%s' check", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("must be one of: %s", fe.Param())
			if fe.Tag() == "max" {
				msg = fmt.Sprintf("must be at most %s characters", fe.Param())
			}
		}
		return &ErrValidation{Field: fe.Field(), Message: msg}
	}
	return err
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// formatInfo describes one export format
type formatInfo struct {
	Format    string `json:"format"`
	Label     string `json:"label"`
	Extension string `json:"extension"`
	MimeType  string `json:"mime_type"`
}

// handleFormats lists the supported export formats
func (s *Server) handleFormats(w http.ResponseWriter, _ *http.Request) {
	var out []formatInfo
	for _, f := range export.Formats() {
		out = append(out, formatInfo{
			Format:    string(f),
			Label:     f.Label(),
			Extension: f.Extension(),
			MimeType:  f.MimeType(),
		})
	}
	s.jsonResponse(w, http.StatusOK, out)
}

// handleExport renders the posted wizard form and returns the file as an attachment
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	req := exportRequest{
		Kind:     strings.ToLower(r.PathValue("kind")),
		Format:   strings.ToLower(r.PathValue("format")),
		Filename: r.URL.Query().Get("filename"),
	}
	if err := checkRequest(req); err != nil {
		s.errorResponse(w, err)
		return
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "format", Message: err.Error()})
		return
	}

	doc, err := s.decodeDocument(w, r, req.Kind)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var artifact export.Artifact
	capture := export.SaverFunc(func(_ context.Context, a export.Artifact) error {
		artifact = a
		return nil
	})

	res := s.service.ExportTo(r.Context(), doc, format, req.Filename, capture)
	if !res.Success {
		s.jsonResponse(w, http.StatusInternalServerError, res)
		return
	}

	h := w.Header()
	h.Set("Content-Type", artifact.MimeType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	h.Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	h.Set("X-Export-ID", res.ExportID)
	if artifact.Pages > 0 {
		h.Set("X-Export-Pages", strconv.Itoa(artifact.Pages))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		s.log.Warn().Err(err).Str("export_id", res.ExportID).Msg("writing export response failed")
	}
}

// handlePreview returns the markup the PDF export would rasterize
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req := exportRequest{Kind: strings.ToLower(r.PathValue("kind")), Format: string(export.FormatPDF)}
	if err := checkRequest(req); err != nil {
		s.errorResponse(w, err)
		return
	}

	doc, err := s.decodeDocument(w, r, req.Kind)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	markup, err := rendering.RenderMarkup(doc)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, markup); err != nil {
		s.log.Warn().Err(err).Msg("writing preview response failed")
	}
}

// decodeDocument reads the form payload of r and builds a document of kind.
func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request, rawKind string) (*document.Document, error) {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return nil, &ErrUnsupportedMediaType{ContentType: ct}
		}
	}

	kind, err := document.ParseKind(rawKind)
	if err != nil {
		return nil, &ErrValidation{Field: "kind", Message: err.Error()}
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	if !json.Valid(payload) {
		return nil, &ErrValidation{Field: "body", Message: "request body is not valid JSON"}
	}
	return document.Decode(kind, payload, s.now())
}
