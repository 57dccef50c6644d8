package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/docexport/internal/document"
	"github.com/jonathan/docexport/internal/pagination"
	"github.com/jonathan/docexport/internal/rendering"
	"github.com/jonathan/docexport/internal/sandbox"
	"github.com/jonathan/docexport/internal/wordproc"
)

// ErrNoSandbox is returned for PDF exports when no sandbox is configured.
var ErrNoSandbox = errors.New("no rendering sandbox configured")

// ErrNoSaver is returned when an export has nowhere to deliver its file.
var ErrNoSaver = errors.New("no saver configured")

// Options configures a Service.
type Options struct {
	// Sandbox renders PDF source markup. Required for PDF exports only.
	Sandbox sandbox.Sandbox
	// Saver receives finished artifacts from Export.
	Saver Saver
	// Raster controls viewport, capture scale and layout settling.
	Raster sandbox.Options
	// PageSize of PDF exports. Zero means A4.
	PageSize pagination.PageSize
	// MaxWidthPx caps the bitmap width placed on PDF pages. Zero means
	// pagination.MaxWidthPx.
	MaxWidthPx int
	// Timeout bounds a single export. Zero means no limit beyond ctx.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Service dispatches documents to the renderer chain of each format. It holds
// only configuration, so one instance serves any number of concurrent calls.
type Service struct {
	sandbox  sandbox.Sandbox
	saver    Saver
	raster   sandbox.Options
	pageSize pagination.PageSize
	maxWidth int
	timeout  time.Duration
	log      zerolog.Logger
}

// NewService builds a Service from opts.
func NewService(opts Options) *Service {
	if opts.PageSize.WidthMM <= 0 || opts.PageSize.HeightMM <= 0 {
		opts.PageSize = pagination.A4
	}
	if opts.MaxWidthPx <= 0 {
		opts.MaxWidthPx = pagination.MaxWidthPx
	}
	if opts.Raster.Scale <= 0 {
		opts.Raster.Scale = sandbox.DefaultScale
	}
	if opts.Raster.Viewport.Width <= 0 || opts.Raster.Viewport.Height <= 0 {
		opts.Raster.Viewport = sandbox.DefaultViewport
	}
	opts.Raster.Logger = opts.Logger
	return &Service{
		sandbox:  opts.Sandbox,
		saver:    opts.Saver,
		raster:   opts.Raster,
		pageSize: opts.PageSize,
		maxWidth: opts.MaxWidthPx,
		timeout:  opts.Timeout,
		log:      opts.Logger,
	}
}

// Export renders doc in the requested format and hands the file to the
// configured Saver. filenameHint may be empty. Export never panics and never
// returns an error: every failure is reported in the Result.
func (s *Service) Export(ctx context.Context, doc *document.Document, format Format, filenameHint string) Result {
	return s.ExportTo(ctx, doc, format, filenameHint, s.saver)
}

// ExportTo is Export with a per-call Saver.
func (s *Service) ExportTo(ctx context.Context, doc *document.Document, format Format, filenameHint string, saver Saver) (res Result) {
	id := uuid.NewString()
	log := s.log.With().Str("export_id", id).Str("format", string(format)).Logger()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("export panicked")
			res = failureResult(id, format, fmt.Errorf("unexpected error: %v", r))
		}
	}()

	if doc == nil {
		return failureResult(id, format, errors.New("document is nil"))
	}
	if saver == nil {
		return failureResult(id, format, ErrNoSaver)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	artifact, err := s.Build(ctx, doc, format, filenameHint)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("export failed")
		return failureResult(id, format, err)
	}

	if err := saver.Save(ctx, artifact); err != nil {
		log.Error().Err(err).Str("filename", artifact.Filename).Msg("saving export failed")
		return failureResult(id, format, err)
	}

	log.Info().
		Str("filename", artifact.Filename).
		Int("bytes", len(artifact.Data)).
		Int("pages", artifact.Pages).
		Dur("elapsed", time.Since(start)).
		Msg("export completed")
	return successResult(id, artifact)
}

// Build runs the renderer chain for format and returns the complete file
// without saving it.
func (s *Service) Build(ctx context.Context, doc *document.Document, format Format, filenameHint string) (Artifact, error) {
	artifact := Artifact{
		Format:   format,
		Filename: ResolveFilename(doc, format, filenameHint),
		MimeType: format.MimeType(),
	}

	var err error
	switch format {
	case FormatText:
		artifact.Data = []byte(rendering.RenderText(doc))
	case FormatWord:
		artifact.Data, err = s.buildWord(ctx, doc)
	case FormatPDF:
		artifact.Data, artifact.Pages, err = s.buildPDF(ctx, doc)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return Artifact{}, err
	}
	return artifact, nil
}

func (s *Service) buildWord(ctx context.Context, doc *document.Document) ([]byte, error) {
	return wordproc.Pack(ctx, wordproc.Render(doc), wordproc.Meta{
		Title:     documentTitle(doc),
		Author:    doc.Author.DisplayName(),
		Generator: rendering.DefaultGenerator,
		Created:   doc.CreatedAt,
	})
}

func (s *Service) buildPDF(ctx context.Context, doc *document.Document) ([]byte, int, error) {
	if s.sandbox == nil {
		return nil, 0, ErrNoSandbox
	}

	html, err := rendering.RenderMarkup(doc)
	if err != nil {
		return nil, 0, err
	}

	img, err := sandbox.Rasterize(ctx, s.sandbox, html, s.raster)
	if err != nil {
		return nil, 0, err
	}

	strips := pagination.Slice(pagination.FitWidth(img, s.maxWidth), s.pageSize)
	data, err := pagination.Assemble(strips, s.pageSize, pagination.Meta{
		Title:   documentTitle(doc),
		Author:  doc.Author.DisplayName(),
		Creator: rendering.DefaultGenerator,
		Created: doc.CreatedAt,
	})
	if err != nil {
		return nil, 0, err
	}
	return data, len(strips), nil
}

func documentTitle(doc *document.Document) string {
	return doc.Author.DisplayName() + " - " + doc.Kind.Label()
}
