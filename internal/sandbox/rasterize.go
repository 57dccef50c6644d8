package sandbox

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"

	"github.com/rs/zerolog"
)

// Options configures one rasterization.
type Options struct {
	Viewport Viewport
	Scale    float64
	Settle   SettleOptions
	Logger   zerolog.Logger
}

// DefaultOptions returns an A4 viewport at 2x with the default settle policy.
func DefaultOptions() Options {
	return Options{
		Viewport: DefaultViewport,
		Scale:    DefaultScale,
		Settle:   DefaultSettleOptions(),
		Logger:   zerolog.Nop(),
	}
}

// Rasterize opens a surface, loads html, waits for layout to settle and
// captures the body as a bitmap. The surface is closed on every path; a
// close failure is joined into the returned error.
func Rasterize(ctx context.Context, sb Sandbox, html string, opts Options) (img image.Image, err error) {
	if opts.Viewport.Width <= 0 || opts.Viewport.Height <= 0 {
		opts.Viewport = DefaultViewport
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	log := opts.Logger

	surface, err := sb.Open(ctx, opts.Viewport)
	if err != nil {
		return nil, &StageError{Stage: StageCreate, Cause: err}
	}
	defer func() {
		if cerr := surface.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("sandbox teardown failed")
			err = errors.Join(err, &StageError{Stage: StageTeardown, Cause: cerr})
			img = nil
		}
	}()

	if err := surface.Load(ctx, html); err != nil {
		return nil, &StageError{Stage: StageLoad, Cause: err}
	}

	settled, err := Settle(ctx, surface, opts.Settle)
	if err != nil {
		return nil, &StageError{Stage: StageSettle, Cause: err}
	}
	log.Debug().
		Str("outcome", string(settled.Outcome)).
		Int("height", settled.Height).
		Int("samples", settled.Samples).
		Msg("layout settled")

	raw, err := surface.Capture(ctx, opts.Scale)
	if err != nil {
		return nil, &StageError{Stage: StageCapture, Cause: err}
	}

	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Cause: err}
	}
	log.Debug().
		Int("width", decoded.Bounds().Dx()).
		Int("height", decoded.Bounds().Dy()).
		Msg("captured bitmap")
	return decoded, nil
}
