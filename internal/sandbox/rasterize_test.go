package sandbox

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rasterOpts() Options {
	opts := DefaultOptions()
	opts.Settle = fastSettle()
	return opts
}

func TestRasterize_Success(t *testing.T) {
	surface := &fakeSurface{png: solidPNG(40, 90)}
	sb := &fakeSandbox{surface: surface}

	img, err := Rasterize(context.Background(), sb, "<html></html>", rasterOpts())
	require.NoError(t, err)

	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
	assert.Equal(t, "<html></html>", surface.loaded)
	assert.Equal(t, DefaultViewport, surface.viewport)
	assert.Equal(t, 1, surface.captures)
	assert.Equal(t, 1, surface.closes)
}

func TestRasterize_ClosesSurfaceOnEveryFailure(t *testing.T) {
	cases := []struct {
		name    string
		surface *fakeSurface
		stage   Stage
	}{
		{"load", &fakeSurface{loadErr: errBoom}, StageLoad},
		{"capture", &fakeSurface{captureErr: errBoom}, StageCapture},
		{"decode", &fakeSurface{png: []byte("not a png")}, StageDecode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sb := &fakeSandbox{surface: tc.surface}

			img, err := Rasterize(context.Background(), sb, "<p>x</p>", rasterOpts())
			require.Error(t, err)
			assert.Nil(t, img)

			var stageErr *StageError
			require.True(t, errors.As(err, &stageErr))
			assert.Equal(t, tc.stage, stageErr.Stage)
			assert.Equal(t, 1, tc.surface.closes, "surface must be closed exactly once")
		})
	}
}

func TestRasterize_OpenFailure(t *testing.T) {
	sb := &fakeSandbox{openErr: errBoom, surface: &fakeSurface{}}

	_, err := Rasterize(context.Background(), sb, "", rasterOpts())
	require.Error(t, err)

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, StageCreate, stageErr.Stage)
	assert.ErrorIs(t, err, errBoom)
	assert.Zero(t, sb.surface.closes)
}

func TestRasterize_JoinsTeardownError(t *testing.T) {
	closeErr := errors.New("tab already gone")
	surface := &fakeSurface{captureErr: errBoom, closeErr: closeErr}
	sb := &fakeSandbox{surface: surface}

	_, err := Rasterize(context.Background(), sb, "", rasterOpts())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, err, closeErr)
}

func TestRasterize_TeardownFailureAfterCaptureFails(t *testing.T) {
	surface := &fakeSurface{png: solidPNG(10, 10), closeErr: errBoom}
	sb := &fakeSandbox{surface: surface}

	img, err := Rasterize(context.Background(), sb, "", rasterOpts())
	require.Error(t, err)
	assert.Nil(t, img)

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, StageTeardown, stageErr.Stage)
}

func TestRasterize_FallbackSettleStillCaptures(t *testing.T) {
	surface := &fakeSurface{heightErr: errBoom, png: solidPNG(8, 8)}
	sb := &fakeSandbox{surface: surface}

	img, err := Rasterize(context.Background(), sb, "", rasterOpts())
	require.NoError(t, err)
	assert.NotNil(t, img)
	assert.Equal(t, 1, surface.closes)
}
