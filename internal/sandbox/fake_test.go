package sandbox

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
)

// fakeSandbox records calls and returns scripted results.
type fakeSandbox struct {
	openErr error
	surface *fakeSurface
	opened  int
}

func (f *fakeSandbox) Open(_ context.Context, vp Viewport) (Surface, error) {
	f.opened++
	if f.openErr != nil {
		return nil, f.openErr
	}
	f.surface.viewport = vp
	return f.surface, nil
}

type fakeSurface struct {
	mu         sync.Mutex
	viewport   Viewport
	heights    []int
	heightErr  error
	loadErr    error
	captureErr error
	closeErr   error
	png        []byte

	loaded   string
	probes   int
	captures int
	closes   int
}

func (f *fakeSurface) Load(_ context.Context, html string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded = html
	return f.loadErr
}

func (f *fakeSurface) ContentHeight(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.heightErr != nil {
		return 0, f.heightErr
	}
	i := f.probes
	f.probes++
	if len(f.heights) == 0 {
		return 100, nil
	}
	if i >= len(f.heights) {
		return f.heights[len(f.heights)-1], nil
	}
	return f.heights[i], nil
}

func (f *fakeSurface) Capture(context.Context, float64) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.captures++
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	return f.png, nil
}

func (f *fakeSurface) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
	return f.closeErr
}

func solidPNG(w, h int) []byte {
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

var errBoom = errors.New("boom")
