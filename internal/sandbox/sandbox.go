// Package sandbox lays out markup in an isolated rendering surface and
// captures it as a bitmap.
package sandbox

import "context"

// Viewport is the CSS pixel size of a rendering surface.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport is A4 at 96 DPI.
var DefaultViewport = Viewport{Width: 794, Height: 1123}

// DefaultScale is the device pixel ratio used for captures.
const DefaultScale = 2.0

// Sandbox creates rendering surfaces. Each export opens its own surface.
type Sandbox interface {
	Open(ctx context.Context, vp Viewport) (Surface, error)
}

// Surface is one isolated rendering context. Host page styles never reach it.
type Surface interface {
	// Load waits for the surface to be ready and replaces its document with html.
	Load(ctx context.Context, html string) error
	// ContentHeight reports the laid-out height of the body in CSS pixels.
	ContentHeight(ctx context.Context) (int, error)
	// Capture returns a PNG of the body at the given device scale.
	Capture(ctx context.Context, scale float64) ([]byte, error)
	// Close releases the surface. It is safe to call more than once.
	Close() error
}
