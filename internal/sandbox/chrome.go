package sandbox

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

// DefaultChromeTimeout bounds the lifetime of one browser surface.
const DefaultChromeTimeout = 60 * time.Second

// ChromeSandbox opens surfaces backed by a headless Chrome tab. Every surface
// runs in its own browser process, so documents never share state.
type ChromeSandbox struct {
	// ExecPath overrides the browser binary. Empty falls back to CHROME_PATH
	// and then to chromedp's lookup.
	ExecPath string
	// Timeout bounds the lifetime of each surface.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// NewChromeSandbox returns a sandbox with the default timeout.
func NewChromeSandbox(execPath string, logger zerolog.Logger) *ChromeSandbox {
	return &ChromeSandbox{ExecPath: execPath, Timeout: DefaultChromeTimeout, Logger: logger}
}

func (c *ChromeSandbox) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	path := c.ExecPath
	if path == "" {
		path = os.Getenv("CHROME_PATH")
	}
	if path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}
	return opts
}

// Open starts a browser, sizes its viewport and parks it on about:blank.
func (c *ChromeSandbox) Open(ctx context.Context, vp Viewport) (Surface, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultChromeTimeout
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, c.allocatorOptions()...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	runCtx, runCancel := context.WithTimeout(tabCtx, timeout)

	s := &chromeSurface{
		ctx: runCtx,
		cancel: func() {
			runCancel()
			tabCancel()
			allocCancel()
		},
		log: c.Logger,
	}

	err := chromedp.Run(runCtx,
		chromedp.EmulateViewport(int64(vp.Width), int64(vp.Height)),
		chromedp.Navigate("about:blank"),
	)
	if err != nil {
		s.cancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}
	c.Logger.Debug().Int("width", vp.Width).Int("height", vp.Height).Msg("browser surface opened")
	return s, nil
}

type chromeSurface struct {
	ctx       context.Context
	cancel    func()
	log       zerolog.Logger
	closeOnce sync.Once
}

// run executes actions on the tab, giving up early if the caller's ctx ends.
func (s *chromeSurface) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, s.cancel)
	defer stop()
	return chromedp.Run(s.ctx, actions...)
}

func (s *chromeSurface) Load(ctx context.Context, html string) error {
	return s.run(ctx,
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

func (s *chromeSurface) ContentHeight(ctx context.Context) (int, error) {
	var h float64
	err := s.run(ctx, chromedp.Evaluate(
		`Math.max(document.body.scrollHeight, document.body.getBoundingClientRect().height)`, &h))
	if err != nil {
		return 0, err
	}
	if math.IsNaN(h) || h < 0 {
		return 0, errors.New("invalid content height")
	}
	return int(math.Ceil(h)), nil
}

func (s *chromeSurface) Capture(ctx context.Context, scale float64) ([]byte, error) {
	var buf []byte
	if err := s.run(ctx, chromedp.ScreenshotScale("body", scale, &buf, chromedp.ByQuery, chromedp.NodeVisible)); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close closes the tab and shuts the browser down.
func (s *chromeSurface) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = chromedp.Cancel(s.ctx)
		s.cancel()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			err = nil
		}
		s.log.Debug().Msg("browser surface closed")
	})
	return err
}
