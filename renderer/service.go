package renderer

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultMaxBrowserUses = 50
	defaultRenderTimeout  = 30 * time.Second
)

// Config configures the shared PDF rendering service.
type Config struct {
	// ExecPath points at the Chrome/Chromium binary. Empty means chromedp's
	// default lookup.
	ExecPath string
	// MaxBrowserUses is how many renders a browser process serves before it
	// is recycled. Zero means the default.
	MaxBrowserUses int
	// Timeout bounds a single render. Zero means the default.
	Timeout time.Duration
	Logger  *zap.Logger
}

// browserHandle owns one headless browser process. refs counts in-flight
// renders so a retired browser is only closed after the last one finishes.
type browserHandle struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	uses        int
	refs        int
	retired     bool
}

func (h *browserHandle) close() {
	if h.cancel != nil {
		h.cancel()
	}
	if h.allocCancel != nil {
		h.allocCancel()
	}
}

// Service renders HTML documents to PDF through a shared headless browser.
// Each render gets a fresh page; the browser process itself is reused across
// renders and recycled after MaxBrowserUses to keep memory bounded.
type Service struct {
	cfg    Config
	logger *zap.Logger

	mu       sync.Mutex
	handle   *browserHandle
	launches int

	// launch is swappable in tests.
	launch func() (*browserHandle, error)
}

// NewService creates the rendering service. The browser is launched lazily on
// the first render.
func NewService(cfg Config) *Service {
	if cfg.MaxBrowserUses <= 0 {
		cfg.MaxBrowserUses = defaultMaxBrowserUses
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRenderTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	s := &Service{cfg: cfg, logger: cfg.Logger}
	s.launch = s.launchBrowser
	return s
}

func (s *Service) launchBrowser() (*browserHandle, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
	)
	if s.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(s.cfg.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	// Start the process now so launch failures surface here, not mid-render.
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		allocCancel()
		return nil, err
	}
	return &browserHandle{ctx: browserCtx, cancel: cancel, allocCancel: allocCancel}, nil
}

// acquire returns a live browser handle, launching or recycling as needed,
// and charges one use against it.
func (s *Service) acquire() (*browserHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.handle
	if h == nil || h.ctx.Err() != nil || h.uses >= s.cfg.MaxBrowserUses {
		if h != nil {
			h.retired = true
			if h.refs == 0 {
				h.close()
			}
			s.logger.Info("recycling headless browser", zap.Int("uses", h.uses))
		}
		nh, err := s.launch()
		if err != nil {
			s.handle = nil
			return nil, err
		}
		s.handle = nh
		s.launches++
		browserLaunches.Inc()
		h = nh
	}
	h.uses++
	h.refs++
	return h, nil
}

func (s *Service) release(h *browserHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.refs--
	if h.retired && h.refs == 0 {
		h.close()
	}
}

// Render converts an HTML document into PDF bytes. The browser loads the
// markup directly (no network fetch) and prints once the DOM is ready.
func (s *Service) Render(ctx context.Context, html string, opts Options) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		rendersTotal.WithLabelValues("invalid").Inc()
		return nil, NewRenderError(ErrCodeInvalidHTML, "empty HTML document", nil)
	}
	opts = opts.withDefaults()

	h, err := s.acquire()
	if err != nil {
		rendersTotal.WithLabelValues("browser_failed").Inc()
		return nil, NewRenderError(ErrCodeBrowserFailed, "failed to launch headless browser", err)
	}
	defer s.release(h)

	// One tab per render, closed on every exit path.
	tabCtx, tabCancel := chromedp.NewContext(h.ctx)
	defer tabCancel()

	runCtx, cancel := context.WithTimeout(tabCtx, s.cfg.Timeout)
	defer cancel()

	// Propagate caller cancellation into the chromedp run.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	start := time.Now()
	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(cctx context.Context) error {
			tree, err := page.GetFrameTree().Do(cctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(cctx)
		}),
		chromedp.ActionFunc(func(cctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(opts.PrintBackground).
				WithLandscape(opts.Landscape).
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				WithMarginTop(opts.MarginTop).
				WithMarginRight(opts.MarginRight).
				WithMarginBottom(opts.MarginBottom).
				WithMarginLeft(opts.MarginLeft).
				Do(cctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	renderDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, s.classify(h, runCtx, err)
	}
	if len(pdf) == 0 {
		rendersTotal.WithLabelValues("failed").Inc()
		return nil, NewRenderError(ErrCodeRenderFailed, "browser returned an empty document", nil)
	}
	rendersTotal.WithLabelValues("ok").Inc()
	return pdf, nil
}

func (s *Service) classify(h *browserHandle, runCtx context.Context, err error) error {
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		rendersTotal.WithLabelValues("timeout").Inc()
		return NewRenderError(ErrCodeRenderTimeout, "render timed out", err)
	case h.ctx.Err() != nil:
		// The browser process itself died; the next render relaunches.
		rendersTotal.WithLabelValues("browser_failed").Inc()
		s.logger.Warn("headless browser died mid-render", zap.Error(err))
		return NewRenderError(ErrCodeBrowserFailed, "headless browser terminated", err)
	default:
		rendersTotal.WithLabelValues("failed").Inc()
		return NewRenderError(ErrCodeRenderFailed, "failed to render document", err)
	}
}

// Shutdown retires the current browser. In-flight renders finish first; new
// renders after Shutdown launch a fresh browser.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle != nil {
		s.handle.retired = true
		if s.handle.refs == 0 {
			s.handle.close()
		}
		s.handle = nil
	}
}
