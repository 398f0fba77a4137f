// internal/acquire/acquire.go
// The acquisition engine drives a headless browser tab to load a target page,
// capture the rendered document and harvest computed styles, and take
// full-page screenshots at a desktop and a mobile viewport.
package acquire

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
	"github.com/xkilldash9x/storeforge/internal/browser"
	"github.com/xkilldash9x/storeforge/internal/config"
	"github.com/xkilldash9x/storeforge/internal/extract"
)

// Viewport dimensions for the two capture passes.
const (
	desktopWidth  = 1920
	desktopHeight = 1080
	mobileWidth   = 375
	mobileHeight  = 667

	screenshotQuality = 90
)

// Error is the typed acquisition failure: navigation error, timeout or
// browser crash. It is fatal to the analyze request that triggered it.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("acquisition of %s failed: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Engine captures rendered pages through the shared browser manager.
type Engine struct {
	browser *browser.Manager
	cfg     *config.Config
	logger  *zap.Logger
}

var _ schemas.Acquirer = (*Engine)(nil)

// NewEngine creates an acquisition engine on top of the shared browser.
func NewEngine(mgr *browser.Manager, cfg *config.Config, logger *zap.Logger) *Engine {
	return &Engine{
		browser: mgr,
		cfg:     cfg,
		logger:  logger.Named("acquisition"),
	}
}

// Acquire loads the URL in a fresh tab and returns the capture. The desktop
// pass navigates at 1920x1080 and records document, style harvest and a
// full-page screenshot; the mobile pass re-navigates the same URL at 375x667
// with the mobile flag set, because a viewport change alone does not reflow
// layout the way a real mobile load does. Each navigation is bounded by the
// configured navigation timeout.
func (e *Engine) Acquire(ctx context.Context, url string) (*schemas.Capture, error) {
	start := time.Now()
	var capture schemas.Capture

	err := e.browser.WithTab(ctx, func(tab context.Context) error {
		var (
			html           string
			harvestPayload string
			desktop        []byte
			mobile         []byte
		)

		if err := e.runNavigation(tab, chromedp.Tasks{
			emulation.SetDeviceMetricsOverride(desktopWidth, desktopHeight, 1.0, false),
			chromedp.Navigate(url),
			chromedp.Sleep(e.cfg.Network.PostLoadWait),
			chromedp.OuterHTML("html", &html, chromedp.ByQuery),
			chromedp.Evaluate(extract.HarvestScript, &harvestPayload),
			chromedp.FullScreenshot(&desktop, screenshotQuality),
		}); err != nil {
			return fmt.Errorf("desktop pass: %w", err)
		}

		if err := e.runNavigation(tab, chromedp.Tasks{
			emulation.SetDeviceMetricsOverride(mobileWidth, mobileHeight, 2.0, true),
			chromedp.Navigate(url),
			chromedp.Sleep(e.cfg.Network.PostLoadWait),
			chromedp.FullScreenshot(&mobile, screenshotQuality),
		}); err != nil {
			return fmt.Errorf("mobile pass: %w", err)
		}

		harvest, err := extract.DecodeHarvest(harvestPayload)
		if err != nil {
			// Losing the style harvest degrades the analysis but does not
			// fail the acquisition.
			e.logger.Warn("Style harvest unreadable; proceeding without computed styles.",
				zap.String("url", url), zap.Error(err))
		}

		capture = schemas.Capture{
			URL:    url,
			HTML:   html,
			Styles: harvest,
			Screenshots: schemas.Screenshots{
				Desktop: desktop,
				Mobile:  mobile,
			},
			CapturedAt: time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}

	e.logger.Info("Page acquired.",
		zap.String("url", url),
		zap.Int("html_bytes", len(capture.HTML)),
		zap.Duration("elapsed", time.Since(start)))
	return &capture, nil
}

// runNavigation executes one navigation pass under the navigation timeout.
func (e *Engine) runNavigation(tab context.Context, tasks chromedp.Tasks) error {
	timeout := e.cfg.Network.NavigationTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	navCtx, cancel := context.WithTimeout(tab, timeout)
	defer cancel()
	return chromedp.Run(navCtx, tasks)
}
