// internal/browser/manager.go
package browser

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/xkilldash9x/storeforge/internal/config"
)

const launchProbeTimeout = 30 * time.Second

// Manager owns the single long-lived headless browser process shared by all
// acquisitions. The process is launched lazily on first use; each call runs
// in its own tab so concurrent scrapes never share page state. A weighted
// semaphore bounds concurrent tab creation.
type Manager struct {
	logger *zap.Logger
	cfg    *config.Config

	// allocatorCtx manages the browser process. Tab contexts derive from it.
	allocatorCtx    context.Context
	allocatorCancel context.CancelFunc

	tabs *semaphore.Weighted

	// wg tracks active tabs for a graceful shutdown.
	wg sync.WaitGroup

	initOnce sync.Once
	initErr  error
}

// NewManager creates a browser manager. The browser process itself is not
// started until the first tab is requested.
func NewManager(cfg *config.Config, logger *zap.Logger) *Manager {
	concurrency := cfg.Browser.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Manager{
		logger: logger.Named("browser_manager"),
		cfg:    cfg,
		tabs:   semaphore.NewWeighted(concurrency),
	}
}

// initialize launches the browser process exactly once and probes it for
// liveness. The allocator is parented on the background context so the
// process outlives the request that happened to trigger the launch.
func (m *Manager) initialize() error {
	m.initOnce.Do(func() {
		m.logger.Info("Launching headless browser process...")

		allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), m.buildAllocatorOptions()...)
		m.allocatorCtx = allocCtx
		m.allocatorCancel = cancel

		probeCtx, cancelProbe := context.WithTimeout(allocCtx, launchProbeTimeout)
		probeCtx, cancelTab := chromedp.NewContext(probeCtx)
		defer cancelTab()
		defer cancelProbe()

		if err := chromedp.Run(probeCtx, chromedp.Navigate("about:blank")); err != nil {
			m.allocatorCancel()
			m.initErr = fmt.Errorf("browser failed to start or respond: %w", err)
			return
		}

		m.logger.Info("Browser launched successfully and is responsive.")
	})
	return m.initErr
}

// buildAllocatorOptions assembles the flags for the shared browser process.
func (m *Manager) buildAllocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", m.cfg.Browser.Headless),
		chromedp.Flag("ignore-certificate-errors", m.cfg.Browser.IgnoreTLSErrors),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-gpu", m.cfg.Browser.Headless),
	)

	// Flags required for running inside containers.
	if runtime.GOOS == "linux" {
		opts = append(opts,
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)
	}

	// Custom arguments from config, either --flag or --flag=value form.
	for _, arg := range m.cfg.Browser.Args {
		parts := strings.SplitN(strings.TrimPrefix(arg, "--"), "=", 2)
		if len(parts) == 2 {
			opts = append(opts, chromedp.Flag(parts[0], parts[1]))
		} else {
			opts = append(opts, chromedp.Flag(parts[0], true))
		}
	}

	return opts
}

// WithTab runs fn inside a fresh browser tab and guarantees the tab is
// closed afterwards, even when fn fails. It blocks while the concurrency cap
// is saturated, honoring ctx cancellation.
func (m *Manager) WithTab(ctx context.Context, fn func(tab context.Context) error) error {
	if err := m.initialize(); err != nil {
		return err
	}

	if err := m.tabs.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for a free browser tab: %w", err)
	}
	defer m.tabs.Release(1)

	m.wg.Add(1)
	defer m.wg.Done()

	tabCtx, cancel := chromedp.NewContext(m.allocatorCtx)
	defer cancel()

	return fn(tabCtx)
}

// Shutdown waits for active tabs to finish (up to the ctx deadline) and then
// terminates the browser process.
func (m *Manager) Shutdown(ctx context.Context) error {
	if m.allocatorCancel == nil {
		return nil
	}
	m.logger.Info("Browser manager shutdown initiated. Waiting for active tabs...")

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All tabs closed.")
	case <-ctx.Done():
		m.logger.Warn("Shutdown deadline exceeded. Forcing browser termination.", zap.Error(ctx.Err()))
	}

	m.allocatorCancel()
	<-m.allocatorCtx.Done()
	return nil
}
