package session

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/Danik911/dublin-accommodation-bot/config"
	"github.com/Danik911/dublin-accommodation-bot/utils"
)

// State is the lifecycle state of the browser session.
type State int

const (
	Uninitialized State = iota
	Launched
	AwaitingManualAuth
	Authenticated
	Failed
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Launched:
		return "Launched"
	case AwaitingManualAuth:
		return "AwaitingManualAuth"
	case Authenticated:
		return "Authenticated"
	case Failed:
		return "Failed"
	case Closed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// loggedInProbe checks the ranked chain of logged-in marker selectors. Any
// visible match means the manual login completed.
const loggedInProbe = `
	(function() {
		var selectors = [
			'[aria-label="Your profile"]',
			'[data-testid="blue_bar_profile_link"]',
			'[aria-label="Account"]'
		];
		for (var i = 0; i < selectors.length; i++) {
			var el = document.querySelector(selectors[i]);
			if (el && el.offsetParent !== null) return true;
		}
		return false;
	})()
`

// Controller owns the single authenticated browser session for a run. No
// other component opens a competing session; extraction and filtering go
// through it.
type Controller struct {
	cfg    *config.Config
	logger *utils.Logger
	retry  *utils.RetryConfig

	mu    sync.Mutex
	state State

	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
	closeOnce     sync.Once
}

// New creates a Controller in the Uninitialized state.
func New(cfg *config.Config, logger *utils.Logger) *Controller {
	return &Controller{
		cfg:    cfg,
		logger: logger,
		state:  Uninitialized,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Start launches the browser and navigates to the marketplace origin. The
// browser runs headful by default so the user can perform the login.
func (c *Controller) Start(ctx context.Context) error {
	if c.State() != Uninitialized {
		return fmt.Errorf("session already started (state %s)", c.State())
	}

	chromeBin := findChromeBinary(c.cfg.ChromeBin)
	if chromeBin != "" {
		c.logger.Info("[session] Using browser binary: %s", chromeBin)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("window-size", "1366,768"),
		chromedp.Flag("lang", c.cfg.Locale),
		chromedp.Env("TZ="+c.cfg.Timezone),
		chromedp.UserAgent(c.cfg.UserAgent),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))

	c.cancelAlloc = cancelAlloc
	c.cancelBrowser = cancelBrowser
	c.browserCtx = browserCtx

	if err := c.Navigate(ctx, c.cfg.MarketplaceURL); err != nil {
		c.Close()
		return fmt.Errorf("session launch: %w", err)
	}

	c.setState(Launched)
	c.logger.Info("[session] Browser launched — state %s", c.State())
	return nil
}

// AwaitLogin waits for an externally-performed login. It prints the manual
// instructions, then polls the logged-in marker chain until the configured
// wait elapses. Success moves the session to Authenticated; timeout moves
// it to Failed and returns an *AuthenticationError.
func (c *Controller) AwaitLogin(ctx context.Context) error {
	if c.State() != Launched {
		return fmt.Errorf("cannot await login from state %s", c.State())
	}
	c.setState(AwaitingManualAuth)

	wait := time.Duration(c.cfg.AuthWaitSec) * time.Second
	c.logger.Info("[session] MANUAL AUTHENTICATION REQUIRED")
	c.logger.Info("[session]   1. Log in to the site in the opened browser window")
	c.logger.Info("[session]   2. Wait until your home feed is visible")
	c.logger.Info("[session]   Login is detected automatically (up to %s)", wait)

	deadline := time.Now().Add(wait)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			c.setState(Failed)
			return &AuthenticationError{Waited: time.Since(deadline.Add(-wait))}
		case <-time.After(2 * time.Second):
		}

		var loggedIn bool
		probeCtx, cancel := context.WithTimeout(c.browserCtx, 5*time.Second)
		err := chromedp.Run(probeCtx, chromedp.Evaluate(loggedInProbe, &loggedIn))
		cancel()
		if err != nil {
			c.logger.Debug("[session] Login probe error: %v", err)
			continue
		}
		if loggedIn {
			c.setState(Authenticated)
			c.logger.Info("[session] Authentication verified — state %s", c.State())
			return nil
		}
	}

	c.setState(Failed)
	return &AuthenticationError{Waited: wait}
}

// Navigate loads the given URL with retries. An exhausted retry budget is
// surfaced as a *NavigationError.
func (c *Controller) Navigate(ctx context.Context, url string) error {
	err := c.retry.Do(ctx, "navigate", func() error {
		navCtx, cancel := context.WithTimeout(c.browserCtx, 30*time.Second)
		defer cancel()
		return chromedp.Run(navCtx,
			chromedp.Navigate(url),
			chromedp.Sleep(3*time.Second),
		)
	})
	if err != nil {
		return &NavigationError{URL: url, Err: err}
	}
	c.logger.Debug("[session] Navigated to %s", url)
	return nil
}

// ScrollPage scrolls the current page to trigger lazy listing loads.
func (c *Controller) ScrollPage(ctx context.Context) error {
	scrollCtx, cancel := context.WithTimeout(c.browserCtx, 20*time.Second)
	defer cancel()
	return chromedp.Run(scrollCtx,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight / 2)`, nil),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(2*time.Second),
	)
}

// CaptureHTML returns the outer HTML of the current document.
func (c *Controller) CaptureHTML(ctx context.Context) (string, error) {
	var html string
	capCtx, cancel := context.WithTimeout(c.browserCtx, 20*time.Second)
	defer cancel()
	if err := chromedp.Run(capCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", fmt.Errorf("capture page html: %w", err)
	}
	return html, nil
}

// Run executes chromedp actions against the owned browser with a timeout.
// It exists for the filter applier, which issues best-effort interactions.
func (c *Controller) Run(timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(c.browserCtx, timeout)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

// Close releases the browser and allocator exactly once. Safe to call from
// any state and on every exit path.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		if c.cancelBrowser != nil {
			c.cancelBrowser()
		}
		if c.cancelAlloc != nil {
			c.cancelAlloc()
		}
		c.setState(Closed)
		c.logger.Info("[session] Browser closed")
	})
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured path.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
