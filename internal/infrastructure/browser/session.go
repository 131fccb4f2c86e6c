package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Config holds the headless browser settings.
type Config struct {
	Bin               string
	Headless          bool
	NavigationTimeout time.Duration
}

// Session owns the single live browser instance. It is lazily launched on
// first use, reused across jobs, and torn down and recreated after an
// unrecoverable fault. The worker is its only caller; the mutex guards the
// handle against shutdown racing a late fetch.
type Session struct {
	cfg Config

	mu      sync.Mutex
	browser *rod.Browser
}

// NewSession prepares the session without launching anything.
func NewSession(cfg Config) *Session {
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = 30 * time.Second
	}
	return &Session{cfg: cfg}
}

// browserLocked returns a healthy browser, launching one if needed.
// Caller must hold the lock.
func (s *Session) browserLocked() (*rod.Browser, error) {
	if s.browser != nil {
		if _, err := s.browser.Version(); err == nil {
			return s.browser, nil
		}
		_ = s.browser.Close()
		s.browser = nil
	}

	launch := launcher.New().Headless(s.cfg.Headless)
	if s.cfg.Bin != "" {
		launch = launch.Bin(s.cfg.Bin)
	}
	controlURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	s.browser = browser
	return browser, nil
}

// Render navigates to url and returns the page HTML once loaded, bounded
// by the navigation timeout.
func (s *Session) Render(ctx context.Context, url string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	browser, err := s.browserLocked()
	if err != nil {
		return "", err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return "", fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(s.cfg.NavigationTimeout)
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("wait load: %w", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("read page html: %w", err)
	}
	return html, nil
}

// Reset tears the browser down so the next Render relaunches from scratch.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.browser != nil {
		_ = s.browser.Close()
		s.browser = nil
	}
}

// Close shuts the session down for good.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.browser == nil {
		return nil
	}
	err := s.browser.Close()
	s.browser = nil
	return err
}
