package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// LaunchOptions configures the browser launched on first use.
type LaunchOptions struct {
	Headless    bool
	StepTimeout time.Duration
}

type launchFunc func(LaunchOptions) (Page, func() error, error)

// Session owns the process-lifetime browser handle: one browser, one
// page, launched lazily on first Acquire and reused by every call until
// Close. The session is constructed by the entry point and passed down
// explicitly; there is no package-level state.
type Session struct {
	mu       sync.Mutex
	opts     LaunchOptions
	launch   launchFunc
	page     Page
	shutdown func() error
	closed   bool
}

// NewSession returns a Session that launches Chromium on first use.
func NewSession(opts LaunchOptions) *Session {
	return &Session{opts: opts, launch: launchChromium}
}

// Acquire returns the singleton page, launching the browser when called
// for the first time. The page is held under the session mutex until
// the returned release func is invoked, so overlapping tool calls
// serialize instead of racing on the one shared page.
func (s *Session) Acquire(ctx context.Context) (Page, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, nil, errors.New("browser session is closed")
	}
	if s.page == nil {
		page, shutdown, err := s.launch(s.opts)
		if err != nil {
			s.mu.Unlock()
			return nil, nil, fmt.Errorf("launch browser: %w", err)
		}
		s.page = page
		s.shutdown = shutdown
	}
	page := s.page
	var once sync.Once
	release := func() { once.Do(s.mu.Unlock) }
	return page, release, nil
}

// Close tears down the browser and the automation driver. Safe to call
// when the browser was never launched, and safe to call twice.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.shutdown == nil {
		return nil
	}
	shutdown := s.shutdown
	s.page = nil
	s.shutdown = nil
	return shutdown()
}
