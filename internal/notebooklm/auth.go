package notebooklm

import (
	"fmt"
	"strings"

	"github.com/asanchez/notebooklm-mcp/internal/browser"
	"github.com/asanchez/notebooklm-mcp/internal/logging"
)

// Authenticator drives the Google two-step sign-in form when NotebookLM
// redirects to it. Credentials come from process configuration and are
// accepted as-is; an empty credential simply fails at the form.
type Authenticator struct {
	email    string
	password string
	appURL   string
	log      logging.Logger
}

func NewAuthenticator(email, password, appURL string, log logging.Logger) *Authenticator {
	return &Authenticator{email: email, password: password, appURL: appURL, log: log}
}

// EnsureLoggedIn navigates to the NotebookLM root and, if the browser
// got bounced to the Google sign-in flow, completes it: email, next,
// password, next. Already being signed in is detected by URL alone,
// which keeps the pre-action check cheap. A selector missing past its
// wait window is returned as an error; there is no retry and no
// distinction between wrong credentials and a changed sign-in page.
func (a *Authenticator) EnsureLoggedIn(page browser.Page) error {
	if err := page.Navigate(a.appURL); err != nil {
		return fmt.Errorf("open %s: %w", a.appURL, err)
	}
	if !needsLogin(page.URL()) {
		a.log.Debug("already signed in", "url", page.URL())
		return nil
	}

	a.log.Info("google sign-in required", "url", page.URL())
	if err := page.WaitFor(emailSelector); err != nil {
		return fmt.Errorf("email field: %w", err)
	}
	if err := page.Fill(emailSelector, a.email); err != nil {
		return fmt.Errorf("enter email: %w", err)
	}
	if err := page.Click(emailNextSelector); err != nil {
		return fmt.Errorf("submit email: %w", err)
	}
	if err := page.WaitFor(passwordSelector); err != nil {
		return fmt.Errorf("password field: %w", err)
	}
	if err := page.Fill(passwordSelector, a.password); err != nil {
		return fmt.Errorf("enter password: %w", err)
	}
	if err := page.Click(passwordNextSelector); err != nil {
		return fmt.Errorf("submit password: %w", err)
	}
	if err := page.WaitSettled(); err != nil {
		return fmt.Errorf("sign-in navigation: %w", err)
	}
	a.log.Info("signed in", "url", page.URL())
	return nil
}

// needsLogin reports whether the URL landed on the Google sign-in flow
// instead of the app itself.
func needsLogin(url string) bool {
	return strings.Contains(url, loginDomain) || strings.Contains(url, "signin")
}
