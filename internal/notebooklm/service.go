package notebooklm

import (
	"context"
	"fmt"
	"strings"

	"github.com/asanchez/notebooklm-mcp/internal/browser"
	"github.com/asanchez/notebooklm-mcp/internal/logging"
)

// PageProvider hands out the shared browser page, serialized so that
// one tool call at a time interacts with it.
type PageProvider interface {
	Acquire(ctx context.Context) (browser.Page, func(), error)
}

// Service implements the three NotebookLM actions over a live page.
// Every method returns (status, error) uniformly; whether an error
// becomes a textual payload or a protocol fault is decided by the MCP
// layer's policy table, not here.
type Service struct {
	session PageProvider
	auth    *Authenticator
	appURL  string
	log     logging.Logger
}

func NewService(session PageProvider, auth *Authenticator, appURL string, log logging.Logger) *Service {
	return &Service{session: session, auth: auth, appURL: appURL, log: log}
}

// CreateNotebook opens the app, clicks the first button whose visible
// text matches a known new-notebook label, types the title and submits
// it with Enter.
func (s *Service) CreateNotebook(ctx context.Context, title string) (string, error) {
	page, release, err := s.session.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	if err := s.auth.EnsureLoggedIn(page); err != nil {
		return "", err
	}
	if err := page.Navigate(s.appURL); err != nil {
		return "", fmt.Errorf("open %s: %w", s.appURL, err)
	}
	if err := page.WaitFor(buttonSelector); err != nil {
		return "", fmt.Errorf("new notebook button: %w", err)
	}
	if err := clickButtonByLabel(page, newNotebookLabels); err != nil {
		return "", err
	}
	if err := page.WaitFor(titleInputSelector); err != nil {
		return "", fmt.Errorf("title field: %w", err)
	}
	if err := page.TypeKeys(title); err != nil {
		return "", fmt.Errorf("type title: %w", err)
	}
	if err := page.Press("Enter"); err != nil {
		return "", fmt.Errorf("submit title: %w", err)
	}

	s.log.Info("notebook created", "title", title)
	return fmt.Sprintf("Successfully created notebook %q.", title), nil
}

// ListNotebooks scrapes the trimmed text of every node matching the
// combined candidate selectors. Zero matches yields the empty-state
// message; the scrape cannot tell an empty account from stale selectors.
func (s *Service) ListNotebooks(ctx context.Context) (string, error) {
	page, release, err := s.session.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	if err := s.auth.EnsureLoggedIn(page); err != nil {
		return "", err
	}
	if err := page.Navigate(s.appURL); err != nil {
		return "", fmt.Errorf("open %s: %w", s.appURL, err)
	}

	nodes, err := page.Query(strings.Join(notebookTitleSelectors, ", "))
	if err != nil {
		return "", fmt.Errorf("query notebook titles: %w", err)
	}
	var titles []string
	for _, node := range nodes {
		text, err := node.Text()
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			titles = append(titles, text)
		}
	}

	if len(titles) == 0 {
		return "No notebooks found. Your list may be empty, or the page could not be read.", nil
	}
	lines := make([]string, len(titles))
	for i, title := range titles {
		lines[i] = fmt.Sprintf("%d. %s", i+1, title)
	}
	s.log.Debug("notebooks listed", "count", len(titles))
	return "Your notebooks:\n" + strings.Join(lines, "\n"), nil
}

// OpenSite brings up NotebookLM in the managed browser and reports
// readiness. Any failure comes from the session or the sign-in flow.
func (s *Service) OpenSite(ctx context.Context) (string, error) {
	page, release, err := s.session.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	if err := s.auth.EnsureLoggedIn(page); err != nil {
		return "", err
	}
	return "NotebookLM is open and ready in the browser.", nil
}

// clickButtonByLabel scans rendered buttons for the first one whose
// visible text contains any of the labels and clicks it.
func clickButtonByLabel(page browser.Page, labels []string) error {
	buttons, err := page.Query(buttonSelector)
	if err != nil {
		return fmt.Errorf("scan buttons: %w", err)
	}
	for _, button := range buttons {
		text, err := button.Text()
		if err != nil {
			continue
		}
		for _, label := range labels {
			if strings.Contains(text, label) {
				if err := button.Click(); err != nil {
					return fmt.Errorf("click %q button: %w", label, err)
				}
				return nil
			}
		}
	}
	return fmt.Errorf("no button labeled %s found", strings.Join(labels, " or "))
}
