package notebooklm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/asanchez/notebooklm-mcp/internal/browser"
	"github.com/asanchez/notebooklm-mcp/internal/logging"
)

var errTimeout = errors.New("timed out waiting for selector")

func newTestService(page browser.Page) *Service {
	log := logging.New(logr.Discard())
	auth := NewAuthenticator("user@example.com", "secret", testAppURL, log)
	return NewService(&fakeSession{page: page}, auth, testAppURL, log)
}

func TestCreateNotebook_Success(t *testing.T) {
	page := newFakePage()
	create := &fakeElement{text: "  Create new  "}
	page.queries[buttonSelector] = []browser.Element{
		&fakeElement{text: "Settings"},
		create,
	}

	status, err := newTestService(page).CreateNotebook(context.Background(), "My Notes")
	require.NoError(t, err)
	require.Contains(t, status, "My Notes")
	require.True(t, create.clicked)

	// Title is typed via the keyboard and submitted with Enter.
	require.Contains(t, page.actions, "type:My Notes")
	require.Contains(t, page.actions, "press:Enter")
}

func TestCreateNotebook_NoMatchingButton(t *testing.T) {
	page := newFakePage()
	page.queries[buttonSelector] = []browser.Element{
		&fakeElement{text: "Settings"},
	}

	_, err := newTestService(page).CreateNotebook(context.Background(), "My Notes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no button labeled")
}

func TestCreateNotebook_TitleFieldTimeout(t *testing.T) {
	page := newFakePage()
	page.queries[buttonSelector] = []browser.Element{&fakeElement{text: "New notebook"}}
	page.waitErr[titleInputSelector] = errTimeout

	_, err := newTestService(page).CreateNotebook(context.Background(), "My Notes")
	require.ErrorIs(t, err, errTimeout)
}

func TestListNotebooks_NumbersTitles(t *testing.T) {
	page := newFakePage()
	combined := strings.Join(notebookTitleSelectors, ", ")
	page.queries[combined] = []browser.Element{
		&fakeElement{text: " A "},
		&fakeElement{text: "B"},
		&fakeElement{text: "   "},
		&fakeElement{text: "C"},
	}

	status, err := newTestService(page).ListNotebooks(context.Background())
	require.NoError(t, err)

	_, body, found := strings.Cut(status, "\n")
	require.True(t, found)
	require.Equal(t, "1. A\n2. B\n3. C", body)
}

func TestListNotebooks_EmptyList(t *testing.T) {
	page := newFakePage()

	status, err := newTestService(page).ListNotebooks(context.Background())
	require.NoError(t, err)
	require.Contains(t, status, "No notebooks found")
}

func TestOpenSite_ReturnsConfirmation(t *testing.T) {
	page := newFakePage()

	status, err := newTestService(page).OpenSite(context.Background())
	require.NoError(t, err)
	require.Equal(t, "NotebookLM is open and ready in the browser.", status)
}
