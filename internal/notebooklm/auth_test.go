package notebooklm

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/asanchez/notebooklm-mcp/internal/logging"
)

const testAppURL = "https://notebooklm.google.com"

func TestEnsureLoggedIn_SkipsWhenAlreadySignedIn(t *testing.T) {
	page := newFakePage()
	auth := NewAuthenticator("user@example.com", "secret", testAppURL, logging.New(logr.Discard()))

	require.NoError(t, auth.EnsureLoggedIn(page))

	// One navigation to the app root, nothing else: no waiting, no
	// typing, no clicking.
	require.Equal(t, []string{"navigate:" + testAppURL}, page.actions)
}

func TestEnsureLoggedIn_CompletesTwoStepSignIn(t *testing.T) {
	page := newFakePage()
	page.landURL[testAppURL] = "https://accounts.google.com/v3/signin/identifier"
	auth := NewAuthenticator("user@example.com", "secret", testAppURL, logging.New(logr.Discard()))

	require.NoError(t, auth.EnsureLoggedIn(page))

	require.Equal(t, []string{
		"navigate:" + testAppURL,
		"wait:" + emailSelector,
		"fill:" + emailSelector + "=user@example.com",
		"click:" + emailNextSelector,
		"wait:" + passwordSelector,
		"fill:" + passwordSelector + "=secret",
		"click:" + passwordNextSelector,
		"settle",
	}, page.actions)
}

func TestEnsureLoggedIn_MissingEmailFieldPropagates(t *testing.T) {
	page := newFakePage()
	page.landURL[testAppURL] = "https://accounts.google.com/v3/signin/identifier"
	page.waitErr[emailSelector] = errTimeout
	auth := NewAuthenticator("user@example.com", "secret", testAppURL, logging.New(logr.Discard()))

	err := auth.EnsureLoggedIn(page)
	require.ErrorIs(t, err, errTimeout)
}
