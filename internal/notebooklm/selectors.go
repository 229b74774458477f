package notebooklm

// DOM anchors for the NotebookLM UI and the Google sign-in flow. These
// match the live site verbatim; a redesign of either page breaks the
// corresponding flow with no compatibility layer.
const (
	loginDomain = "accounts.google.com"

	emailSelector        = `input[type="email"]`
	emailNextSelector    = "#identifierNext"
	passwordSelector     = `input[type="password"]`
	passwordNextSelector = "#passwordNext"

	// The new-notebook affordance is found by scanning rendered buttons
	// for a known label, so the bounded wait is on buttons existing at all.
	buttonSelector     = "button"
	titleInputSelector = `input[type="text"]`
)

// Visible-text fragments identifying the new-notebook button.
var newNotebookLabels = []string{"Create new", "New notebook"}

// Candidate selectors for notebook title nodes, queried as one combined
// selector. Whichever family the current DOM still uses wins.
var notebookTitleSelectors = []string{
	"project-button .project-button-title",
	".project-button-title",
	"[aria-label='Notebook title']",
}
