package browser

// Element is a handle to a single DOM element on the active page.
type Element interface {
	Text() (string, error)
	Click() error
}

// Page is the subset of page control the NotebookLM flows need. The
// production implementation drives Playwright; tests substitute fakes.
type Page interface {
	// Navigate loads the URL and waits for network quiescence.
	Navigate(url string) error
	// WaitSettled waits for in-flight navigation to reach network quiescence.
	WaitSettled() error
	URL() string
	// WaitFor waits for the selector to become visible within the
	// configured step timeout.
	WaitFor(selector string) error
	Fill(selector, value string) error
	Click(selector string) error
	Query(selector string) ([]Element, error)
	// TypeKeys simulates typing on the keyboard into the focused element.
	TypeKeys(text string) error
	Press(key string) error
}
