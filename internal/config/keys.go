package config

const (
	KeyGoogleEmail    = "google_email"
	KeyGooglePassword = "google_password"
	KeyNotebookLMURL  = "notebooklm_url"
	KeyHeadless       = "headless"
	KeyLogLevel       = "log_level"
	KeyStepTimeoutMS  = "step_timeout_ms"
)
