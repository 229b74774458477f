package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyNotebookLMURL, "https://notebooklm.google.com")
	viper.SetDefault(KeyHeadless, false)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyStepTimeoutMS, 10000)
}

func GoogleEmail() string    { return viper.GetString(KeyGoogleEmail) }
func GooglePassword() string { return viper.GetString(KeyGooglePassword) }
func NotebookLMURL() string  { return viper.GetString(KeyNotebookLMURL) }
func Headless() bool         { return viper.GetBool(KeyHeadless) }
func LogLevel() string       { return viper.GetString(KeyLogLevel) }

// StepTimeout is the wait window applied to each individual selector or
// navigation wait. Waits are independent; the timeout does not compose
// across steps.
func StepTimeout() time.Duration {
	return time.Duration(viper.GetInt(KeyStepTimeoutMS)) * time.Millisecond
}
