package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/asanchez/notebooklm-mcp/internal/browser"
	"github.com/asanchez/notebooklm-mcp/internal/config"
	"github.com/asanchez/notebooklm-mcp/internal/logging"
	"github.com/asanchez/notebooklm-mcp/internal/mcp"
	"github.com/asanchez/notebooklm-mcp/internal/notebooklm"
)

func main() {
	root := &cobra.Command{
		Use:   "notebooklm-mcp",
		Short: "NotebookLM MCP server (stdio)",
		RunE:  run,
	}

	root.PersistentFlags().Bool("headless", false, "Run the browser without a visible window")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.DefaultLogger(config.LogLevel())).WithName("notebooklm-mcp")

	session := browser.NewSession(browser.LaunchOptions{
		Headless:    config.Headless(),
		StepTimeout: config.StepTimeout(),
	})
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error(err, "closing browser session")
		}
	}()

	auth := notebooklm.NewAuthenticator(
		config.GoogleEmail(),
		config.GooglePassword(),
		config.NotebookLMURL(),
		logger.WithName("auth"),
	)
	svc := notebooklm.NewService(session, auth, config.NotebookLMURL(), logger.WithName("notebooklm"))
	srv := mcp.New(svc, logger)

	// stdout carries the MCP stdio transport, so the readiness line goes
	// to stderr.
	fmt.Fprintln(os.Stderr, "NotebookLM MCP server running on stdio")
	return srv.ServeStdio()
}
