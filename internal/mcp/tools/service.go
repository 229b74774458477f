package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// NotebookService is what the tool handlers need from the NotebookLM
// automation layer.
type NotebookService interface {
	CreateNotebook(ctx context.Context, title string) (string, error)
	ListNotebooks(ctx context.Context) (string, error)
	OpenSite(ctx context.Context) (string, error)
}

// Handler executes one tool call and returns its status text. Errors
// are returned as-is; the server's policy table decides whether they
// become a textual payload or a protocol fault.
type Handler interface {
	Handle(ctx context.Context, req mcp.CallToolRequest) (string, error)
}
