package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type ListNotebooksHandler struct {
	Service NotebookService
}

func (h *ListNotebooksHandler) Handle(ctx context.Context, req mcp.CallToolRequest) (string, error) {
	return h.Service.ListNotebooks(ctx)
}
