package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

type CreateNotebookHandler struct {
	Service NotebookService
}

func (h *CreateNotebookHandler) Handle(ctx context.Context, req mcp.CallToolRequest) (string, error) {
	title, _ := req.GetArguments()["title"].(string)
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("title parameter is required")
	}
	return h.Service.CreateNotebook(ctx, title)
}
