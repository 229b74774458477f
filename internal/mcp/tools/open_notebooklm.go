package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type OpenSiteHandler struct {
	Service NotebookService
}

func (h *OpenSiteHandler) Handle(ctx context.Context, req mcp.CallToolRequest) (string, error) {
	return h.Service.OpenSite(ctx)
}
