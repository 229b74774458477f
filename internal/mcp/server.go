package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/asanchez/notebooklm-mcp/internal/logging"
	"github.com/asanchez/notebooklm-mcp/internal/mcp/tools"
)

// ErrorPolicy decides what happens to a handler error.
type ErrorPolicy int

const (
	// PolicyPropagate surfaces the error to the caller as a
	// protocol-level fault.
	PolicyPropagate ErrorPolicy = iota
	// PolicyReport converts the error into a normal text result so the
	// caller always receives a readable status message.
	PolicyReport
)

type toolSpec struct {
	tool    mcp.Tool
	handler tools.Handler
	policy  ErrorPolicy
	// report renders the textual payload under PolicyReport.
	report func(error) string
}

type Server struct {
	MCP   *server.MCPServer
	specs map[string]toolSpec
	log   logging.Logger
}

// New builds the MCP server with the three NotebookLM tools and the
// per-tool error policy table.
func New(svc tools.NotebookService, log logging.Logger) *Server {
	s := &Server{log: log.WithName("mcp")}

	s.specs = map[string]toolSpec{
		"create_notebook": {
			tool: mcp.NewTool("create_notebook",
				mcp.WithDescription("Create a new NotebookLM notebook with the given title."),
				mcp.WithString("title",
					mcp.Required(),
					mcp.Description("Title for the new notebook"),
				),
			),
			handler: &tools.CreateNotebookHandler{Service: svc},
			policy:  PolicyReport,
			report: func(err error) string {
				return fmt.Sprintf("Failed to create notebook: %v. Please check the NotebookLM UI manually.", err)
			},
		},
		"list_notebooks": {
			tool: mcp.NewTool("list_notebooks",
				mcp.WithDescription("List the titles of your NotebookLM notebooks."),
			),
			handler: &tools.ListNotebooksHandler{Service: svc},
			policy:  PolicyReport,
			report: func(err error) string {
				return fmt.Sprintf("Failed to list notebooks: %v. Please check the NotebookLM UI manually.", err)
			},
		},
		"open_notebooklm": {
			tool: mcp.NewTool("open_notebooklm",
				mcp.WithDescription("Open NotebookLM in the managed browser and make sure you are signed in."),
			),
			handler: &tools.OpenSiteHandler{Service: svc},
			policy:  PolicyPropagate,
		},
	}

	mcpServer := server.NewMCPServer(
		"notebooklm-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	for name, spec := range s.specs {
		mcpServer.AddTool(spec.tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.dispatch(ctx, name, req)
		})
	}
	s.MCP = mcpServer
	return s
}

// dispatch routes a call through the policy table. An unknown tool name
// is a protocol-level error.
func (s *Server) dispatch(ctx context.Context, name string, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spec, ok := s.specs[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	text, err := spec.handler.Handle(ctx, req)
	if err != nil {
		if spec.policy == PolicyReport {
			s.log.Error(err, "tool call failed", "tool", name)
			return mcp.NewToolResultText(spec.report(err)), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
