// ABOUTME: Stdio MCP client wrapper that connects to a tool server subprocess
// ABOUTME: Exposes discovered MCP tools as agent-framework domain.Tool values

// Package mcptool connects to a Model Context Protocol tool server over a
// stdio subprocess and adapts its tools to the agent framework's Tool
// interface, so an LLM agent can invoke them like any native tool.
package mcptool

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lexlapax/go-llms/pkg/agent/domain"
	"github.com/lexlapax/go-llms/pkg/agent/tools"
)

// ServerSpec describes how to launch an MCP tool server subprocess.
type ServerSpec struct {
	// Command is the executable to run (e.g. "node" or "npx").
	Command string

	// Args are passed to the command.
	Args []string

	// Env holds extra KEY=VALUE entries appended to the current
	// process environment for the subprocess.
	Env []string

	// Timeout bounds connection establishment and protocol
	// initialization. Zero means no limit.
	Timeout time.Duration
}

// Server is a live session with an MCP tool server subprocess.
// Sessions are safe for concurrent use; each demo performs one agent
// request at a time regardless.
type Server struct {
	session *mcp.ClientSession
	logger  *slog.Logger
}

// Connect launches the subprocess described by spec and performs the MCP
// initialization handshake over its stdin/stdout. The subprocess is
// terminated when the returned Server is closed.
func Connect(ctx context.Context, spec ServerSpec, logger *slog.Logger) (*Server, error) {
	if spec.Command == "" {
		return nil, fmt.Errorf("mcptool: server command is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
	}

	cmd := exec.Command(spec.Command, spec.Args...)
	cmd.Env = append(os.Environ(), spec.Env...)

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "mapbox-mcp-examples",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, mcp.NewCommandTransport(cmd))
	if err != nil {
		return nil, fmt.Errorf("connecting to MCP server %q: %w", spec.Command, err)
	}

	logger.Info("connected to MCP server",
		"command", spec.Command,
		"args", strings.Join(spec.Args, " "))

	return &Server{session: session, logger: logger}, nil
}

// Close shuts down the session and the server subprocess.
func (s *Server) Close() error {
	return s.session.Close()
}

// Tools lists the server's tools and wraps each one as a framework tool.
func (s *Server) Tools(ctx context.Context) ([]domain.Tool, error) {
	res, err := s.session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("listing MCP tools: %w", err)
	}

	wrapped := make([]domain.Tool, 0, len(res.Tools))
	for _, t := range res.Tools {
		wrapped = append(wrapped, s.wrapTool(t))
	}

	s.logger.Info("loaded MCP tools", "count", len(wrapped))
	return wrapped, nil
}

// callFunc invokes a single named MCP tool with JSON-object arguments and
// returns the flattened text of the result.
type callFunc func(ctx context.Context, args map[string]interface{}) (string, error)

func (s *Server) wrapTool(t *mcp.Tool) domain.Tool {
	name := t.Name
	call := func(ctx context.Context, args map[string]interface{}) (string, error) {
		res, err := s.session.CallTool(ctx, &mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		})
		if err != nil {
			return "", fmt.Errorf("calling MCP tool %q: %w", name, err)
		}
		text := flattenContent(res.Content)
		if res.IsError {
			return "", fmt.Errorf("MCP tool %q failed: %s", name, text)
		}
		return text, nil
	}
	return newServerTool(t, call)
}

// newServerTool builds the framework-facing tool. Split from wrapTool so
// tests can substitute the transport call.
func newServerTool(t *mcp.Tool, call callFunc) domain.Tool {
	return tools.NewToolBuilder(t.Name, t.Description).
		WithFunction(call).
		WithParameterSchema(ConvertSchema(t.InputSchema)).
		WithCategory("mcp").
		WithTags([]string{"mcp", "geospatial"}).
		WithBehavior(false, false, false, "slow").
		Build()
}

// flattenContent joins the text parts of an MCP tool result. Non-text
// content (images, resources) is summarized by type so the model still
// learns that something came back.
func flattenContent(content []mcp.Content) string {
	var b strings.Builder
	for _, c := range content {
		switch part := c.(type) {
		case *mcp.TextContent:
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(part.Text)
		case *mcp.ImageContent:
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "[image content, %s]", part.MIMEType)
		default:
			// Skip other content types; the Mapbox server returns text.
		}
	}
	return b.String()
}
