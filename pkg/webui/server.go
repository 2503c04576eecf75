// ABOUTME: Local HTTP server for the browser chat demos
// ABOUTME: Serves the chat page, the Mapbox GL map page, and the chat API

// Package webui serves the browser surface of the demos: a chat page, a
// Mapbox GL JS map page, and a small JSON API that forwards chat messages
// to the agent. The server binds an ephemeral port on the loopback
// interface only; it is a demo surface, not a deployable service.
package webui

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mapbox/mcp-server-examples/pkg/mapcmd"
)

//go:embed static/chat.html static/map.html
var staticFS embed.FS

// tokenPlaceholder is substituted in the map template so the secret
// access token never reaches the browser, only the public one does.
const tokenPlaceholder = "__MAPBOX_TOKEN__"

// RunFunc forwards one chat message to the agent and returns its reply.
type RunFunc func(ctx context.Context, message string) (string, error)

// Config describes a chat server.
type Config struct {
	// PublicToken is the browser-safe Mapbox token embedded in the map
	// page.
	PublicToken string

	// Run handles each chat message. Calls are serialized; the agent
	// keeps per-run state that is not safe for concurrent runs.
	Run RunFunc

	// Interactive enables MAP_COMMANDS extraction: command blocks are
	// parsed out of replies and returned to the page alongside the text.
	Interactive bool

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Server hosts the chat UI on an ephemeral loopback port.
type Server struct {
	cfg       Config
	logger    *slog.Logger
	sessionID string

	mu   sync.Mutex // serializes agent runs
	srv  *http.Server
	addr string
}

// New validates the configuration and builds a server. Start must be
// called before the server accepts requests.
func New(cfg Config) (*Server, error) {
	if cfg.Run == nil {
		return nil, fmt.Errorf("webui: Run function is required")
	}
	if cfg.PublicToken == "" {
		return nil, fmt.Errorf("webui: public token is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:       cfg,
		logger:    logger,
		sessionID: uuid.NewString(),
	}, nil
}

// Handler returns the HTTP routes. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleChatPage)
	mux.HandleFunc("GET /map", s.handleMapPage)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	return mux
}

// Start binds an ephemeral port on 127.0.0.1 and begins serving in the
// background. It returns the base URL to open in a browser.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("binding chat server: %w", err)
	}

	s.addr = ln.Addr().String()
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("chat server stopped", "error", err)
		}
	}()

	url := "http://" + s.addr
	s.logger.Info("chat server listening", "url", url, "session_id", s.sessionID)
	return url, nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleChatPage(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/chat.html")
	if err != nil {
		http.Error(w, "chat page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleMapPage(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/map.html")
	if err != nil {
		http.Error(w, "map page unavailable", http.StatusInternalServerError)
		return
	}
	rendered := strings.ReplaceAll(string(page), tokenPlaceholder, s.cfg.PublicToken)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(rendered))
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply     string           `json:"reply"`
	Commands  []mapcmd.Command `json:"commands,omitempty"`
	SessionID string           `json:"session_id"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	reply, err := s.cfg.Run(r.Context(), req.Message)
	s.mu.Unlock()

	resp := chatResponse{SessionID: s.sessionID}
	if err != nil {
		// The page always gets a readable reply; the failure detail
		// goes to the server log.
		s.logger.Error("agent run failed", "error", err)
		resp.Reply = fmt.Sprintf("Sorry, I encountered an error: %v", err)
		s.writeJSON(w, resp)
		return
	}

	resp.Reply = reply
	if s.cfg.Interactive {
		clean, commands, extractErr := mapcmd.Extract(reply)
		if extractErr != nil {
			s.logger.Warn("map command extraction problems", "error", extractErr)
		}
		resp.Reply = clean
		resp.Commands = commands
	}

	s.writeJSON(w, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding chat response", "error", err)
	}
}
