package main

// ABOUTME: Interactive map demo where agent replies drive a Mapbox GL map
// ABOUTME: MAP_COMMANDS blocks in replies are executed in the browser

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mapbox/mcp-server-examples/pkg/config"
	"github.com/mapbox/mcp-server-examples/pkg/graceful"
	"github.com/mapbox/mcp-server-examples/pkg/guide"
	"github.com/mapbox/mcp-server-examples/pkg/mapbox"
	"github.com/mapbox/mcp-server-examples/pkg/mcptool"
	"github.com/mapbox/mcp-server-examples/pkg/webui"
)

func main() {
	fmt.Println("Warsaw Tour Guide - Interactive Map")
	fmt.Println("===================================")

	cfg := config.MustLoad()
	if err := cfg.RequirePublicToken(); err != nil {
		log.Fatalf("%v", err)
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	server, err := mcptool.Connect(ctx, mapbox.ServerSpec(cfg), nil)
	if err != nil {
		log.Fatalf("Failed to start Mapbox MCP server: %v", err)
	}
	defer server.Close()

	tools, err := server.Tools(ctx)
	if err != nil {
		log.Fatalf("Failed to list MCP tools: %v", err)
	}

	provider, providerName := guide.ProviderFromEnv()
	fmt.Printf("Using LLM provider: %s\n", providerName)

	agent := guide.NewInteractive(provider, tools)

	ui, err := webui.New(webui.Config{
		PublicToken: cfg.PublicToken,
		Interactive: true,
		Run: func(ctx context.Context, message string) (string, error) {
			return guide.Ask(ctx, agent, message)
		},
	})
	if err != nil {
		log.Fatalf("Failed to build chat server: %v", err)
	}

	url, err := ui.Start()
	if err != nil {
		log.Fatalf("Failed to start chat server: %v", err)
	}
	fmt.Printf("\nOpen %s in your browser. Ask about Warsaw and watch the map. Press Ctrl-C to stop.\n", url)

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := ui.Shutdown(shutdownCtx); err != nil {
		log.Printf("Chat server shutdown: %v", err)
	}
}
