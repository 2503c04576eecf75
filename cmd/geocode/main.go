package main

// ABOUTME: Minimal demo wiring the Mapbox MCP tools into an LLM agent
// ABOUTME: Asks one geocoding question, then requests a structured Location

import (
	"context"
	"fmt"
	"log"

	"github.com/mapbox/mcp-server-examples/pkg/config"
	"github.com/mapbox/mcp-server-examples/pkg/graceful"
	"github.com/mapbox/mcp-server-examples/pkg/guide"
	"github.com/mapbox/mcp-server-examples/pkg/mapbox"
	"github.com/mapbox/mcp-server-examples/pkg/mcptool"
)

func main() {
	fmt.Println("Mapbox MCP Geocoding Demo")
	fmt.Println("=========================")

	cfg := config.MustLoad()

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
	fmt.Printf("Loaded %d Mapbox tools\n", len(tools))

	provider, providerName := guide.ProviderFromEnv()
	fmt.Printf("Using LLM provider: %s\n\n", providerName)

	agent := guide.New(provider, tools)

	// Plain text answer.
	question := "What are the coordinates of the Empire State Building?"
	fmt.Println("Q:", question)
	reply, err := guide.Ask(ctx, agent, question)
	if err != nil {
		log.Fatalf("Agent request failed: %v", err)
	}
	fmt.Println("A:", reply)

	// Structured answer for the same landmark.
	fmt.Println("\nRequesting a structured location record...")
	loc, err := guide.AskLocation(ctx, agent, "Find the Empire State Building in New York")
	if err != nil {
		log.Fatalf("Structured request failed: %v", err)
	}
	fmt.Println(loc)
}
