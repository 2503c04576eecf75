package main

// ABOUTME: Console Warsaw tour guide backed by the Mapbox MCP tools
// ABOUTME: Runs three scripted scenarios, then an interactive question loop

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mapbox/mcp-server-examples/pkg/config"
	"github.com/mapbox/mcp-server-examples/pkg/graceful"
	"github.com/mapbox/mcp-server-examples/pkg/guide"
	"github.com/mapbox/mcp-server-examples/pkg/mapbox"
	"github.com/mapbox/mcp-server-examples/pkg/mcptool"
)

var scenarios = []string{
	"Tell me about the Palace of Culture and Science and give me its exact coordinates.",
	"How do I get from the Royal Castle to Lazienki Park? Walking directions please.",
	"Find three cafes near the Old Town Market Square.",
}

func main() {
	fmt.Println("Warsaw Tour Guide")
	fmt.Println("=================")

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

	provider, providerName := guide.ProviderFromEnv()
	fmt.Printf("Using LLM provider: %s\n", providerName)
	fmt.Printf("Loaded %d Mapbox tools\n", len(tools))

	agent := guide.New(provider, tools)

	for i, question := range scenarios {
		fmt.Printf("\n--- Scenario %d ---\n", i+1)
		fmt.Println("Q:", question)
		reply, err := guide.Ask(ctx, agent, question)
		if err != nil {
			log.Printf("Scenario failed: %v", err)
			continue
		}
		fmt.Println("A:", reply)
	}

	fmt.Println("\n--- Your turn (empty line or Ctrl-C to quit) ---")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			break
		}

		reply, err := guide.Ask(ctx, agent, question)
		if err != nil {
			log.Printf("Request failed: %v", err)
			continue
		}
		fmt.Println(reply)
	}

	fmt.Println("Goodbye!")
}
