// ABOUTME: Assembles the tour-guide LLM agent with MCP tools attached
// ABOUTME: Provider selection from the environment and one-shot ask helpers

// Package guide assembles the Warsaw tour-guide agent: an LLM provider
// chosen from the environment, a system prompt, and the Mapbox MCP tools.
package guide

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lexlapax/go-llms/pkg/agent/core"
	"github.com/lexlapax/go-llms/pkg/agent/domain"
	ldomain "github.com/lexlapax/go-llms/pkg/llm/domain"
	"github.com/lexlapax/go-llms/pkg/llm/provider"
)

// ProviderFromEnv picks an LLM provider from API keys in the environment,
// in the same order the original demos try them: OpenAI, then Anthropic,
// then Gemini. Without any key a mock provider is returned so the demos
// still start, which is useful for wiring checks.
func ProviderFromEnv() (ldomain.Provider, string) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return provider.NewOpenAIProvider(key, "gpt-4o"), "openai/gpt-4o"
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return provider.NewAnthropicProvider(key, "claude-3-7-sonnet-latest"), "anthropic/claude-3-7-sonnet-latest"
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return provider.NewGeminiProvider(key, "gemini-2.0-flash"), "gemini/gemini-2.0-flash"
	}
	return provider.NewMockProvider(), "mock"
}

// New builds a tour-guide agent with the plain guide persona.
func New(p ldomain.Provider, mcpTools []domain.Tool) *core.LLMAgent {
	return newAgent("warsaw-guide", SystemPrompt, p, mcpTools)
}

// NewInteractive builds an agent whose replies carry MAP_COMMANDS blocks
// for the interactive map demo.
func NewInteractive(p ldomain.Provider, mcpTools []domain.Tool) *core.LLMAgent {
	return newAgent("warsaw-interactive-guide", InteractiveSystemPrompt, p, mcpTools)
}

func newAgent(name, systemPrompt string, p ldomain.Provider, mcpTools []domain.Tool) *core.LLMAgent {
	agent := core.NewAgent(name, p)
	agent.SetSystemPrompt(systemPrompt)
	for _, t := range mcpTools {
		agent.AddTool(t)
	}
	return agent
}

// Ask runs a single natural-language request through the agent and returns
// the text reply.
func Ask(ctx context.Context, agent *core.LLMAgent, question string) (string, error) {
	state := domain.NewState()
	state.Set("user_input", question)

	result, err := agent.Run(ctx, state)
	if err != nil {
		return "", fmt.Errorf("agent run: %w", err)
	}

	output, ok := result.Get("output")
	if !ok {
		return "", fmt.Errorf("agent returned no output")
	}
	if s, ok := output.(string); ok {
		return s, nil
	}
	return fmt.Sprintf("%v", output), nil
}

// AskLocation asks the agent about a place and decodes the reply into a
// structured Location. The prompt embeds the generated schema so the model
// knows the exact shape to produce.
func AskLocation(ctx context.Context, agent *core.LLMAgent, query string) (*Location, error) {
	schema, err := LocationSchema()
	if err != nil {
		return nil, fmt.Errorf("generating location schema: %w", err)
	}
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding location schema: %w", err)
	}

	prompt := fmt.Sprintf("%s%s\n\nSchema:\n%s", query, LocationPromptSuffix, schemaJSON)

	reply, err := Ask(ctx, agent, prompt)
	if err != nil {
		return nil, err
	}

	return ParseLocation(reply)
}
