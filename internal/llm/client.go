// Package llm translates natural language questions into Cypher queries and
// query results back into natural language, using a hosted model provider.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// completionRequest is a single system+user prompt exchange.
type completionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Client defines the transport interface for model providers.
type Client interface {
	Complete(ctx context.Context, req completionRequest) (string, error)
}

// Config holds configuration for the translation layer.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	MaxRetries  int
	RetryDelay  time.Duration
	RateLimit   int
	CacheTTL    time.Duration
}

// newClient creates a provider client based on the configuration.
func newClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openrouter":
		return newOpenRouterClient(cfg)
	case "gemini":
		return newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
