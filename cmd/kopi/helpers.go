package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kopigraph/kopigraph/internal/common"
	"github.com/kopigraph/kopigraph/internal/config"
	"github.com/kopigraph/kopigraph/internal/graph"
	"github.com/kopigraph/kopigraph/internal/llm"
	"github.com/kopigraph/kopigraph/internal/model"
	"github.com/kopigraph/kopigraph/internal/service"
	"github.com/kopigraph/kopigraph/internal/storage"
)

// initStorage opens the local history database and runs migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	cfg := config.Load()

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initGraph connects to Neo4j, retrying while the server comes up.
func initGraph(ctx context.Context) (*graph.Client, error) {
	cfg := config.Load()
	if err := cfg.ValidateGraph(); err != nil {
		return nil, err
	}

	client, err := graph.NewClientWithWait(ctx, cfg.Graph, service.RetryOptions{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	})
	if err != nil {
		return nil, common.NewUserError("could not connect to Neo4j; check graph.uri and graph.password", err)
	}
	return client, nil
}

// createTranslator creates the natural-language translator from configuration.
func createTranslator(catalog *model.Catalog) (*llm.Translator, error) {
	cfg := config.Load()

	llmCfg := llm.Config{
		Provider:    cfg.LLM.Provider,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		MaxRetries:  3,
		RetryDelay:  time.Second,
		RateLimit:   cfg.LLM.RateLimit,
		CacheTTL:    cfg.LLM.CacheTTL,
	}

	// Fall back to the provider's conventional environment variable.
	if llmCfg.APIKey == "" {
		switch llmCfg.Provider {
		case "openrouter":
			llmCfg.APIKey = os.Getenv("OPENROUTER_API_KEY")
		case "gemini":
			llmCfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if llmCfg.APIKey == "" {
		return nil, common.NewUserError(
			fmt.Sprintf("no API key for provider %q; set llm.api_key or the provider's environment variable", llmCfg.Provider),
			common.ErrMissingConfig)
	}

	translator, err := llm.NewTranslator(llmCfg, graph.SchemaDescription(catalog), slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}

	return translator, nil
}
