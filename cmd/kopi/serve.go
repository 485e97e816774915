package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kopigraph/kopigraph/internal/config"
	"github.com/kopigraph/kopigraph/internal/model"
	"github.com/kopigraph/kopigraph/internal/rag"
	"github.com/kopigraph/kopigraph/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP query server",
		Long: `Serve the knowledge graph over a JSON HTTP API.

Endpoints:
  GET  /              Service info and sample questions
  GET  /health        Health check
  POST /query         Ask a question ({"question": "..."})
  GET  /history       Recent questions and answers
  POST /clear-history Clear the history`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (overrides server.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}

	client, err := initGraph(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to graph: %w", err)
	}
	defer func() {
		if closeErr := client.Close(ctx); closeErr != nil {
			slog.Error("Failed to close graph connection", "error", closeErr)
		}
	}()

	translator, err := createTranslator(model.DefaultCatalog())
	if err != nil {
		return err
	}
	defer translator.Close()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() { _ = store.Close() }()

	engine := rag.New(client, translator, store, slog.Default())
	srv := server.New(addr, engine, store, slog.Default())

	return srv.Run(ctx)
}
