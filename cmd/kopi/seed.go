package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kopigraph/kopigraph/internal/cli"
	"github.com/kopigraph/kopigraph/internal/graph"
	"github.com/kopigraph/kopigraph/internal/model"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the knowledge graph from the catalog",
		Long: `Clear the Neo4j database and rebuild it from the coffee catalog.

Every drink becomes a Coffee node connected to its attribute nodes. The
operation is idempotent; rerunning it produces the same graph.`,
		RunE: runSeed,
	}

	cmd.Flags().Bool("stats", false, "Show node and relationship counts after seeding")

	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	showStats, _ := cmd.Flags().GetBool("stats")
	out := cmd.OutOrStdout()

	slog.Info("Connecting to Neo4j...")
	client, err := initGraph(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to graph: %w", err)
	}
	defer func() {
		if closeErr := client.Close(ctx); closeErr != nil {
			slog.Error("Failed to close graph connection", "error", closeErr)
		}
	}()

	fmt.Fprintln(out, cli.FormatTitle("Seeding knowledge graph"))

	seeder := graph.NewSeeder(client, model.DefaultCatalog(), out)
	if err := seeder.Seed(ctx); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess("Graph seeded and verified."))

	if showStats {
		stats, err := client.Stats(ctx)
		if err != nil {
			return fmt.Errorf("failed to read graph stats: %w", err)
		}
		for label, count := range stats {
			fmt.Fprintln(out, cli.StyleSubtle(fmt.Sprintf("  %s: %d", label, count)))
		}
	}

	return nil
}
