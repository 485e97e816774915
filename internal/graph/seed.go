package graph

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/kopigraph/kopigraph/internal/model"
)

// Executor is the slice of the client the seeder needs.
type Executor interface {
	ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
	Clear(ctx context.Context) error
	CountCoffees(ctx context.Context) (int64, error)
}

// Seeder mirrors the catalog into the graph: clear, apply, verify.
type Seeder struct {
	executor Executor
	catalog  *model.Catalog
	writer   io.Writer
}

// NewSeeder creates a seeder over the given executor and catalog. Progress
// output goes to writer; pass io.Discard to silence it.
func NewSeeder(executor Executor, catalog *model.Catalog, writer io.Writer) *Seeder {
	if writer == nil {
		writer = io.Discard
	}
	return &Seeder{executor: executor, catalog: catalog, writer: writer}
}

// Seed wipes the database and rebuilds it from the catalog, then verifies
// that every coffee node landed.
func (s *Seeder) Seed(ctx context.Context) error {
	slog.Info("Clearing existing graph data")
	if err := s.executor.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear graph: %w", err)
	}

	statements := SeedStatements(s.catalog)
	slog.Info("Applying seed statements", "count", len(statements))

	bar := progressbar.NewOptions(len(statements),
		progressbar.OptionSetWriter(s.writer),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Seeding coffee graph..."),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(s.writer)
		}),
	)

	for i, statement := range statements {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := s.executor.ExecuteQuery(ctx, statement.Cypher, statement.Params); err != nil {
			return fmt.Errorf("seed statement %d/%d failed: %w", i+1, len(statements), err)
		}
		_ = bar.Add(1)
	}

	return s.Verify(ctx)
}

// Verify checks the graph holds exactly one Coffee node per catalog record.
func (s *Seeder) Verify(ctx context.Context) error {
	count, err := s.executor.CountCoffees(ctx)
	if err != nil {
		return fmt.Errorf("failed to count coffees: %w", err)
	}
	if int(count) != s.catalog.Len() {
		return fmt.Errorf("expected %d coffee nodes, found %d", s.catalog.Len(), count)
	}
	slog.Info("Graph verified", "coffees", count)
	return nil
}
