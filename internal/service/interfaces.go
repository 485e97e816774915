// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"
)

// GraphStore defines the contract for the knowledge-graph layer.
type GraphStore interface {
	// ExecuteQuery runs a Cypher query and returns flattened records.
	ExecuteQuery(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error)
	// ValidateQuery checks a Cypher query for syntax errors without running it.
	ValidateQuery(ctx context.Context, cypher string) error
}

// Translator converts natural language into Cypher and query results back
// into natural language. Implementations are bounded by an external model;
// callers must treat failures as expected.
type Translator interface {
	GenerateCypher(ctx context.Context, question string) (string, error)
	FormatResults(ctx context.Context, question string, records []map[string]any) (string, error)
}

// HistoryEntry is one recorded question/answer exchange.
type HistoryEntry struct {
	CreatedAt time.Time
	Question  string
	Cypher    string
	Answer    string
	ID        int64
	Success   bool
}

// HistoryStore persists the question/answer history.
type HistoryStore interface {
	RecordQuery(ctx context.Context, entry HistoryEntry) error
	ListHistory(ctx context.Context, limit int) ([]HistoryEntry, error)
	ClearHistory(ctx context.Context) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
