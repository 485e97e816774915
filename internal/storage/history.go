package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kopigraph/kopigraph/internal/service"
)

// maxHistoryEntries caps retained history; older entries are pruned on write.
const maxHistoryEntries = 20

// RecordQuery stores one exchange and prunes anything beyond the cap.
func (s *SQLiteStorage) RecordQuery(ctx context.Context, entry service.HistoryEntry) error {
	if entry.Question == "" {
		return fmt.Errorf("question is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO query_history (question, cypher, answer, success) VALUES (?, ?, ?, ?)`,
		entry.Question, entry.Cypher, entry.Answer, entry.Success)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM query_history WHERE id NOT IN (
			SELECT id FROM query_history ORDER BY id DESC LIMIT ?
		)`, maxHistoryEntries)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}

	return tx.Commit()
}

// ListHistory returns the most recent entries, newest first. limit <= 0
// means the retention cap.
func (s *SQLiteStorage) ListHistory(ctx context.Context, limit int) ([]service.HistoryEntry, error) {
	if limit <= 0 || limit > maxHistoryEntries {
		limit = maxHistoryEntries
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, question, cypher, answer, success, created_at
		 FROM query_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []service.HistoryEntry
	for rows.Next() {
		var entry service.HistoryEntry
		var cypher, answer sql.NullString
		if err := rows.Scan(&entry.ID, &entry.Question, &cypher, &answer, &entry.Success, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Cypher = cypher.String
		entry.Answer = answer.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return entries, nil
}

// ClearHistory removes all recorded entries.
func (s *SQLiteStorage) ClearHistory(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM query_history`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
