// Package rag implements the retrieval flow: natural language question to
// Cypher, Cypher against the graph, results back to natural language.
package rag

import (
	"context"
	"log/slog"

	"github.com/kopigraph/kopigraph/internal/service"
)

// fallbackAnswer is shown when any translation or query step fails. The
// underlying cause goes into Result.Error, not the user-facing answer.
const fallbackAnswer = "I'm not able to answer that right now."

// Result is the structured outcome of one question.
type Result struct {
	Question string           `json:"question"`
	Cypher   string           `json:"cypher,omitempty"`
	Records  []map[string]any `json:"results,omitempty"`
	Answer   string           `json:"answer"`
	Error    string           `json:"error,omitempty"`
	Success  bool             `json:"success"`
}

// Engine orchestrates the translator, the graph, and the history store.
type Engine struct {
	graph      service.GraphStore
	translator service.Translator
	history    service.HistoryStore
	logger     *slog.Logger
}

// New creates a query engine. history may be nil to disable recording.
func New(graph service.GraphStore, translator service.Translator, history service.HistoryStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		graph:      graph,
		translator: translator,
		history:    history,
		logger:     logger,
	}
}

// Query processes a natural language question end to end. It never returns
// an error: every failure mode is folded into the Result so callers can
// render it directly.
func (e *Engine) Query(ctx context.Context, question string) Result {
	result := e.query(ctx, question)
	e.record(ctx, result)
	return result
}

func (e *Engine) query(ctx context.Context, question string) Result {
	result := Result{Question: question}

	if question == "" {
		result.Answer = "Please provide a question."
		result.Error = "empty question"
		return result
	}

	e.logger.Info("Processing question", "question", question)

	cypher, err := e.translator.GenerateCypher(ctx, question)
	if err != nil {
		e.logger.Error("Cypher generation failed", "question", question, "error", err)
		result.Answer = fallbackAnswer
		result.Error = "failed to generate query: " + err.Error()
		return result
	}
	result.Cypher = cypher

	if err := e.graph.ValidateQuery(ctx, cypher); err != nil {
		e.logger.Error("Generated Cypher is invalid", "cypher", cypher, "error", err)
		result.Answer = fallbackAnswer
		result.Error = "invalid query: " + err.Error()
		return result
	}

	records, err := e.graph.ExecuteQuery(ctx, cypher, nil)
	if err != nil {
		e.logger.Error("Query execution failed", "cypher", cypher, "error", err)
		result.Answer = fallbackAnswer
		result.Error = "query execution failed: " + err.Error()
		return result
	}
	result.Records = records
	result.Success = true

	if len(records) == 0 {
		result.Answer = "I couldn't find any results for your question."
		return result
	}

	answer, err := e.translator.FormatResults(ctx, question, records)
	if err != nil || answer == "" {
		// The data is in hand; degrade to deterministic formatting rather
		// than failing the whole query.
		e.logger.Warn("Result formatting failed, using fallback", "error", err)
		answer = formatRecords(records)
	}
	result.Answer = answer

	return result
}

// record persists the exchange; history is best-effort.
func (e *Engine) record(ctx context.Context, result Result) {
	if e.history == nil {
		return
	}
	entry := service.HistoryEntry{
		Question: result.Question,
		Cypher:   result.Cypher,
		Answer:   result.Answer,
		Success:  result.Success,
	}
	if err := e.history.RecordQuery(ctx, entry); err != nil {
		e.logger.Warn("Failed to record query history", "error", err)
	}
}

// SampleQuestions returns questions the front end offers as starting points.
func SampleQuestions() []string {
	return []string{
		"What coffees are from Italy?",
		"Show me all espresso-based coffees",
		"Which coffees have no milk?",
		"What coffees use steamed milk?",
		"Tell me about espresso",
		"Which coffees are from Indonesia?",
		"What coffees are boiled?",
		"Show me coffees with chocolate",
		"Which coffees are served in a tall glass?",
	}
}
