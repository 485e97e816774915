package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopigraph/kopigraph/internal/service"
)

type mockTranslator struct {
	cypherErr error
	formatErr error
	cypher    string
	answer    string
}

func (m *mockTranslator) GenerateCypher(_ context.Context, _ string) (string, error) {
	return m.cypher, m.cypherErr
}

func (m *mockTranslator) FormatResults(_ context.Context, _ string, _ []map[string]any) (string, error) {
	return m.answer, m.formatErr
}

type mockGraph struct {
	validateErr error
	executeErr  error
	records     []map[string]any
	executed    []string
}

func (m *mockGraph) ExecuteQuery(_ context.Context, cypher string, _ map[string]any) ([]map[string]any, error) {
	m.executed = append(m.executed, cypher)
	return m.records, m.executeErr
}

func (m *mockGraph) ValidateQuery(_ context.Context, _ string) error {
	return m.validateErr
}

type mockHistory struct {
	entries []service.HistoryEntry
	err     error
}

func (m *mockHistory) RecordQuery(_ context.Context, entry service.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockHistory) ListHistory(_ context.Context, _ int) ([]service.HistoryEntry, error) {
	return m.entries, nil
}

func (m *mockHistory) ClearHistory(_ context.Context) error {
	m.entries = nil
	return nil
}

func TestQuery_FullFlow(t *testing.T) {
	translator := &mockTranslator{
		cypher: "MATCH (c:Coffee) RETURN c.name",
		answer: "There are 11 coffees.",
	}
	graph := &mockGraph{records: []map[string]any{{"c.name": "Espresso"}}}
	history := &mockHistory{}

	engine := New(graph, translator, history, nil)
	result := engine.Query(context.Background(), "what coffees exist?")

	assert.True(t, result.Success)
	assert.Equal(t, "MATCH (c:Coffee) RETURN c.name", result.Cypher)
	assert.Equal(t, "There are 11 coffees.", result.Answer)
	assert.Empty(t, result.Error)
	assert.Equal(t, []string{"MATCH (c:Coffee) RETURN c.name"}, graph.executed)

	require.Len(t, history.entries, 1)
	assert.True(t, history.entries[0].Success)
	assert.Equal(t, "what coffees exist?", history.entries[0].Question)
}

func TestQuery_EmptyQuestion(t *testing.T) {
	engine := New(&mockGraph{}, &mockTranslator{}, nil, nil)

	result := engine.Query(context.Background(), "")

	assert.False(t, result.Success)
	assert.Equal(t, "empty question", result.Error)
}

func TestQuery_TranslationFailure(t *testing.T) {
	translator := &mockTranslator{cypherErr: errors.New("model unavailable")}
	graph := &mockGraph{}

	engine := New(graph, translator, nil, nil)
	result := engine.Query(context.Background(), "what coffees exist?")

	assert.False(t, result.Success)
	assert.Equal(t, fallbackAnswer, result.Answer)
	assert.Contains(t, result.Error, "failed to generate query")
	assert.Empty(t, graph.executed, "invalid flow must not reach the graph")
}

func TestQuery_InvalidCypherNeverExecuted(t *testing.T) {
	translator := &mockTranslator{cypher: "MATCH (c:Coffee RETURN"}
	graph := &mockGraph{validateErr: errors.New("syntax error")}

	engine := New(graph, translator, nil, nil)
	result := engine.Query(context.Background(), "what coffees exist?")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid query")
	assert.Empty(t, graph.executed)
}

func TestQuery_ExecutionFailure(t *testing.T) {
	translator := &mockTranslator{cypher: "MATCH (c:Coffee) RETURN c.name"}
	graph := &mockGraph{executeErr: errors.New("connection reset")}

	engine := New(graph, translator, nil, nil)
	result := engine.Query(context.Background(), "what coffees exist?")

	assert.False(t, result.Success)
	assert.Equal(t, fallbackAnswer, result.Answer)
	assert.Contains(t, result.Error, "query execution failed")
}

func TestQuery_NoResults(t *testing.T) {
	translator := &mockTranslator{cypher: "MATCH (c:Coffee {code: 'flat_black'}) RETURN c.name"}
	graph := &mockGraph{records: nil}

	engine := New(graph, translator, nil, nil)
	result := engine.Query(context.Background(), "tell me about flat black")

	assert.True(t, result.Success)
	assert.Contains(t, result.Answer, "couldn't find any results")
}

func TestQuery_FormatterFallback(t *testing.T) {
	translator := &mockTranslator{
		cypher:    "MATCH (c:Coffee) RETURN c.name",
		formatErr: errors.New("model unavailable"),
	}
	graph := &mockGraph{records: []map[string]any{
		{"name": "Espresso"},
		{"name": "Latte"},
	}}

	engine := New(graph, translator, nil, nil)
	result := engine.Query(context.Background(), "what coffees exist?")

	assert.True(t, result.Success)
	assert.Contains(t, result.Answer, "1. name: Espresso")
	assert.Contains(t, result.Answer, "2. name: Latte")
}

func TestQuery_HistoryFailureDoesNotAffectResult(t *testing.T) {
	translator := &mockTranslator{cypher: "MATCH (c:Coffee) RETURN c.name", answer: "answer"}
	graph := &mockGraph{records: []map[string]any{{"name": "Espresso"}}}
	history := &mockHistory{err: errors.New("disk full")}

	engine := New(graph, translator, history, nil)
	result := engine.Query(context.Background(), "what coffees exist?")

	assert.True(t, result.Success)
}

func TestSampleQuestions(t *testing.T) {
	questions := SampleQuestions()
	assert.NotEmpty(t, questions)
	for _, q := range questions {
		assert.NotEmpty(t, q)
	}
}
