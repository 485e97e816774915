package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kopigraph/kopigraph/internal/common"
	"github.com/kopigraph/kopigraph/internal/service"
)

// Translator implements service.Translator on top of a provider client,
// adding rate limiting, retries, and translation caching.
type Translator struct {
	client      Client
	cache       *translationCache
	rateLimiter *rateLimiter
	logger      *slog.Logger
	schema      string
	retryOpts   service.RetryOptions
	temperature float64
	maxTokens   int
}

// NewTranslator creates a translator for the configured provider. The schema
// description is baked into every Cypher generation prompt.
func NewTranslator(cfg Config, schema string, logger *slog.Logger) (*Translator, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.1
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}

	return &Translator{
		client:      client,
		cache:       newTranslationCache(cfg.CacheTTL),
		rateLimiter: newRateLimiter(cfg.RateLimit),
		logger:      logger,
		schema:      schema,
		retryOpts:   retryOpts,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// GenerateCypher translates a natural language question into a Cypher query.
func (t *Translator) GenerateCypher(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", common.ErrEmptyQuestion
	}

	if cypher, ok := t.cache.get(question); ok {
		t.logger.Debug("Translation cache hit", "question", question)
		return cypher, nil
	}

	if err := t.rateLimiter.wait(ctx); err != nil {
		return "", err
	}

	req := completionRequest{
		System:      cypherSystemPrompt(t.schema),
		User:        question,
		Temperature: t.temperature,
		MaxTokens:   t.maxTokens,
	}

	var content string
	err := common.WithRetry(ctx, func() error {
		var completeErr error
		content, completeErr = t.client.Complete(ctx, req)
		return completeErr
	}, t.retryOpts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrTranslationFailed, err)
	}

	cypher := cleanCypher(content)
	if cypher == "" {
		return "", fmt.Errorf("%w: model returned no query", common.ErrTranslationFailed)
	}

	t.logger.Info("Generated Cypher query", "question", question, "cypher", cypher)
	t.cache.set(question, cypher)

	return cypher, nil
}

// FormatResults turns raw query records into a natural language answer.
func (t *Translator) FormatResults(ctx context.Context, question string, records []map[string]any) (string, error) {
	userPrompt, err := formatUserPrompt(question, records)
	if err != nil {
		return "", err
	}

	if err := t.rateLimiter.wait(ctx); err != nil {
		return "", err
	}

	req := completionRequest{
		System:      formatSystemPrompt,
		User:        userPrompt,
		Temperature: 0.3,
		MaxTokens:   1000,
	}

	var content string
	err = common.WithRetry(ctx, func() error {
		var completeErr error
		content, completeErr = t.client.Complete(ctx, req)
		return completeErr
	}, t.retryOpts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrTranslationFailed, err)
	}

	return content, nil
}

// Close releases background goroutines.
func (t *Translator) Close() {
	t.cache.Close()
	t.rateLimiter.Close()
}
