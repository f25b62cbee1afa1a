// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/mood-quote-service/internal/domain"
	"github.com/jsamuelsen/mood-quote-service/internal/platform/logging"
	"github.com/jsamuelsen/mood-quote-service/internal/platform/metrics"
	"github.com/jsamuelsen/mood-quote-service/internal/ports"
)

// QuoteService generates quotes for a mood through an upstream completion model.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	completions ports.CompletionClient
	model       string
	maxTokens   int
	serviceName string
	metrics     *metrics.QuoteMetrics
	logger      *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	// CompletionClient is required.
	CompletionClient ports.CompletionClient

	// Model defaults to domain.DefaultModel.
	Model string

	// MaxTokens defaults to domain.DefaultMaxTokens.
	MaxTokens int

	// ServiceName names the upstream in errors. Defaults to "completion-service".
	ServiceName string

	// Metrics is optional.
	Metrics *metrics.QuoteMetrics

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if CompletionClient is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.CompletionClient == nil {
		panic("QuoteService: CompletionClient is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	model := cfg.Model
	if model == "" {
		model = domain.DefaultModel
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = domain.DefaultMaxTokens
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "completion-service"
	}

	return &QuoteService{
		completions: cfg.CompletionClient,
		model:       model,
		maxTokens:   maxTokens,
		serviceName: serviceName,
		metrics:     cfg.Metrics,
		logger:      logger,
	}
}

// GenerateQuote builds the prompt for mood, makes exactly one upstream call and
// returns the trimmed text of the first choice.
func (s *QuoteService) GenerateQuote(ctx context.Context, mood domain.Mood) (quote *domain.Quote, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(err, time.Since(start)) }()

	logger := s.requestLogger(ctx).With(slog.String("mood", string(mood)))

	req := domain.CompletionRequest{
		Model:     s.model,
		Prompt:    domain.BuildPrompt(mood),
		MaxTokens: s.maxTokens,
	}

	logger.Log(ctx, logging.LevelTrace, "built prompt", slog.String("prompt", req.Prompt))
	logger.InfoContext(ctx, "generating quote", slog.String("model", req.Model))

	completion, err := s.completions.Complete(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate quote",
			slog.String("error_kind", errorKind(err)),
			slog.Any("error", err))
		return nil, err
	}

	text, err := completion.FirstChoice(s.serviceName)
	if err != nil {
		logger.ErrorContext(ctx, "upstream returned no usable completion", slog.Any("error", err))
		return nil, fmt.Errorf("reading completion: %w", err)
	}

	quote = domain.NewQuote(text, mood)

	logger.InfoContext(ctx, "generated quote",
		slog.Int("length", len(quote.Text)),
		slog.Duration("duration", time.Since(start)),
	)

	return quote, nil
}

// errorKind labels an upstream failure for logs.
func errorKind(err error) string {
	switch {
	case domain.IsMissingCredential(err):
		return "missing_credential"
	case domain.IsValidation(err):
		return "rejected_request"
	case domain.IsUnavailable(err):
		return "unavailable"
	default:
		return "unknown"
	}
}

// requestLogger prefers the request-scoped logger (carrying request and correlation IDs).
func (s *QuoteService) requestLogger(ctx context.Context) *slog.Logger {
	if l := logging.LoggerFromContext(ctx); l != nil {
		return l
	}

	return s.logger
}
