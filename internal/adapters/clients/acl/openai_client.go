package acl

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jsamuelsen/mood-quote-service/internal/domain"
	"github.com/jsamuelsen/mood-quote-service/internal/platform/logging"
)

const defaultServiceName = "completion-service"

// OpenAIConfig contains configuration for the completion client.
type OpenAIConfig struct {
	// ServiceName identifies the upstream in errors and health checks.
	ServiceName string

	// BaseURL is the API root, e.g. https://api.openai.com/v1.
	BaseURL string

	// APIKey is the bearer credential. An empty key defers failure to request time.
	APIKey string

	// Organization is sent as the OpenAI-Organization header when set.
	Organization string

	// HTTPClient performs the requests. Use the instrumented *clients.Client.
	HTTPClient openai.HTTPDoer

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// OpenAIClient implements ports.CompletionClient and ports.HealthChecker
// over the OpenAI chat-completions API.
type OpenAIClient struct {
	api         *openai.Client
	serviceName string
	hasKey      bool
	logger      *slog.Logger
}

// NewOpenAIClient creates a completion client adapter.
// Returns an error if HTTPClient is nil.
func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.HTTPClient == nil {
		return nil, errors.New("HTTP client is required")
	}

	name := cfg.ServiceName
	if name == "" {
		name = defaultServiceName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	apiCfg.OrgID = cfg.Organization
	apiCfg.HTTPClient = cfg.HTTPClient

	return &OpenAIClient{
		api:         openai.NewClientWithConfig(apiCfg),
		serviceName: name,
		hasKey:      strings.TrimSpace(cfg.APIKey) != "",
		logger:      logger,
	}, nil
}

// Complete submits a single chat completion request.
// Implements ports.CompletionClient.
func (c *OpenAIClient) Complete(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error) {
	logger := logging.LoggerFromContext(ctx)
	if logger == nil {
		logger = c.logger
	}

	if !c.hasKey {
		return nil, domain.NewUnavailableErrorWithCause(c.serviceName, "API key is not configured", domain.ErrMissingCredential)
	}

	logger.Log(ctx, logging.LevelTrace, "sending completion request",
		slog.String("model", req.Model),
		slog.Int("max_tokens", req.MaxTokens),
		slog.Int("prompt_length", len(req.Prompt)))

	resp, err := c.api.CreateChatCompletion(ctx, toChatRequest(req))
	if err != nil {
		mapped := MapError(err, c.serviceName)
		logger.WarnContext(ctx, "completion request failed",
			slog.String("service", c.serviceName),
			slog.Any("error", err))

		return nil, mapped
	}

	completion := fromChatResponse(&resp)

	logger.DebugContext(ctx, "completion received",
		slog.String("model", completion.Model),
		slog.Int("choices", len(completion.Choices)))

	return completion, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *OpenAIClient) Name() string {
	return c.serviceName
}

// Check reports whether a credential is configured. It makes no network call.
// Implements ports.HealthChecker.
func (c *OpenAIClient) Check(_ context.Context) error {
	if !c.hasKey {
		return domain.ErrMissingCredential
	}

	return nil
}
