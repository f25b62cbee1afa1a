package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mood-quote-service/internal/app"
	"github.com/jsamuelsen/mood-quote-service/internal/domain"
	"github.com/jsamuelsen/mood-quote-service/internal/mocks"
	"github.com/jsamuelsen/mood-quote-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newQuoteRouter(t *testing.T, client *mocks.MockCompletionClient) *gin.Engine {
	t.Helper()

	service := app.NewQuoteService(app.QuoteServiceConfig{
		CompletionClient: client,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	router := gin.New()
	NewQuoteHandler(service).RegisterQuoteRoutes(router)

	return router
}

func postQuote(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate-quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestQuoteHandler_GenerateQuote_Success(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantMood   string
		completion string
		wantQuote  string
	}{
		{
			name:       "explicit mood",
			body:       `{"mood": "courage"}`,
			wantMood:   "courage",
			completion: "Be brave. - A.",
			wantQuote:  "Be brave. - A.",
		},
		{
			name:       "empty body uses default",
			body:       "",
			wantMood:   "motivational",
			completion: "Keep going. - B.",
			wantQuote:  "Keep going. - B.",
		},
		{
			name:       "missing field uses default",
			body:       `{}`,
			wantMood:   "motivational",
			completion: "Keep going. - B.",
			wantQuote:  "Keep going. - B.",
		},
		{
			name:       "explicit empty mood echoed",
			body:       `{"mood": ""}`,
			wantMood:   "",
			completion: "Anything. - C.",
			wantQuote:  "Anything. - C.",
		},
		{
			name:       "completion trimmed",
			body:       `{"mood": "hope"}`,
			wantMood:   "hope",
			completion: "\n\n  \"Hope floats.\" - D.  \n",
			wantQuote:  "\"Hope floats.\" - D.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockCompletionClient(t)
			client.EXPECT().
				Complete(mock.Anything, mock.MatchedBy(func(req domain.CompletionRequest) bool {
					return req.Prompt == domain.BuildPrompt(domain.Mood(tt.wantMood))
				})).
				Return(&domain.Completion{Choices: []string{tt.completion}}, nil).
				Once()

			w := postQuote(newQuoteRouter(t, client), tt.body)

			require.Equal(t, http.StatusOK, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, map[string]string{
				"quote":  tt.wantQuote,
				"mood":   tt.wantMood,
				"status": "success",
			}, resp)
		})
	}
}

func TestQuoteHandler_GenerateQuote_Failures(t *testing.T) {
	t.Run("upstream error", func(t *testing.T) {
		client := mocks.NewMockCompletionClient(t)
		client.EXPECT().Complete(mock.Anything, mock.Anything).
			Return(nil, domain.NewUnavailableError("completion-service", "status 429: rate limited")).
			Once()

		w := postQuote(newQuoteRouter(t, client), `{"mood": "calm"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"service \"completion-service\" unavailable: status 429: rate limited"}`, w.Body.String())
	})

	t.Run("no choices", func(t *testing.T) {
		client := mocks.NewMockCompletionClient(t)
		client.EXPECT().Complete(mock.Anything, mock.Anything).
			Return(&domain.Completion{}, nil).
			Once()

		w := postQuote(newQuoteRouter(t, client), `{"mood": "calm"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "no completion choices returned")
	})

	t.Run("malformed body never reaches upstream", func(t *testing.T) {
		client := mocks.NewMockCompletionClient(t)

		w := postQuote(newQuoteRouter(t, client), `{"mood":`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
		assert.Contains(t, resp["error"], "validation failed for body")
	})
}

func TestQuoteHandler_UsesRequestContext(t *testing.T) {
	type key struct{}

	client := mocks.NewMockCompletionClient(t)
	client.EXPECT().Complete(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.CompletionRequest) (*domain.Completion, error) {
			assert.Equal(t, "marker", ctx.Value(key{}))
			return &domain.Completion{Choices: []string{"ok"}}, nil
		}).
		Once()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), key{}, "marker"))
	})
	service := app.NewQuoteService(app.QuoteServiceConfig{CompletionClient: client})
	NewQuoteHandler(service).RegisterQuoteRoutes(router)

	w := postQuote(router, `{"mood": "focus"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func newHealthRouter(registry ports.HealthRegistry) *gin.Engine {
	router := gin.New()
	NewHealthHandler(registry, NewBuildInfo("1.0.0", "abc123", "2026-01-01T00:00:00Z"), prometheus.NewRegistry()).
		RegisterHealthRoutes(router)

	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestHealthHandler_Health(t *testing.T) {
	// The registry is never consulted, even when it would report unhealthy.
	registry := mocks.NewMockHealthRegistry(t)

	w := get(newHealthRouter(registry), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestHealthHandler_Liveness(t *testing.T) {
	w := get(newHealthRouter(mocks.NewMockHealthRegistry(t)), "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		result     *ports.HealthResult
		wantStatus int
	}{
		{
			name: "all checks pass",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{
					"completion-service": {Status: ports.HealthStatusHealthy},
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "credential missing",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"completion-service": {
						Status:  ports.HealthStatusUnhealthy,
						Message: domain.ErrMissingCredential.Error(),
					},
				},
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result).Once()

			w := get(newHealthRouter(registry), "/-/ready")

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp readinessResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.result.Status), resp.Status)
			assert.Contains(t, resp.Checks, "completion-service")
		})
	}
}

func TestHealthHandler_Build(t *testing.T) {
	w := get(newHealthRouter(mocks.NewMockHealthRegistry(t)), "/-/build")

	require.Equal(t, http.StatusOK, w.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.NotEmpty(t, info.GoVersion)
}

func TestHealthHandler_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "ops_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	router := gin.New()
	NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}, reg).RegisterHealthRoutes(router)

	w := get(router, "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ops_test_total 1")
}

func TestRespondError_RecordsGinError(t *testing.T) {
	var recorded []*gin.Error

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Next()
		recorded = c.Errors
	})
	router.GET("/fail", func(c *gin.Context) { respondError(c, errors.New("boom")) })

	w := get(router, "/fail")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"boom"}`, w.Body.String())
	require.Len(t, recorded, 1)
	assert.EqualError(t, recorded[0].Err, "boom")
}
