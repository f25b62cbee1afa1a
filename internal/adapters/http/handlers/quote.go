package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mood-quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/mood-quote-service/internal/domain"
	"github.com/jsamuelsen/mood-quote-service/internal/platform/logging"
)

// QuoteGenerator is the use case behind POST /generate-quote.
type QuoteGenerator interface {
	GenerateQuote(ctx context.Context, mood domain.Mood) (*domain.Quote, error)
}

// QuoteHandler handles quote generation requests.
type QuoteHandler struct {
	generator QuoteGenerator
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(generator QuoteGenerator) *QuoteHandler {
	return &QuoteHandler{generator: generator}
}

// GenerateQuote handles POST /generate-quote.
//
// The body is {"mood": string} with mood optional. Any failure, whether
// reading the body or calling upstream, is answered with
// 500 {"error": "<reason>"}.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, domain.NewValidationError("body", err.Error()))
		return
	}

	req, err := dto.DecodeGenerateQuoteRequest(body)
	if err != nil {
		respondError(c, err)
		return
	}

	quote, err := h.generator.GenerateQuote(c.Request.Context(), req.EffectiveMood())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGenerateQuoteResponse(quote))
}

// RegisterQuoteRoutes registers POST /generate-quote.
func (h *QuoteHandler) RegisterQuoteRoutes(engine *gin.Engine) {
	engine.POST("/generate-quote", h.GenerateQuote)
}

// respondError writes the single error shape used by the API. Errors are not
// classified: every failure is a 500 carrying the error's text.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	logging.FromContext(ctx).WarnContext(ctx, "request failed",
		slog.String("path", c.FullPath()),
		slog.Any("error", err),
	)

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponseFromError(err))
}
