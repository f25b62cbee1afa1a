package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mood-quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/mood-quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/mood-quote-service/internal/platform/config"
	"github.com/jsamuelsen/mood-quote-service/internal/platform/telemetry"
)

// RouterConfig contains what SetupRouter wires onto the engine.
type RouterConfig struct {
	// ServiceName names the otelgin server spans.
	ServiceName string

	// CORS configures cross-origin access.
	CORS config.CORSConfig

	// HealthHandler serves /health and /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler serves /generate-quote. Optional.
	QuoteHandler *handlers.QuoteHandler
}

// SetupRouter installs middleware and routes on engine.
// Middleware order (first to last):
//  1. Recovery
//  2. CORS, so preflight requests end early
//  3. Request ID and correlation ID
//  4. OpenTelemetry spans and metrics
//  5. Request logging, skipping /-/ endpoints
//
// No request timeout is installed. The outbound client timeout bounds upstream calls.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.CORS(cfg.CORS),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging())

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(notFound)
	engine.NoMethod(methodNotAllowed)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(engine)
	}
}
