package dto

// StatusHealthy is the fixed body status of GET /health.
const StatusHealthy = "healthy"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
