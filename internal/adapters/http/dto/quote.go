package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jsamuelsen/mood-quote-service/internal/domain"
)

// StatusSuccess marks a successful quote response.
const StatusSuccess = "success"

// GenerateQuoteRequest is the body of POST /generate-quote.
// A nil Mood means the field was absent.
type GenerateQuoteRequest struct {
	Mood *string `json:"mood"`
}

// EffectiveMood returns the requested mood or the default.
func (r GenerateQuoteRequest) EffectiveMood() domain.Mood {
	return domain.ResolveMood(r.Mood)
}

// moodKey is matched exactly; "Mood" or "MOOD" do not select a mood.
const moodKey = "mood"

// DecodeGenerateQuoteRequest parses a request body. An empty or
// whitespace-only body is treated as an empty object, and a null mood
// as an absent one.
func DecodeGenerateQuoteRequest(body []byte) (GenerateQuoteRequest, error) {
	var req GenerateQuoteRequest

	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return GenerateQuoteRequest{}, domain.NewValidationError("body", err.Error())
	}

	raw, ok := fields[moodKey]
	if !ok {
		return req, nil
	}

	if err := json.Unmarshal(raw, &req.Mood); err != nil {
		return GenerateQuoteRequest{}, domain.NewValidationError(moodKey, err.Error())
	}

	return req, nil
}

// GenerateQuoteResponse is the success body of POST /generate-quote.
type GenerateQuoteResponse struct {
	Quote  string `json:"quote"`
	Mood   string `json:"mood"`
	Status string `json:"status"`
}

// NewGenerateQuoteResponse converts a domain quote into its response body.
func NewGenerateQuoteResponse(q *domain.Quote) *GenerateQuoteResponse {
	return &GenerateQuoteResponse{
		Quote:  q.Text,
		Mood:   string(q.Mood),
		Status: StatusSuccess,
	}
}
