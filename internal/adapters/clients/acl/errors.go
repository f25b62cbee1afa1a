package acl

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jsamuelsen/mood-quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/mood-quote-service/internal/domain"
)

// MapError translates an error returned by the upstream SDK into a domain error.
// Returns nil for a nil error.
func MapError(err error, service string) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return mapStatus(apiErr.HTTPStatusCode, apiErr.Message, service, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return mapStatus(reqErr.HTTPStatusCode, "", service, err)
	}

	switch {
	case errors.Is(err, context.Canceled):
		return domain.NewUnavailableErrorWithCause(service, "request canceled", err)
	case clients.IsTimeout(err):
		return domain.NewUnavailableErrorWithCause(service, "request timed out", err)
	case errors.Is(err, clients.ErrTransport):
		return domain.NewUnavailableErrorWithCause(service, "unreachable: "+err.Error(), err)
	default:
		return domain.NewUnavailableErrorWithCause(service, err.Error(), err)
	}
}

// mapStatus maps an upstream HTTP status to a domain error.
func mapStatus(status int, message, service string, cause error) error {
	detail := fmt.Sprintf("status %d", status)
	if message != "" {
		detail = fmt.Sprintf("status %d: %s", status, message)
	}

	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		if message == "" {
			message = detail
		}

		return domain.NewValidationError("prompt", message)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return domain.NewUnavailableErrorWithCause(service, "credential rejected ("+detail+")", cause)
	case status == http.StatusTooManyRequests:
		return domain.NewUnavailableErrorWithCause(service, "rate limited ("+detail+")", cause)
	default:
		return domain.NewUnavailableErrorWithCause(service, detail, cause)
	}
}
