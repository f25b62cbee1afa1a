// Package dto provides the JSON bodies exchanged over HTTP.
package dto

// MessageInternalError is returned when a handler panics. Nothing about the
// panic itself is exposed.
const MessageInternalError = "internal server error"

// ErrorResponse is the error envelope for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error envelope carrying message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// NewErrorResponseFromError creates an error envelope carrying err's text.
func NewErrorResponseFromError(err error) *ErrorResponse {
	if err == nil {
		return NewErrorResponse(MessageInternalError)
	}

	return NewErrorResponse(err.Error())
}
