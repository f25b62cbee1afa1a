package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrValidation,
		ErrUnavailable,
		ErrMissingCredential,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		message     string
		expectedMsg string
	}{
		{
			name:        "with field",
			field:       "mood",
			message:     "must be a string",
			expectedMsg: "validation failed for mood: must be a string",
		},
		{
			name:        "without field",
			field:       "",
			message:     "malformed body",
			expectedMsg: "validation failed: malformed body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrValidation)
			assert.True(t, IsValidation(err))
			assert.False(t, IsUnavailable(err))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestUnavailableError(t *testing.T) {
	tests := []struct {
		name        string
		service     string
		reason      string
		expectedMsg string
	}{
		{
			name:        "with reason",
			service:     "openai",
			reason:      "connection refused",
			expectedMsg: `service "openai" unavailable: connection refused`,
		},
		{
			name:        "without reason",
			service:     "openai",
			reason:      "",
			expectedMsg: `service "openai" unavailable`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUnavailableError(tt.service, tt.reason)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrUnavailable)
			assert.True(t, IsUnavailable(err))
			assert.False(t, IsMissingCredential(err))
		})
	}
}

func TestUnavailableErrorWithCause(t *testing.T) {
	err := NewUnavailableErrorWithCause("openai", "API key is not configured", ErrMissingCredential)

	assert.True(t, IsUnavailable(err))
	assert.True(t, IsMissingCredential(err))
	assert.Equal(t, `service "openai" unavailable: API key is not configured`, err.Error())
}

func TestErrors_SurviveWrapping(t *testing.T) {
	base := NewUnavailableError("openai", "timeout")
	wrapped := fmt.Errorf("generating quote: %w", base)

	assert.True(t, IsUnavailable(wrapped))

	var unavailable *UnavailableError
	require.True(t, errors.As(wrapped, &unavailable))
	assert.Equal(t, "openai", unavailable.Service)
}
