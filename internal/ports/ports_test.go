package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// funcChecker is a HealthChecker backed by a function.
type funcChecker struct {
	name string
	fn   func(ctx context.Context) error
}

func (c *funcChecker) Name() string { return c.name }
func (c *funcChecker) Check(ctx context.Context) error { return c.fn(ctx) }

func staticCheck(name string, err error) HealthChecker {
	return &funcChecker{name: name, fn: func(context.Context) error { return err }}
}

func TestNewHealthRegistry(t *testing.T) {
	registry := NewHealthRegistry()

	require.NotNil(t, registry)
	assert.Empty(t, registry.checkers)
	assert.Equal(t, DefaultCheckTimeout, registry.checkTimeout)
}

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(staticCheck("openai", nil)))

	err := registry.Register(staticCheck("openai", nil))

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "openai")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll_NoCheckers(t *testing.T) {
	result := NewHealthRegistry().CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name           string
		checkers       []HealthChecker
		expectedStatus HealthStatus
		unhealthy      map[string]string
	}{
		{
			name: "all healthy",
			checkers: []HealthChecker{
				staticCheck("openai", nil),
				staticCheck("config", nil),
			},
			expectedStatus: HealthStatusHealthy,
		},
		{
			name: "one unhealthy",
			checkers: []HealthChecker{
				staticCheck("openai", errors.New("API key is not configured")),
				staticCheck("config", nil),
			},
			expectedStatus: HealthStatusUnhealthy,
			unhealthy:      map[string]string{"openai": "API key is not configured"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))

			for name, check := range result.Checks {
				if msg, ok := tt.unhealthy[name]; ok {
					assert.Equal(t, HealthStatusUnhealthy, check.Status)
					assert.Equal(t, msg, check.Message)
					continue
				}

				assert.Equal(t, HealthStatusHealthy, check.Status)
				assert.Empty(t, check.Message)
			}
		})
	}
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	registry := NewHealthRegistryWithTimeout(20 * time.Millisecond)

	slow := &funcChecker{name: "slow", fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}
	require.NoError(t, registry.Register(slow))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "deadline exceeded")
}
