// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrUnavailable, ErrValidation)
package ports

import (
	"context"

	"github.com/jsamuelsen/mood-quote-service/internal/domain"
)

// CompletionClient turns a prompt into generated text using an upstream model.
//
// Key considerations:
//   - Exactly one upstream call per invocation; no retries
//   - Respect context deadlines and cancellation
//   - Map upstream failures to domain errors
type CompletionClient interface {
	// Complete submits the request and returns every choice the upstream produced.
	// Returns domain.ErrUnavailable when the upstream is unreachable or rejects the request,
	// and domain.ErrMissingCredential when no credential is configured.
	Complete(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error)
}
