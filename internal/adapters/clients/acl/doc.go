// Package acl is the anti-corruption layer between the service and the
// upstream chat-completions API.
//
// The upstream speaks in chat messages, choices and API error objects. None of
// those types cross this package boundary:
//
//   - [toChatRequest] turns a [domain.CompletionRequest] into a single user message
//   - [fromChatResponse] keeps only the text of each choice
//   - [MapError] converts SDK and transport failures into domain errors
//
// # Error Mapping
//
// Upstream failures translate to domain errors as follows:
//   - 400/422 → [domain.ErrValidation]
//   - 401/403 → [domain.ErrUnavailable] ("credential rejected")
//   - 429/5xx → [domain.ErrUnavailable]
//   - Network, timeout or cancellation → [domain.ErrUnavailable] wrapping the cause
//   - Missing credential → [domain.ErrUnavailable] wrapping [domain.ErrMissingCredential]
//
// The HTTP layer does not distinguish between them; the mapping exists so that
// logs and metrics carry structured context.
package acl
