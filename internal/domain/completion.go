package domain

// Default completion parameters.
const (
	// DefaultModel is the model identifier used for quote generation.
	DefaultModel = "gpt-3.5-turbo"

	// DefaultMaxTokens bounds the length of a generated quote.
	DefaultMaxTokens = 150
)

// CompletionRequest is a provider-neutral text completion request.
type CompletionRequest struct {
	// Model is the upstream model identifier.
	Model string

	// Prompt is sent as a single user message.
	Prompt string

	// MaxTokens bounds the generated output.
	MaxTokens int
}

// Completion is the provider-neutral result of a completion request.
type Completion struct {
	// Choices holds the text of each returned choice, in upstream order.
	Choices []string

	// Model is the model that actually served the request, if reported.
	Model string
}

// FirstChoice returns the text of the first choice.
// Returns an UnavailableError when the upstream returned no choices.
func (c *Completion) FirstChoice(service string) (string, error) {
	if c == nil || len(c.Choices) == 0 {
		return "", NewUnavailableError(service, "no completion choices returned")
	}

	return c.Choices[0], nil
}
