// Package domain contains core business entities and rules.
package domain

import (
	"fmt"
	"strings"
)

// Mood is a free-text label describing the emotional theme of a quote.
type Mood string

// DefaultMood is used when the caller does not supply a mood.
const DefaultMood Mood = "motivational"

// promptTemplate is the fixed instruction sent upstream. Its only placeholder is the mood.
const promptTemplate = "Generate an inspiring and uplifting quote about %s. " +
	"Make it original, powerful, and suitable for sharing on social media. " +
	"Include the quote and a brief author attribution (can be fictional)."

// Quote is a generated quotation together with the mood it was generated for.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// Text is the generated quote, including its attribution.
	Text string

	// Mood is the mood the quote was generated for, echoed verbatim.
	Mood Mood
}

// ResolveMood returns the caller's mood, or DefaultMood when none was given.
// An explicitly supplied empty string is kept as-is.
func ResolveMood(raw *string) Mood {
	if raw == nil {
		return DefaultMood
	}

	return Mood(*raw)
}

// BuildPrompt renders the quote prompt for the given mood.
// The mood is embedded exactly as supplied.
func BuildPrompt(mood Mood) string {
	return fmt.Sprintf(promptTemplate, string(mood))
}

// NewQuote builds a Quote from raw completion text, trimming surrounding whitespace.
func NewQuote(text string, mood Mood) *Quote {
	return &Quote{
		Text: strings.TrimSpace(text),
		Mood: mood,
	}
}
