package acl

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/jsamuelsen/mood-quote-service/internal/domain"
)

// toChatRequest translates a domain completion request into the upstream DTO.
// The prompt is always sent as exactly one user message.
func toChatRequest(req domain.CompletionRequest) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
		MaxTokens: req.MaxTokens,
	}
}

// fromChatResponse keeps the message text of every choice, in upstream order.
func fromChatResponse(resp *openai.ChatCompletionResponse) *domain.Completion {
	choices := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		choices = append(choices, choice.Message.Content)
	}

	return &domain.Completion{
		Choices: choices,
		Model:   resp.Model,
	}
}
