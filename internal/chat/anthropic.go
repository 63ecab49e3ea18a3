package chat

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

// AnthropicProvider answers chat turns with an Anthropic model through
// langchaingo.
type AnthropicProvider struct {
	llm          *anthropic.LLM
	systemPrompt string
	maxTokens    int
	temperature  float64
}

type AnthropicConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

func NewAnthropicProvider(cfg AnthropicConfig, offer Offer) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key not configured")
	}

	llm, err := anthropic.New(
		anthropic.WithToken(cfg.APIKey),
		anthropic.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create anthropic client: %w", err)
	}

	return &AnthropicProvider{
		llm:          llm,
		systemPrompt: SystemPrompt(offer),
		maxTokens:    cfg.MaxTokens,
		temperature:  cfg.Temperature,
	}, nil
}

func (p *AnthropicProvider) Reply(ctx context.Context, message string, history []Turn) (string, error) {
	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, p.systemPrompt))

	for _, turn := range history {
		role := llms.ChatMessageTypeHuman
		if turn.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, turn.Content))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))

	resp, err := p.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(p.maxTokens),
		llms.WithTemperature(p.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("anthropic completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("anthropic returned no choices")
	}
	return resp.Choices[0].Content, nil
}
