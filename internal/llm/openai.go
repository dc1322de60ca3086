package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient implements Client for the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI-backed client.
func NewOpenAIClient(config *Config) (*OpenAIClient, error) {
	apiKey := config.ResolveAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required (set OPENAI_API_KEY)")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("no model configured")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIClient{
		client: client,
		config: config,
	}, nil
}

// Generate sends a prompt to OpenAI and returns the generated text.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if c.config.Temperature > 0 {
		params.Temperature = openai.Float(c.config.Temperature)
	}
	if c.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.config.MaxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return completion.Choices[0].Message.Content, nil
}

// Close releases resources held by the client. The OpenAI client holds no
// persistent connections, so this is a no-op.
func (c *OpenAIClient) Close() error {
	return nil
}
