package langid

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIIdentifier asks an OpenAI chat model for the language of a text.
type OpenAIIdentifier struct {
	client *openai.Client
	config *Config
}

// NewOpenAIIdentifier creates a new OpenAI identifier.
func NewOpenAIIdentifier(config *Config) (*OpenAIIdentifier, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	return &OpenAIIdentifier{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Classify returns the language tag of text.
func (o *OpenAIIdentifier) Classify(ctx context.Context, text string) (string, error) {
	if err := ValidateText(text); err != nil {
		return "", err
	}
	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: o.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt(text),
			},
		},
		MaxTokens:   10,
		Temperature: 0,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrNoLanguage)
	}
	return parseReply(resp.Choices[0].Message.Content)
}

// Name returns the identifier name.
func (o *OpenAIIdentifier) Name() string {
	return "openai"
}

// IsAvailable checks if the identifier is configured.
func (o *OpenAIIdentifier) IsAvailable() error {
	if o.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
