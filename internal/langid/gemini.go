package langid

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiIdentifier asks a Gemini model for the language of a text.
type GeminiIdentifier struct {
	client *genai.Client
	config *Config
}

// NewGeminiIdentifier creates a new Gemini identifier.
func NewGeminiIdentifier(config *Config) (*GeminiIdentifier, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.GeminiBaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = config.GeminiBaseURL
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiIdentifier{client: client, config: config}, nil
}

// Classify returns the language tag of text.
func (g *GeminiIdentifier) Classify(ctx context.Context, text string) (string, error) {
	if err := ValidateText(text); err != nil {
		return "", err
	}
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.config.GeminiModel, genai.Text(prompt(text)),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0),
			MaxOutputTokens: 10,
		})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	return parseReply(resp.Text())
}

// Name returns the identifier name.
func (g *GeminiIdentifier) Name() string {
	return "gemini"
}

// IsAvailable checks if the identifier is configured.
func (g *GeminiIdentifier) IsAvailable() error {
	if g.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
