package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// Credentials holds the API keys of the language identifiers.
type Credentials struct {
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	GeminiKey     string `env:"GEMINI_API_KEY"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`
}

// LoadCredentials reads credentials from the environment, falling back to
// the identifier section of the config file.
func LoadCredentials() (Credentials, error) {
	creds, err := env.ParseAs[Credentials]()
	if err != nil {
		return Credentials{}, fmt.Errorf("error parsing credentials: %w", err)
	}
	if creds.OpenAIKey == "" {
		creds.OpenAIKey = viper.GetString("identifier.openai_key")
	}
	if creds.GeminiKey == "" {
		creds.GeminiKey = viper.GetString("identifier.gemini_key")
	}
	return creds, nil
}
