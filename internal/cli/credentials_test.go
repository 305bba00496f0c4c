package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadCredentials(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "env-openai")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:1234/v1")
	viper.Set("identifier.openai_key", "config-openai")
	viper.Set("identifier.gemini_key", "config-gemini")

	creds, err := LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials failed: %v", err)
	}

	if creds.OpenAIKey != "env-openai" {
		t.Errorf("Expected OpenAI key from environment, got %s", creds.OpenAIKey)
	}
	if creds.GeminiKey != "config-gemini" {
		t.Errorf("Expected Gemini key from config, got %s", creds.GeminiKey)
	}
	if creds.OpenAIBaseURL != "http://localhost:1234/v1" {
		t.Errorf("Expected base URL from environment, got %s", creds.OpenAIBaseURL)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("Expected debug message to be filtered")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Expected info message to be logged")
	}

	buf.Reset()
	NewLogger(&buf, true).Debug("verbose")
	if !strings.Contains(buf.String(), "verbose") {
		t.Error("Expected debug message with verbose logging")
	}
}
