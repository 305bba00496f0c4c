package langid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrNoText is returned for input without any letters
	ErrNoText = errors.New("text has no letters to identify")
	// ErrNoLanguage is returned when a model reply is not a language tag
	ErrNoLanguage = errors.New("no language identified")
)

// Identifier classifies the language of a text.
type Identifier interface {
	// Classify returns the language tag of text, e.g. "es" or "es-ES"
	Classify(ctx context.Context, text string) (string, error)

	// Name returns the identifier name
	Name() string

	// IsAvailable checks if the identifier is properly configured
	IsAvailable() error
}

// Config holds the configuration of all identifiers.
type Config struct {
	Provider string        // "openai" or "gemini"
	Timeout  time.Duration // per classification

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string // optional, for proxies and tests

	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string // optional, for proxies and tests

	// Breaker wraps the identifier in a circuit breaker when set
	Breaker bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		Timeout:     20 * time.Second,
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
		Breaker:     true,
	}
}

// NewIdentifier creates the identifier selected by config.
func NewIdentifier(config *Config) (Identifier, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		id  Identifier
		err error
	)
	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		id, err = NewOpenAIIdentifier(config)
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		id, err = NewGeminiIdentifier(config)
	default:
		return nil, fmt.Errorf("unknown language identifier: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	if config.Breaker {
		id = NewBreaker(id, BreakerSettings{})
	}
	return id, nil
}

// IdentifierWithFallback tries a primary identifier and falls back to a
// secondary one on error.
type IdentifierWithFallback struct {
	primary  Identifier
	fallback Identifier
	logger   *log.Logger
}

// NewIdentifierWithFallback creates an identifier that falls back to
// secondary if primary fails.
func NewIdentifierWithFallback(primary, fallback Identifier, logger *log.Logger) Identifier {
	if logger == nil {
		logger = log.Default()
	}
	return &IdentifierWithFallback{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Classify tries the primary identifier first.
func (f *IdentifierWithFallback) Classify(ctx context.Context, text string) (string, error) {
	tag, err := f.primary.Classify(ctx, text)
	if err == nil {
		return tag, nil
	}
	if errors.Is(err, ErrNoText) {
		return "", err
	}

	f.logger.Warn("Primary identifier failed, falling back",
		"primary", f.primary.Name(), "fallback", f.fallback.Name(), "err", err)
	return f.fallback.Classify(ctx, text)
}

// Name returns the identifier name.
func (f *IdentifierWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", f.primary.Name(), f.fallback.Name())
}

// IsAvailable checks if at least one identifier is available.
func (f *IdentifierWithFallback) IsAvailable() error {
	primaryErr := f.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := f.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both identifiers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
