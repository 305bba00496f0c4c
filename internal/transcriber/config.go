package transcriber

import (
	"fmt"

	"codeberg.org/snonux/stevens/internal/phonetic"
)

// Defaults used when an option is not given.
const (
	DefaultSyllabicSeparator = "."
	DefaultStressMark        = "'"
	DefaultWordSeparator     = "|"
)

// Punctuation selects what happens to non-word tokens.
type Punctuation int

const (
	// PunctuationDrop removes punctuation from the output.
	PunctuationDrop Punctuation = iota
	// PunctuationKeep glues punctuation to the neighbouring word: to the
	// preceding word when it follows it directly, otherwise to the next one.
	PunctuationKeep
)

func (p Punctuation) String() string {
	switch p {
	case PunctuationDrop:
		return "drop"
	case PunctuationKeep:
		return "keep"
	default:
		return fmt.Sprintf("punctuation(%d)", int(p))
	}
}

// Config controls how a transcription is rendered.
type Config struct {
	Alphabet          phonetic.Alphabet
	SyllabicSeparator string
	StressMark        string
	WordSeparator     string
	Punctuation       Punctuation
}

// DefaultConfig returns the IPA configuration with "." between syllables,
// "'" before the stressed syllable and "|" between words.
func DefaultConfig() Config {
	return Config{
		Alphabet:          phonetic.IPA,
		SyllabicSeparator: DefaultSyllabicSeparator,
		StressMark:        DefaultStressMark,
		WordSeparator:     DefaultWordSeparator,
		Punctuation:       PunctuationDrop,
	}
}

// Option overrides one field of a Config.
type Option func(*Config) error

// WithAlphabet selects the phonetic alphabet.
func WithAlphabet(a phonetic.Alphabet) Option {
	return func(c *Config) error {
		c.Alphabet = a
		return nil
	}
}

// WithAlphabetName selects the phonetic alphabet by case-insensitive name.
func WithAlphabetName(name string) Option {
	return func(c *Config) error {
		a, err := phonetic.ParseAlphabet(name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		c.Alphabet = a
		return nil
	}
}

// WithSyllabicSeparator sets the string placed between syllables. An empty
// separator falls back to DefaultSyllabicSeparator.
func WithSyllabicSeparator(sep string) Option {
	return func(c *Config) error {
		c.SyllabicSeparator = sep
		return nil
	}
}

// WithStressMark sets the string placed before the stressed syllable.
func WithStressMark(mark string) Option {
	return func(c *Config) error {
		c.StressMark = mark
		return nil
	}
}

// WithWordSeparator sets the string placed between words.
func WithWordSeparator(sep string) Option {
	return func(c *Config) error {
		c.WordSeparator = sep
		return nil
	}
}

// WithPunctuation sets the punctuation policy.
func WithPunctuation(p Punctuation) Option {
	return func(c *Config) error {
		c.Punctuation = p
		return nil
	}
}

// With returns a copy of c with opts applied, normalized and validated.
func (c Config) With(opts ...Option) (Config, error) {
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Config{}, err
		}
	}
	if c.SyllabicSeparator == "" {
		c.SyllabicSeparator = DefaultSyllabicSeparator
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects unknown alphabets and policies, and separators or stress
// marks that would make the output ambiguous.
func (c Config) Validate() error {
	if !c.Alphabet.Valid() {
		return fmt.Errorf("%w: unknown alphabet %d", ErrInvalidConfig, int(c.Alphabet))
	}
	if c.Punctuation != PunctuationDrop && c.Punctuation != PunctuationKeep {
		return fmt.Errorf("%w: unknown punctuation policy %d", ErrInvalidConfig, int(c.Punctuation))
	}
	if c.SyllabicSeparator == "" {
		return fmt.Errorf("%w: empty syllabic separator", ErrInvalidConfig)
	}

	marks := []struct {
		name  string
		value string
	}{
		{"syllabic separator", c.SyllabicSeparator},
		{"stress mark", c.StressMark},
		{"word separator", c.WordSeparator},
	}
	for i := range marks {
		for j := i + 1; j < len(marks); j++ {
			if marks[i].value != "" && marks[i].value == marks[j].value {
				return fmt.Errorf("%w: %s and %s are both %q",
					ErrInvalidConfig, marks[i].name, marks[j].name, marks[i].value)
			}
		}
	}
	return nil
}
