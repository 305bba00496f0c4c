package hyphenation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyWord is returned when asked to hyphenate an empty string.
	ErrEmptyWord = errors.New("empty word")
	// ErrNoVowel is returned for words without a syllable nucleus.
	ErrNoVowel = errors.New("word has no vowel")
	// ErrUnsupportedCharacter is returned for letters outside the alphabet
	// of the hyphenator's language.
	ErrUnsupportedCharacter = errors.New("unsupported character")
	// ErrUnsupportedLanguage is returned by Get for unknown languages.
	ErrUnsupportedLanguage = errors.New("no hyphenator for language")
)

// Hyphenator splits a word into syllables. The returned syllables,
// concatenated, reproduce the word exactly.
type Hyphenator interface {
	Hyphenate(word string) ([]string, error)
}

// Error describes why a word could not be hyphenated.
type Error struct {
	Word string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot hyphenate %q: %v", e.Word, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var registry = map[string]func() Hyphenator{
	"es": func() Hyphenator { return NewSpanish() },
}

// Get returns the hyphenator for a language. Both ISO 639-1 codes ("es")
// and tags with a region ("es_ES", "es-ES") are accepted.
func Get(lang string) (Hyphenator, error) {
	base := strings.ToLower(lang)
	if i := strings.IndexAny(base, "_-"); i >= 0 {
		base = base[:i]
	}
	newFn, ok := registry[base]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return newFn(), nil
}
