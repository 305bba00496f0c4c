package transcriber

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/stevens/internal/phonetic"
)

// Error kinds. Every error returned by this package matches one of these
// with errors.Is.
var (
	// ErrUnsupportedLanguage indicates no engine is registered for a tag
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrLanguageIdentificationUnavailable indicates automatic language
	// detection was requested without a configured identifier
	ErrLanguageIdentificationUnavailable = errors.New("language identification unavailable")

	// ErrHyphenation indicates a word could not be split into syllables
	ErrHyphenation = errors.New("hyphenation failed")

	// ErrUnmappedGrapheme indicates no phoneme rule matched a grapheme
	ErrUnmappedGrapheme = errors.New("unmapped grapheme")

	// ErrInvalidConfig indicates an invalid alphabet, separator or mark
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPartition indicates a hyphenator returned syllables that do not
	// rebuild the word
	ErrPartition = errors.New("syllables do not rebuild the word")
)

// UnsupportedLanguageError names the tag no engine is registered for.
type UnsupportedLanguageError struct {
	Tag string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedLanguage, e.Tag)
}

func (e *UnsupportedLanguageError) Unwrap() error {
	return ErrUnsupportedLanguage
}

// HyphenationError names the word the hyphenator failed on.
type HyphenationError struct {
	Word string
	Err  error
}

func (e *HyphenationError) Error() string {
	return fmt.Sprintf("%v for %q: %v", ErrHyphenation, e.Word, e.Err)
}

func (e *HyphenationError) Unwrap() []error {
	return []error{ErrHyphenation, e.Err}
}

// UnmappedGraphemeError names the grapheme that could not be transcribed.
type UnmappedGraphemeError struct {
	Word     string
	Grapheme string
	Alphabet phonetic.Alphabet
	Err      error
}

func (e *UnmappedGraphemeError) Error() string {
	return fmt.Sprintf("%v %q in %q (%s): %v", ErrUnmappedGrapheme, e.Grapheme, e.Word, e.Alphabet, e.Err)
}

func (e *UnmappedGraphemeError) Unwrap() []error {
	return []error{ErrUnmappedGrapheme, e.Err}
}
