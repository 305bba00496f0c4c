// Package stevens converts written text into a phonetic transcription with
// syllable boundaries and stress marks, in IPA or X-SAMPA.
//
// A Dispatcher picks the transcription engine for a language tag, or asks
// an optional language identifier when no tag is given:
//
//	out, err := stevens.Transcribe(ctx, "El perro come.", stevens.WithLanguage("es"))
//	// out == "'el|'pe.ro|'ko.me"
//
// Castilian Spanish is the only built-in language.
package stevens

import (
	"context"

	"codeberg.org/snonux/stevens/internal/transcriber"
)

// Errors returned by this package. Use errors.Is to test for them.
var (
	ErrUnsupportedLanguage               = transcriber.ErrUnsupportedLanguage
	ErrLanguageIdentificationUnavailable = transcriber.ErrLanguageIdentificationUnavailable
	ErrHyphenation                       = transcriber.ErrHyphenation
	ErrUnmappedGrapheme                  = transcriber.ErrUnmappedGrapheme
	ErrInvalidConfig                     = transcriber.ErrInvalidConfig
)

type (
	UnsupportedLanguageError = transcriber.UnsupportedLanguageError
	HyphenationError         = transcriber.HyphenationError
	UnmappedGraphemeError    = transcriber.UnmappedGraphemeError

	Engine        = transcriber.Engine
	Option        = transcriber.Option
	Config        = transcriber.Config
	Transcription = transcriber.Transcription
	Word          = transcriber.Word
	Punctuation   = transcriber.Punctuation
)

const (
	PunctuationDrop = transcriber.PunctuationDrop
	PunctuationKeep = transcriber.PunctuationKeep
)

var defaultDispatcher = NewDispatcher()

// Resolve returns the built-in engine for languageTag with opts as its
// defaults.
func Resolve(languageTag string, opts ...Option) (Engine, error) {
	return defaultDispatcher.Resolve(languageTag, opts...)
}

// Transcribe transcribes text with the default dispatcher, which has no
// language identifier: a language must be given with WithLanguage.
func Transcribe(ctx context.Context, text string, opts ...RequestOption) (string, error) {
	return defaultDispatcher.Transcribe(ctx, text, opts...)
}

// Analyze is like Transcribe but returns the structured result.
func Analyze(ctx context.Context, text string, opts ...RequestOption) (*Transcription, error) {
	return defaultDispatcher.Analyze(ctx, text, opts...)
}
