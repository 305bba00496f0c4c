package stevens

import "codeberg.org/snonux/stevens/internal/transcriber"

type request struct {
	language   string
	autoDetect bool
	opts       []transcriber.Option
}

func newRequest(opts []RequestOption) *request {
	req := &request{}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// RequestOption configures one transcription request.
type RequestOption func(*request)

// WithLanguage sets the language tag of the text.
func WithLanguage(tag string) RequestOption {
	return func(r *request) {
		r.language = tag
	}
}

// WithAutoDetect asks the dispatcher's identifier for the language even if
// WithLanguage was given.
func WithAutoDetect() RequestOption {
	return func(r *request) {
		r.autoDetect = true
	}
}

// WithAlphabet selects the phonetic alphabet by name: "ipa" or "x-sampa".
func WithAlphabet(name string) RequestOption {
	return func(r *request) {
		r.opts = append(r.opts, transcriber.WithAlphabetName(name))
	}
}

// WithSyllabicSeparator sets the string between syllables. "" means ".".
func WithSyllabicSeparator(sep string) RequestOption {
	return func(r *request) {
		r.opts = append(r.opts, transcriber.WithSyllabicSeparator(sep))
	}
}

// WithStressMark sets the string before the stressed syllable.
func WithStressMark(mark string) RequestOption {
	return func(r *request) {
		r.opts = append(r.opts, transcriber.WithStressMark(mark))
	}
}

// WithWordSeparator sets the string between words.
func WithWordSeparator(sep string) RequestOption {
	return func(r *request) {
		r.opts = append(r.opts, transcriber.WithWordSeparator(sep))
	}
}

// WithPunctuation sets the punctuation policy.
func WithPunctuation(p Punctuation) RequestOption {
	return func(r *request) {
		r.opts = append(r.opts, transcriber.WithPunctuation(p))
	}
}

// WithEngineOptions passes engine options through unchanged.
func WithEngineOptions(opts ...transcriber.Option) RequestOption {
	return func(r *request) {
		r.opts = append(r.opts, opts...)
	}
}
