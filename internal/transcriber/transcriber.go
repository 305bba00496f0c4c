package transcriber

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/stevens/internal/hyphenation"
	"codeberg.org/snonux/stevens/internal/phonetic"
)

// Language bundles everything the engine needs to know about a language.
type Language struct {
	Tag        string       // canonical tag, e.g. "es_ES"
	Casing     language.Tag // used to lowercase input
	Hyphenator hyphenation.Hyphenator
	Rules      *phonetic.Table
	Stress     StressRules
}

func (l Language) validate() error {
	switch {
	case l.Tag == "":
		return fmt.Errorf("%w: language has no tag", ErrInvalidConfig)
	case l.Hyphenator == nil:
		return fmt.Errorf("%w: language %s has no hyphenator", ErrInvalidConfig, l.Tag)
	case l.Rules == nil || len(l.Rules.Graphemes()) == 0:
		return fmt.Errorf("%w: language %s has no rule table", ErrInvalidConfig, l.Tag)
	case l.Stress.Accented == nil || l.Stress.Default == nil:
		return fmt.Errorf("%w: language %s has incomplete stress rules", ErrInvalidConfig, l.Tag)
	}
	return nil
}

// Engine is the interface every language engine implements.
type Engine interface {
	// Language returns the canonical tag of the engine's language
	Language() string

	// Config returns the engine's default configuration
	Config() Config

	// Transcribe returns the phonetic transcription of text
	Transcribe(text string, opts ...Option) (string, error)

	// Analyze returns the structured transcription of text
	Analyze(text string, opts ...Option) (*Transcription, error)
}

// Transcriber is the rule-driven Engine implementation.
type Transcriber struct {
	lang   Language
	config Config
}

var _ Engine = (*Transcriber)(nil)

// New creates a Transcriber for lang. opts override DefaultConfig and
// become the defaults of every call.
func New(lang Language, opts ...Option) (*Transcriber, error) {
	if err := lang.validate(); err != nil {
		return nil, err
	}
	cfg, err := DefaultConfig().With(opts...)
	if err != nil {
		return nil, err
	}
	return &Transcriber{lang: lang, config: cfg}, nil
}

// Language returns the canonical language tag.
func (t *Transcriber) Language() string {
	return t.lang.Tag
}

// Config returns the default configuration.
func (t *Transcriber) Config() Config {
	return t.config
}

// Transcribe returns the phonetic transcription of text. opts override the
// engine defaults for this call only.
func (t *Transcriber) Transcribe(text string, opts ...Option) (string, error) {
	tr, err := t.Analyze(text, opts...)
	if err != nil {
		return "", err
	}
	return tr.String(), nil
}

// Analyze transcribes text and returns every intermediate result. The
// first failing word aborts the whole call.
func (t *Transcriber) Analyze(text string, opts ...Option) (*Transcription, error) {
	cfg, err := t.config.With(opts...)
	if err != nil {
		return nil, err
	}

	normalized := t.normalize(text)
	tr := &Transcription{
		Language: t.lang.Tag,
		Config:   cfg,
		Text:     normalized,
		Tokens:   Segment(normalized),
	}
	for i, tok := range tr.Tokens {
		if tok.Kind != TokenWord {
			continue
		}
		w, err := t.analyzeWord(tok.Text, cfg)
		if err != nil {
			return nil, err
		}
		w.Token = i
		tr.Words = append(tr.Words, w)
	}
	return tr, nil
}

// normalize composes accents and lowercases with the language's casing
// rules. Casers keep state, so one is made per call.
func (t *Transcriber) normalize(text string) string {
	text = strings.ToValidUTF8(text, string(utf8.RuneError))
	return cases.Lower(t.lang.Casing).String(norm.NFC.String(text))
}

func (t *Transcriber) analyzeWord(word string, cfg Config) (Word, error) {
	syllables, err := t.lang.Hyphenator.Hyphenate(word)
	if err != nil {
		return Word{}, &HyphenationError{Word: word, Err: err}
	}
	if len(syllables) == 0 || strings.Join(syllables, "") != word {
		return Word{}, &HyphenationError{Word: word, Err: ErrPartition}
	}

	stress, state := t.lang.Stress.Resolve(syllables)
	w := Word{
		Text:        word,
		Syllables:   syllables,
		Stress:      stress,
		StressState: state,
		Phonemes:    make([][]phonetic.Phoneme, len(syllables)),
		Symbols:     make([]string, len(syllables)),
	}

	runes := []rune(word)
	pos := 0
	for i, syl := range syllables {
		n := utf8.RuneCountInString(syl)
		if n == 0 {
			return Word{}, &HyphenationError{Word: word, Err: ErrPartition}
		}

		ps, err := t.lang.Rules.Map(runes, pos, pos+n)
		if err != nil {
			grapheme := syl
			var unmatched *phonetic.UnmatchedError
			if errors.As(err, &unmatched) {
				grapheme = unmatched.Grapheme
			}
			return Word{}, &UnmappedGraphemeError{Word: word, Grapheme: grapheme, Alphabet: cfg.Alphabet, Err: err}
		}

		sym, err := cfg.Alphabet.Render(ps)
		if err != nil {
			return Word{}, &UnmappedGraphemeError{Word: word, Grapheme: syl, Alphabet: cfg.Alphabet, Err: err}
		}

		w.Phonemes[i] = ps
		w.Symbols[i] = sym
		pos += n
	}
	w.Rendered = w.render(cfg)
	return w, nil
}
