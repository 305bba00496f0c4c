// Package es is the Castilian Spanish language pack: the European Spanish
// grapheme-to-phoneme rules, the orthographic stress rules and a
// constructor wiring them to the Spanish syllabifier.
package es

import (
	"strings"

	"golang.org/x/text/language"

	"codeberg.org/snonux/stevens/internal/hyphenation"
	"codeberg.org/snonux/stevens/internal/phonetic"
	"codeberg.org/snonux/stevens/internal/transcriber"
)

// Tag is the canonical tag of the Castilian engine.
const Tag = "es_ES"

var table = phonetic.MustNewTable(rules)

// Language returns the descriptor of Castilian Spanish, with the
// hyphenator registered for Tag.
func Language() (transcriber.Language, error) {
	h, err := hyphenation.Get(Tag)
	if err != nil {
		return transcriber.Language{}, err
	}
	return transcriber.Language{
		Tag:        Tag,
		Casing:     language.Spanish,
		Hyphenator: h,
		Rules:      table,
		Stress:     Stress(),
	}, nil
}

// New creates a Castilian transcriber. opts become its defaults.
func New(opts ...transcriber.Option) (*transcriber.Transcriber, error) {
	lang, err := Language()
	if err != nil {
		return nil, err
	}
	return transcriber.New(lang, opts...)
}

// Stress returns the Spanish stress rules. A written accent marks the
// stressed syllable; otherwise words ending in a vowel, "n" or "s" stress
// the penultimate syllable and all other words the last one.
func Stress() transcriber.StressRules {
	return transcriber.StressRules{
		Accented: isAccented,
		Default:  defaultStress,
	}
}

func isAccented(r rune) bool {
	return strings.ContainsRune("áéíóú", r)
}

func defaultStress(syllables []string) int {
	last := len(syllables) - 1
	if last <= 0 {
		return 0
	}
	word := []rune(syllables[last])
	if len(word) == 0 {
		return last
	}
	if strings.ContainsRune("aeiouüns", word[len(word)-1]) {
		return last - 1
	}
	return last
}
