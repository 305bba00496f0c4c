package phonetic

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet selects the symbol set used to render phonemes.
type Alphabet int

const (
	// IPA is the International Phonetic Alphabet.
	IPA Alphabet = iota
	// XSAMPA is the ASCII-only Extended Speech Assessment Methods Phonetic Alphabet.
	XSAMPA
)

// ErrUnknownAlphabet is returned by ParseAlphabet for names it does not know.
var ErrUnknownAlphabet = errors.New("unknown phonetic alphabet")

var alphabetNames = map[Alphabet]string{
	IPA:    "ipa",
	XSAMPA: "x-sampa",
}

// symbols maps every alphabet to a rendering of every phoneme in AllPhonemes.
var symbols = map[Alphabet]map[Phoneme]string{
	IPA: {
		PhonA: "a", PhonE: "e", PhonI: "i", PhonO: "o", PhonU: "u",
		PhonJ: "j", PhonW: "w",
		PhonP: "p", PhonB: "b", PhonT: "t", PhonD: "d", PhonK: "k", PhonG: "g",
		PhonBeta: "β", PhonEth: "ð", PhonGamma: "ɣ",
		PhonF: "f", PhonTheta: "θ", PhonS: "s", PhonZ: "z", PhonX: "x", PhonJj: "ʝ",
		PhonCh: "tʃ",
		PhonM:  "m", PhonN: "n", PhonNy: "ɲ", PhonNg: "ŋ",
		PhonL: "l", PhonLl: "ʎ", PhonTap: "ɾ", PhonTrill: "r",
	},
	XSAMPA: {
		PhonA: "a", PhonE: "e", PhonI: "i", PhonO: "o", PhonU: "u",
		PhonJ: "j", PhonW: "w",
		PhonP: "p", PhonB: "b", PhonT: "t", PhonD: "d", PhonK: "k", PhonG: "g",
		PhonBeta: "B", PhonEth: "D", PhonGamma: "G",
		PhonF: "f", PhonTheta: "T", PhonS: "s", PhonZ: "z", PhonX: "x", PhonJj: `j\`,
		PhonCh: "tS",
		PhonM:  "m", PhonN: "n", PhonNy: "J", PhonNg: "N",
		PhonL: "l", PhonLl: "L", PhonTap: "4", PhonTrill: "r",
	},
}

// Alphabets returns all supported alphabets.
func Alphabets() []Alphabet {
	return []Alphabet{IPA, XSAMPA}
}

// ParseAlphabet converts a case-insensitive alphabet name into an Alphabet.
func ParseAlphabet(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ipa":
		return IPA, nil
	case "x-sampa", "xsampa", "x_sampa":
		return XSAMPA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
	}
}

// String returns the canonical lowercase name of the alphabet.
func (a Alphabet) String() string {
	if name, ok := alphabetNames[a]; ok {
		return name
	}
	return fmt.Sprintf("alphabet(%d)", int(a))
}

// Valid reports whether a is one of the supported alphabets.
func (a Alphabet) Valid() bool {
	_, ok := alphabetNames[a]
	return ok
}

// Symbol returns the rendering of ph in the alphabet.
func (a Alphabet) Symbol(ph Phoneme) (string, bool) {
	sym, ok := symbols[a][ph]
	return sym, ok
}

// MissingSymbolError reports a phoneme the alphabet cannot render.
type MissingSymbolError struct {
	Alphabet Alphabet
	Phoneme  Phoneme
}

func (e *MissingSymbolError) Error() string {
	return fmt.Sprintf("alphabet %s has no symbol for phoneme %q", e.Alphabet, e.Phoneme)
}

// Render concatenates the symbols of ps.
func (a Alphabet) Render(ps []Phoneme) (string, error) {
	var b strings.Builder
	for _, ph := range ps {
		sym, ok := a.Symbol(ph)
		if !ok {
			return "", &MissingSymbolError{Alphabet: a, Phoneme: ph}
		}
		b.WriteString(sym)
	}
	return b.String(), nil
}
