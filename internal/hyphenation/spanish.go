package hyphenation

import (
	"fmt"
	"strings"
	"unicode"
)

const spanishLetters = "abcdefghijklmnopqrstuvwxyzñáéíóúü"

// Spanish syllabifies Spanish words with the orthographic rules of the
// Real Academia Española: diphthongs and triphthongs stay together, two
// strong vowels (or an accented i/u next to a vowel) form a hiatus, and
// consonant clusters between vowels give the following syllable at most one
// consonant unless the last two form an inseparable onset such as "pr" or "bl".
// The digraphs ch, ll and rr count as a single consonant.
type Spanish struct{}

// NewSpanish creates a Spanish syllabifier.
func NewSpanish() *Spanish {
	return &Spanish{}
}

// Hyphenate splits word into syllables. Case is preserved.
func (s *Spanish) Hyphenate(word string) ([]string, error) {
	if word == "" {
		return nil, &Error{Word: word, Err: ErrEmptyWord}
	}

	orig := []rune(word)
	w := make([]rune, len(orig))
	for i, r := range orig {
		l := unicode.ToLower(r)
		if !strings.ContainsRune(spanishLetters, l) {
			return nil, &Error{Word: word, Err: fmt.Errorf("%w %q", ErrUnsupportedCharacter, r)}
		}
		w[i] = l
	}

	nuclei := spanishNuclei(w)
	if len(nuclei) == 0 {
		return nil, &Error{Word: word, Err: ErrNoVowel}
	}

	breaks := make([]int, 0, len(nuclei)+1)
	breaks = append(breaks, 0)
	for k := 1; k < len(nuclei); k++ {
		breaks = append(breaks, onsetStart(w, nuclei[k-1][1], nuclei[k][0]))
	}
	breaks = append(breaks, len(orig))

	syllables := make([]string, 0, len(nuclei))
	for i := 0; i < len(breaks)-1; i++ {
		syllables = append(syllables, string(orig[breaks[i]:breaks[i+1]]))
	}
	return syllables, nil
}

// spanishNuclei returns the [start, end) rune ranges of the vowel groups
// that form syllable nuclei.
func spanishNuclei(w []rune) [][2]int {
	var out [][2]int
	for i := 0; i < len(w); {
		if !isSpanishVowel(w, i) {
			i++
			continue
		}
		start := i
		i++
		for i < len(w) && isSpanishVowel(w, i) && !(isStrongVowel(w[i-1]) && isStrongVowel(w[i])) {
			i++
		}
		out = append(out, [2]int{start, i})
	}
	return out
}

// onsetStart returns where the syllable starting after the consonants
// w[from:to] begins.
func onsetStart(w []rune, from, to int) int {
	var units []int
	for i := from; i < to; {
		units = append(units, i)
		if i+1 < to && isDigraph(w[i], w[i+1]) {
			i += 2
		} else {
			i++
		}
	}

	switch len(units) {
	case 0:
		return to
	case 1:
		return units[0]
	}

	a, b := units[len(units)-2], units[len(units)-1]
	if b == a+1 && b+1 == to && isInseparable(w[a], w[b]) {
		return a
	}
	return b
}

func isPlainVowel(r rune) bool {
	return strings.ContainsRune("aeiouáéíóúü", r)
}

// isSpanishVowel reports whether w[i] acts as a vowel. "y" is a vowel
// unless a vowel follows it, as in "rey" versus "reyes".
func isSpanishVowel(w []rune, i int) bool {
	if w[i] == 'y' {
		return i == len(w)-1 || !isPlainVowel(w[i+1])
	}
	return isPlainVowel(w[i])
}

// isStrongVowel reports whether r is an open vowel or an accented i/u,
// both of which break diphthongs.
func isStrongVowel(r rune) bool {
	return strings.ContainsRune("aeoáéóíú", r)
}

func isDigraph(a, b rune) bool {
	return (a == 'c' && b == 'h') || (a == 'l' && b == 'l') || (a == 'r' && b == 'r')
}

func isInseparable(a, b rune) bool {
	switch {
	case strings.ContainsRune("pbfgck", a):
		return b == 'l' || b == 'r'
	case a == 't' || a == 'd':
		return b == 'r'
	}
	return false
}
