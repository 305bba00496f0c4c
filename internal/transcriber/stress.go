package transcriber

import "strings"

// StressState is the state of the stress resolver for one word.
type StressState int

const (
	// StressUnmarked is the initial state, before any rule applied.
	StressUnmarked StressState = iota
	// StressDefaultApplied means no written accent was found and the
	// language's default rule picked the syllable.
	StressDefaultApplied
	// StressExplicitFound means a written accent fixed the syllable.
	StressExplicitFound
)

func (s StressState) String() string {
	switch s {
	case StressDefaultApplied:
		return "default"
	case StressExplicitFound:
		return "explicit"
	default:
		return "unmarked"
	}
}

// StressRules are a language's orthographic stress rules.
type StressRules struct {
	// Accented reports whether a letter carries a written stress accent.
	Accented func(r rune) bool
	// Default picks the stressed syllable of a word without written accent.
	Default func(syllables []string) int
}

// Resolve returns the index of the stressed syllable. The first syllable
// with a written accent wins; later accents are ignored. Without accents
// the default rule applies. The index is always within the syllables.
func (r StressRules) Resolve(syllables []string) (int, StressState) {
	index, state := 0, StressUnmarked
	for i := 0; i < len(syllables) && state == StressUnmarked; i++ {
		if strings.IndexFunc(syllables[i], r.Accented) >= 0 {
			index, state = i, StressExplicitFound
		}
	}
	if state == StressUnmarked {
		index, state = r.Default(syllables), StressDefaultApplied
	}

	switch {
	case index < 0:
		index = 0
	case index >= len(syllables):
		index = len(syllables) - 1
	}
	return index, state
}
