package transcriber

import (
	"strings"

	"codeberg.org/snonux/stevens/internal/phonetic"
)

// Word is the transcription of one word.
type Word struct {
	Text        string
	Token       int // index into Transcription.Tokens
	Syllables   []string
	Stress      int
	StressState StressState
	Phonemes    [][]phonetic.Phoneme // one sequence per syllable
	Symbols     []string             // rendered syllables, no stress mark
	Rendered    string               // syllables joined, stress mark applied
}

func (w Word) render(cfg Config) string {
	parts := make([]string, len(w.Symbols))
	for i, sym := range w.Symbols {
		if i == w.Stress {
			sym = cfg.StressMark + sym
		}
		parts[i] = sym
	}
	return strings.Join(parts, cfg.SyllabicSeparator)
}

// Transcription is the structured result of Analyze.
type Transcription struct {
	Language string
	Config   Config
	Text     string // normalized input the tokens refer to
	Tokens   []Token
	Words    []Word
}

// String joins the rendered words with the word separator, applying the
// punctuation policy.
func (tr *Transcription) String() string {
	rendered := make([]string, len(tr.Words))
	for i, w := range tr.Words {
		rendered[i] = w.Rendered
	}
	if tr.Config.Punctuation == PunctuationKeep {
		rendered = tr.attachPunctuation(rendered)
	}
	return strings.Join(rendered, tr.Config.WordSeparator)
}

// attachPunctuation glues each punctuation token to the word right before
// it, or to the next word when whitespace separates it from the previous
// one. Trailing punctuation after a space goes to the last word.
func (tr *Transcription) attachPunctuation(rendered []string) []string {
	var prefix strings.Builder
	last := -1
	prev := TokenSpace
	for _, tok := range tr.Tokens {
		switch tok.Kind {
		case TokenWord:
			last++
			rendered[last] = prefix.String() + rendered[last]
			prefix.Reset()
		case TokenPunct:
			if last >= 0 && prev == TokenWord {
				rendered[last] += tok.Text
			} else {
				prefix.WriteString(tok.Text)
			}
		}
		prev = tok.Kind
	}

	if prefix.Len() > 0 {
		if last < 0 {
			return []string{prefix.String()}
		}
		rendered[last] += prefix.String()
	}
	return rendered
}
