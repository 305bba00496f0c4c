package transcriber

import "unicode"

// TokenKind classifies a run of text.
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenSpace
	TokenPunct
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenSpace:
		return "space"
	default:
		return "punct"
	}
}

// Token is a maximal run of one kind of text. Start and End are byte
// offsets into the segmented string.
type Token struct {
	Text  string
	Kind  TokenKind
	Start int
	End   int
}

func kindOf(r rune, inWord bool) TokenKind {
	switch {
	case unicode.IsLetter(r):
		return TokenWord
	case inWord && unicode.Is(unicode.Mn, r):
		return TokenWord
	case unicode.IsSpace(r):
		return TokenSpace
	default:
		return TokenPunct
	}
}

// Segment splits text into words, whitespace and punctuation, in order.
// Digits and symbols count as punctuation.
func Segment(text string) []Token {
	var tokens []Token
	start := 0
	var current TokenKind
	for i, r := range text {
		kind := kindOf(r, i > 0 && current == TokenWord)
		if i == 0 {
			current = kind
			continue
		}
		if kind != current {
			tokens = append(tokens, Token{Text: text[start:i], Kind: current, Start: start, End: i})
			start, current = i, kind
		}
	}
	if start < len(text) {
		tokens = append(tokens, Token{Text: text[start:], Kind: current, Start: start, End: len(text)})
	}
	return tokens
}

// CountWords returns the number of word tokens in text.
func CountWords(text string) int {
	n := 0
	for _, tok := range Segment(text) {
		if tok.Kind == TokenWord {
			n++
		}
	}
	return n
}
