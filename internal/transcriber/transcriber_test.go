package transcriber

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"golang.org/x/text/language"

	"codeberg.org/snonux/stevens/internal/phonetic"
	"codeberg.org/snonux/stevens/internal/testutil"
)

func testLanguage(t *testing.T) Language {
	t.Helper()
	table, err := phonetic.NewTable([]phonetic.Rule{
		{Grapheme: "a", Phonemes: phonetic.Seq(phonetic.PhonA)},
		{Grapheme: "á", Phonemes: phonetic.Seq(phonetic.PhonA)},
		{Grapheme: "o", Phonemes: phonetic.Seq(phonetic.PhonO)},
		{Grapheme: "c", Phonemes: phonetic.Seq(phonetic.PhonK)},
		{Grapheme: "s", Phonemes: phonetic.Seq(phonetic.PhonS)},
		{Grapheme: "l", Phonemes: phonetic.Seq(phonetic.PhonL)},
		{Grapheme: "f", Phonemes: phonetic.Seq(phonetic.PhonF)},
		{Grapheme: "x", Phonemes: phonetic.Seq(phonetic.Phoneme("nonexistent"))},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return Language{
		Tag:    "xx_XX",
		Casing: language.Spanish,
		Hyphenator: &testutil.MockHyphenator{Syllables: map[string][]string{
			"casa":  {"ca", "sa"},
			"sola":  {"so", "la"},
			"sofá":  {"so", "fá"},
			"caza":  {"ca", "za"},
			"caso":  {"ca", "sa"},
			"saxo":  {"sa", "xo"},
			"cosa":  {"co", "", "sa"},
			"sol":   {"sol"},
			"alas":  {"a", "las"},
			"fasol": {"fa", "sol"},
		}},
		Rules: table,
		Stress: StressRules{
			Accented: func(r rune) bool { return r == 'á' },
			Default: func(s []string) int {
				return len(s) - 2
			},
		},
	}
}

func newTestTranscriber(t *testing.T, opts ...Option) *Transcriber {
	t.Helper()
	tr, err := New(testLanguage(t), opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tr
}

func TestTranscribe(t *testing.T) {
	tr := newTestTranscriber(t)

	tests := []struct {
		name string
		text string
		opts []Option
		want string
	}{
		{"single word", "casa", nil, "'ka.sa"},
		{"two words", "casa sola", nil, "'ka.sa|'so.la"},
		{"uppercase input", "CASA Sola", nil, "'ka.sa|'so.la"},
		{"explicit stress", "sofá", nil, "so.'fa"},
		{"monosyllable", "sol", nil, "'sol"},
		{"stress on first of two", "alas", nil, "'a.las"},
		{"empty text", "", nil, ""},
		{"only punctuation", "¡?", nil, ""},
		{"drop punctuation", "¡casa, sola!", nil, "'ka.sa|'so.la"},
		{"keep punctuation", "¡casa, sola!", []Option{WithPunctuation(PunctuationKeep)}, "¡'ka.sa,|'so.la!"},
		{"keep detached punctuation", "casa - sola", []Option{WithPunctuation(PunctuationKeep)}, "'ka.sa|-'so.la"},
		{"keep only punctuation", "¡?", []Option{WithPunctuation(PunctuationKeep)}, "¡?"},
		{"keep trailing after space", "casa !", []Option{WithPunctuation(PunctuationKeep)}, "'ka.sa!"},
		{"custom separators", "casa sola", []Option{WithSyllabicSeparator("-"), WithStressMark("ˈ"), WithWordSeparator(" ")}, "ˈka-sa ˈso-la"},
		{"empty syllabic separator", "casa", []Option{WithSyllabicSeparator("")}, "'ka.sa"},
		{"no stress mark", "casa", []Option{WithStressMark("")}, "ka.sa"},
		{"x-sampa", "casa", []Option{WithAlphabet(phonetic.XSAMPA)}, "'ka.sa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Transcribe(tt.text, tt.opts...)
			if err != nil {
				t.Fatalf("Transcribe(%q) failed: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTranscribe_CallOptionsDoNotLeak(t *testing.T) {
	tr := newTestTranscriber(t, WithWordSeparator(" "))

	if _, err := tr.Transcribe("casa sola", WithWordSeparator("/")); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	got, err := tr.Transcribe("casa sola")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if got != "'ka.sa 'so.la" {
		t.Errorf("Expected engine default separator, got %q", got)
	}
}

func TestTranscribe_Errors(t *testing.T) {
	tr := newTestTranscriber(t)

	tests := []struct {
		name string
		text string
		opts []Option
		want []error
	}{
		{"unknown word", "casa perro", nil, []error{ErrHyphenation, testutil.ErrMockUnknown}},
		{"bad partition", "caso", nil, []error{ErrHyphenation, ErrPartition}},
		{"empty syllable", "cosa", nil, []error{ErrHyphenation, ErrPartition}},
		{"unmapped grapheme", "caza", nil, []error{ErrUnmappedGrapheme}},
		{"missing symbol", "saxo", nil, []error{ErrUnmappedGrapheme}},
		{"same separators", "casa", []Option{WithStressMark(".")}, []error{ErrInvalidConfig}},
		{"bad alphabet", "casa", []Option{WithAlphabetName("klingon")}, []error{ErrInvalidConfig}},
		{"bad punctuation", "casa", []Option{WithPunctuation(Punctuation(7))}, []error{ErrInvalidConfig}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Transcribe(tt.text, tt.opts...)
			if err == nil {
				t.Fatalf("Expected error, got %q", got)
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Expected error to match %v, got %v", want, err)
				}
			}
		})
	}
}

func TestTranscribe_UnmappedGraphemeDetails(t *testing.T) {
	tr := newTestTranscriber(t)

	_, err := tr.Transcribe("caza")
	var ue *UnmappedGraphemeError
	if !errors.As(err, &ue) {
		t.Fatalf("Expected UnmappedGraphemeError, got %v", err)
	}
	if ue.Word != "caza" || ue.Grapheme != "z" {
		t.Errorf("Expected grapheme z in caza, got %q in %q", ue.Grapheme, ue.Word)
	}

	_, err = tr.Transcribe("saxo", WithAlphabet(phonetic.XSAMPA))
	if !errors.As(err, &ue) {
		t.Fatalf("Expected UnmappedGraphemeError, got %v", err)
	}
	if ue.Grapheme != "xo" || ue.Alphabet != phonetic.XSAMPA {
		t.Errorf("Expected syllable xo in x-sampa, got %q in %s", ue.Grapheme, ue.Alphabet)
	}
}

func TestAnalyze(t *testing.T) {
	tr := newTestTranscriber(t)

	res, err := tr.Analyze("Sofá, casa")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if res.Language != "xx_XX" {
		t.Errorf("Expected language xx_XX, got %s", res.Language)
	}
	if res.Text != "sofá, casa" {
		t.Errorf("Expected normalized text, got %q", res.Text)
	}
	if len(res.Tokens) != 4 {
		t.Fatalf("Expected 4 tokens, got %d", len(res.Tokens))
	}
	if len(res.Words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(res.Words))
	}

	sofa := res.Words[0]
	if sofa.StressState != StressExplicitFound || sofa.Stress != 1 {
		t.Errorf("Expected explicit stress on 1, got %s on %d", sofa.StressState, sofa.Stress)
	}
	if strings.Join(sofa.Symbols, " ") != "so fa" {
		t.Errorf("Expected symbols so fa, got %v", sofa.Symbols)
	}

	casa := res.Words[1]
	if casa.Token != 3 {
		t.Errorf("Expected token index 3, got %d", casa.Token)
	}
	if casa.StressState != StressDefaultApplied || casa.Stress != 0 {
		t.Errorf("Expected default stress on 0, got %s on %d", casa.StressState, casa.Stress)
	}
	if len(casa.Phonemes) != 2 || len(casa.Phonemes[0]) != 2 {
		t.Errorf("Expected two phonemes per syllable, got %v", casa.Phonemes)
	}
	if res.String() != "so.'fa|'ka.sa" {
		t.Errorf("Expected so.'fa|'ka.sa, got %q", res.String())
	}
}

func TestTranscribe_NFC(t *testing.T) {
	tr := newTestTranscriber(t)

	got, err := tr.Transcribe("sofa\u0301")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if got != "so.'fa" {
		t.Errorf("Expected so.'fa, got %q", got)
	}
}

func TestTranscribe_Concurrent(t *testing.T) {
	tr := newTestTranscriber(t)
	want, err := tr.Transcribe("casa sola sofá")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := tr.Transcribe("casa sola sofá")
			if err != nil || got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("Expected %q from every goroutine, got %q", want, got)
	}
}

func TestNew_IncompleteLanguage(t *testing.T) {
	full := testLanguage(t)

	tests := []struct {
		name   string
		mutate func(*Language)
	}{
		{"no tag", func(l *Language) { l.Tag = "" }},
		{"no hyphenator", func(l *Language) { l.Hyphenator = nil }},
		{"no rules", func(l *Language) { l.Rules = nil }},
		{"empty rules", func(l *Language) { l.Rules = phonetic.MustNewTable(nil) }},
		{"no stress", func(l *Language) { l.Stress.Default = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang := full
			tt.mutate(&lang)
			if _, err := New(lang); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNew_InvalidDefaults(t *testing.T) {
	if _, err := New(testLanguage(t), WithWordSeparator(".")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
