package stevens

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"codeberg.org/snonux/stevens/internal/testutil"
	"codeberg.org/snonux/stevens/internal/transcriber"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		tag     string
		want    string
		wantErr bool
	}{
		{"es", "es_ES", false},
		{"es_ES", "es_ES", false},
		{"ES-es", "es_ES", false},
		{"es_es", "es_ES", false},
		{"spa", "es_ES", false},
		{" es-ES ", "es_ES", false},
		{"es-MX", "es_MX", false},
		{"", "", true},
		{"!!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := NormalizeTag(tt.tag)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedLanguage) {
					t.Errorf("Expected ErrUnsupportedLanguage, got %q, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSupportedLanguages(t *testing.T) {
	if got := SupportedLanguages(); !reflect.DeepEqual(got, []string{"es_ES"}) {
		t.Errorf("Expected [es_ES], got %v", got)
	}
}

func TestResolve(t *testing.T) {
	for _, tag := range []string{"es", "es_ES", "ES-es", "spa"} {
		e, err := Resolve(tag)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", tag, err)
		}
		if e.Language() != "es_ES" {
			t.Errorf("Resolve(%q): expected es_ES engine, got %s", tag, e.Language())
		}
	}

	for _, tag := range []string{"xx", "es_MX", "en"} {
		_, err := Resolve(tag)
		var ue *UnsupportedLanguageError
		if !errors.As(err, &ue) || ue.Tag != tag {
			t.Errorf("Resolve(%q): expected UnsupportedLanguageError, got %v", tag, err)
		}
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("Resolve(%q): expected ErrUnsupportedLanguage, got %v", tag, err)
		}
	}

	if _, err := Resolve("es", transcriber.WithStressMark(".")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		opts []RequestOption
		want string
	}{
		{"defaults", "casa", []RequestOption{WithLanguage("es")}, "'ka.sa"},
		{"reloj", "reloj", []RequestOption{WithLanguage("es_ES")}, "re.'lox"},
		{"café", "café", []RequestOption{WithLanguage("spa")}, "ka.'fe"},
		{"sentence", "El perro come.", []RequestOption{WithLanguage("es")}, "'el|'pe.ro|'ko.me"},
		{"x-sampa", "cena", []RequestOption{WithLanguage("es"), WithAlphabet("X-SAMPA")}, "'Te.na"},
		{"separators", "casa blanca", []RequestOption{
			WithLanguage("es"), WithSyllabicSeparator("-"), WithStressMark("ˈ"), WithWordSeparator(" "),
		}, "ˈka-sa ˈblaŋ-ka"},
		{"empty syllabic separator", "casa", []RequestOption{WithLanguage("es"), WithSyllabicSeparator("")}, "'ka.sa"},
		{"keep punctuation", "¡Hola!", []RequestOption{WithLanguage("es"), WithPunctuation(PunctuationKeep)}, "¡'o.la!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transcribe(ctx, tt.text, tt.opts...)
			if err != nil {
				t.Fatalf("Transcribe failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTranscribe_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := Transcribe(ctx, "hola", WithLanguage("xx")); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("Expected ErrUnsupportedLanguage, got %v", err)
	}
	if _, err := Transcribe(ctx, "hola"); !errors.Is(err, ErrLanguageIdentificationUnavailable) {
		t.Errorf("Expected ErrLanguageIdentificationUnavailable, got %v", err)
	}
	if _, err := Transcribe(ctx, "hola", WithLanguage("es"), WithAutoDetect()); !errors.Is(err, ErrLanguageIdentificationUnavailable) {
		t.Errorf("Expected ErrLanguageIdentificationUnavailable, got %v", err)
	}
	if _, err := Transcribe(ctx, "hola", WithLanguage("es"), WithAlphabet("arpabet")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if _, err := Transcribe(ctx, "straße", WithLanguage("es")); !errors.Is(err, ErrHyphenation) {
		t.Errorf("Expected ErrHyphenation, got %v", err)
	}
}

func TestDispatcher_AutoDetect(t *testing.T) {
	ctx := context.Background()
	id := &testutil.MockIdentifier{Tags: map[string]string{
		"casa":  "es",
		"house": "en",
	}}
	d := NewDispatcher(WithIdentifier(id))

	if !d.HasIdentifier() {
		t.Fatal("Expected dispatcher to have an identifier")
	}

	got, err := d.Transcribe(ctx, "casa")
	if err != nil || got != "'ka.sa" {
		t.Errorf("Expected 'ka.sa, got %q, %v", got, err)
	}

	// An explicit language skips detection.
	if _, err := d.Transcribe(ctx, "casa", WithLanguage("es")); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if n := len(id.Calls()); n != 1 {
		t.Errorf("Expected 1 identifier call, got %d", n)
	}

	// WithAutoDetect overrides the explicit language.
	if _, err := d.Transcribe(ctx, "house", WithLanguage("es"), WithAutoDetect()); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("Expected detected en to be unsupported, got %v", err)
	}

	_, err = d.Transcribe(ctx, "????")
	if !errors.Is(err, ErrLanguageIdentificationUnavailable) || !errors.Is(err, testutil.ErrMockUnknown) {
		t.Errorf("Expected wrapped identifier error, got %v", err)
	}
}

func TestDispatcher_Registry(t *testing.T) {
	var built int
	d := NewDispatcher(WithRegistry(Registry{
		"es_ES": func(opts ...Option) (Engine, error) {
			built++
			return DefaultRegistry()["es_ES"](opts...)
		},
	}))

	for i := 0; i < 3; i++ {
		if _, err := d.Transcribe(context.Background(), "casa", WithLanguage("es")); err != nil {
			t.Fatalf("Transcribe failed: %v", err)
		}
	}
	if built != 1 {
		t.Errorf("Expected engine to be built once, got %d", built)
	}
	if !reflect.DeepEqual(d.Languages(), []string{"es_ES"}) {
		t.Errorf("Unexpected languages %v", d.Languages())
	}
}

func TestAnalyze(t *testing.T) {
	res, err := Analyze(context.Background(), "Hola, mundo", WithLanguage("es"))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(res.Words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(res.Words))
	}
	if res.Words[1].Rendered != "'mun.do" {
		t.Errorf("Expected 'mun.do, got %q", res.Words[1].Rendered)
	}
}
