package stevens

import (
	"sort"
	"strings"

	"golang.org/x/text/language"

	"codeberg.org/snonux/stevens/internal/languages/es"
	"codeberg.org/snonux/stevens/internal/transcriber"
)

// Constructor builds an engine with the given default options.
type Constructor func(opts ...transcriber.Option) (transcriber.Engine, error)

// Registry maps canonical language tags to engine constructors.
type Registry map[string]Constructor

// DefaultRegistry returns the registry of all built-in languages.
func DefaultRegistry() Registry {
	return Registry{
		es.Tag: func(opts ...transcriber.Option) (transcriber.Engine, error) {
			return es.New(opts...)
		},
	}
}

// Tags returns the registered tags, sorted.
func (r Registry) Tags() []string {
	tags := make([]string, 0, len(r))
	for tag := range r {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// SupportedLanguages returns the canonical tags of the built-in languages.
func SupportedLanguages() []string {
	return DefaultRegistry().Tags()
}

// NormalizeTag converts a language tag to the canonical "ll_RR" form. Tags
// are case-insensitive, may use "-" or "_" and may be ISO 639-1 ("es"),
// ISO 639-3 ("spa") or full IETF tags ("es-ES"). Without a region the most
// likely one is filled in.
func NormalizeTag(tag string) (string, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if raw == "" {
		return "", &UnsupportedLanguageError{Tag: tag}
	}
	t, err := language.Parse(raw)
	if err != nil || t == language.Und {
		return "", &UnsupportedLanguageError{Tag: tag}
	}

	base, _ := t.Base()
	region, _ := t.Region()
	if region.String() == "ZZ" {
		return base.String(), nil
	}
	return base.String() + "_" + region.String(), nil
}
