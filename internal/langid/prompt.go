package langid

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// maxSample caps how much text is sent to a model.
const maxSample = 500

const promptTemplate = "Identify the language of the following text. " +
	"Respond with only its BCP 47 language tag (for example \"es\" or \"es-ES\"), nothing else.\n\n%s"

// ValidateText checks that text contains something to identify.
func ValidateText(text string) error {
	if strings.IndexFunc(text, unicode.IsLetter) < 0 {
		return ErrNoText
	}
	return nil
}

func prompt(text string) string {
	text = strings.TrimSpace(text)
	if r := []rune(text); len(r) > maxSample {
		text = string(r[:maxSample])
	}
	return fmt.Sprintf(promptTemplate, text)
}

// parseReply extracts a language tag from a model reply such as
// "es", "`es-ES`" or "es-ES.".
func parseReply(reply string) (string, error) {
	fields := strings.Fields(reply)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty reply", ErrNoLanguage)
	}
	candidate := strings.TrimFunc(fields[0], func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tag, err := language.Parse(strings.ReplaceAll(candidate, "_", "-"))
	if err != nil || tag == language.Und {
		return "", fmt.Errorf("%w: %q", ErrNoLanguage, reply)
	}
	return tag.String(), nil
}
