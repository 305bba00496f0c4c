// Package batch reads batch files: one text per line, optionally prefixed
// with the language of that line as "tag = text".
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Entry is one text to transcribe.
type Entry struct {
	Line     int    // 1-based line number
	Language string // empty when the line has no language prefix
	Text     string
}

// ReadBatchFile reads entries from a file.
// Supports formats:
// - Text only: "El perro come."
// - With language: "es_ES = El perro come."
// Blank lines and lines starting with "#" are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", filename, err)
	}
	return entries, nil
}

// Parse reads entries from r.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := Entry{Line: n, Text: line}
		if tag, text, ok := splitLanguage(line); ok {
			entry.Language, entry.Text = tag, text
		}
		if entry.Text != "" {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// splitLanguage splits "tag = text" when tag is a well-formed, known
// language tag. Any other "=" belongs to the text.
func splitLanguage(line string) (tag, text string, ok bool) {
	before, after, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	tag = strings.TrimSpace(before)
	if tag == "" || strings.ContainsAny(tag, " \t") {
		return "", "", false
	}
	if _, err := language.Parse(strings.ReplaceAll(tag, "_", "-")); err != nil {
		return "", "", false
	}
	return tag, strings.TrimSpace(after), true
}
