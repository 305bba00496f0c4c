package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrMockUnknown is returned by mocks for inputs they were not primed with.
var ErrMockUnknown = errors.New("mock: unknown input")

// MockIdentifier mocks a language identifier.
type MockIdentifier struct {
	Tags       map[string]string // text -> tag
	Errors     map[string]error  // text -> error
	DefaultTag string            // returned for unknown texts when set
	Unavail    error             // returned by IsAvailable

	mu    sync.Mutex
	calls []string
}

// Classify mocks identifying the language of text.
func (m *MockIdentifier) Classify(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if tag, ok := m.Tags[text]; ok {
		return tag, nil
	}
	if m.DefaultTag != "" {
		return m.DefaultTag, nil
	}
	return "", fmt.Errorf("%w: %q", ErrMockUnknown, text)
}

// Name returns the mock name.
func (m *MockIdentifier) Name() string {
	return "mock"
}

// IsAvailable returns Unavail.
func (m *MockIdentifier) IsAvailable() error {
	return m.Unavail
}

// Calls returns the texts Classify was called with, in order.
func (m *MockIdentifier) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockHyphenator hyphenates from a fixed dictionary.
type MockHyphenator struct {
	Syllables map[string][]string
	Errors    map[string]error
}

// Hyphenate returns the primed syllables of word.
func (m *MockHyphenator) Hyphenate(word string) ([]string, error) {
	if err, ok := m.Errors[word]; ok {
		return nil, err
	}
	if s, ok := m.Syllables[word]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrMockUnknown, word)
}
