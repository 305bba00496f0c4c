package stevens

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"codeberg.org/snonux/stevens/internal/langid"
	"codeberg.org/snonux/stevens/internal/transcriber"
)

// Dispatcher routes transcription requests to the engine of their language.
// It is safe for concurrent use.
type Dispatcher struct {
	registry   Registry
	identifier langid.Identifier
	logger     *log.Logger

	mu      sync.Mutex
	engines map[string]Engine
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithIdentifier sets the language identifier used when a request carries
// no language or asks for detection.
func WithIdentifier(id langid.Identifier) DispatcherOption {
	return func(d *Dispatcher) {
		d.identifier = id
	}
}

// WithRegistry replaces the built-in language registry.
func WithRegistry(r Registry) DispatcherOption {
	return func(d *Dispatcher) {
		d.registry = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// NewDispatcher creates a dispatcher over the built-in languages without a
// language identifier unless opts say otherwise.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry: DefaultRegistry(),
		logger:   log.Default(),
		engines:  make(map[string]Engine),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// HasIdentifier reports whether automatic language detection is possible.
func (d *Dispatcher) HasIdentifier() bool {
	return d.identifier != nil
}

// Languages returns the tags the dispatcher can transcribe, sorted.
func (d *Dispatcher) Languages() []string {
	return d.registry.Tags()
}

// Resolve returns a new engine for languageTag with opts as its defaults.
func (d *Dispatcher) Resolve(languageTag string, opts ...Option) (Engine, error) {
	tag, newEngine, err := d.lookup(languageTag)
	if err != nil {
		return nil, err
	}
	engine, err := newEngine(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s engine: %w", tag, err)
	}
	return engine, nil
}

func (d *Dispatcher) lookup(languageTag string) (string, Constructor, error) {
	tag, err := NormalizeTag(languageTag)
	if err != nil {
		return "", nil, err
	}
	newEngine, ok := d.registry[tag]
	if !ok {
		return "", nil, &UnsupportedLanguageError{Tag: languageTag}
	}
	return tag, newEngine, nil
}

// engine returns the shared default-configured engine for languageTag.
// Per-request options are applied at call time.
func (d *Dispatcher) engine(languageTag string) (Engine, error) {
	tag, newEngine, err := d.lookup(languageTag)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.engines[tag]; ok {
		return e, nil
	}
	e, err := newEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to create %s engine: %w", tag, err)
	}
	d.engines[tag] = e
	return e, nil
}

// Transcribe returns the phonetic transcription of text.
func (d *Dispatcher) Transcribe(ctx context.Context, text string, opts ...RequestOption) (string, error) {
	res, err := d.Analyze(ctx, text, opts...)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// Analyze returns the structured transcription of text.
func (d *Dispatcher) Analyze(ctx context.Context, text string, opts ...RequestOption) (*Transcription, error) {
	req := newRequest(opts)

	tag, err := d.language(ctx, text, req)
	if err != nil {
		return nil, err
	}
	engine, err := d.engine(tag)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("Transcribing", "language", engine.Language(), "words", transcriber.CountWords(text))
	return engine.Analyze(text, req.opts...)
}

// language picks the request's language, asking the identifier when the
// request has none or asks for detection.
func (d *Dispatcher) language(ctx context.Context, text string, req *request) (string, error) {
	if req.language != "" && !req.autoDetect {
		return req.language, nil
	}
	if d.identifier == nil {
		return "", ErrLanguageIdentificationUnavailable
	}

	tag, err := d.identifier.Classify(ctx, text)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrLanguageIdentificationUnavailable, d.identifier.Name(), err)
	}
	d.logger.Debug("Identified language", "identifier", d.identifier.Name(), "tag", tag)
	return tag, nil
}
