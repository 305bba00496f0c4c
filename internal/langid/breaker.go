package langid

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sony/gobreaker"
)

// BreakerSettings tune the circuit breaker. Zero values use the defaults.
type BreakerSettings struct {
	MaxFailures uint32        // consecutive failures before opening, default 3
	OpenTimeout time.Duration // time spent open before a trial call, default 30s
	Logger      *log.Logger
}

// Breaker stops calling a failing identifier for a while.
type Breaker struct {
	next Identifier
	cb   *gobreaker.CircuitBreaker
}

// NewBreaker wraps next in a circuit breaker.
func NewBreaker(next Identifier, s BreakerSettings) *Breaker {
	if s.MaxFailures == 0 {
		s.MaxFailures = 3
	}
	if s.OpenTimeout == 0 {
		s.OpenTimeout = 30 * time.Second
	}
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Breaker{
		next: next,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    next.Name(),
			Timeout: s.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= s.MaxFailures
			},
			// Input errors say nothing about the health of the remote side.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrNoText)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Language identifier circuit changed", "identifier", name, "from", from, "to", to)
			},
		}),
	}
}

// Classify calls the wrapped identifier unless the circuit is open.
func (b *Breaker) Classify(ctx context.Context, text string) (string, error) {
	tag, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Classify(ctx, text)
	})
	if err != nil {
		return "", err
	}
	return tag.(string), nil
}

// Name returns the wrapped identifier's name.
func (b *Breaker) Name() string {
	return b.next.Name()
}

// IsAvailable reports an open circuit as unavailable.
func (b *Breaker) IsAvailable() error {
	if b.cb.State() == gobreaker.StateOpen {
		return gobreaker.ErrOpenState
	}
	return b.next.IsAvailable()
}
