package langid

import (
	"context"
	"sync"
)

// Cache remembers classifications in memory for batch runs, where the
// same text often repeats.
type Cache struct {
	next Identifier

	mu   sync.RWMutex
	tags map[string]string
}

// NewCache wraps next with an in-memory cache.
func NewCache(next Identifier) *Cache {
	return &Cache{
		next: next,
		tags: make(map[string]string),
	}
}

// Classify returns a cached tag or asks the wrapped identifier.
func (c *Cache) Classify(ctx context.Context, text string) (string, error) {
	if tag, ok := c.Get(text); ok {
		return tag, nil
	}
	tag, err := c.next.Classify(ctx, text)
	if err != nil {
		return "", err
	}
	c.Add(text, tag)
	return tag, nil
}

// Add stores a classification.
func (c *Cache) Add(text, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags[text] = tag
}

// Get retrieves a classification from the cache.
func (c *Cache) Get(text string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tag, ok := c.tags[text]
	return tag, ok
}

// GetAll returns a copy of all cached classifications.
func (c *Cache) GetAll() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(c.tags))
	for k, v := range c.tags {
		result[k] = v
	}
	return result
}

// Name returns the wrapped identifier's name.
func (c *Cache) Name() string {
	return c.next.Name()
}

// IsAvailable checks the wrapped identifier.
func (c *Cache) IsAvailable() error {
	return c.next.IsAvailable()
}
