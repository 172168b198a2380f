package templates

import (
	"context"
	"sync"
)

// Source is the read side of a template repository.
type Source interface {
	GetByName(ctx context.Context, name string) (Template, error)
}

// Cache memoizes template lookups by name. Templates change rarely;
// generation reads them on every request.
type Cache struct {
	src Source

	mu     sync.RWMutex
	byName map[string]Template
}

func NewCache(src Source) *Cache {
	return &Cache{src: src, byName: make(map[string]Template)}
}

// Get returns the template content for a name, loading through the
// source on a miss. Misses propagate ErrNotFound unchanged.
func (c *Cache) Get(ctx context.Context, name string) (string, error) {
	c.mu.RLock()
	tpl, ok := c.byName[name]
	c.mu.RUnlock()
	if ok {
		return tpl.Content, nil
	}

	tpl, err := c.src.GetByName(ctx, name)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.byName[name] = tpl
	c.mu.Unlock()
	return tpl.Content, nil
}

// Invalidate drops all cached entries, forcing fresh loads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.byName = make(map[string]Template)
	c.mu.Unlock()
}
