package templates

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu        sync.RWMutex
	templates map[string]Template // keyed by ID
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{templates: make(map[string]Template)}
}

func (r *MemoryRepo) Create(ctx context.Context, tpl Template) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl.Version <= 0 {
		tpl.Version = 1
	}
	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = time.Now().UTC()
	}
	r.templates[tpl.ID] = tpl
	return nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, name string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best Template
	found := false
	for _, tpl := range r.templates {
		if tpl.Name != name {
			continue
		}
		if !found || tpl.Version > best.Version {
			best = tpl
			found = true
		}
	}
	if !found {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return best, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tpl, ok := r.templates[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	return tpl, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Template, 0, len(r.templates))
	for _, tpl := range r.templates {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Version > out[j].Version
	})
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[id]; !ok {
		return fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	delete(r.templates, id)
	return nil
}

func (r *MemoryRepo) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tpl := range r.templates {
		if tpl.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Snapshot copies the repo state for transactional rollback.
func (r *MemoryRepo) Snapshot() map[string]Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Template, len(r.templates))
	for id, tpl := range r.templates {
		out[id] = tpl
	}
	return out
}

// Restore replaces the repo state with a snapshot.
func (r *MemoryRepo) Restore(snapshot map[string]Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = snapshot
}

var _ Repo = (*MemoryRepo)(nil)
