package profiles

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	profiles map[string]Profile // keyed by user ID
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{profiles: make(map[string]Profile)}
}

func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[userID]; !ok {
		return ErrNotFound
	}
	delete(r.profiles, userID)
	return nil
}

func (r *MemoryRepo) Exists(ctx context.Context, userID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.profiles[userID]
	return ok, nil
}

// Snapshot copies the repo state for transactional rollback.
func (r *MemoryRepo) Snapshot() map[string]Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Profile, len(r.profiles))
	for id, p := range r.profiles {
		out[id] = p
	}
	return out
}

// Restore replaces the repo state with a snapshot.
func (r *MemoryRepo) Restore(snapshot map[string]Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = snapshot
}

var _ Repo = (*MemoryRepo)(nil)
