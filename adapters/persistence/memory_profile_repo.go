package persistence

import (
	"context"
	"sync"

	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
	"github.com/sumitdkd/me-api-playground/pkg/apperror"
)

// memoryProfileRepo backs the store with process memory for local
// development and tests (STORE_DRIVER=memory). Reads hand out clones so a
// snapshot taken by one request is immune to later writes.
type memoryProfileRepo struct {
	mu      sync.RWMutex
	current *profile.Profile
}

func NewMemoryProfileRepo() profile.Repository {
	return &memoryProfileRepo{}
}

func (r *memoryProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current.Clone(), nil
}

func (r *memoryProfileRepo) Insert(ctx context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		return apperror.NewConflict("Profile already exists. Use PUT to update.")
	}
	r.current = p.Clone()
	return nil
}

func (r *memoryProfileRepo) Replace(ctx context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = p.Clone()
	return nil
}
