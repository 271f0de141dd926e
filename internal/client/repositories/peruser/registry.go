package peruser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
)

// Hook removes one user's data from one store, writing through tx.
type Hook func(ctx context.Context, tx kv.Store, userID string) error

var ErrDuplicateStore = errors.New("store already registered")

type registration struct {
	name string
	hook Hook
}

// Registry lists the per-user stores that account deletion must clean.
// Stores register themselves when they are constructed.
type Registry struct {
	mu    sync.Mutex
	items []registration
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(name string, hook Hook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.name == name {
			return fmt.Errorf("%w: %s", ErrDuplicateStore, name)
		}
	}
	r.items = append(r.items, registration{name: name, hook: hook})
	return nil
}

// Names returns registered store names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.items))
	for _, it := range r.items {
		names = append(names, it.name)
	}
	return names
}

// DeleteUser runs every hook in registration order and stops at the first
// failure.
func (r *Registry) DeleteUser(ctx context.Context, tx kv.Store, userID string) error {
	r.mu.Lock()
	items := append([]registration(nil), r.items...)
	r.mu.Unlock()

	for _, it := range items {
		if err := it.hook(ctx, tx, userID); err != nil {
			return fmt.Errorf("failed to delete user data from %s: %w", it.name, err)
		}
	}
	return nil
}
