// Package session keeps the current-user pointer: the identifier of the
// logged-in user, stored as a plain string.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
)

type Repository interface {
	// Current returns the logged-in user id, or "" when nobody is logged in.
	Current(ctx context.Context) (string, error)
	Set(ctx context.Context, userID string) error
	Clear(ctx context.Context) error
}

var _ Repository = (*KVRepository)(nil)

type KVRepository struct {
	store kv.Store
	key   string
}

func NewKVRepository(store kv.Store, key string) *KVRepository {
	return &KVRepository{store: store, key: key}
}

func (r *KVRepository) WithStore(s kv.Store) *KVRepository {
	return &KVRepository{store: s, key: r.key}
}

func (r *KVRepository) Current(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", r.key, err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func (r *KVRepository) Set(ctx context.Context, userID string) error {
	if err := r.store.Set(ctx, r.key, []byte(userID)); err != nil {
		return fmt.Errorf("failed to set %s: %w", r.key, err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.key, err)
	}
	return nil
}
