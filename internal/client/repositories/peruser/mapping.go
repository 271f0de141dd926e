// Package peruser implements per-user stores: JSON objects keyed by user
// identifier, kept under one key of the local store, plus the registry that
// lets account deletion reach every one of them.
package peruser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

// Mapping is a userID → T object stored as JSON under key.
//
// Reads tolerate a malformed value by treating it as empty (and logging a
// warning); writes refuse to overwrite it and return common.ErrCorruptStore.
type Mapping[T any] struct {
	store kv.Store
	key   string
	log   logging.Logger
}

func NewMapping[T any](store kv.Store, key string, log logging.Logger) *Mapping[T] {
	return &Mapping[T]{store: store, key: key, log: log}
}

// Key is the store key this mapping lives under.
func (m *Mapping[T]) Key() string { return m.key }

// WithStore returns the same mapping bound to another store, typically the
// transaction handed out by kv.Store.Atomic.
func (m *Mapping[T]) WithStore(s kv.Store) *Mapping[T] {
	return &Mapping[T]{store: s, key: m.key, log: m.log}
}

func (m *Mapping[T]) load(ctx context.Context) (map[string]T, error) {
	raw, err := m.store.Get(ctx, m.key)
	if err != nil {
		return nil, err
	}
	out := make(map[string]T)
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptStore, m.key, err)
	}
	if out == nil {
		// a literal JSON null
		out = make(map[string]T)
	}
	return out, nil
}

func (m *Mapping[T]) save(ctx context.Context, data map[string]T) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", m.key, err)
	}
	return m.store.Set(ctx, m.key, raw)
}

// All returns every entry. A malformed value reads as empty.
func (m *Mapping[T]) All(ctx context.Context) (map[string]T, error) {
	data, err := m.load(ctx)
	if err == nil {
		return data, nil
	}
	if !isCorrupt(err) {
		return nil, err
	}
	m.log.Warn(ctx, "ignoring malformed store value", "key", m.key, "error", err)
	return make(map[string]T), nil
}

// Get returns the entry for userID and whether it exists.
func (m *Mapping[T]) Get(ctx context.Context, userID string) (T, bool, error) {
	var zero T
	data, err := m.All(ctx)
	if err != nil {
		return zero, false, err
	}
	v, ok := data[userID]
	return v, ok, nil
}

// Put creates or replaces the entry for userID.
func (m *Mapping[T]) Put(ctx context.Context, userID string, v T) error {
	data, err := m.load(ctx)
	if err != nil {
		return err
	}
	data[userID] = v
	return m.save(ctx, data)
}

// DeleteUser removes the entry for userID. A missing entry or key is not
// an error and leaves the store untouched.
func (m *Mapping[T]) DeleteUser(ctx context.Context, userID string) error {
	data, err := m.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := data[userID]; !ok {
		return nil
	}
	delete(data, userID)
	return m.save(ctx, data)
}

// DeleteHook adapts the mapping for Registry.Register.
func (m *Mapping[T]) DeleteHook() Hook {
	return func(ctx context.Context, tx kv.Store, userID string) error {
		return m.WithStore(tx).DeleteUser(ctx, userID)
	}
}

func isCorrupt(err error) bool {
	return errors.Is(err, common.ErrCorruptStore)
}
