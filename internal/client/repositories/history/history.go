// Package history stores the sequence of past test results. The sequence
// is shared by every user of the device.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

type Repository interface {
	// List returns every record in insertion order. A missing or malformed
	// value reads as an empty sequence.
	List(ctx context.Context) ([]models.TestRecord, error)
	Append(ctx context.Context, rec models.TestRecord) error
	// Clear removes the whole sequence for all users.
	Clear(ctx context.Context) error
}

var _ Repository = (*KVRepository)(nil)

type KVRepository struct {
	store kv.Store
	key   string
	log   logging.Logger
}

func NewKVRepository(store kv.Store, key string, log logging.Logger) *KVRepository {
	return &KVRepository{store: store, key: key, log: log}
}

func (r *KVRepository) WithStore(s kv.Store) *KVRepository {
	return &KVRepository{store: s, key: r.key, log: r.log}
}

func (r *KVRepository) load(ctx context.Context) ([]models.TestRecord, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.key, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var recs []models.TestRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptStore, r.key, err)
	}
	return recs, nil
}

func (r *KVRepository) List(ctx context.Context) ([]models.TestRecord, error) {
	recs, err := r.load(ctx)
	if err == nil {
		return recs, nil
	}
	if !errors.Is(err, common.ErrCorruptStore) {
		return nil, err
	}
	r.log.Warn(ctx, "ignoring malformed store value", "key", r.key, "error", err)
	return nil, nil
}

func (r *KVRepository) Append(ctx context.Context, rec models.TestRecord) error {
	recs, err := r.load(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(append(recs, rec))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
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
