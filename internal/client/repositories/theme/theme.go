// Package theme persists the device-wide appearance preference.
package theme

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

type Repository interface {
	// Get returns the stored mode, or models.DefaultTheme when unset or
	// unrecognised.
	Get(ctx context.Context) (models.ThemeMode, error)
	Set(ctx context.Context, mode models.ThemeMode) error
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

func (r *KVRepository) Get(ctx context.Context) (models.ThemeMode, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", r.key, err)
	}
	if len(raw) == 0 {
		return models.DefaultTheme, nil
	}
	mode, err := models.ParseThemeMode(string(raw))
	if err != nil {
		r.log.Warn(ctx, "ignoring unknown theme", "key", r.key, "value", string(raw))
		return models.DefaultTheme, nil
	}
	return mode, nil
}

func (r *KVRepository) Set(ctx context.Context, mode models.ThemeMode) error {
	if _, err := models.ParseThemeMode(string(mode)); err != nil {
		return err
	}
	if err := r.store.Set(ctx, r.key, []byte(mode)); err != nil {
		return fmt.Errorf("failed to set %s: %w", r.key, err)
	}
	return nil
}
