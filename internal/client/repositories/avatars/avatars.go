// Package avatars stores one profile image per user as a data URL.
package avatars

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/peruser"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

type Repository interface {
	// Get returns the user's data URL, or "" when none is stored.
	Get(ctx context.Context, userID string) (string, error)
	Put(ctx context.Context, userID, dataURL string) error
	Delete(ctx context.Context, userID string) error
}

var _ Repository = (*KVRepository)(nil)

type KVRepository struct {
	m *peruser.Mapping[string]
}

func NewKVRepository(store kv.Store, key string, log logging.Logger) *KVRepository {
	return &KVRepository{m: peruser.NewMapping[string](store, key, log)}
}

func (r *KVRepository) WithStore(s kv.Store) *KVRepository {
	return &KVRepository{m: r.m.WithStore(s)}
}

// Key is the store key the avatars live under.
func (r *KVRepository) Key() string { return r.m.Key() }

// DeleteHook registers the avatar store for account deletion.
func (r *KVRepository) DeleteHook() peruser.Hook { return r.m.DeleteHook() }

func (r *KVRepository) Get(ctx context.Context, userID string) (string, error) {
	v, _, err := r.m.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get avatar for %s: %w", userID, err)
	}
	return v, nil
}

func (r *KVRepository) Put(ctx context.Context, userID, dataURL string) error {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return fmt.Errorf("%w: not an image data URL", common.ErrAvatarDecode)
	}
	if err := r.m.Put(ctx, userID, dataURL); err != nil {
		return fmt.Errorf("failed to store avatar for %s: %w", userID, err)
	}
	return nil
}

func (r *KVRepository) Delete(ctx context.Context, userID string) error {
	if err := r.m.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete avatar for %s: %w", userID, err)
	}
	return nil
}
