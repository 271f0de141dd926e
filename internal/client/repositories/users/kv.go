package users

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/peruser"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

var _ Repository = (*KVRepository)(nil)

// KVRepository keeps user records as raw JSON and decodes them only on
// read, so fields written by other clients survive writes to the map.
type KVRepository struct {
	m   *peruser.Mapping[json.RawMessage]
	log logging.Logger
}

func NewKVRepository(store kv.Store, key string, log logging.Logger) *KVRepository {
	return &KVRepository{m: peruser.NewMapping[json.RawMessage](store, key, log), log: log}
}

// WithStore binds the repository to another store, usually a transaction.
func (r *KVRepository) WithStore(s kv.Store) *KVRepository {
	return &KVRepository{m: r.m.WithStore(s), log: r.log}
}

// decode turns a stored record into a User. A record that does not decode
// reads as missing.
func (r *KVRepository) decode(ctx context.Context, id string, raw json.RawMessage) (*models.User, bool) {
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		r.log.Warn(ctx, "ignoring malformed user record", "user", id, "error", err)
		return nil, false
	}
	if u.ID == "" {
		// records written by the web client carry the id only as the map key
		u.ID = id
	}
	return &u, true
}

func (r *KVRepository) Get(ctx context.Context, id string) (*models.User, error) {
	raw, ok, err := r.m.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	u, ok := r.decode(ctx, id, raw)
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *KVRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	all, err := r.m.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	email = strings.TrimSpace(email)
	for id, raw := range all {
		u, ok := r.decode(ctx, id, raw)
		if ok && strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *KVRepository) Create(ctx context.Context, u *models.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	existing, err := r.FindByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: email %s", common.ErrUserExists, u.Email)
	}
	if _, ok, err := r.m.Get(ctx, u.ID); err != nil {
		return fmt.Errorf("failed to get user %s: %w", u.ID, err)
	} else if ok {
		return fmt.Errorf("%w: id %s", common.ErrUserExists, u.ID)
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user %s: %w", u.ID, err)
	}
	if err := r.m.Put(ctx, u.ID, raw); err != nil {
		return fmt.Errorf("failed to create user %s: %w", u.ID, err)
	}
	return nil
}

func (r *KVRepository) Delete(ctx context.Context, id string) error {
	if err := r.m.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}
