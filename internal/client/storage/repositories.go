package storage

import (
	"encoding/json"

	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/avatars"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/history"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/peruser"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/session"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/theme"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/users"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
)

// Repositories bundles every repository over one backend.
type Repositories struct {
	Store kv.Backend

	Users   *users.KVRepository
	Session *session.KVRepository
	Theme   *theme.KVRepository
	History *history.KVRepository
	Avatars *avatars.KVRepository

	// Opaque per-user stores owned by other screens. Only account deletion
	// touches them here.
	Credentials  *peruser.Mapping[json.RawMessage]
	FaceProfiles *peruser.Mapping[json.RawMessage]
	BioMethods   *peruser.Mapping[json.RawMessage]

	// PerUser lists every store holding per-user entries, users excluded.
	PerUser *peruser.Registry
}

func NewRepositories(store kv.Backend, prefix string, log logging.Logger) (*Repositories, error) {
	if prefix == "" {
		prefix = common.DefaultKeyPrefix
	}
	key := func(name string) string { return prefix + name }

	r := &Repositories{
		Store:        store,
		Users:        users.NewKVRepository(store, key(common.KeyUsers), log),
		Session:      session.NewKVRepository(store, key(common.KeyCurrentUser)),
		Theme:        theme.NewKVRepository(store, key(common.KeyTheme), log),
		History:      history.NewKVRepository(store, key(common.KeyTestHistory), log),
		Avatars:      avatars.NewKVRepository(store, key(common.KeyAvatars), log),
		Credentials:  peruser.NewMapping[json.RawMessage](store, key(common.KeyCredentials), log),
		FaceProfiles: peruser.NewMapping[json.RawMessage](store, key(common.KeyFaceProfiles), log),
		BioMethods:   peruser.NewMapping[json.RawMessage](store, key(common.KeyBioMethods), log),
		PerUser:      peruser.NewRegistry(),
	}

	for _, m := range []*peruser.Mapping[json.RawMessage]{r.Credentials, r.FaceProfiles, r.BioMethods} {
		if err := r.PerUser.Register(m.Key(), m.DeleteHook()); err != nil {
			return nil, err
		}
	}
	if err := r.PerUser.Register(r.Avatars.Key(), r.Avatars.DeleteHook()); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Repositories) Close() error {
	return r.Store.Close()
}
