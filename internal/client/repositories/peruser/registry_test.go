package peruser

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DeleteUserReachesEveryStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	log := logging.Discard()
	reg := NewRegistry()

	names := []string{"nvx_credentials", "nvx_face_profiles", "nvx_bio_methods"}
	for _, name := range names {
		m := NewMapping[json.RawMessage](store, name, log)
		require.NoError(t, m.Put(ctx, "u1", json.RawMessage(`{"k":1}`)))
		require.NoError(t, m.Put(ctx, "u2", json.RawMessage(`{"k":2}`)))
		require.NoError(t, reg.Register(m.Key(), m.DeleteHook()))
	}
	assert.Equal(t, names, reg.Names())

	require.NoError(t, reg.DeleteUser(ctx, store, "u1"))

	for _, name := range names {
		all, err := NewMapping[json.RawMessage](store, name, log).All(ctx)
		require.NoError(t, err)
		assert.NotContains(t, all, "u1", name)
		assert.Contains(t, all, "u2", name)
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	hook := func(context.Context, kv.Store, string) error { return nil }

	require.NoError(t, reg.Register("nvx_avatars", hook))
	require.ErrorIs(t, reg.Register("nvx_avatars", hook), ErrDuplicateStore)
}

func TestRegistry_StopsAtFirstFailure(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("boom")
	var calls []string

	require.NoError(t, reg.Register("a", func(context.Context, kv.Store, string) error {
		calls = append(calls, "a")
		return boom
	}))
	require.NoError(t, reg.Register("b", func(context.Context, kv.Store, string) error {
		calls = append(calls, "b")
		return nil
	}))

	err := reg.DeleteUser(context.Background(), kv.NewMemoryStore(), "u1")
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "from a")
	assert.Equal(t, []string{"a"}, calls)
}
