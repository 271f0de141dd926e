package peruser

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	m := NewMapping[string](store, "nvx_avatars", logging.Discard())

	_, ok, err := m.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Put(ctx, "u1", "data:image/png;base64,AAAA"))
	require.NoError(t, m.Put(ctx, "u2", "data:image/png;base64,BBBB"))

	v, ok, err := m.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", v)

	raw, err := store.Get(ctx, "nvx_avatars")
	require.NoError(t, err)
	assert.JSONEq(t, `{"u1":"data:image/png;base64,AAAA","u2":"data:image/png;base64,BBBB"}`, string(raw))

	require.NoError(t, m.DeleteUser(ctx, "u1"))
	all, err := m.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"u2": "data:image/png;base64,BBBB"}, all)
}

func TestMapping_DeleteMissingUserDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	m := NewMapping[json.RawMessage](store, "nvx_credentials", logging.Discard())

	require.NoError(t, m.DeleteUser(ctx, "ghost"))

	raw, err := store.Get(ctx, "nvx_credentials")
	require.NoError(t, err)
	assert.Nil(t, raw, "absent key must stay absent")
}

func TestMapping_MalformedValue(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "nvx_users", []byte("{not json")))
	m := NewMapping[string](store, "nvx_users", logging.Discard())

	all, err := m.All(ctx)
	require.NoError(t, err, "reads fall back to empty")
	assert.Empty(t, all)

	_, ok, err := m.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	err = m.Put(ctx, "u1", "x")
	require.ErrorIs(t, err, common.ErrCorruptStore)

	raw, _ := store.Get(ctx, "nvx_users")
	assert.Equal(t, []byte("{not json"), raw, "corrupt value must not be overwritten")
}

func TestMapping_JSONNullReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "nvx_avatars", []byte("null")))
	m := NewMapping[string](store, "nvx_avatars", logging.Discard())

	require.NoError(t, m.Put(ctx, "u1", "v"))
	v, ok, err := m.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

type failingStore struct {
	kv.Store
	err error
}

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }

func TestMapping_StoreErrorsPropagate(t *testing.T) {
	boom := errors.New("disk gone")
	m := NewMapping[string](failingStore{err: boom}, "nvx_avatars", logging.Discard())

	_, err := m.All(context.Background())
	require.ErrorIs(t, err, boom)
}
