package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite checks the contract every backend must honour.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "nvx_theme", []byte("dark")))
		v, err := s.Get(ctx, "nvx_theme")
		require.NoError(t, err)
		assert.Equal(t, []byte("dark"), v)
	})

	t.Run("missing key is nil nil", func(t *testing.T) {
		s := newStore(t)
		v, err := s.Get(context.Background(), "absent")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "k", []byte("old")))
		require.NoError(t, s.Set(ctx, "k", []byte("new")))
		v, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), v)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "x", []byte{1}))
		require.NoError(t, s.Delete(ctx, "x"))
		v, err := s.Get(ctx, "x")
		require.NoError(t, err)
		assert.Nil(t, v)
		require.NoError(t, s.Delete(ctx, "x"))
	})

	t.Run("list and clear", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "a", []byte{0xAA}))
		require.NoError(t, s.Set(ctx, "b", []byte{0xBB, 0xCC}))

		m, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{"a": {0xAA}, "b": {0xBB, 0xCC}}, m)

		require.NoError(t, s.Clear(ctx))
		m, err = s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("atomic commits", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "gone", []byte("1")))

		err := s.Atomic(ctx, func(ctx context.Context, tx Store) error {
			if err := tx.Set(ctx, "kept", []byte("2")); err != nil {
				return err
			}
			return tx.Delete(ctx, "gone")
		})
		require.NoError(t, err)

		m, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{"kept": []byte("2")}, m)
	})
}

// runRollbackCheck is only for backends with real transactions.
func runRollbackCheck(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "nvx_users", []byte(`{"u1":{}}`)))

	boom := errors.New("boom")
	err := s.Atomic(ctx, func(ctx context.Context, tx Store) error {
		require.NoError(t, tx.Delete(ctx, "nvx_users"))
		require.NoError(t, tx.Set(ctx, "nvx_theme", []byte("dark")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	v, err := s.Get(ctx, "nvx_users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"u1":{}}`), v)

	v, err = s.Get(ctx, "nvx_theme")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store { return NewMemoryStore() })
}

func TestMemoryStore_AtomicRollsBack(t *testing.T) {
	runRollbackCheck(t, NewMemoryStore())
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'Y'
	again, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_ZeroValueUsable(t *testing.T) {
	var s MemoryStore
	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	v, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}
