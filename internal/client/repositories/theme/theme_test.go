package theme

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/nvxprofile/internal/client/models"
	"github.com/dmitrijs2005/nvxprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/nvxprofile/internal/common"
	"github.com/dmitrijs2005/nvxprofile/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_DefaultsToLight(t *testing.T) {
	r := NewKVRepository(kv.NewMemoryStore(), "nvx_theme", logging.Discard())

	mode, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, mode)
}

func TestTheme_SetGet(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	r := NewKVRepository(store, "nvx_theme", logging.Discard())

	for _, m := range []models.ThemeMode{models.ThemeDark, models.ThemeSystem, models.ThemeLight} {
		require.NoError(t, r.Set(ctx, m))
		got, err := r.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	raw, _ := store.Get(ctx, "nvx_theme")
	assert.Equal(t, []byte("light"), raw)
}

func TestTheme_RejectsUnknownMode(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	r := NewKVRepository(store, "nvx_theme", logging.Discard())

	require.ErrorIs(t, r.Set(ctx, "sepia"), common.ErrInvalidTheme)

	raw, _ := store.Get(ctx, "nvx_theme")
	assert.Nil(t, raw)
}

func TestTheme_UnknownStoredValueFallsBack(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	var buf bytes.Buffer
	r := NewKVRepository(store, "nvx_theme", logging.New(&buf, "warn"))
	require.NoError(t, store.Set(ctx, "nvx_theme", []byte("neon")))

	mode, err := r.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, mode)
	assert.Contains(t, buf.String(), "ignoring unknown theme")
}
