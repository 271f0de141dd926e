package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"driver":         "redis",
		"redis_addr":     "cache:6379",
		"decode_timeout": "5s",
		"prefers_dark":   false,
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "redis", cfg.Driver)
		assert.Equal(t, "cache:6379", cfg.RedisAddr)
		assert.Equal(t, "nvx.db", cfg.StorePath, "absent keys keep defaults")
		assert.Equal(t, 5*time.Second, cfg.DecodeTimeout)
		require.NotNil(t, cfg.PrefersDark)
		assert.False(t, *cfg.PrefersDark)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{Driver: "memory", DecodeTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "memory", cfg.Driver)
		assert.Equal(t, 42*time.Second, cfg.DecodeTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
