package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.Driver)
	assert.Equal(t, "nvx.db", c.StorePath)
	assert.Equal(t, "nvx_", c.KeyPrefix)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.DecodeTimeout)
	assert.Nil(t, c.PrefersDark)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"driver":     "memory",
		"store_path": "from-json.db",
		"log_level":  "debug",
	})
	t.Setenv(EnvStorePath, "from-env.db")
	t.Setenv(EnvLogLevel, "warn")

	os.Args = []string{"nvx", "-c", path, "-l", "error"}
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "memory", cfg.Driver, "json over defaults")
	assert.Equal(t, "from-env.db", cfg.StorePath, "env over json")
	assert.Equal(t, "error", cfg.LogLevel, "flags over env")
	assert.Equal(t, 10*time.Second, cfg.DecodeTimeout)
}
