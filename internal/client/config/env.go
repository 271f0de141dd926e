package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvDriver        = "NVX_DRIVER"
	EnvStorePath     = "NVX_STORE_PATH"
	EnvRedisAddr     = "NVX_REDIS_ADDR"
	EnvRedisHash     = "NVX_REDIS_HASH"
	EnvPostgresDSN   = "NVX_POSTGRES_DSN"
	EnvKeyPrefix     = "NVX_KEY_PREFIX"
	EnvLogLevel      = "NVX_LOG_LEVEL"
	EnvDecodeTimeout = "NVX_DECODE_TIMEOUT"
	EnvPrefersDark   = "NVX_PREFERS_DARK"
)

// loadDotEnv fills the process environment from the file named by -e/-env,
// or from ./.env when present. Variables already set are kept. A missing
// default file is fine; a missing explicit one panics.
func loadDotEnv() {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	_ = godotenv.Load()
}

// parseEnv overlays Config with NVX_* variables. Panics on values that do
// not parse.
func parseEnv(cfg *Config) {
	loadDotEnv()

	setString(&cfg.Driver, env(EnvDriver))
	setString(&cfg.StorePath, env(EnvStorePath))
	setString(&cfg.RedisAddr, env(EnvRedisAddr))
	setString(&cfg.RedisHash, env(EnvRedisHash))
	setString(&cfg.PostgresDSN, env(EnvPostgresDSN))
	setString(&cfg.KeyPrefix, env(EnvKeyPrefix))
	setString(&cfg.LogLevel, env(EnvLogLevel))

	if v := env(EnvDecodeTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvDecodeTimeout, err))
		}
		cfg.DecodeTimeout = d
	}

	if v := env(EnvPrefersDark); v != "" {
		dark, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvPrefersDark, err))
		}
		cfg.PrefersDark = &dark
	}
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}
