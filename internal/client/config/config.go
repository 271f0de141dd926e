package config

import "time"

// Config holds runtime settings for the profile client.
//
// Fields:
//   - Driver: storage backend, one of sqlite, memory, redis, postgres.
//   - StorePath: SQLite file used by the sqlite driver.
//   - RedisAddr, RedisHash: server and hash used by the redis driver.
//   - PostgresDSN: connection string used by the postgres driver.
//   - KeyPrefix: namespace prepended to every store key.
//   - LogLevel: debug, info, warn or error.
//   - DecodeTimeout: upper bound for reading and decoding one avatar.
//   - PrefersDark: overrides the terminal background probe used by the
//     "system" theme; nil means probe.
type Config struct {
	Driver      string
	StorePath   string
	RedisAddr   string
	RedisHash   string
	PostgresDSN string

	KeyPrefix string
	LogLevel  string

	DecodeTimeout time.Duration
	PrefersDark   *bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Driver = "sqlite"
	c.StorePath = "nvx.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisHash = "nvx"
	c.PostgresDSN = ""
	c.KeyPrefix = "nvx_"
	c.LogLevel = "info"
	c.DecodeTimeout = 10 * time.Second
	c.PrefersDark = nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
