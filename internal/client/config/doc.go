// Package config loads runtime configuration for the profile client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables NVX_* (see parseEnv), optionally loaded from a
//     dotenv file given with -e/-env, or ./.env.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   storage driver: sqlite, memory, redis, postgres
//	-p string   SQLite file path
//	-r string   redis address
//	-g string   postgres DSN
//	-l string   log level
//	-t int      avatar decode timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "driver": "sqlite",
//	  "store_path": "/var/lib/nvx/nvx.db",
//	  "key_prefix": "nvx_",
//	  "log_level": "debug",
//	  "decode_timeout": "5s",
//	  "prefers_dark": true
//	}
//
// Primary API
//
//   - type Config                     — storage, logging and theme settings
//   - func LoadConfig() *Config       — defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
