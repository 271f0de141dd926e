package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/flagx"
	"github.com/dmitrijs2005/nvxprofile/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty
// fields leave the current value alone.
type JsonConfig struct {
	Driver        string         `json:"driver"`
	StorePath     string         `json:"store_path"`
	RedisAddr     string         `json:"redis_addr"`
	RedisHash     string         `json:"redis_hash"`
	PostgresDSN   string         `json:"postgres_dsn"`
	KeyPrefix     string         `json:"key_prefix"`
	LogLevel      string         `json:"log_level"`
	DecodeTimeout timex.Duration `json:"decode_timeout"`
	PrefersDark   *bool          `json:"prefers_dark"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Without the flag nothing happens. Panics on read or unmarshal
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.Driver, jc.Driver)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisHash, jc.RedisHash)
	setString(&cfg.PostgresDSN, jc.PostgresDSN)
	setString(&cfg.KeyPrefix, jc.KeyPrefix)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.DecodeTimeout.Duration > 0 {
		cfg.DecodeTimeout = time.Duration(jc.DecodeTimeout.Duration)
	}
	if jc.PrefersDark != nil {
		cfg.PrefersDark = jc.PrefersDark
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
