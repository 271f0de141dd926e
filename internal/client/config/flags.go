package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/nvxprofile/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   storage driver: sqlite, memory, redis, postgres
//	-p string   SQLite file path
//	-r string   redis address
//	-g string   postgres DSN
//	-l string   log level
//	-t int      avatar decode timeout (in seconds)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-r", "-g", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Driver, "d", cfg.Driver, "storage driver (sqlite, memory, redis, postgres)")
	fs.StringVar(&cfg.StorePath, "p", cfg.StorePath, "path to the sqlite store")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.PostgresDSN, "g", cfg.PostgresDSN, "postgres DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	decodeTimeout := fs.Int("t", int(cfg.DecodeTimeout.Seconds()), "avatar decode timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.DecodeTimeout = time.Duration(*decodeTimeout) * time.Second
}
