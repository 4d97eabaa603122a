// Package config loads service configuration from defaults, an optional TOML
// file, environment variables and flags, in that priority order. Nothing in
// the core packages reads configuration; values are passed down explicitly.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	DefaultListenAddr = ":8086"
	DefaultDBPath     = "todobot.db"
	DefaultLogLevel   = "info"
)

type Config struct {
	ListenAddr string `toml:"listen_addr"`
	DBPath     string `toml:"db_path"`
	LogLevel   string `toml:"log_level"`
}

// Load resolves configuration in priority order:
//  1. defaults
//  2. todobot.toml in the working directory (or TODOBOT_CONFIG)
//  3. TODOBOT_* environment variables
//  4. flags registered on fs
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{
		ListenAddr: DefaultListenAddr,
		DBPath:     DefaultDBPath,
		LogLevel:   DefaultLogLevel,
	}

	path := os.Getenv("TODOBOT_CONFIG")
	if path == "" {
		if _, err := os.Stat("todobot.toml"); err == nil {
			path = "todobot.toml"
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "listen address for the HTTP server")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the sqlite task database")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOBOT_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("TODOBOT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TODOBOT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
