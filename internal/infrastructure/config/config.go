package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	StoreDriver string // "sqlite" or "postgres"
	StoreDSN    string

	// Logging
	LogLevel string
	LogFile  string // empty = stdout only

	CORSOrigins []string
}

// New returns a viper instance reading MATCHDRILL_* variables, with a .env
// file in the working directory loaded first when present.
func New() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MATCHDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_address", ":8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("store_driver", "sqlite")
	v.SetDefault("store_dsn", "matchdrill.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("cors_origins", "*")
	return v
}

// FromViper resolves a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	timeout, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		return nil, fmt.Errorf("config: shutdown_timeout=%q is not a valid duration: %w", v.GetString("shutdown_timeout"), err)
	}

	cfg := &Config{
		ServerAddress:   v.GetString("server_address"),
		ShutdownTimeout: timeout,
		StoreDriver:     v.GetString("store_driver"),
		StoreDSN:        v.GetString("store_dsn"),
		LogLevel:        v.GetString("log_level"),
		LogFile:         v.GetString("log_file"),
		CORSOrigins:     splitList(v.GetString("cors_origins")),
	}
	if cfg.ServerAddress == "" {
		return nil, fmt.Errorf("config: server_address is empty")
	}
	return cfg, nil
}

// Load reads the environment and resolves a Config.
func Load() (*Config, error) {
	return FromViper(New())
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
