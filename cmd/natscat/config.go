package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// config holds natscat settings: defaults, overlaid by the TOML file when
// one is given, overlaid by flags.
type config struct {
	Servers        []string
	Name           string
	User           string
	Pass           string
	ConnectTimeout time.Duration
}

func defaultConfig() config {
	return config{
		Servers:        []string{"127.0.0.1:4222"},
		Name:           "natscat",
		ConnectTimeout: 5 * time.Second,
	}
}

// natscat config.toml key mapping.
type fileConfig struct {
	Servers        []string `toml:"servers"`
	Name           string   `toml:"name"`
	User           string   `toml:"user"`
	Pass           string   `toml:"pass"`
	ConnectTimeout string   `toml:"connect_timeout"`
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("servers") {
		cfg.Servers = raw.Servers
	}
	if meta.IsDefined("name") {
		cfg.Name = raw.Name
	}
	if meta.IsDefined("user") {
		cfg.User = raw.User
	}
	if meta.IsDefined("pass") {
		cfg.Pass = raw.Pass
	}
	if meta.IsDefined("connect_timeout") {
		d, err := time.ParseDuration(raw.ConnectTimeout)
		if err != nil {
			return config{}, fmt.Errorf("load config: connect_timeout: %w", err)
		}
		cfg.ConnectTimeout = d
	}

	return cfg, nil
}
