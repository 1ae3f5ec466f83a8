// Package config loads walletscope settings from a TOML file.
//
// The file lives at ~/.config/walletscope/config.toml and every field is
// optional; a missing file yields the defaults. Command-line flags override
// whatever the file says.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all user-tunable settings.
type Config struct {
	RPC    RPC    `toml:"rpc"`
	Window Window `toml:"window"`
	Layout Layout `toml:"layout"`
	Cache  Cache  `toml:"cache"`
	Store  Store  `toml:"store"`
	Font   Font   `toml:"font"`
}

// RPC configures the Solana endpoint.
type RPC struct {
	Endpoint string `toml:"endpoint"`
	Limit    int    `toml:"limit"` // signatures fetched per wallet
}

// Window configures the viewer window.
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Layout configures the force-directed layout.
type Layout struct {
	Seed       uint64  `toml:"seed"`
	Iterations int     `toml:"iterations"`
	Repulsion  float64 `toml:"repulsion"`
}

// Cache configures the RPC response cache.
type Cache struct {
	Dir       string   `toml:"dir"`        // file cache directory
	TTL       duration `toml:"ttl"`        // 0 keeps entries forever
	RedisAddr string   `toml:"redis_addr"` // use Redis instead of files when set
}

// Store configures the optional MongoDB archive.
type Store struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// Font configures the viewer's text rendering.
type Font struct {
	Name string  `toml:"name"` // system font name; embedded default when empty
	Size float64 `toml:"size"`
}

// Default returns the built-in settings used when no file exists.
func Default() Config {
	return Config{
		RPC:    RPC{Limit: 100},
		Window: Window{Width: 1200, Height: 800},
		Layout: Layout{Seed: 42, Iterations: 150, Repulsion: 1.5},
		Font:   Font{Size: 13},
	}
}

// DefaultPath returns ~/.config/walletscope/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "walletscope", "config.toml"), nil
}

// Load reads the config file at path, or the default path when empty.
// A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	d := Default()
	if c.RPC.Limit <= 0 {
		c.RPC.Limit = d.RPC.Limit
	}
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Layout.Iterations <= 0 {
		c.Layout.Iterations = d.Layout.Iterations
	}
	if c.Layout.Repulsion <= 0 {
		c.Layout.Repulsion = d.Layout.Repulsion
	}
	if c.Font.Size <= 0 {
		c.Font.Size = d.Font.Size
	}
	return c
}

// duration wraps time.Duration so TOML values like "12h" parse naturally.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// Duration returns the cache TTL as a time.Duration.
func (c Cache) Duration() time.Duration { return time.Duration(c.TTL) }
