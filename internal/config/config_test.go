package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Default()
	if cfg.Window != want.Window || cfg.Layout != want.Layout {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[rpc]
endpoint = "https://rpc.example.com"
limit = 250

[window]
width = 1600
height = 1000

[layout]
seed = 7

[cache]
redis_addr = "localhost:6379"
ttl = "12h"

[store]
mongo_uri = "mongodb://localhost:27017"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.RPC.Endpoint != "https://rpc.example.com" || cfg.RPC.Limit != 250 {
		t.Errorf("rpc section not applied: %+v", cfg.RPC)
	}
	if cfg.Window.Width != 1600 || cfg.Window.Height != 1000 {
		t.Errorf("window section not applied: %+v", cfg.Window)
	}
	if cfg.Layout.Seed != 7 {
		t.Errorf("layout seed not applied: %+v", cfg.Layout)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" || cfg.Cache.Duration() != 12*time.Hour {
		t.Errorf("cache section not applied: %+v", cfg.Cache)
	}
	if cfg.Store.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("store section not applied: %+v", cfg.Store)
	}

	// Unset fields keep their defaults.
	if cfg.Layout.Iterations != 150 || cfg.Layout.Repulsion != 1.5 {
		t.Errorf("unset layout fields should keep defaults: %+v", cfg.Layout)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
