package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load([]string{"--config-dir", t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8000" || cfg.Data.Dir != "data" || cfg.History.DefaultLimit != 720 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Command.DefaultUser != "Admin" {
		t.Fatalf("default user = %q", cfg.Command.DefaultUser)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("allowed origins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown timeout = %v", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_FileEnvAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	yml := `port: "9000"
log:
  level: debug
data:
  dir: /srv/ac
history:
  default_limit: 100
server:
  write_timeout: 3s
`
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ACDASH_HISTORY_DEFAULT_LIMIT", "50")
	t.Setenv("ACDASH_PORT", "9100")

	cfg, err := Load([]string{"--config-dir", dir, "--port", "9200"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9200" {
		t.Fatalf("flag should win, port = %q", cfg.Port)
	}
	if cfg.History.DefaultLimit != 50 {
		t.Fatalf("env should override file, limit = %d", cfg.History.DefaultLimit)
	}
	if cfg.Data.Dir != "/srv/ac" || cfg.Log.Level != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Server.WriteTimeout != 3*time.Second {
		t.Fatalf("write timeout = %v", cfg.Server.WriteTimeout)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("ACDASH_HISTORY_DEFAULT_LIMIT", "0")
	if _, err := Load([]string{"--config-dir", t.TempDir()}); err == nil {
		t.Fatalf("expected error for zero history limit")
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	if _, err := Load([]string{"--bogus"}); err == nil {
		t.Fatalf("expected flag parse error")
	}
}
