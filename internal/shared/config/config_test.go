package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "CORS_ALLOW_ORIGINS", "OBJECT_STORE", "DATA_DIR", "EXTRACT_TIMEOUT", "MAX_UPLOAD_BYTES", "WATCH_DATA_DIR", "PARSE_RATE_LIMIT_RPS", "PARSE_RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8000" {
		t.Fatalf("expected port 8000, got %q", cfg.Port)
	}
	wantOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, wantOrigins) {
		t.Fatalf("expected origins %v, got %v", wantOrigins, cfg.CORSAllowOrigin)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected local store, got %q", cfg.ObjectStoreType)
	}
	if cfg.DataDir != "./data" {
		t.Fatalf("expected ./data, got %q", cfg.DataDir)
	}
	if cfg.ExtractTimeout != 30*time.Second {
		t.Fatalf("expected 30s extract timeout, got %s", cfg.ExtractTimeout)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("expected 10MiB upload cap, got %d", cfg.MaxUploadBytes)
	}
	if !cfg.WatchDataDir {
		t.Fatalf("expected data dir watch enabled by default")
	}
	if cfg.ParseRateLimitRPS != 1 || cfg.ParseRateLimitBurst != 3 {
		t.Fatalf("expected parse limit 1 rps burst 3, got %v/%d", cfg.ParseRateLimitRPS, cfg.ParseRateLimitBurst)
	}
}

func TestLoadOverridesAndInvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("S3_BUCKET", "resumes")
	t.Setenv("EXTRACT_TIMEOUT", "nope")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("WATCH_DATA_DIR", "false")
	t.Setenv("ENV", "prod")

	cfg := Load()
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("expected s3 store, got %q", cfg.ObjectStoreType)
	}
	if cfg.ExtractTimeout != 30*time.Second {
		t.Fatalf("expected fallback timeout, got %s", cfg.ExtractTimeout)
	}
	if cfg.MaxUploadBytes != 2048 {
		t.Fatalf("expected 2048, got %d", cfg.MaxUploadBytes)
	}
	if cfg.RateLimitRPS != 0.5 {
		t.Fatalf("expected 0.5 rps, got %v", cfg.RateLimitRPS)
	}
	if cfg.WatchDataDir {
		t.Fatalf("expected watch disabled")
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production env, got %q", cfg.Env)
	}
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DATA_DIR=/tmp/from-dotenv\nPORT=9999\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("PORT", "7000")
	t.Setenv("DATA_DIR", "")
	os.Unsetenv("DATA_DIR")

	cfg := Load()
	if cfg.DataDir != "/tmp/from-dotenv" {
		t.Fatalf("expected DATA_DIR from .env, got %q", cfg.DataDir)
	}
	if cfg.Port != "7000" {
		t.Fatalf("expected environment PORT to win, got %q", cfg.Port)
	}
}
