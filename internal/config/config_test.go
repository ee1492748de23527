package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (Stand-in for t.Chdir, which
// requires Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 30 {
		t.Errorf("http timeouts = %d/%d", cfg.HTTP.ReadTimeoutSec, cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Catalog.Path != filepath.Join("data", "catalog.json") {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
	if cfg.Assistant.Model != "gpt-4o-mini" || cfg.Assistant.Provider != "openai" {
		t.Errorf("assistant defaults = %q/%q", cfg.Assistant.Model, cfg.Assistant.Provider)
	}
	if cfg.Assistant.ShortlistSize != 12 {
		t.Errorf("shortlist size = %d", cfg.Assistant.ShortlistSize)
	}
	if cfg.Search.DefaultLimit != 20 || cfg.Search.MaxLimit != 100 {
		t.Errorf("search limits = %d/%d", cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	}
	if cfg.Cache.TTLSec != 3600 {
		t.Errorf("cache ttl = %d", cfg.Cache.TTLSec)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Assistant: AssistantConfig{Model: "custom-model", ShortlistSize: 5},
		Search:    SearchConfig{DefaultLimit: 7},
	}
	cfg.ApplyDefaults()

	if cfg.Assistant.Model != "custom-model" {
		t.Errorf("model = %q, want custom-model", cfg.Assistant.Model)
	}
	if cfg.Assistant.ShortlistSize != 5 {
		t.Errorf("shortlist = %d, want 5", cfg.Assistant.ShortlistSize)
	}
	if cfg.Search.DefaultLimit != 7 {
		t.Errorf("default limit = %d, want 7", cfg.Search.DefaultLimit)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{HTTP: HTTPConfig{Port: 8080}}
	valid.ApplyDefaults()
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.HTTP.Port = 0 }, "http.port"},
		{"port too big", func(c *Config) { c.HTTP.Port = 70000 }, "http.port"},
		{"default above max", func(c *Config) { c.Search.DefaultLimit = 200 }, "default_limit"},
		{"temperature", func(c *Config) { c.Assistant.Temperature = 3 }, "temperature"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{HTTP: HTTPConfig{Port: 8080}}
			cfg.ApplyDefaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CURATOR_TEST_KEY", "from-env")

	in := []byte("api_key: ${CURATOR_TEST_KEY}\nmodel: ${CURATOR_TEST_MISSING:-fallback}\nempty: ${CURATOR_TEST_UNSET}\n")
	got := string(expandEnvVars(in))

	want := "api_key: from-env\nmodel: fallback\nempty: \n"
	if got != want {
		t.Errorf("expanded:\n%q\nwant:\n%q", got, want)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := `
http:
  port: 9090
catalog:
  path: ${CURATOR_TEST_CATALOG:-data/items.json}
auth:
  api_keys:
    - key-one
`
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.Catalog.Path != "data/items.json" {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
	if len(cfg.Auth.APIKeys) != 1 || cfg.Auth.APIKeys[0] != "key-one" {
		t.Errorf("api keys = %v", cfg.Auth.APIKeys)
	}
	// Defaults fill the rest.
	if cfg.Search.DefaultLimit != 20 {
		t.Errorf("default limit = %d, want defaulted 20", cfg.Search.DefaultLimit)
	}
	if cfg.CacheEnabled() {
		t.Error("cache should be disabled without addrs")
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"),
		[]byte("http:\n  port: -1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load("test")
	if err == nil || !strings.Contains(err.Error(), "http.port") {
		t.Errorf("expected port validation error, got %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv = %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv = %q, want prod", got)
	}
}
