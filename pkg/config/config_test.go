package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output != "DEPENDENCIES.md" {
		t.Errorf("output = %q", cfg.Output)
	}
	if cfg.Manifest != "composer.json" {
		t.Errorf("manifest = %q", cfg.Manifest)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout())
	}
	if len(cfg.Resolve.Rules) == 0 {
		t.Fatal("expected default vendor rules")
	}
	if cfg.Resolve.Rules[0].Prefix != "kanopi/" || cfg.Resolve.Rules[0].Provider != "github" {
		t.Errorf("first rule = %+v", cfg.Resolve.Rules[0])
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dependgen.toml")
	content := `
output = "deps.md"
timeout_seconds = 30

[[resolve.rules]]
prefix = "myorg/"
provider = "gitlab"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "deps.md" {
		t.Errorf("output = %q", cfg.Output)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("timeout_seconds = %d", cfg.TimeoutSeconds)
	}
	// File rules replace the defaults.
	if len(cfg.Resolve.Rules) != 1 || cfg.Resolve.Rules[0].Prefix != "myorg/" {
		t.Errorf("rules = %+v", cfg.Resolve.Rules)
	}
	// Untouched fields keep their defaults.
	if cfg.Manifest != "composer.json" {
		t.Errorf("manifest = %q", cfg.Manifest)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "DEPENDENCIES.md" {
		t.Errorf("output = %q, want defaults", cfg.Output)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEPENDGEN_OUTPUT", "env.md")
	t.Setenv("DEPENDGEN_TIMEOUT", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "env.md" {
		t.Errorf("output = %q, want env override", cfg.Output)
	}
	if cfg.TimeoutSeconds != 5 {
		t.Errorf("timeout_seconds = %d, want 5", cfg.TimeoutSeconds)
	}
}

func TestLoad_InvalidEnvTimeoutIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEPENDGEN_TIMEOUT", "soon")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("timeout_seconds = %d, want default 10", cfg.TimeoutSeconds)
	}
}
