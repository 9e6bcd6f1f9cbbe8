// Copyright Casefile Contributors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOrDefault_NoFile(t *testing.T) {
	// With no config file, should return defaults without error
	cfg := LoadConfigOrDefault("")
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Defaults.Format == "" {
		t.Error("expected default format to be set")
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	// A path that doesn't exist should fall back to defaults
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
}

func TestLoadConfigOrDefault_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  format: json
  risk_bands: "4,5"
engine:
  batch_size: 25
  cache_ttl_seconds: 60
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("expected format=json, got %q", cfg.Defaults.Format)
	}
	if cfg.Engine.BatchSize != 25 {
		t.Errorf("expected batch_size=25, got %d", cfg.Engine.BatchSize)
	}
	if cfg.Engine.CacheMaxEntries != 100 {
		t.Errorf("unset tunables keep defaults, got %d", cfg.Engine.CacheMaxEntries)
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Should fall back to defaults, not panic
	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("fallback should carry defaults, got format=%q", cfg.Defaults.Format)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format=text, got %q", cfg.Defaults.Format)
	}
	if !cfg.Defaults.EnablePreprocessors {
		t.Error("expected enable_preprocessors=true by default")
	}
	if !cfg.Defaults.Recursive {
		t.Error("expected recursive=true by default")
	}
	if cfg.Engine.BatchSize != 100 || cfg.Engine.CacheTTLSeconds != 300 {
		t.Errorf("engine defaults = %+v", cfg.Engine)
	}
}

func TestLoadConfig_BooleanDefaultsSurviveUnrelatedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := "defaults:\n  format: csv\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Defaults.EnablePreprocessors {
		t.Error("enable_preprocessors default lost on partial config")
	}
	if !cfg.Defaults.Recursive {
		t.Error("recursive default lost on partial config")
	}
}

func TestLoadConfig_ProfilesInitialized(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Profiles == nil {
		t.Error("expected profiles map to be initialized")
	}
	// Default triage profile should exist
	if _, ok := cfg.Profiles["triage"]; !ok {
		t.Error("expected 'triage' profile to exist in defaults")
	}
}

func TestValidateConfig_RejectsBadValues(t *testing.T) {
	cfg, _ := LoadConfig("")
	cfg.Engine.BatchSize = -1
	if err := ValidateConfig(cfg); err == nil {
		t.Error("negative batch size must be rejected")
	}

	cfg, _ = LoadConfig("")
	cfg.Profiles["broken"] = Profile{Format: "sarif"}
	if err := ValidateConfig(cfg); err == nil {
		t.Error("unknown profile format must be rejected")
	}
}
