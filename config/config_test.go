package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Whisper.Model != "base" {
		t.Errorf("expected default model base, got %s", cfg.Whisper.Model)
	}
	if cfg.Whisper.Timeout != 120*time.Second {
		t.Errorf("expected 120s whisper timeout, got %v", cfg.Whisper.Timeout)
	}
	if cfg.Pyannote.BaseURL != "http://localhost:8388" {
		t.Errorf("unexpected pyannote URL %s", cfg.Pyannote.BaseURL)
	}
	if cfg.Pipeline.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Pipeline.Workers)
	}
	if cfg.Ollama.Temperature != 0.75 {
		t.Errorf("expected temperature 0.75, got %v", cfg.Ollama.Temperature)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		var cfg Config
		cfg.ApplyDefaults()
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		cfg := valid()
		if err := cfg.Validate(); err != nil {
			t.Errorf("default config should validate: %v", err)
		}
	})

	t.Run("bad model size", func(t *testing.T) {
		cfg := valid()
		cfg.Whisper.Model = "enormous"
		if err := cfg.Validate(); err == nil {
			t.Error("expected validation error for unknown model size")
		}
	})

	t.Run("bad worker count", func(t *testing.T) {
		cfg := valid()
		cfg.Pipeline.Workers = 0
		if err := cfg.Validate(); err == nil {
			t.Error("expected validation error for zero workers")
		}
	})

	t.Run("bad url", func(t *testing.T) {
		cfg := valid()
		cfg.Whisper.BaseURL = "not a url"
		if err := cfg.Validate(); err == nil {
			t.Error("expected validation error for malformed URL")
		}
	})

	t.Run("bad temperature", func(t *testing.T) {
		cfg := valid()
		cfg.Ollama.Temperature = 3.5
		if err := cfg.Validate(); err == nil {
			t.Error("expected validation error for out-of-range temperature")
		}
	})
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yaml := `
whisper:
  model: small
pipeline:
  workers: 2
  output_dir: /tmp/transcripts
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Whisper.Model != "small" {
		t.Errorf("expected model small, got %s", cfg.Whisper.Model)
	}
	if cfg.Pipeline.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Pipeline.Workers)
	}
	if cfg.Pipeline.OutputDir != "/tmp/transcripts" {
		t.Errorf("unexpected output dir %s", cfg.Pipeline.OutputDir)
	}
	// untouched sections still get defaults
	if cfg.Pyannote.BaseURL == "" {
		t.Error("expected pyannote defaults to apply")
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	_ = os.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Whisper.Model != "base" {
		t.Errorf("expected defaults, got model %s", cfg.Whisper.Model)
	}
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("whisper: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
