package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.File != "" || cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("unexpected app defaults %#v", cfg.App)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.App.Verbose || cfg.Logging.Trace {
		t.Fatalf("expected verbose and trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"KVEDIT_WIDTH=100",
		"KVEDIT_HEIGHT=40",
		"KVEDIT_FOOTER=false",
		"KVEDIT_TRACE=true",
		"KVEDIT_LOG_FILE=/tmp/env.log",
		"KVEDIT_FILE=env.json",
		"malformed",
	}
	cfg, err := LoadArgs([]string{"-width", "80", "-log-file", "flag.log"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag width 80, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 40 {
		t.Fatalf("expected env height 40, got %d", cfg.App.Height)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled from env")
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from env")
	}
	if cfg.Logging.FilePath != "flag.log" {
		t.Fatalf("expected flag log file, got %q", cfg.Logging.FilePath)
	}
	if cfg.App.File != "env.json" {
		t.Fatalf("expected env file, got %q", cfg.App.File)
	}
	if cfg.Flags["width"] != "80" || cfg.Flags["trace"] != "true" {
		t.Fatalf("unexpected flag snapshot %#v", cfg.Flags)
	}
}

func TestLoadArgsPositionalFile(t *testing.T) {
	cfg, err := LoadArgs([]string{"-file", "ignored.json", "pairs.json"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.File != "pairs.json" {
		t.Fatalf("expected positional file, got %q", cfg.App.File)
	}
	if _, err := LoadArgs([]string{"a.json", "b.json"}, nil); err == nil {
		t.Fatalf("expected error for multiple files")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-3"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsIgnoresInvalidEnvValues(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"KVEDIT_WIDTH=wide", "KVEDIT_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || !cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks for invalid env values, got %#v", cfg.App)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	if err := Validate(Config{}); err != nil {
		t.Fatalf("expected empty config valid, got %v", err)
	}
	cfg := Config{}
	cfg.App.File = dir
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected directory to be rejected")
	}
	file := filepath.Join(dir, "pairs.json")
	if err := os.WriteFile(file, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg.App.File = file
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected regular file valid, got %v", err)
	}
	cfg.App.File = filepath.Join(dir, "missing.json")
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected missing file to be deferred, got %v", err)
	}
	cfg.App.File = filepath.Join(file, "child.json")
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected stat failure under a regular file to be reported")
	}
}
