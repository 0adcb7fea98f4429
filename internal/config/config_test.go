package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"montage/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	if len(cfg.Tracks.Lanes) == 0 {
		t.Fatal("expected default lanes")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing file to be reported")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Timeline.PixelsPerSecond != 10 {
		t.Fatalf("expected default pixels_per_second, got %v", cfg.Timeline.PixelsPerSecond)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[timeline]
pixels_per_second = 25.0
overscan_items = 5

[logging]
format = "json"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected file to be found")
	}
	if cfg.Timeline.PixelsPerSecond != 25 || cfg.Timeline.OverscanItems != 5 {
		t.Fatalf("unexpected timeline config: %#v", cfg.Timeline)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Logging.Format)
	}
	// Untouched sections keep defaults.
	if cfg.History.MaxEntries != 200 {
		t.Fatalf("expected default history depth, got %d", cfg.History.MaxEntries)
	}
}

func TestLoadRejectsDuplicateLaneIndexes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[[tracks.lanes]]
index = 0
name = "A"

[[tracks.lanes]]
index = 0
name = "B"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected duplicate lane index to be rejected")
	}
}

func TestLoadRejectsInvertedZoomBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[timeline]
min_zoom = 4.0
max_zoom = 0.5
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected inverted zoom bounds to be rejected")
	}
}

func TestSampleConfigEmbedded(t *testing.T) {
	if config.SampleConfig() == "" {
		t.Fatal("expected embedded sample config")
	}
}
