// Package testsupport provides shared helpers for package tests: temp-dir
// configs, catalog lifecycle management, and seeded clip stores.
package testsupport

import (
	"path/filepath"
	"testing"

	"montage/internal/assets"
	"montage/internal/config"
	"montage/internal/timeline"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ProjectDir = filepath.Join(base, "projects")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	return &cfg
}

// MustOpenCatalog opens an assets.Catalog for tests and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *assets.Catalog {
	t.Helper()

	catalog, err := assets.Open(cfg)
	if err != nil {
		t.Fatalf("assets.Open: %v", err)
	}
	t.Cleanup(func() {
		catalog.Close()
	})
	return catalog
}

// SeedClips adds count video clips laid end to end on one track, returning
// their ids in order.
func SeedClips(t testing.TB, store *timeline.Store, track, count int, duration float64) []string {
	t.Helper()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := store.Add(timeline.ClipInput{
			Type:      timeline.TypeVideo,
			Track:     track,
			StartTime: float64(i) * duration,
			Duration:  duration,
		})
		if err != nil {
			t.Fatalf("seed clip %d: %v", i, err)
		}
		ids = append(ids, id)
	}
	return ids
}
