package coords_test

import (
	"testing"

	"montage/internal/coords"
)

func TestTimeToPixelsMemoizes(t *testing.T) {
	conv := coords.NewConverter()
	key := coords.Key{Subject: "clip-1", Dimension: coords.DimLeft}

	first := conv.TimeToPixels(2, 10, 1.5, key)
	if first != 30 {
		t.Fatalf("expected 30px, got %v", first)
	}
	size := conv.CacheSize()

	second := conv.TimeToPixels(2, 10, 1.5, key)
	if second != first {
		t.Fatalf("expected identical value, got %v then %v", first, second)
	}
	if conv.CacheSize() != size {
		t.Fatalf("expected cache size unchanged on hit, got %d then %d", size, conv.CacheSize())
	}
}

func TestZoomChangeNeverReturnsStaleValue(t *testing.T) {
	conv := coords.NewConverter()
	key := coords.Key{Subject: "clip-1", Dimension: coords.DimLeft}

	at1 := conv.TimeToPixels(4, 10, 1, key)
	at2 := conv.TimeToPixels(4, 10, 2, key)
	if at1 != 40 || at2 != 80 {
		t.Fatalf("expected 40 and 80, got %v and %v", at1, at2)
	}
	if conv.CacheSize() != 2 {
		t.Fatalf("expected two entries, got %d", conv.CacheSize())
	}
}

func TestDistinctSubjectsDoNotCollide(t *testing.T) {
	conv := coords.NewConverter()
	a := conv.TimeToPixels(1, 10, 1, coords.Key{Subject: "clip-a", Dimension: coords.DimLeft})
	// Same time value, different subject: must compute its own entry.
	b := conv.TimeToPixels(1, 10, 1, coords.Key{Subject: "clip-b", Dimension: coords.DimLeft})
	if a != b {
		t.Fatalf("expected equal values, got %v and %v", a, b)
	}
	if conv.CacheSize() != 2 {
		t.Fatalf("expected two entries, got %d", conv.CacheSize())
	}
}

func TestInvalidateSubject(t *testing.T) {
	conv := coords.NewConverter()
	conv.TimeToPixels(1, 10, 1, coords.Key{Subject: "clip-a", Dimension: coords.DimLeft})
	conv.TimeToPixels(2, 10, 1, coords.Key{Subject: "clip-a", Dimension: coords.DimWidth})
	conv.TimeToPixels(3, 10, 1, coords.Key{Subject: "clip-b", Dimension: coords.DimLeft})

	conv.InvalidateSubject("clip-a")
	if conv.CacheSize() != 1 {
		t.Fatalf("expected one surviving entry, got %d", conv.CacheSize())
	}

	// A moved clip recomputes from its new time rather than reading stale px.
	moved := conv.TimeToPixels(5, 10, 1, coords.Key{Subject: "clip-a", Dimension: coords.DimLeft})
	if moved != 50 {
		t.Fatalf("expected 50px after invalidation, got %v", moved)
	}
}

func TestClearCache(t *testing.T) {
	conv := coords.NewConverter()
	conv.TimeToPixels(1, 10, 1, coords.Key{Subject: "clip-a", Dimension: coords.DimLeft})
	conv.ClearCache()
	if conv.CacheSize() != 0 {
		t.Fatalf("expected empty cache, got %d entries", conv.CacheSize())
	}
}

func TestPixelsToTime(t *testing.T) {
	conv := coords.NewConverter()
	cases := []struct {
		pixels, pps, zoom, want float64
	}{
		{100, 10, 1, 10},
		{100, 10, 2, 5},
		{0, 10, 1, 0},
		{100, 0, 1, 0},
	}
	for _, tc := range cases {
		if got := conv.PixelsToTime(tc.pixels, tc.pps, tc.zoom); got != tc.want {
			t.Fatalf("PixelsToTime(%v, %v, %v) = %v, want %v", tc.pixels, tc.pps, tc.zoom, got, tc.want)
		}
	}
}
