package coords

import "sync"

// Dimension names the logical quantity a cached value measures for a subject.
type Dimension string

const (
	DimLeft  Dimension = "left"
	DimWidth Dimension = "width"
)

// Key identifies one logical conversion. Two different clips sharing a time
// value never collide because the subject id is part of the key.
type Key struct {
	Subject   string
	Dimension Dimension
}

type memoKey struct {
	key             Key
	pixelsPerSecond float64
	zoom            float64
}

// Converter memoizes time-to-pixel conversions. The zero value is not usable;
// construct with NewConverter.
type Converter struct {
	mu    sync.Mutex
	cache map[memoKey]float64
}

// NewConverter returns an empty converter.
func NewConverter() *Converter {
	return &Converter{cache: make(map[memoKey]float64)}
}

// TimeToPixels converts seconds to a horizontal pixel offset, computing at
// most once per distinct (key, pixelsPerSecond, zoom) triple.
func (c *Converter) TimeToPixels(seconds, pixelsPerSecond, zoom float64, key Key) float64 {
	mk := memoKey{key: key, pixelsPerSecond: pixelsPerSecond, zoom: zoom}
	c.mu.Lock()
	defer c.mu.Unlock()
	if value, ok := c.cache[mk]; ok {
		return value
	}
	value := seconds * pixelsPerSecond * zoom
	c.cache[mk] = value
	return value
}

// PixelsToTime converts a pixel offset back to seconds. Pure; never cached,
// since it is called far less often than the forward direction.
func (c *Converter) PixelsToTime(pixels, pixelsPerSecond, zoom float64) float64 {
	scale := pixelsPerSecond * zoom
	if scale == 0 {
		return 0
	}
	return pixels / scale
}

// InvalidateSubject drops every cached entry for one subject, across all
// dimensions and zoom levels. Called when a clip's times change.
func (c *Converter) InvalidateSubject(subject string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for mk := range c.cache {
		if mk.key.Subject == subject {
			delete(c.cache, mk)
		}
	}
}

// ClearCache invalidates everything. Used when the project changes or the
// cache grows unexpectedly large.
func (c *Converter) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[memoKey]float64)
}

// CacheSize exposes the current entry count for diagnostics.
func (c *Converter) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}
