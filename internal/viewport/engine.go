package viewport

import (
	"montage/internal/coords"
	"montage/internal/timeline"
)

const (
	// DefaultMinItemWidth keeps extremely short clips clickable at low zoom.
	DefaultMinItemWidth = 20.0
	// DefaultOverscanItems is how many minimum item widths the visible window
	// extends on each side, so clips do not pop in during fast scroll.
	DefaultOverscanItems = 3
)

// View is the current viewport: horizontal scroll offset and container width
// in pixels, plus the zoom state that scales time into pixels.
type View struct {
	ScrollLeft      float64
	ContainerWidth  float64
	PixelsPerSecond float64
	Zoom            float64
}

// VisibleClip pairs a clip with its computed pixel geometry.
type VisibleClip struct {
	Clip  *timeline.Clip
	Left  float64
	Width float64
}

// Engine computes the visible clip subset for a track.
type Engine struct {
	converter     *coords.Converter
	minItemWidth  float64
	overscanItems int
}

// NewEngine builds an engine over a shared coordinate converter. Zero or
// negative tuning values fall back to the defaults.
func NewEngine(converter *coords.Converter, minItemWidth float64, overscanItems int) *Engine {
	if minItemWidth <= 0 {
		minItemWidth = DefaultMinItemWidth
	}
	if overscanItems <= 0 {
		overscanItems = DefaultOverscanItems
	}
	return &Engine{converter: converter, minItemWidth: minItemWidth, overscanItems: overscanItems}
}

// Visible returns the clips whose pixel bounds intersect the viewport
// expanded by the overscan margin, in the order given. A clip whose true
// on-screen width clamps to zero is still included when its overscanned
// bounds intersect.
func (e *Engine) Visible(clips []*timeline.Clip, view View) []VisibleClip {
	margin := float64(e.overscanItems) * e.minItemWidth
	expandedLeft := view.ScrollLeft - margin
	expandedRight := view.ScrollLeft + view.ContainerWidth + margin

	visible := make([]VisibleClip, 0, len(clips))
	for _, clip := range clips {
		left := e.converter.TimeToPixels(clip.StartTime, view.PixelsPerSecond, view.Zoom,
			coords.Key{Subject: clip.ID, Dimension: coords.DimLeft})
		width := e.converter.TimeToPixels(clip.Duration, view.PixelsPerSecond, view.Zoom,
			coords.Key{Subject: clip.ID, Dimension: coords.DimWidth})
		if width < e.minItemWidth {
			width = e.minItemWidth
		}
		right := left + width
		if right >= expandedLeft && left <= expandedRight {
			visible = append(visible, VisibleClip{Clip: clip, Left: left, Width: width})
		}
	}
	return visible
}

// MinItemWidth returns the configured minimum rendered clip width in pixels.
func (e *Engine) MinItemWidth() float64 {
	return e.minItemWidth
}
