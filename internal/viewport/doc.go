// Package viewport decides which clips on a track must be materialized for
// the current scroll position and zoom.
//
// The engine computes pixel geometry for every clip on the track through the
// coordinate cache, expands the visible window by a fixed overscan margin on
// both sides, and keeps only the clips whose bounds intersect the expanded
// window. The scan is linear in the track's clip count and is triggered by
// scroll, zoom, or clip-set changes, never per render frame.
package viewport
