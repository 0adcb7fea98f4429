// Package tracks exposes the fixed lane layout clips are placed on and the
// presentational grouping state layered over it.
//
// The layout is read-only from the engine's point of view: clip validity
// depends only on a track index belonging to the layout. Groups carry
// visibility, lock, and solo flags plus a display color; none of that affects
// clip validity.
package tracks
