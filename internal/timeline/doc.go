// Package timeline owns the clip data model and the Store, the single write
// path for every structural change to a project's timeline.
//
// The Store guards the canonical id-to-clip collection, validates mutations
// before applying them, and notifies subscribers through one internal
// apply-and-notify routine so history capture and viewport recomputation can
// observe every change without intercepting individual call sites. Readers
// always receive clones; nothing outside this package mutates a clip record
// directly.
//
// Overlapping clips are legal. Creative workflows stack overlay clips on the
// same track deliberately, so the Store reports overlap via Overlaps rather
// than rejecting it.
package timeline
