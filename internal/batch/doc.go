// Package batch coalesces bursts of mutation requests into a single store
// write per scheduler tick.
//
// A drag gesture emits a mutation closure per pointer move; flushing them all
// inside one store batch keeps subscribers from observing a partially-applied
// gesture and keeps per-frame recomputation bounded. Scheduling is pluggable
// so the behavior reproduces deterministically in tests without an animation
// frame callback.
package batch
