// Package history layers transactional undo/redo over the timeline store.
//
// The wrapper mirrors the store's mutation API. Each mutation captures a
// snapshot strictly before delegating, so undo always restores the
// immediately-prior state and no call site computes an inverse operation. A
// rejected mutation records nothing. Gestures bracket many mutations into a
// single history entry via BeginGesture/EndGesture. Selection and other UI
// state are never versioned here; only structural clip data is.
package history
