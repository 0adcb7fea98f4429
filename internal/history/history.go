package history

import (
	"sync"

	"montage/internal/timeline"
)

// DefaultMaxEntries caps the undo stack. Whole-collection snapshots at
// hundreds of clips stay cheap well past this depth.
const DefaultMaxEntries = 200

// History wraps a timeline.Store with linear undo/redo. Mutations must go
// through this wrapper for them to be undoable; reads go straight to the
// store.
type History struct {
	mu         sync.Mutex
	store      *timeline.Store
	past       []timeline.Snapshot
	future     []timeline.Snapshot
	maxEntries int

	// gesture holds the pre-gesture snapshot while a drag is in flight.
	gesture *timeline.Snapshot
}

// New wraps store. maxEntries <= 0 selects DefaultMaxEntries.
func New(store *timeline.Store) *History {
	return NewWithLimit(store, DefaultMaxEntries)
}

// NewWithLimit wraps store with an explicit undo-depth cap.
func NewWithLimit(store *timeline.Store, maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{store: store, maxEntries: maxEntries}
}

// Store exposes the wrapped store for reads.
func (h *History) Store() *timeline.Store {
	return h.store
}

// Add records the prior state and delegates to the store.
func (h *History) Add(input timeline.ClipInput) (string, error) {
	before := h.prepare()
	id, err := h.store.Add(input)
	h.commit(before, err == nil)
	return id, err
}

// Remove records the prior state and delegates. Removing an unknown id stays
// a no-op and records no entry.
func (h *History) Remove(id string) {
	if _, ok := h.store.Get(id); !ok {
		return
	}
	before := h.prepare()
	h.store.Remove(id)
	h.commit(before, true)
}

// Update records the prior state and delegates.
func (h *History) Update(id string, patch timeline.Patch) error {
	before := h.prepare()
	err := h.store.Update(id, patch)
	h.commit(before, err == nil)
	return err
}

// Move records the prior state and delegates.
func (h *History) Move(id string, startTime float64, track int) error {
	before := h.prepare()
	err := h.store.Move(id, startTime, track)
	h.commit(before, err == nil)
	return err
}

// Resize records the prior state and delegates.
func (h *History) Resize(id string, duration float64) error {
	before := h.prepare()
	err := h.store.Resize(id, duration)
	h.commit(before, err == nil)
	return err
}

// Duplicate records the prior state and delegates. An unknown source id
// performs no mutation and records no entry.
func (h *History) Duplicate(id string) (string, bool) {
	before := h.prepare()
	copyID, ok := h.store.Duplicate(id)
	h.commit(before, ok)
	return copyID, ok
}

// BeginGesture opens a coalescing window: the state at this moment becomes
// the single undo point for every mutation applied until EndGesture. Nested
// calls are ignored until the first gesture ends.
func (h *History) BeginGesture() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.gesture != nil {
		return
	}
	snap := h.store.Snapshot()
	h.gesture = &snap
}

// EndGesture closes the window and records one entry, but only if the store
// actually changed during the gesture.
func (h *History) EndGesture() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.gesture == nil {
		return
	}
	before := *h.gesture
	h.gesture = nil
	if before.Equal(h.store.Snapshot()) {
		return
	}
	h.push(before)
}

// Undo restores the most recent past snapshot. Returns false when there is
// nothing to undo.
func (h *History) Undo() bool {
	h.mu.Lock()
	if len(h.past) == 0 {
		h.mu.Unlock()
		return false
	}
	snap := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, h.store.Snapshot())
	h.mu.Unlock()

	h.store.Restore(snap)
	return true
}

// Redo reapplies the most recently undone state. Returns false when there is
// nothing to redo.
func (h *History) Redo() bool {
	h.mu.Lock()
	if len(h.future) == 0 {
		h.mu.Unlock()
		return false
	}
	snap := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, h.store.Snapshot())
	h.mu.Unlock()

	h.store.Restore(snap)
	return true
}

// CanUndo reports whether an undo entry exists.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past) > 0
}

// CanRedo reports whether a redo entry exists.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future) > 0
}

// Depths returns the past and future stack sizes for diagnostics.
func (h *History) Depths() (past, future int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past), len(h.future)
}

// prepare captures the pre-mutation snapshot unless a gesture is open, in
// which case the gesture snapshot already covers it.
func (h *History) prepare() *timeline.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.gesture != nil {
		return nil
	}
	snap := h.store.Snapshot()
	return &snap
}

// commit records the captured snapshot when the mutation applied.
func (h *History) commit(before *timeline.Snapshot, applied bool) {
	if before == nil || !applied {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.push(*before)
}

// push appends to the past stack, clears the future stack (linear history,
// no branching timelines), and enforces the depth cap. Callers hold h.mu.
func (h *History) push(snap timeline.Snapshot) {
	h.past = append(h.past, snap)
	if len(h.past) > h.maxEntries {
		h.past = h.past[len(h.past)-h.maxEntries:]
	}
	h.future = h.future[:0]
}
