package history_test

import (
	"errors"
	"testing"

	"montage/internal/history"
	"montage/internal/timeline"
)

func newHistory(t *testing.T) *history.History {
	t.Helper()
	return history.New(timeline.NewStore())
}

func TestUndoRestoresPriorCollection(t *testing.T) {
	h := newHistory(t)
	id, err := h.Add(timeline.ClipInput{Type: timeline.TypeCode, StartTime: 0, Duration: 5})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := h.Move(id, 10, 2); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if !h.Undo() {
		t.Fatal("expected undo to apply")
	}
	clip, ok := h.Store().Get(id)
	if !ok {
		t.Fatal("expected clip to survive undo of the move")
	}
	if clip.StartTime != 0 || clip.Track != 0 {
		t.Fatalf("expected pre-move state, got %#v", clip)
	}

	if !h.Redo() {
		t.Fatal("expected redo to apply")
	}
	clip, _ = h.Store().Get(id)
	if clip.StartTime != 10 || clip.Track != 2 {
		t.Fatalf("expected post-move state after redo, got %#v", clip)
	}
}

func TestUndoRemovesAddedClip(t *testing.T) {
	h := newHistory(t)
	id, _ := h.Add(timeline.ClipInput{Type: timeline.TypeVideo, Duration: 3})

	if !h.Undo() {
		t.Fatal("expected undo to apply")
	}
	if _, ok := h.Store().Get(id); ok {
		t.Fatal("expected added clip gone after undo")
	}
	if h.Store().Len() != 0 {
		t.Fatalf("expected empty store, got %d clips", h.Store().Len())
	}
}

func TestNewMutationAfterUndoClearsFuture(t *testing.T) {
	h := newHistory(t)
	id, _ := h.Add(timeline.ClipInput{Type: timeline.TypeVideo, Duration: 3})
	if err := h.Move(id, 5, 0); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if !h.Undo() {
		t.Fatal("expected undo to apply")
	}
	if !h.CanRedo() {
		t.Fatal("expected redo entry after undo")
	}

	if err := h.Resize(id, 8); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if h.CanRedo() {
		t.Fatal("expected future cleared by new mutation")
	}
	if h.Redo() {
		t.Fatal("expected redo to report nothing to do")
	}
}

func TestRejectedMutationRecordsNoEntry(t *testing.T) {
	h := newHistory(t)
	id, _ := h.Add(timeline.ClipInput{Type: timeline.TypeAudio, Duration: 4})
	past, _ := h.Depths()

	if err := h.Resize(id, -1); !errors.Is(err, timeline.ErrInvalidMutation) {
		t.Fatalf("expected ErrInvalidMutation, got %v", err)
	}
	if newPast, _ := h.Depths(); newPast != past {
		t.Fatalf("expected no history entry for rejected mutation, depth %d -> %d", past, newPast)
	}

	if _, ok := h.Duplicate("missing"); ok {
		t.Fatal("expected duplicate of unknown id to fail")
	}
	if newPast, _ := h.Depths(); newPast != past {
		t.Fatal("expected no history entry for no-op duplicate")
	}
}

func TestRemoveUnknownRecordsNoEntry(t *testing.T) {
	h := newHistory(t)
	h.Remove("missing")
	if past, _ := h.Depths(); past != 0 {
		t.Fatalf("expected empty history, got depth %d", past)
	}
}

func TestGestureCollapsesToSingleEntry(t *testing.T) {
	h := newHistory(t)
	id, _ := h.Add(timeline.ClipInput{Type: timeline.TypeVideo, Duration: 5})
	past, _ := h.Depths()

	h.BeginGesture()
	for _, start := range []float64{1, 2, 3, 4, 5} {
		if err := h.Move(id, start, 0); err != nil {
			t.Fatalf("Move failed: %v", err)
		}
	}
	h.EndGesture()

	newPast, _ := h.Depths()
	if newPast != past+1 {
		t.Fatalf("expected one entry for the whole gesture, depth %d -> %d", past, newPast)
	}

	if !h.Undo() {
		t.Fatal("expected undo to apply")
	}
	clip, _ := h.Store().Get(id)
	if clip.StartTime != 0 {
		t.Fatalf("expected pre-gesture position, got %v", clip.StartTime)
	}
}

func TestEmptyGestureRecordsNothing(t *testing.T) {
	h := newHistory(t)
	h.Add(timeline.ClipInput{Type: timeline.TypeVideo, Duration: 5})
	past, _ := h.Depths()

	h.BeginGesture()
	h.EndGesture()

	if newPast, _ := h.Depths(); newPast != past {
		t.Fatalf("expected no entry for empty gesture, depth %d -> %d", past, newPast)
	}
}

func TestUndoRedoExhaustion(t *testing.T) {
	h := newHistory(t)
	if h.Undo() {
		t.Fatal("expected undo on empty history to report false")
	}
	if h.Redo() {
		t.Fatal("expected redo on empty history to report false")
	}
}

func TestEndToEndOverlapScenario(t *testing.T) {
	h := newHistory(t)
	a, _ := h.Add(timeline.ClipInput{Type: timeline.TypeVideo, StartTime: 0, Duration: 5, Track: 0})
	b, _ := h.Add(timeline.ClipInput{Type: timeline.TypeVideo, StartTime: 10, Duration: 5, Track: 0})

	if err := h.Move(a, 10, 0); err != nil {
		t.Fatalf("Move into overlap failed: %v", err)
	}
	if h.Store().Len() != 2 {
		t.Fatalf("expected both clips retained, got %d", h.Store().Len())
	}
	if overlaps := h.Store().Overlaps(0); len(overlaps) != 1 {
		t.Fatalf("expected overlap reported, got %#v", overlaps)
	}

	if !h.Undo() {
		t.Fatal("expected undo to apply")
	}
	clipA, _ := h.Store().Get(a)
	if clipA.StartTime != 0 {
		t.Fatalf("expected A restored to start 0, got %v", clipA.StartTime)
	}
	clipB, _ := h.Store().Get(b)
	if clipB.StartTime != 10 {
		t.Fatalf("expected B untouched, got %v", clipB.StartTime)
	}
}
