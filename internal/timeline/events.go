package timeline

// EventKind names the structural change a store event describes.
type EventKind string

const (
	EventAdded      EventKind = "added"
	EventRemoved    EventKind = "removed"
	EventUpdated    EventKind = "updated"
	EventMoved      EventKind = "moved"
	EventResized    EventKind = "resized"
	EventDuplicated EventKind = "duplicated"
	// EventRestored is emitted once when a snapshot replaces the whole
	// collection (undo/redo); ClipID is empty and subscribers should
	// recompute derived state wholesale.
	EventRestored EventKind = "restored"
)

// Event describes one applied mutation. Clip is a clone of the post-mutation
// record and is nil for removals and restores.
type Event struct {
	Kind   EventKind
	ClipID string
	Clip   *Clip
}

// Subscription detaches a subscriber when called. Safe to call more than once.
type Subscription func()

// Subscribe registers fn to be called synchronously after each applied
// mutation. During a batched apply, delivery is deferred until every queued
// mutation has been applied, so subscribers never observe a partial batch.
func (s *Store) Subscribe(fn func(Event)) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// emit queues or delivers an event depending on whether a batch is open.
// Callers hold s.mu; delivery happens outside the lock via flushEvents.
func (s *Store) emit(event Event) {
	s.pending = append(s.pending, event)
}

// flushEvents delivers queued events to subscribers. Must be called without
// holding s.mu and only when no batch is open.
func (s *Store) flushEvents() {
	s.mu.Lock()
	if s.batchDepth > 0 || len(s.pending) == 0 {
		s.mu.Unlock()
		return
	}
	events := s.pending
	s.pending = nil
	subs := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, event := range events {
		for _, fn := range subs {
			fn(event)
		}
	}
}
