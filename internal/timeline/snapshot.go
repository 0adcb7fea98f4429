package timeline

import "reflect"

// Snapshot is an immutable copy of the whole clip collection. Whole-object
// snapshots are acceptable at hundreds of clips; the type is opaque so a
// diff-based representation could replace it without touching call sites.
type Snapshot struct {
	clips []*Clip
	order []string
}

// SnapshotOf builds a snapshot from an explicit clip list, preserving ids and
// order. Used by persistence to load a project without re-keying clips.
func SnapshotOf(clips []*Clip) Snapshot {
	snap := Snapshot{
		clips: make([]*Clip, 0, len(clips)),
		order: make([]string, 0, len(clips)),
	}
	for _, clip := range clips {
		snap.clips = append(snap.clips, clip.Clone())
		snap.order = append(snap.order, clip.ID)
	}
	return snap
}

// Snapshot captures the current clip collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		clips: make([]*Clip, 0, len(s.order)),
		order: make([]string, len(s.order)),
	}
	copy(snap.order, s.order)
	for _, id := range s.order {
		snap.clips = append(snap.clips, s.clips[id].Clone())
	}
	return snap
}

// Restore replaces the clip collection with the snapshot's contents and emits
// a single restored event.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	s.clips = make(map[string]*Clip, len(snap.clips))
	s.order = make([]string, len(snap.order))
	copy(s.order, snap.order)
	for _, clip := range snap.clips {
		s.clips[clip.ID] = clip.Clone()
	}
	s.emit(Event{Kind: EventRestored})
	s.mu.Unlock()
	s.flushEvents()
}

// Len returns the number of clips in the snapshot.
func (snap Snapshot) Len() int {
	return len(snap.clips)
}

// Clips returns clones of the snapshot's clips in their recorded order.
func (snap Snapshot) Clips() []*Clip {
	clips := make([]*Clip, 0, len(snap.clips))
	for _, clip := range snap.clips {
		clips = append(clips, clip.Clone())
	}
	return clips
}

// Equal reports whether two snapshots hold identical collections: same ids in
// the same order with field-for-field equal records.
func (snap Snapshot) Equal(other Snapshot) bool {
	if len(snap.order) != len(other.order) {
		return false
	}
	for i, id := range snap.order {
		if other.order[i] != id {
			return false
		}
	}
	for i, clip := range snap.clips {
		if !clipsEqual(clip, other.clips[i]) {
			return false
		}
	}
	return true
}

func clipsEqual(a, b *Clip) bool {
	if a.ID != b.ID || a.AssetID != b.AssetID || a.Track != b.Track || a.Type != b.Type {
		return false
	}
	if a.StartTime != b.StartTime || a.Duration != b.Duration {
		return false
	}
	if !propertiesEqual(a.Properties, b.Properties) {
		return false
	}
	if len(a.Animations) != len(b.Animations) || len(a.Keyframes) != len(b.Keyframes) {
		return false
	}
	for i := range a.Animations {
		if a.Animations[i] != b.Animations[i] {
			return false
		}
	}
	for i := range a.Keyframes {
		if !keyframesEqual(a.Keyframes[i], b.Keyframes[i]) {
			return false
		}
	}
	return true
}

// propertiesEqual compares via reflect.DeepEqual because property arms carry
// maps and slices that direct interface comparison would panic on.
func propertiesEqual(a, b Properties) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func keyframesEqual(a, b Keyframe) bool {
	if a.ID != b.ID || a.Time != b.Time || len(a.Values) != len(b.Values) {
		return false
	}
	for key, value := range a.Values {
		if other, ok := b.Values[key]; !ok || other != value {
			return false
		}
	}
	return true
}
