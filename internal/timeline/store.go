package timeline

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// DuplicateOffset is how far a duplicated clip is shifted past its source, in
// seconds, so the copy is visible and grabbable instead of hiding underneath.
const DuplicateOffset = 0.05

// ClipInput carries the caller-supplied fields for a new clip. The Store
// assigns the id and defaults missing collections.
type ClipInput struct {
	AssetID    string
	StartTime  float64
	Duration   float64
	Track      int
	Type       ClipType
	Properties Properties
	Animations []Animation
	Keyframes  []Keyframe
}

// Patch is a partial clip update. Nil pointer fields are left untouched;
// Properties, Animations, and Keyframes replace wholesale when non-nil.
type Patch struct {
	AssetID    *string
	StartTime  *float64
	Duration   *float64
	Track      *int
	Properties Properties
	Animations []Animation
	Keyframes  []Keyframe
}

// Overlap reports two clips on the same track whose time ranges intersect.
type Overlap struct {
	Track int
	A     string
	B     string
}

// Store is the canonical clip collection and the only component permitted to
// mutate it. All operations funnel through applyAndNotify-style bookkeeping:
// validate, mutate under the lock, queue an event, deliver after unlock.
type Store struct {
	mu        sync.Mutex
	clips     map[string]*Clip
	order     []string
	subs      map[int]func(Event)
	nextSubID int

	// batchDepth defers event delivery while a batched apply is open.
	batchDepth int
	pending    []Event
}

// NewStore returns an empty clip store.
func NewStore() *Store {
	return &Store{
		clips: make(map[string]*Clip),
		subs:  make(map[int]func(Event)),
	}
}

// Add validates input, assigns a fresh id, defaults empty keyframe and
// animation collections, and appends the clip. Returns the new id.
func (s *Store) Add(input ClipInput) (string, error) {
	if input.Duration <= 0 {
		return "", wrapMutation(ErrInvalidMutation, "add", "", "duration must be positive")
	}
	clip := &Clip{
		ID:         uuid.NewString(),
		AssetID:    input.AssetID,
		StartTime:  clampStart(input.StartTime),
		Duration:   input.Duration,
		Track:      input.Track,
		Type:       input.Type,
		Properties: cloneProperties(input.Properties),
	}
	if clip.Properties == nil {
		clip.Properties = DefaultProperties(input.Type)
	}
	clip.Animations = make([]Animation, len(input.Animations))
	copy(clip.Animations, input.Animations)
	clip.Keyframes = make([]Keyframe, 0, len(input.Keyframes))
	for _, kf := range input.Keyframes {
		cp := kf.clone()
		if cp.ID == "" {
			cp.ID = uuid.NewString()
		}
		clip.Keyframes = append(clip.Keyframes, cp)
	}

	s.mu.Lock()
	s.clips[clip.ID] = clip
	s.order = append(s.order, clip.ID)
	s.emit(Event{Kind: EventAdded, ClipID: clip.ID, Clip: clip.Clone()})
	s.mu.Unlock()
	s.flushEvents()
	return clip.ID, nil
}

// Remove deletes the clip if present. Removing an unknown id is a no-op so
// repeated removal requests from UI races stay idempotent.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	if _, ok := s.clips[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.clips, id)
	s.order = removeID(s.order, id)
	s.emit(Event{Kind: EventRemoved, ClipID: id})
	s.mu.Unlock()
	s.flushEvents()
}

// Update merges a partial set of fields into an existing clip.
func (s *Store) Update(id string, patch Patch) error {
	if patch.Duration != nil && *patch.Duration <= 0 {
		return wrapMutation(ErrInvalidMutation, "update", id, "duration must be positive")
	}

	s.mu.Lock()
	clip, ok := s.clips[id]
	if !ok {
		s.mu.Unlock()
		return wrapMutation(ErrInvalidMutation, "update", id, "unknown clip")
	}
	if patch.AssetID != nil {
		clip.AssetID = *patch.AssetID
	}
	if patch.StartTime != nil {
		clip.StartTime = clampStart(*patch.StartTime)
	}
	if patch.Duration != nil {
		clip.Duration = *patch.Duration
	}
	if patch.Track != nil {
		clip.Track = *patch.Track
	}
	if patch.Properties != nil {
		clip.Properties = cloneProperties(patch.Properties)
	}
	if patch.Animations != nil {
		clip.Animations = make([]Animation, len(patch.Animations))
		copy(clip.Animations, patch.Animations)
	}
	if patch.Keyframes != nil {
		clip.Keyframes = make([]Keyframe, 0, len(patch.Keyframes))
		for _, kf := range patch.Keyframes {
			cp := kf.clone()
			if cp.ID == "" {
				cp.ID = uuid.NewString()
			}
			clip.Keyframes = append(clip.Keyframes, cp)
		}
	}
	s.emit(Event{Kind: EventUpdated, ClipID: id, Clip: clip.Clone()})
	s.mu.Unlock()
	s.flushEvents()
	return nil
}

// Move relocates a clip. Negative start times clamp to zero. Overlap with
// other clips on the destination track is allowed; callers that care consult
// Overlaps afterwards.
func (s *Store) Move(id string, startTime float64, track int) error {
	s.mu.Lock()
	clip, ok := s.clips[id]
	if !ok {
		s.mu.Unlock()
		return wrapMutation(ErrInvalidMutation, "move", id, "unknown clip")
	}
	clip.StartTime = clampStart(startTime)
	clip.Track = track
	s.emit(Event{Kind: EventMoved, ClipID: id, Clip: clip.Clone()})
	s.mu.Unlock()
	s.flushEvents()
	return nil
}

// Resize sets a clip's duration. Non-positive durations are rejected and the
// clip is left unchanged.
func (s *Store) Resize(id string, duration float64) error {
	if duration <= 0 {
		return wrapMutation(ErrInvalidMutation, "resize", id, "duration must be positive")
	}
	s.mu.Lock()
	clip, ok := s.clips[id]
	if !ok {
		s.mu.Unlock()
		return wrapMutation(ErrInvalidMutation, "resize", id, "unknown clip")
	}
	clip.Duration = duration
	s.emit(Event{Kind: EventResized, ClipID: id, Clip: clip.Clone()})
	s.mu.Unlock()
	s.flushEvents()
	return nil
}

// Duplicate deep-copies an existing clip onto the same track, offset by
// DuplicateOffset, re-keying the clip and every keyframe. Returns false when
// the source id is unknown.
func (s *Store) Duplicate(id string) (string, bool) {
	s.mu.Lock()
	source, ok := s.clips[id]
	if !ok {
		s.mu.Unlock()
		return "", false
	}
	clip := source.Clone()
	clip.ID = uuid.NewString()
	clip.StartTime = source.StartTime + DuplicateOffset
	for i := range clip.Keyframes {
		clip.Keyframes[i].ID = uuid.NewString()
	}
	s.clips[clip.ID] = clip
	s.order = append(s.order, clip.ID)
	s.emit(Event{Kind: EventDuplicated, ClipID: clip.ID, Clip: clip.Clone()})
	s.mu.Unlock()
	s.flushEvents()
	return clip.ID, true
}

// Get returns a clone of the clip, so callers can read without aliasing the
// canonical record.
func (s *Store) Get(id string) (*Clip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clip, ok := s.clips[id]
	if !ok {
		return nil, false
	}
	return clip.Clone(), true
}

// Clips returns clones of every clip in insertion order.
func (s *Store) Clips() []*Clip {
	s.mu.Lock()
	defer s.mu.Unlock()
	clips := make([]*Clip, 0, len(s.order))
	for _, id := range s.order {
		clips = append(clips, s.clips[id].Clone())
	}
	return clips
}

// ClipsOnTrack returns clones of the clips on one track, ordered by start
// time.
func (s *Store) ClipsOnTrack(track int) []*Clip {
	s.mu.Lock()
	clips := make([]*Clip, 0, 8)
	for _, id := range s.order {
		if clip := s.clips[id]; clip.Track == track {
			clips = append(clips, clip.Clone())
		}
	}
	s.mu.Unlock()
	sort.SliceStable(clips, func(i, j int) bool {
		return clips[i].StartTime < clips[j].StartTime
	})
	return clips
}

// Len returns the clip count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clips)
}

// Overlaps reports every pair of clips on the track whose time ranges
// intersect. Touching endpoints do not count as overlap.
func (s *Store) Overlaps(track int) []Overlap {
	clips := s.ClipsOnTrack(track)
	var overlaps []Overlap
	for i := 0; i < len(clips); i++ {
		for j := i + 1; j < len(clips); j++ {
			if clips[j].StartTime >= clips[i].End() {
				break
			}
			overlaps = append(overlaps, Overlap{Track: track, A: clips[i].ID, B: clips[j].ID})
		}
	}
	return overlaps
}

// Batch runs fn with event delivery deferred: every mutation fn applies is
// visible in the store immediately, but subscribers hear nothing until fn
// returns. Nested batches coalesce into the outermost flush.
func (s *Store) Batch(fn func()) {
	s.mu.Lock()
	s.batchDepth++
	s.mu.Unlock()

	// Deferred so a panic in fn cannot leave delivery wedged.
	defer func() {
		s.mu.Lock()
		s.batchDepth--
		s.mu.Unlock()
		s.flushEvents()
	}()

	fn()
}

func clampStart(startTime float64) float64 {
	if startTime < 0 {
		return 0
	}
	return startTime
}

func removeID(order []string, id string) []string {
	for i, candidate := range order {
		if candidate == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
