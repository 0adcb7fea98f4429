package tracks

import (
	"fmt"
	"sort"

	"montage/internal/config"
)

// Track is one fixed timeline lane.
type Track struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Color string `json:"color,omitempty"`
}

// Layout is the fixed, ordered set of lanes for a project.
type Layout struct {
	tracks  []Track
	byIndex map[int]Track
}

// NewLayout builds a layout from config lanes, ordered by index.
func NewLayout(cfg config.Tracks) (*Layout, error) {
	layout := &Layout{byIndex: make(map[int]Track, len(cfg.Lanes))}
	for _, lane := range cfg.Lanes {
		if _, ok := layout.byIndex[lane.Index]; ok {
			return nil, fmt.Errorf("duplicate track index %d", lane.Index)
		}
		track := Track{Index: lane.Index, Name: lane.Name, Kind: lane.Kind, Color: lane.Color}
		layout.byIndex[lane.Index] = track
		layout.tracks = append(layout.tracks, track)
	}
	sort.Slice(layout.tracks, func(i, j int) bool {
		return layout.tracks[i].Index < layout.tracks[j].Index
	})
	return layout, nil
}

// DefaultLayout returns the repository default lanes.
func DefaultLayout() *Layout {
	layout, err := NewLayout(config.Default().Tracks)
	if err != nil {
		// Defaults are unique by construction.
		panic(err)
	}
	return layout
}

// Valid reports whether index names a lane in the layout.
func (l *Layout) Valid(index int) bool {
	_, ok := l.byIndex[index]
	return ok
}

// Get returns the lane at index.
func (l *Layout) Get(index int) (Track, bool) {
	track, ok := l.byIndex[index]
	return track, ok
}

// Tracks returns the lanes ordered by index.
func (l *Layout) Tracks() []Track {
	out := make([]Track, len(l.tracks))
	copy(out, l.tracks)
	return out
}

// Group is a named, purely presentational grouping of lanes.
type Group struct {
	Name    string `json:"name"`
	Indices []int  `json:"indices"`
	Color   string `json:"color,omitempty"`
	Visible bool   `json:"visible"`
	Locked  bool   `json:"locked"`
	Solo    bool   `json:"solo"`
}

// NewGroup builds a visible, unlocked group over the given lanes.
func NewGroup(name string, indices ...int) Group {
	return Group{Name: name, Indices: indices, Visible: true}
}

// Contains reports whether the group covers a track index.
func (g Group) Contains(index int) bool {
	for _, candidate := range g.Indices {
		if candidate == index {
			return true
		}
	}
	return false
}
