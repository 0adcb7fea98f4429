package project_test

import (
	"path/filepath"
	"testing"

	"montage/internal/project"
	"montage/internal/timeline"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := timeline.NewStore()
	codeID, err := store.Add(timeline.ClipInput{
		Type:      timeline.TypeCode,
		StartTime: 0,
		Duration:  5,
		Track:     0,
		Properties: timeline.CodeProperties{
			Language:      "go",
			Text:          "func main() {}",
			AnimateTyping: true,
		},
		Keyframes: []timeline.Keyframe{{Time: 1, Values: map[string]float64{"scale": 1.2}}},
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := store.Add(timeline.ClipInput{
		Type:       timeline.TypeAudio,
		StartTime:  2,
		Duration:   8,
		Track:      2,
		Properties: timeline.AudioProperties{Volume: 0.7, Duck: true, SyncPoints: []float64{1, 2}},
	}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	asset := &timeline.MediaAsset{ID: "a1", Name: "talk.mp4", Type: timeline.AssetVideo, Width: 1280, Height: 720}
	doc, err := project.FromStore("lesson-1", store, []*timeline.MediaAsset{asset})
	if err != nil {
		t.Fatalf("FromStore failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "lesson-1.json")
	if err := project.Save(path, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "lesson-1" || len(loaded.Clips) != 2 || len(loaded.Assets) != 1 {
		t.Fatalf("unexpected document: %#v", loaded)
	}

	restored, err := project.IntoStore(loaded)
	if err != nil {
		t.Fatalf("IntoStore failed: %v", err)
	}
	if !restored.Snapshot().Equal(store.Snapshot()) {
		t.Fatal("expected round-tripped store to equal the original")
	}

	clip, ok := restored.Get(codeID)
	if !ok {
		t.Fatalf("expected clip %s preserved", codeID)
	}
	props, ok := clip.Properties.(timeline.CodeProperties)
	if !ok || props.Language != "go" || !props.AnimateTyping {
		t.Fatalf("unexpected properties: %#v", clip.Properties)
	}
}

func TestDecodeClipRejectsInvalidRecords(t *testing.T) {
	cases := []struct {
		name   string
		record project.ClipRecord
	}{
		{"zero duration", project.ClipRecord{ID: "x", Type: timeline.TypeVideo, Duration: 0}},
		{"negative start", project.ClipRecord{ID: "x", Type: timeline.TypeVideo, Duration: 1, StartTime: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := project.DecodeClip(tc.record); err == nil {
				t.Fatal("expected record to be rejected")
			}
		})
	}
}

func TestDecodeClipUnknownTypeRoundTripsProperties(t *testing.T) {
	raw := []byte(`{"anything":"goes"}`)
	record := project.ClipRecord{
		ID:         "x",
		Type:       timeline.ClipType("hologram"),
		Duration:   2,
		Properties: raw,
	}
	clip, err := project.DecodeClip(record)
	if err != nil {
		t.Fatalf("expected unknown type to load, got %v", err)
	}
	props, ok := clip.Properties.(timeline.RawProperties)
	if !ok {
		t.Fatalf("expected raw properties for unknown type, got %#v", clip.Properties)
	}
	if props.Kind() != timeline.ClipType("hologram") {
		t.Fatalf("expected kind preserved, got %s", props.Kind())
	}

	// A re-save emits the exact bytes the newer build wrote.
	reencoded, err := project.EncodeClip(clip)
	if err != nil {
		t.Fatalf("EncodeClip failed: %v", err)
	}
	if string(reencoded.Properties) != string(raw) {
		t.Fatalf("expected properties preserved, got %s", reencoded.Properties)
	}
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	ok, err := project.Exists(path)
	if err != nil || ok {
		t.Fatalf("expected missing file, got ok=%v err=%v", ok, err)
	}
	if err := project.Save(path, &project.Document{Name: "p", Clips: []project.ClipRecord{}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	ok, err = project.Exists(path)
	if err != nil || !ok {
		t.Fatalf("expected file present, got ok=%v err=%v", ok, err)
	}
}
