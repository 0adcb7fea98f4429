package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"montage/internal/timeline"
)

// Load reads and decodes a project file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", path, err)
	}
	return &doc, nil
}

// Exists reports whether a project file is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat project: %w", err)
}

// Save writes the document atomically: encode to a temp file in the target
// directory, then rename over the destination.
func Save(path string, doc *Document) error {
	if doc == nil {
		return errors.New("document is nil")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".montage-*.json")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write project: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp project: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace project: %w", err)
	}
	return nil
}

// FromStore snapshots a store into a document.
func FromStore(name string, store *timeline.Store, assets []*timeline.MediaAsset) (*Document, error) {
	doc := &Document{Name: name, Clips: []ClipRecord{}}
	for _, asset := range assets {
		doc.Assets = append(doc.Assets, EncodeAsset(asset))
	}
	for _, clip := range store.Clips() {
		record, err := EncodeClip(clip)
		if err != nil {
			return nil, err
		}
		doc.Clips = append(doc.Clips, record)
	}
	return doc, nil
}

// IntoStore loads the document's clips into a fresh store, preserving
// persisted clip ids through the snapshot path rather than the id-assigning
// mutation path.
func IntoStore(doc *Document) (*timeline.Store, error) {
	store := timeline.NewStore()
	clips := make([]*timeline.Clip, 0, len(doc.Clips))
	for _, record := range doc.Clips {
		clip, err := DecodeClip(record)
		if err != nil {
			return nil, err
		}
		clips = append(clips, clip)
	}
	store.Restore(timeline.SnapshotOf(clips))
	return store, nil
}
