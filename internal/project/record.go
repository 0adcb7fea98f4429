package project

import (
	"encoding/json"
	"fmt"

	"montage/internal/timeline"
	"montage/internal/tracks"
)

// ClipRecord is the persisted form of one clip.
type ClipRecord struct {
	ID         string               `json:"id"`
	AssetID    string               `json:"assetId,omitempty"`
	StartTime  float64              `json:"startTime"`
	Duration   float64              `json:"duration"`
	Track      int                  `json:"track"`
	Type       timeline.ClipType    `json:"type"`
	Properties json.RawMessage      `json:"properties,omitempty"`
	Animations []timeline.Animation `json:"animations"`
	Keyframes  []timeline.Keyframe  `json:"keyframes"`
}

// AssetRecord is the persisted form of one media asset.
type AssetRecord struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Type      timeline.AssetType `json:"type"`
	MimeType  string             `json:"mimeType,omitempty"`
	SizeBytes int64              `json:"sizeBytes,omitempty"`
	Duration  float64            `json:"duration,omitempty"`
	Width     int                `json:"width,omitempty"`
	Height    int                `json:"height,omitempty"`
	Thumbnail string             `json:"thumbnail,omitempty"`
}

// Document is the whole project file.
type Document struct {
	Name        string         `json:"name"`
	Assets      []AssetRecord  `json:"assets,omitempty"`
	TrackGroups []tracks.Group `json:"trackGroups,omitempty"`
	Clips       []ClipRecord   `json:"clips"`
}

// EncodeClip converts a clip to its persisted record.
func EncodeClip(clip *timeline.Clip) (ClipRecord, error) {
	record := ClipRecord{
		ID:         clip.ID,
		AssetID:    clip.AssetID,
		StartTime:  clip.StartTime,
		Duration:   clip.Duration,
		Track:      clip.Track,
		Type:       clip.Type,
		Animations: clip.Animations,
		Keyframes:  clip.Keyframes,
	}
	if record.Animations == nil {
		record.Animations = []timeline.Animation{}
	}
	if record.Keyframes == nil {
		record.Keyframes = []timeline.Keyframe{}
	}
	if clip.Properties != nil {
		raw, err := json.Marshal(clip.Properties)
		if err != nil {
			return ClipRecord{}, fmt.Errorf("marshal properties for clip %s: %w", clip.ID, err)
		}
		record.Properties = raw
	}
	return record, nil
}

// DecodeClip converts a persisted record back to a clip. The properties
// object decodes into the arm named by the record's type; unknown types
// retain the raw bytes rather than failing the whole load.
func DecodeClip(record ClipRecord) (*timeline.Clip, error) {
	clip := &timeline.Clip{
		ID:         record.ID,
		AssetID:    record.AssetID,
		StartTime:  record.StartTime,
		Duration:   record.Duration,
		Track:      record.Track,
		Type:       record.Type,
		Animations: record.Animations,
		Keyframes:  record.Keyframes,
	}
	if clip.Duration <= 0 {
		return nil, fmt.Errorf("clip %s: duration must be positive", record.ID)
	}
	if clip.StartTime < 0 {
		return nil, fmt.Errorf("clip %s: negative start time", record.ID)
	}
	if len(record.Properties) > 0 {
		props, err := DecodeProperties(record.Type, record.Properties)
		if err != nil {
			return nil, fmt.Errorf("clip %s: %w", record.ID, err)
		}
		clip.Properties = props
	}
	if clip.Properties == nil {
		clip.Properties = timeline.DefaultProperties(record.Type)
	}
	return clip, nil
}

// DecodeProperties decodes a raw properties object into the arm named by the
// clip type. Unknown types preserve the raw bytes instead of failing.
func DecodeProperties(clipType timeline.ClipType, raw json.RawMessage) (timeline.Properties, error) {
	switch clipType {
	case timeline.TypeCode:
		var props timeline.CodeProperties
		if err := json.Unmarshal(raw, &props); err != nil {
			return nil, fmt.Errorf("decode code properties: %w", err)
		}
		return props, nil
	case timeline.TypeVideo:
		var props timeline.VideoProperties
		if err := json.Unmarshal(raw, &props); err != nil {
			return nil, fmt.Errorf("decode video properties: %w", err)
		}
		return props, nil
	case timeline.TypeAudio:
		var props timeline.AudioProperties
		if err := json.Unmarshal(raw, &props); err != nil {
			return nil, fmt.Errorf("decode audio properties: %w", err)
		}
		return props, nil
	case timeline.TypeTitle:
		var props timeline.TitleProperties
		if err := json.Unmarshal(raw, &props); err != nil {
			return nil, fmt.Errorf("decode title properties: %w", err)
		}
		return props, nil
	case timeline.TypeVisualAsset:
		var props timeline.VisualAssetProperties
		if err := json.Unmarshal(raw, &props); err != nil {
			return nil, fmt.Errorf("decode visual-asset properties: %w", err)
		}
		return props, nil
	default:
		// Unknown variant from a newer build; keep the bytes so a re-save
		// loses nothing.
		return timeline.RawProperties{
			Type: clipType,
			Data: append(json.RawMessage(nil), raw...),
		}, nil
	}
}

// EncodeAsset converts an asset to its persisted record.
func EncodeAsset(asset *timeline.MediaAsset) AssetRecord {
	return AssetRecord{
		ID:        asset.ID,
		Name:      asset.Name,
		Type:      asset.Type,
		MimeType:  asset.MimeType,
		SizeBytes: asset.SizeBytes,
		Duration:  asset.Duration,
		Width:     asset.Width,
		Height:    asset.Height,
		Thumbnail: asset.Thumbnail,
	}
}

// DecodeAsset converts a persisted record back to an asset.
func DecodeAsset(record AssetRecord) *timeline.MediaAsset {
	return &timeline.MediaAsset{
		ID:        record.ID,
		Name:      record.Name,
		Type:      record.Type,
		MimeType:  record.MimeType,
		SizeBytes: record.SizeBytes,
		Duration:  record.Duration,
		Width:     record.Width,
		Height:    record.Height,
		Thumbnail: record.Thumbnail,
	}
}
