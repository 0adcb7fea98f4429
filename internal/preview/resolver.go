package preview

import (
	"strings"
	"unicode/utf8"

	"montage/internal/timeline"
)

// Kind tags a descriptor variant.
type Kind string

const (
	KindCode      Kind = "code"
	KindVisual    Kind = "visual"
	KindNarration Kind = "narration"
	KindYou       Kind = "you"
	KindGeneric   Kind = "generic"
)

// maxTextPreview bounds the code text carried in a descriptor.
const maxTextPreview = 120

// Descriptor is a cheap, serializable description of what a clip should
// render as. Exactly the fields for its Kind are populated.
type Descriptor struct {
	Kind Kind `json:"kind"`

	// code
	Language    string `json:"language,omitempty"`
	TextPreview string `json:"textPreview,omitempty"`
	Animated    bool   `json:"animated,omitempty"`

	// visual
	IsVideo bool `json:"isVideo,omitempty"`
	Width   int  `json:"width,omitempty"`
	Height  int  `json:"height,omitempty"`

	// narration
	Volume     float64 `json:"volume,omitempty"`
	Duck       bool    `json:"duck,omitempty"`
	SyncPoints int     `json:"syncPoints,omitempty"`

	// you
	TalkingHead bool   `json:"talkingHead,omitempty"`
	Corner      string `json:"corner,omitempty"`

	// generic fallback
	Name     string            `json:"name,omitempty"`
	ItemType timeline.ClipType `json:"itemType,omitempty"`
}

// AssetResolver looks up a media asset by id. A nil result means the
// reference dangles; Resolve degrades instead of failing.
type AssetResolver interface {
	Resolve(assetID string) *timeline.MediaAsset
}

// Resolve maps a clip and its (possibly nil) asset to a render descriptor.
func Resolve(clip *timeline.Clip, asset *timeline.MediaAsset) Descriptor {
	if clip == nil {
		return Descriptor{Kind: KindGeneric}
	}
	switch props := clip.Properties.(type) {
	case timeline.CodeProperties:
		return Descriptor{
			Kind:        KindCode,
			Language:    props.Language,
			TextPreview: truncate(props.Text, maxTextPreview),
			Animated:    props.AnimateTyping,
		}
	case timeline.VideoProperties:
		if dangling(clip, asset) {
			return generic(clip, nil)
		}
		desc := Descriptor{Kind: KindVisual, IsVideo: true, Width: props.Width, Height: props.Height}
		if asset != nil {
			desc.IsVideo = asset.IsVideo()
			if desc.Width == 0 {
				desc.Width = asset.Width
			}
			if desc.Height == 0 {
				desc.Height = asset.Height
			}
		}
		return desc
	case timeline.AudioProperties:
		return Descriptor{
			Kind:       KindNarration,
			Volume:     props.Volume,
			Duck:       props.Duck,
			SyncPoints: len(props.SyncPoints),
		}
	case timeline.VisualAssetProperties:
		if props.TalkingHead {
			return Descriptor{Kind: KindYou, TalkingHead: true, Corner: props.Corner}
		}
		if dangling(clip, asset) {
			return generic(clip, nil)
		}
		desc := Descriptor{Kind: KindVisual}
		if asset != nil {
			desc.IsVideo = asset.IsVideo()
			desc.Width = asset.Width
			desc.Height = asset.Height
		}
		return desc
	default:
		return generic(clip, asset)
	}
}

// dangling reports a clip whose asset reference no longer resolves. The
// asset-dependent arms degrade to the generic descriptor in that case.
func dangling(clip *timeline.Clip, asset *timeline.MediaAsset) bool {
	return clip.AssetID != "" && asset == nil
}

func generic(clip *timeline.Clip, asset *timeline.MediaAsset) Descriptor {
	desc := Descriptor{Kind: KindGeneric, ItemType: clip.Type}
	if asset != nil {
		desc.Name = asset.Name
	}
	if desc.Name == "" {
		if props, ok := clip.Properties.(timeline.TitleProperties); ok {
			desc.Name = strings.TrimSpace(props.Text)
		}
	}
	return desc
}

func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "…"
}
