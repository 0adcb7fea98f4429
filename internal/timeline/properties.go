package timeline

import "encoding/json"

// Properties is the variant-specific bag of rendering parameters carried by a
// clip. Each clip type has its own typed arm plus a small Extra map for
// experimental fields, so consumers match exhaustively on Kind instead of
// probing an untyped map.
type Properties interface {
	Kind() ClipType
	clone() Properties
}

// CodeProperties renders a code snippet clip.
type CodeProperties struct {
	Language      string            `json:"language"`
	Text          string            `json:"text"`
	Theme         string            `json:"theme,omitempty"`
	AnimateTyping bool              `json:"animateTyping,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"`
}

func (CodeProperties) Kind() ClipType { return TypeCode }

// VideoProperties renders a full-frame video clip.
type VideoProperties struct {
	Volume float64           `json:"volume"`
	Muted  bool              `json:"muted,omitempty"`
	Width  int               `json:"width,omitempty"`
	Height int               `json:"height,omitempty"`
	Extra  map[string]string `json:"extra,omitempty"`
}

func (VideoProperties) Kind() ClipType { return TypeVideo }

// AudioProperties renders a narration or music clip.
type AudioProperties struct {
	Volume     float64           `json:"volume"`
	Duck       bool              `json:"duck,omitempty"`
	SyncPoints []float64         `json:"syncPoints,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}

func (AudioProperties) Kind() ClipType { return TypeAudio }

// TitleProperties renders a title card.
type TitleProperties struct {
	Text     string            `json:"text"`
	FontSize int               `json:"fontSize,omitempty"`
	Align    string            `json:"align,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func (TitleProperties) Kind() ClipType { return TypeTitle }

// VisualAssetProperties renders an overlay graphic, including the talking-head
// corner overlay.
type VisualAssetProperties struct {
	Corner      string            `json:"corner,omitempty"`
	Shape       string            `json:"shape,omitempty"`
	TalkingHead bool              `json:"talkingHead,omitempty"`
	Mirrored    bool              `json:"mirrored,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

func (VisualAssetProperties) Kind() ClipType { return TypeVisualAsset }

// RawProperties carries the untouched properties object of a clip type this
// build does not recognize, so project files written by a newer build
// round-trip losslessly.
type RawProperties struct {
	Type ClipType
	Data json.RawMessage
}

func (p RawProperties) Kind() ClipType { return p.Type }

// MarshalJSON emits the preserved bytes unchanged.
func (p RawProperties) MarshalJSON() ([]byte, error) {
	if len(p.Data) == 0 {
		return []byte("null"), nil
	}
	return p.Data, nil
}

func (p CodeProperties) clone() Properties {
	p.Extra = cloneExtra(p.Extra)
	return p
}

func (p VideoProperties) clone() Properties {
	p.Extra = cloneExtra(p.Extra)
	return p
}

func (p AudioProperties) clone() Properties {
	if p.SyncPoints != nil {
		points := make([]float64, len(p.SyncPoints))
		copy(points, p.SyncPoints)
		p.SyncPoints = points
	}
	p.Extra = cloneExtra(p.Extra)
	return p
}

func (p TitleProperties) clone() Properties {
	p.Extra = cloneExtra(p.Extra)
	return p
}

func (p VisualAssetProperties) clone() Properties {
	p.Extra = cloneExtra(p.Extra)
	return p
}

func (p RawProperties) clone() Properties {
	if p.Data != nil {
		p.Data = append(json.RawMessage(nil), p.Data...)
	}
	return p
}

func cloneProperties(p Properties) Properties {
	if p == nil {
		return nil
	}
	return p.clone()
}

func cloneExtra(extra map[string]string) map[string]string {
	if extra == nil {
		return nil
	}
	cp := make(map[string]string, len(extra))
	for key, value := range extra {
		cp[key] = value
	}
	return cp
}

// DefaultProperties returns the zero-value property arm for a clip type, or
// nil for an unknown type.
func DefaultProperties(clipType ClipType) Properties {
	switch clipType {
	case TypeCode:
		return CodeProperties{}
	case TypeVideo:
		return VideoProperties{Volume: 1.0}
	case TypeAudio:
		return AudioProperties{Volume: 1.0}
	case TypeTitle:
		return TitleProperties{}
	case TypeVisualAsset:
		return VisualAssetProperties{}
	default:
		return nil
	}
}
