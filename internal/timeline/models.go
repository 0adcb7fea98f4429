package timeline

// ClipType identifies the renderable variant of a clip.
type ClipType string

const (
	TypeCode        ClipType = "code"
	TypeVideo       ClipType = "video"
	TypeAudio       ClipType = "audio"
	TypeTitle       ClipType = "title"
	TypeVisualAsset ClipType = "visual-asset"
)

var allClipTypes = []ClipType{TypeCode, TypeVideo, TypeAudio, TypeTitle, TypeVisualAsset}

// KnownClipType reports whether value names one of the fixed clip variants.
func KnownClipType(value ClipType) bool {
	for _, t := range allClipTypes {
		if t == value {
			return true
		}
	}
	return false
}

// Keyframe is a timed parameter sample attached to a clip. Time is relative
// to the clip's own start, in seconds.
type Keyframe struct {
	ID     string             `json:"id"`
	Time   float64            `json:"time"`
	Values map[string]float64 `json:"values"`
}

// Animation describes one entry in a clip's ordered animation sequence.
type Animation struct {
	Name     string  `json:"name"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Easing   string  `json:"easing,omitempty"`
}

// Clip is the atomic placed unit on the timeline: a time-bounded reference to
// a media asset on a fixed track. AssetID is a weak reference; the clip never
// owns the asset and the id may dangle after an asset is deleted.
type Clip struct {
	ID         string
	AssetID    string
	StartTime  float64
	Duration   float64
	Track      int
	Type       ClipType
	Properties Properties
	Animations []Animation
	Keyframes  []Keyframe
}

// Clone returns a deep copy of the clip. Ids are preserved; callers that need
// fresh identities (duplication) re-key the copy afterwards.
func (c *Clip) Clone() *Clip {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Properties = cloneProperties(c.Properties)
	if c.Animations != nil {
		cp.Animations = make([]Animation, len(c.Animations))
		copy(cp.Animations, c.Animations)
	}
	if c.Keyframes != nil {
		cp.Keyframes = make([]Keyframe, len(c.Keyframes))
		for i, kf := range c.Keyframes {
			cp.Keyframes[i] = kf.clone()
		}
	}
	return &cp
}

// End returns the exclusive end time of the clip in seconds.
func (c *Clip) End() float64 {
	return c.StartTime + c.Duration
}

func (k Keyframe) clone() Keyframe {
	cp := k
	if k.Values != nil {
		cp.Values = make(map[string]float64, len(k.Values))
		for key, value := range k.Values {
			cp.Values[key] = value
		}
	}
	return cp
}

// AssetType categorizes a media asset in the project library.
type AssetType string

const (
	AssetVideo AssetType = "video"
	AssetImage AssetType = "image"
	AssetAudio AssetType = "audio"
	AssetCode  AssetType = "code"
)

// MediaAsset is a named, typed resource owned by the project and referenced
// by zero or more clips. Duration and dimensions are zero when unknown.
type MediaAsset struct {
	ID        string
	Name      string
	Type      AssetType
	MimeType  string
	SizeBytes int64
	Duration  float64
	Width     int
	Height    int
	Thumbnail string
}

// IsVideo reports whether the asset carries moving picture content.
func (a *MediaAsset) IsVideo() bool {
	return a != nil && a.Type == AssetVideo
}
