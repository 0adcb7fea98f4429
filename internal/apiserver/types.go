package apiserver

import (
	"encoding/json"
	"net/http"

	"montage/internal/project"
	"montage/internal/timeline"
)

// StatusResponse summarizes the open session.
type StatusResponse struct {
	Project string `json:"project"`
	Clips   int    `json:"clips"`
	CanUndo bool   `json:"canUndo"`
	CanRedo bool   `json:"canRedo"`
}

// AddClipRequest carries the fields for a new clip. The properties object is
// decoded according to the clip type, exactly as in the project file.
type AddClipRequest struct {
	AssetID    string          `json:"assetId,omitempty"`
	StartTime  float64         `json:"startTime"`
	Duration   float64         `json:"duration"`
	Track      int             `json:"track"`
	Type       string          `json:"type"`
	Properties json.RawMessage `json:"properties,omitempty"`
}

// AddClipResponse returns the assigned id.
type AddClipResponse struct {
	ID string `json:"id"`
}

// PatchRequest is a partial clip update. Absent fields are left untouched;
// the properties object, when present, decodes against the clip's type.
type PatchRequest struct {
	AssetID    *string              `json:"assetId"`
	StartTime  *float64             `json:"startTime"`
	Duration   *float64             `json:"duration"`
	Track      *int                 `json:"track"`
	Properties json.RawMessage      `json:"properties"`
	Animations []timeline.Animation `json:"animations"`
	Keyframes  []timeline.Keyframe  `json:"keyframes"`
}

// MoveRequest relocates a clip.
type MoveRequest struct {
	StartTime float64 `json:"startTime"`
	Track     int     `json:"track"`
}

// ResizeRequest changes a clip's duration.
type ResizeRequest struct {
	Duration float64 `json:"duration"`
}

// HistoryResponse reports whether an undo or redo applied.
type HistoryResponse struct {
	Applied bool `json:"applied"`
}

// WindowResponse lists the clips a viewport must materialize.
type WindowResponse struct {
	Track int          `json:"track"`
	Clips []WindowClip `json:"clips"`
}

// WindowClip pairs a persisted clip record with its computed geometry.
type WindowClip struct {
	Clip  project.ClipRecord `json:"clip"`
	Left  float64            `json:"left"`
	Width float64            `json:"width"`
}

// ErrorResponse carries a machine-readable failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
