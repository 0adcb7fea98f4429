package apiserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"montage/internal/project"
	"montage/internal/session"
	"montage/internal/timeline"
	"montage/internal/viewport"
)

// NewRouter builds the HTTP surface over one open session.
func NewRouter(sess *session.Session) *chi.Mux {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", statusHandler(sess))

		r.Get("/clips", listClipsHandler(sess))
		r.Post("/clips", addClipHandler(sess))
		r.Get("/clips/{id}", getClipHandler(sess))
		r.Patch("/clips/{id}", updateClipHandler(sess))
		r.Delete("/clips/{id}", removeClipHandler(sess))
		r.Post("/clips/{id}/move", moveClipHandler(sess))
		r.Post("/clips/{id}/resize", resizeClipHandler(sess))
		r.Post("/clips/{id}/duplicate", duplicateClipHandler(sess))
		r.Get("/clips/{id}/descriptor", descriptorHandler(sess))

		r.Post("/undo", undoHandler(sess))
		r.Post("/redo", redoHandler(sess))

		r.Get("/tracks/{track}/window", windowHandler(sess))
	})

	return r
}

func statusHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, StatusResponse{
			Project: sess.Name(),
			Clips:   sess.Store().Len(),
			CanUndo: sess.History().CanUndo(),
			CanRedo: sess.History().CanRedo(),
		})
	}
}

func listClipsHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clips := sess.Store().Clips()
		records := make([]project.ClipRecord, 0, len(clips))
		for _, clip := range clips {
			record, err := project.EncodeClip(clip)
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			records = append(records, record)
		}
		writeJSON(w, http.StatusOK, records)
	}
}

func addClipHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddClipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		clipType := timeline.ClipType(req.Type)
		input := timeline.ClipInput{
			AssetID:   req.AssetID,
			StartTime: req.StartTime,
			Duration:  req.Duration,
			Track:     req.Track,
			Type:      clipType,
		}
		if len(req.Properties) > 0 {
			props, err := project.DecodeProperties(clipType, req.Properties)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			input.Properties = props
		}
		id, err := sess.AddClip(input)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, AddClipResponse{ID: id})
	}
}

func getClipHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clip, ok := sess.Store().Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "clip not found")
			return
		}
		record, err := project.EncodeClip(clip)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func updateClipHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		clip, ok := sess.Store().Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "clip not found")
			return
		}
		var req PatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		patch := timeline.Patch{
			AssetID:    req.AssetID,
			StartTime:  req.StartTime,
			Duration:   req.Duration,
			Track:      req.Track,
			Animations: req.Animations,
			Keyframes:  req.Keyframes,
		}
		if len(req.Properties) > 0 {
			props, err := project.DecodeProperties(clip.Type, req.Properties)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			patch.Properties = props
		}
		if err := sess.UpdateClip(id, patch); err != nil {
			writeMutationError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func removeClipHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := sess.Store().Get(id); !ok {
			writeError(w, http.StatusNotFound, "clip not found")
			return
		}
		sess.History().Remove(id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func moveClipHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := sess.Store().Get(id); !ok {
			writeError(w, http.StatusNotFound, "clip not found")
			return
		}
		var req MoveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := sess.MoveClip(r.Context(), id, req.StartTime, req.Track); err != nil {
			writeMutationError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func resizeClipHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := sess.Store().Get(id); !ok {
			writeError(w, http.StatusNotFound, "clip not found")
			return
		}
		var req ResizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := sess.History().Resize(id, req.Duration); err != nil {
			writeMutationError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func duplicateClipHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		copyID, ok := sess.History().Duplicate(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "clip not found")
			return
		}
		writeJSON(w, http.StatusCreated, AddClipResponse{ID: copyID})
	}
}

func descriptorHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		descriptor, ok := sess.Describe(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "clip not found")
			return
		}
		writeJSON(w, http.StatusOK, descriptor)
	}
}

func undoHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HistoryResponse{Applied: sess.History().Undo()})
	}
}

func redoHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HistoryResponse{Applied: sess.History().Redo()})
	}
}

func windowHandler(sess *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		track, err := strconv.Atoi(chi.URLParam(r, "track"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid track")
			return
		}
		view, err := parseView(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		visible := sess.VisibleClips(track, view)
		resp := WindowResponse{Track: track, Clips: make([]WindowClip, 0, len(visible))}
		for _, v := range visible {
			record, encodeErr := project.EncodeClip(v.Clip)
			if encodeErr != nil {
				writeError(w, http.StatusInternalServerError, encodeErr.Error())
				return
			}
			resp.Clips = append(resp.Clips, WindowClip{Clip: record, Left: v.Left, Width: v.Width})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// parseView reads viewport geometry from query parameters. scrollLeft and
// containerWidth default to zero; pps and zoom default to 1.
func parseView(r *http.Request) (viewport.View, error) {
	view := viewport.View{PixelsPerSecond: 1, Zoom: 1}
	read := func(name string, dest *float64) error {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return nil
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.New("invalid " + name)
		}
		*dest = value
		return nil
	}
	if err := read("scrollLeft", &view.ScrollLeft); err != nil {
		return viewport.View{}, err
	}
	if err := read("containerWidth", &view.ContainerWidth); err != nil {
		return viewport.View{}, err
	}
	if err := read("pps", &view.PixelsPerSecond); err != nil {
		return viewport.View{}, err
	}
	if err := read("zoom", &view.Zoom); err != nil {
		return viewport.View{}, err
	}
	return view, nil
}

// writeMutationError maps a rejected mutation to 400 and anything else to
// 500. Handlers resolve missing clips to 404 before mutating.
func writeMutationError(w http.ResponseWriter, err error) {
	if errors.Is(err, timeline.ErrInvalidMutation) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
