package apiserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"montage/internal/apiserver"
	"montage/internal/logging"
	"montage/internal/project"
	"montage/internal/session"
	"montage/internal/testsupport"
	"montage/internal/timeline"
)

func newTestServer(t *testing.T) (*session.Session, *httptest.Server) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	sess, err := session.Open(context.Background(), cfg, "api", session.Options{Logger: logging.NewNop()})
	if err != nil {
		t.Fatalf("session.Open: %v", err)
	}
	server := httptest.NewServer(apiserver.NewRouter(sess))
	t.Cleanup(func() {
		server.Close()
		sess.Close()
	})
	return sess, server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var value T
	if err := json.NewDecoder(resp.Body).Decode(&value); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return value
}

func TestAddAndGetClip(t *testing.T) {
	_, server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/clips", apiserver.AddClipRequest{
		StartTime:  1,
		Duration:   5,
		Track:      1,
		Type:       "video",
		Properties: json.RawMessage(`{"volume":0.8}`),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	created := decodeBody[apiserver.AddClipResponse](t, resp)
	if created.ID == "" {
		t.Fatal("expected an assigned clip id")
	}

	getResp, err := http.Get(server.URL + "/api/clips/" + created.ID)
	if err != nil {
		t.Fatalf("GET clip: %v", err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", getResp.StatusCode)
	}
	record := decodeBody[project.ClipRecord](t, getResp)
	if record.Type != timeline.TypeVideo || record.Duration != 5 {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestAddClipRejectsInvalidDuration(t *testing.T) {
	_, server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/clips", apiserver.AddClipRequest{
		Duration: 0,
		Track:    0,
		Type:     "video",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero duration, got %d", resp.StatusCode)
	}
}

func TestGetUnknownClipReturns404(t *testing.T) {
	_, server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/clips/nope")
	if err != nil {
		t.Fatalf("GET clip: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestMoveResizeAndUndo(t *testing.T) {
	sess, server := newTestServer(t)
	id, err := sess.AddClip(timeline.ClipInput{Type: timeline.TypeVideo, Duration: 5, Track: 1, StartTime: 2})
	if err != nil {
		t.Fatalf("AddClip: %v", err)
	}

	resp := postJSON(t, server.URL+"/api/clips/"+id+"/move", apiserver.MoveRequest{StartTime: 10, Track: 2})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 for move, got %d", resp.StatusCode)
	}

	resp = postJSON(t, server.URL+"/api/clips/"+id+"/resize", apiserver.ResizeRequest{Duration: 8})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 for resize, got %d", resp.StatusCode)
	}

	clip, _ := sess.Store().Get(id)
	if clip.StartTime != 10 || clip.Track != 2 || clip.Duration != 8 {
		t.Fatalf("unexpected clip after mutations: %+v", clip)
	}

	resp = postJSON(t, server.URL+"/api/undo", struct{}{})
	undo := decodeBody[apiserver.HistoryResponse](t, resp)
	if !undo.Applied {
		t.Fatal("expected undo to apply")
	}
	clip, _ = sess.Store().Get(id)
	if clip.Duration != 5 {
		t.Fatalf("expected duration restored to 5, got %v", clip.Duration)
	}

	resp = postJSON(t, server.URL+"/api/redo", struct{}{})
	redo := decodeBody[apiserver.HistoryResponse](t, resp)
	if !redo.Applied {
		t.Fatal("expected redo to apply")
	}
}

func TestMoveRejectsUnknownTrack(t *testing.T) {
	sess, server := newTestServer(t)
	id, err := sess.AddClip(timeline.ClipInput{Type: timeline.TypeVideo, Duration: 5, Track: 1})
	if err != nil {
		t.Fatalf("AddClip: %v", err)
	}

	resp := postJSON(t, server.URL+"/api/clips/"+id+"/move", apiserver.MoveRequest{StartTime: 0, Track: 99})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown track, got %d", resp.StatusCode)
	}
}

func TestPatchUpdatesProperties(t *testing.T) {
	sess, server := newTestServer(t)
	id, err := sess.AddClip(timeline.ClipInput{Type: timeline.TypeCode, Duration: 5, Track: 0})
	if err != nil {
		t.Fatalf("AddClip: %v", err)
	}

	body := bytes.NewReader([]byte(`{"properties":{"language":"go","text":"package main"}}`))
	req, err := http.NewRequest(http.MethodPatch, server.URL+"/api/clips/"+id, body)
	if err != nil {
		t.Fatalf("build PATCH: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PATCH clip: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	clip, _ := sess.Store().Get(id)
	props, ok := clip.Properties.(timeline.CodeProperties)
	if !ok {
		t.Fatalf("expected code properties, got %T", clip.Properties)
	}
	if props.Language != "go" {
		t.Fatalf("expected language updated, got %q", props.Language)
	}
}

func TestDeleteAndDuplicate(t *testing.T) {
	sess, server := newTestServer(t)
	id, err := sess.AddClip(timeline.ClipInput{Type: timeline.TypeVideo, Duration: 5, Track: 1})
	if err != nil {
		t.Fatalf("AddClip: %v", err)
	}

	resp := postJSON(t, server.URL+"/api/clips/"+id+"/duplicate", struct{}{})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for duplicate, got %d", resp.StatusCode)
	}
	dup := decodeBody[apiserver.AddClipResponse](t, resp)
	if dup.ID == id || dup.ID == "" {
		t.Fatalf("expected fresh id, got %q", dup.ID)
	}

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/clips/"+id, nil)
	if err != nil {
		t.Fatalf("build DELETE: %v", err)
	}
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE clip: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", delResp.StatusCode)
	}
	if _, ok := sess.Store().Get(id); ok {
		t.Fatal("expected clip removed")
	}
	if sess.Store().Len() != 1 {
		t.Fatalf("expected only the duplicate to remain, got %d clips", sess.Store().Len())
	}
}

func TestWindowQuery(t *testing.T) {
	sess, server := newTestServer(t)
	testsupport.SeedClips(t, sess.Store(), 1, 12, 10)

	// pps=10, zoom=1: each clip is 100px wide. A 300px viewport at scroll 0
	// sees the first three plus overscan.
	url := fmt.Sprintf("%s/api/tracks/1/window?scrollLeft=0&containerWidth=300&pps=10&zoom=1", server.URL)
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET window: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	window := decodeBody[apiserver.WindowResponse](t, resp)
	if len(window.Clips) == 0 || len(window.Clips) >= 12 {
		t.Fatalf("expected a strict subset of clips, got %d", len(window.Clips))
	}
	if window.Clips[0].Width != 100 {
		t.Fatalf("expected 100px clip width, got %v", window.Clips[0].Width)
	}
}

func TestStatusReportsHistory(t *testing.T) {
	sess, server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	status := decodeBody[apiserver.StatusResponse](t, resp)
	if status.Project != "api" || status.Clips != 0 || status.CanUndo {
		t.Fatalf("unexpected initial status: %+v", status)
	}

	if _, err := sess.AddClip(timeline.ClipInput{Type: timeline.TypeVideo, Duration: 5, Track: 1}); err != nil {
		t.Fatalf("AddClip: %v", err)
	}
	resp, err = http.Get(server.URL + "/api/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	status = decodeBody[apiserver.StatusResponse](t, resp)
	if status.Clips != 1 || !status.CanUndo {
		t.Fatalf("unexpected status after add: %+v", status)
	}
}
