package notifications_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"montage/internal/config"
	"montage/internal/notifications"
)

func TestNewServiceReturnsNoopWhenTopicMissing(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.NtfyTopic = ""
	svc := notifications.NewService(&cfg)
	if err := svc.NotifyProjectOpened(context.Background(), "lesson-1", 4); err != nil {
		t.Fatalf("expected noop notifier to return nil, got %v", err)
	}
}

func TestNtfyServiceFormatsPayloads(t *testing.T) {
	type received struct {
		title    string
		message  string
		tags     string
		priority string
	}
	var got received
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = received{
			title:    r.Header.Get("Title"),
			message:  string(body),
			tags:     r.Header.Get("Tags"),
			priority: r.Header.Get("Priority"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := notifications.NewService(&cfg)
	ctx := context.Background()

	if err := svc.NotifyOverlap(ctx, "lesson-1", 0, 2); err != nil {
		t.Fatalf("NotifyOverlap failed: %v", err)
	}
	if got.title != "Montage - Overlapping Clips" {
		t.Fatalf("unexpected title %q", got.title)
	}
	if got.message != "lesson-1: 2 overlapping pair(s) on track 0" {
		t.Fatalf("unexpected message %q", got.message)
	}
	if got.tags != "montage,overlap" {
		t.Fatalf("unexpected tags %q", got.tags)
	}

	if err := svc.NotifyError(ctx, errors.New("boom"), "saving"); err != nil {
		t.Fatalf("NotifyError failed: %v", err)
	}
	if got.priority != "high" {
		t.Fatalf("expected high priority for errors, got %q", got.priority)
	}
	if got.message != "Error with saving: boom" {
		t.Fatalf("unexpected message %q", got.message)
	}
}

func TestNtfyServiceSurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := notifications.NewService(&cfg)

	if err := svc.TestNotification(context.Background()); err == nil {
		t.Fatal("expected HTTP failure to surface")
	}
}
