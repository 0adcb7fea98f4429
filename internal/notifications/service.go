package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"montage/internal/config"
)

const userAgent = "Montage/0.1.0"

// Service defines the notification surface exposed to editing components.
type Service interface {
	NotifyProjectOpened(ctx context.Context, name string, clipCount int) error
	NotifyProjectSaved(ctx context.Context, name string, clipCount int) error
	NotifyOverlap(ctx context.Context, projectName string, track, pairs int) error
	NotifyError(ctx context.Context, err error, contextLabel string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyProjectOpened(ctx context.Context, name string, clipCount int) error {
	data := payload{
		title:   "Montage - Project Opened",
		message: fmt.Sprintf("Opened %s (%d clips)", strings.TrimSpace(name), clipCount),
		tags:    []string{"montage", "project", "opened"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyProjectSaved(ctx context.Context, name string, clipCount int) error {
	data := payload{
		title:   "Montage - Project Saved",
		message: fmt.Sprintf("Saved %s (%d clips)", strings.TrimSpace(name), clipCount),
		tags:    []string{"montage", "project", "saved"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyOverlap(ctx context.Context, projectName string, track, pairs int) error {
	data := payload{
		title:   "Montage - Overlapping Clips",
		message: fmt.Sprintf("%s: %d overlapping pair(s) on track %d", strings.TrimSpace(projectName), pairs, track),
		tags:    []string{"montage", "overlap"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	var builder strings.Builder
	builder.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" with ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}

	data := payload{
		title:    "Montage - Error",
		message:  builder.String(),
		tags:     []string{"montage", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Montage - Test",
		message:  "Notification system test",
		tags:     []string{"montage", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyProjectOpened(context.Context, string, int) error { return nil }
func (noopService) NotifyProjectSaved(context.Context, string, int) error  { return nil }
func (noopService) NotifyOverlap(context.Context, string, int, int) error  { return nil }
func (noopService) NotifyError(context.Context, error, string) error       { return nil }
func (noopService) TestNotification(context.Context) error                 { return nil }
