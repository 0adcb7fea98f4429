package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"montage/internal/batch"
	"montage/internal/config"
	"montage/internal/coords"
	"montage/internal/history"
	"montage/internal/logging"
	"montage/internal/notifications"
	"montage/internal/preview"
	"montage/internal/project"
	"montage/internal/timeline"
	"montage/internal/tracks"
	"montage/internal/viewport"
)

// Options carries the collaborators a session cannot construct itself.
type Options struct {
	Logger    *slog.Logger
	Resolver  preview.AssetResolver
	Notifier  notifications.Service
	Scheduler batch.Scheduler
}

// Session is one open project: the engine components plus the project file
// they hydrate from and persist to.
type Session struct {
	cfg    *config.Config
	logger *slog.Logger

	name string
	path string
	lock *flock.Flock

	store     *timeline.Store
	history   *history.History
	updater   *batch.Updater
	converter *coords.Converter
	viewport  *viewport.Engine
	layout    *tracks.Layout
	resolver  preview.AssetResolver
	notifier  notifications.Service

	unsubscribe timeline.Subscription
}

// Open loads (or initializes) the named project and acquires its lock.
func Open(ctx context.Context, cfg *config.Config, name string, opts Options) (*Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("project name is required")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	layout, err := tracks.NewLayout(cfg.Tracks)
	if err != nil {
		return nil, fmt.Errorf("track layout: %w", err)
	}

	logger := logging.WithComponent(opts.Logger, "session")
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notifications.NewService(cfg)
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = batch.Immediate()
	}

	path := filepath.Join(cfg.Paths.ProjectDir, name+".json")
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire project lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("project %q is already open in another editor", name)
	}

	store := timeline.NewStore()
	if exists, statErr := project.Exists(path); statErr != nil {
		_ = lock.Unlock()
		return nil, statErr
	} else if exists {
		doc, loadErr := project.Load(path)
		if loadErr != nil {
			_ = lock.Unlock()
			return nil, loadErr
		}
		store, loadErr = project.IntoStore(doc)
		if loadErr != nil {
			_ = lock.Unlock()
			return nil, loadErr
		}
	}

	converter := coords.NewConverter()
	s := &Session{
		cfg:       cfg,
		logger:    logger,
		name:      name,
		path:      path,
		lock:      lock,
		store:     store,
		history:   history.NewWithLimit(store, cfg.History.MaxEntries),
		updater:   batch.NewUpdater(store, scheduler),
		converter: converter,
		viewport:  viewport.NewEngine(converter, cfg.Timeline.MinItemWidth, cfg.Timeline.OverscanItems),
		layout:    layout,
		resolver:  opts.Resolver,
		notifier:  notifier,
	}
	s.unsubscribe = store.Subscribe(s.onEvent)

	logger.Info("project opened",
		slog.String(logging.FieldProject, name),
		slog.Int("clips", store.Len()),
	)
	_ = notifier.NotifyProjectOpened(ctx, name, store.Len())
	return s, nil
}

// Close flushes nothing, discards any pending batch, detaches the event
// subscription, and releases the project lock.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	if s.updater != nil {
		s.updater.Clear()
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			return fmt.Errorf("release project lock: %w", err)
		}
		s.lock = nil
	}
	return nil
}

// Name returns the project name.
func (s *Session) Name() string { return s.name }

// Path returns the project file path.
func (s *Session) Path() string { return s.path }

// Store exposes the clip store for reads.
func (s *Session) Store() *timeline.Store { return s.store }

// History exposes the undo/redo wrapper; mutations should go through it.
func (s *Session) History() *history.History { return s.history }

// Updater exposes the batch updater for gesture-driven call sites.
func (s *Session) Updater() *batch.Updater { return s.updater }

// Converter exposes the shared coordinate cache.
func (s *Session) Converter() *coords.Converter { return s.converter }

// Layout exposes the fixed track layout.
func (s *Session) Layout() *tracks.Layout { return s.layout }

// AddClip validates the track against the layout and delegates through
// history.
func (s *Session) AddClip(input timeline.ClipInput) (string, error) {
	if !s.layout.Valid(input.Track) {
		return "", fmt.Errorf("%w: add: track %d is not in the layout", timeline.ErrInvalidMutation, input.Track)
	}
	return s.history.Add(input)
}

// UpdateClip validates any track change against the layout and delegates
// through history.
func (s *Session) UpdateClip(id string, patch timeline.Patch) error {
	if patch.Track != nil && !s.layout.Valid(*patch.Track) {
		return fmt.Errorf("%w: update: track %d is not in the layout", timeline.ErrInvalidMutation, *patch.Track)
	}
	return s.history.Update(id, patch)
}

// MoveClip validates the destination track, delegates through history, and
// reports (never rejects) resulting overlap.
func (s *Session) MoveClip(ctx context.Context, id string, startTime float64, track int) error {
	if !s.layout.Valid(track) {
		return fmt.Errorf("%w: move: track %d is not in the layout", timeline.ErrInvalidMutation, track)
	}
	if err := s.history.Move(id, startTime, track); err != nil {
		return err
	}
	if overlaps := s.store.Overlaps(track); len(overlaps) > 0 {
		s.logger.Debug("clips overlap after move",
			slog.String(logging.FieldClipID, id),
			slog.Int(logging.FieldTrack, track),
			slog.Int("pairs", len(overlaps)),
		)
		_ = s.notifier.NotifyOverlap(ctx, s.name, track, len(overlaps))
	}
	return nil
}

// VisibleClips returns the track's clips that must be materialized for the
// viewport.
func (s *Session) VisibleClips(track int, view viewport.View) []viewport.VisibleClip {
	return s.viewport.Visible(s.store.ClipsOnTrack(track), view)
}

// Describe resolves the preview descriptor for one clip, degrading to the
// generic descriptor when the asset reference dangles.
func (s *Session) Describe(id string) (preview.Descriptor, bool) {
	clip, ok := s.store.Get(id)
	if !ok {
		return preview.Descriptor{}, false
	}
	var asset *timeline.MediaAsset
	if s.resolver != nil && clip.AssetID != "" {
		asset = s.resolver.Resolve(clip.AssetID)
	}
	return preview.Resolve(clip, asset), true
}

// Save serializes the store to the project file.
func (s *Session) Save(ctx context.Context, assetList []*timeline.MediaAsset) error {
	doc, err := project.FromStore(s.name, s.store, assetList)
	if err != nil {
		return err
	}
	if err := project.Save(s.path, doc); err != nil {
		_ = s.notifier.NotifyError(ctx, err, "saving project")
		return err
	}
	s.logger.Info("project saved",
		slog.String(logging.FieldProject, s.name),
		slog.Int("clips", s.store.Len()),
	)
	_ = s.notifier.NotifyProjectSaved(ctx, s.name, s.store.Len())
	return nil
}

// onEvent keeps the coordinate cache coherent with the store: per-clip
// invalidation for targeted mutations, full clear for restores.
func (s *Session) onEvent(event timeline.Event) {
	switch event.Kind {
	case timeline.EventRestored:
		s.converter.ClearCache()
	case timeline.EventRemoved, timeline.EventMoved, timeline.EventResized, timeline.EventUpdated:
		s.converter.InvalidateSubject(event.ClipID)
	}
}
