package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"montage/internal/config"
	"montage/internal/timeline"
)

// Catalog manages media asset persistence backed by SQLite.
type Catalog struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the asset database inside the project
// directory and applies the schema.
func Open(cfg *config.Config) (*Catalog, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.ProjectDir, "assets.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	catalog := &Catalog{db: db, path: dbPath}
	if err := catalog.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return catalog, nil
}

// Close closes the underlying database connection.
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Catalog) applySchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	var version int
	err := c.db.QueryRowContext(ctx, `SELECT version FROM schema_info LIMIT 1`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := c.db.ExecContext(ctx, `INSERT INTO schema_info (version) VALUES (?)`, schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("asset catalog schema version %d is unsupported (want %d); clear %s", version, schemaVersion, c.path)
	}
	return nil
}

// Add inserts an asset, assigning a fresh id when the caller leaves it empty.
func (c *Catalog) Add(ctx context.Context, asset timeline.MediaAsset) (*timeline.MediaAsset, error) {
	if asset.Name == "" {
		return nil, errors.New("asset name is required")
	}
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := c.db.ExecContext(
		ctx,
		`INSERT INTO media_assets (
            id, name, type, mime_type, size_bytes, duration, width, height, thumbnail,
            created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		asset.ID,
		asset.Name,
		string(asset.Type),
		nullableString(asset.MimeType),
		asset.SizeBytes,
		asset.Duration,
		asset.Width,
		asset.Height,
		nullableString(asset.Thumbnail),
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}
	return c.Get(ctx, asset.ID)
}

// Get fetches an asset by id, returning nil when absent.
func (c *Catalog) Get(ctx context.Context, id string) (*timeline.MediaAsset, error) {
	row := c.db.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM media_assets WHERE id = ?`, id)
	asset, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return asset, nil
}

// List returns every asset ordered by name.
func (c *Catalog) List(ctx context.Context) ([]*timeline.MediaAsset, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT `+assetColumns+` FROM media_assets ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var result []*timeline.MediaAsset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, asset)
	}
	return result, rows.Err()
}

// Remove deletes an asset by id, reporting whether a row was removed. Clips
// referencing the asset keep their now-dangling id; see Dangling.
func (c *Catalog) Remove(ctx context.Context, id string) (bool, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM media_assets WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete asset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Resolve implements the preview resolver's asset lookup. Errors degrade to a
// nil asset; the preview layer treats that as a dangling reference.
func (c *Catalog) Resolve(assetID string) *timeline.MediaAsset {
	if assetID == "" {
		return nil
	}
	asset, err := c.Get(context.Background(), assetID)
	if err != nil {
		return nil
	}
	return asset
}

// Dangling returns the clip ids whose asset reference no longer resolves.
func (c *Catalog) Dangling(ctx context.Context, clips []*timeline.Clip) ([]string, error) {
	var broken []string
	checked := make(map[string]bool)
	for _, clip := range clips {
		if clip.AssetID == "" {
			continue
		}
		exists, ok := checked[clip.AssetID]
		if !ok {
			asset, err := c.Get(ctx, clip.AssetID)
			if err != nil {
				return nil, err
			}
			exists = asset != nil
			checked[clip.AssetID] = exists
		}
		if !exists {
			broken = append(broken, clip.ID)
		}
	}
	return broken, nil
}

const assetColumns = "id, name, type, mime_type, size_bytes, duration, width, height, thumbnail"

func scanAsset(scanner interface{ Scan(dest ...any) error }) (*timeline.MediaAsset, error) {
	var (
		id        string
		name      string
		assetType string
		mimeType  sql.NullString
		sizeBytes int64
		duration  float64
		width     int
		height    int
		thumbnail sql.NullString
	)
	if err := scanner.Scan(&id, &name, &assetType, &mimeType, &sizeBytes, &duration, &width, &height, &thumbnail); err != nil {
		return nil, err
	}
	return &timeline.MediaAsset{
		ID:        id,
		Name:      name,
		Type:      timeline.AssetType(assetType),
		MimeType:  mimeType.String,
		SizeBytes: sizeBytes,
		Duration:  duration,
		Width:     width,
		Height:    height,
		Thumbnail: thumbnail.String,
	}, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
