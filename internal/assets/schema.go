package assets

// Schema changes bump schemaVersion; the catalog is small enough that users
// re-import rather than migrate.
const schemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS media_assets (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    type          TEXT NOT NULL,
    mime_type     TEXT,
    size_bytes    INTEGER NOT NULL DEFAULT 0,
    duration      REAL NOT NULL DEFAULT 0,
    width         INTEGER NOT NULL DEFAULT 0,
    height        INTEGER NOT NULL DEFAULT 0,
    thumbnail     TEXT,
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_media_assets_type ON media_assets(type);

CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER NOT NULL
);
`
