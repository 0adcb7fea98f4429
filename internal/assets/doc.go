// Package assets persists the project's media asset library in SQLite and
// implements the asset resolution contract the preview resolver consumes.
//
// The catalog stores caller-supplied metadata only; importing, validating,
// and thumbnailing media files happens elsewhere. Assets are referenced
// weakly by clips, so deletion is allowed while references remain; Dangling
// reports the resulting broken references for the doctor surface instead of
// enforcing foreign keys against the in-memory clip store.
package assets
