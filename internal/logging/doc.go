// Package logging assembles the structured slog loggers used across Montage.
//
// It centralizes level and output plumbing for the console and JSON handlers
// and defines the standardized field keys (component, clip id, track,
// operation) so every part of the engine emits log lines with the same shape.
// A no-op logger is available for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
