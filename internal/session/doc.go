// Package session wires the timeline engine together for one open project:
// the clip store, history wrapper, batch updater, coordinate cache, viewport
// engine, and preview resolution behind a single facade.
//
// A session owns the project file's advisory lock so two editors cannot
// stomp on the same project, keeps the coordinate cache coherent by
// invalidating entries for mutated clips, and reports overlap after moves
// without ever rejecting one.
package session
