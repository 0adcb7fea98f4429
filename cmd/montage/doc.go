// Package main hosts the Montage CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into timeline
// inspection, viewport queries, asset catalog maintenance, configuration
// scaffolding, and the HTTP API server. It centralizes configuration
// resolution and session lifecycle so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
