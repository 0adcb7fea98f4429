// Package notifications delivers informational editing events via pluggable
// notifiers.
//
// The default implementation publishes to ntfy using the topic configured in
// config.toml and degrades to a no-op when no topic is set. Events are
// informational only; nothing in the engine depends on delivery for
// correctness.
package notifications
