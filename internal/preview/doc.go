// Package preview derives lightweight render descriptors from clip and asset
// records.
//
// Resolve is pure and side-effect-free, so it is safe to call speculatively
// for clips that are about to scroll into view. Descriptors are ephemeral and
// never persisted; a clip whose asset reference no longer resolves degrades
// to the generic descriptor instead of failing.
package preview
