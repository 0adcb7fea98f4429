// Package apiserver exposes an open editing session over HTTP for the editor
// front-end.
//
// The surface mirrors the session facade one-to-one: clip CRUD plus move,
// resize, duplicate, undo/redo, the virtualization window query, and preview
// descriptors. Rejected mutations map to 400, missing clips to 404; the
// engine itself never sees transport concerns.
package apiserver
