// Package project serializes the timeline data model to and from the JSON
// project file.
//
// Persistence is deliberately dumb: the document mirrors the data model
// field for field, the clip properties object is decoded into the typed arm
// named by the clip's type, and unknown clip types round-trip their
// properties untouched so newer project files survive older builds. Saves go
// through a temp file plus rename so a crash never truncates a project.
package project
