// Package config loads and validates Montage configuration from TOML.
//
// Configuration is optional: every field has a usable default, so the engine
// runs without a config file. Load resolves ~/.config/montage/config.toml,
// then a project-local montage.toml, normalizes path fields, and validates
// numeric ranges before handing the result to wiring code.
package config
