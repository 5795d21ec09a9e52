// Package config loads, validates, and normalizes driftsort configuration.
//
// Configuration lives in a TOML file; every knob has a documented default so
// an empty file (or no file at all) produces a working setup. Paths are
// expanded (~ and relative segments) during load.
package config
