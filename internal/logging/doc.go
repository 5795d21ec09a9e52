// Package logging assembles structured slog loggers and formatting helpers
// used across driftsort components.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes typed attribute helpers so scan code tags log lines with component
// names, folder identifiers, and scan run IDs consistently. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
