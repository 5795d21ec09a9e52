// Package catalog persists scan results to a local SQLite database. Each
// scan is recorded as a run plus the session groups it produced, so repeat
// scans can be compared and reported on without re-crawling the remote
// store.
package catalog
