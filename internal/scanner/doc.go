// Package scanner walks a remote folder tree and turns discovered files into
// annotated recording candidates.
//
// Traversal is depth-first and strictly sequential so at most one remote call
// is in flight at a time; the remote store's rate limits drive that choice.
// Each folder is visited at most once per scan (duplicate links and cycles
// are safe), folder failures are scoped to their subtree, and descending
// stops silently at the configured depth.
//
// Admitted files are annotated with an inferred role, an extracted date,
// candidate participant names, a week number, and a heuristic confidence
// score in [0,100]. Annotation happens exactly once, while the file is
// appended to the result; a fresh scan produces fresh annotations. An
// optional Extension layers richer, institution-specific rules on top of the
// generic extraction.
package scanner
