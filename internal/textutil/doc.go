// Package textutil provides text processing utilities for name comparison
// and token normalization.
//
// The primary use cases are:
//   - Computing normalized edit-distance similarity between file base names
//   - Sanitizing tokens extracted from remote file and folder names
//
// Similarity is symmetric and returns a value in [0,1], where 1 means the
// strings are identical after trimming.
package textutil
