// Package patterns layers institution-specific naming rules on top of the
// generic scanner extraction.
//
// Before the full scan, a shallow learning pass (depth at most 2, three
// folders per level) samples the tree to find out which naming conventions
// are actually in use, which folder names occur per depth level, and which
// capitalized tokens look like participant names. The learned state then
// biases annotation: files matching a learned convention, carrying a
// resolved student ID, a program keyword, a cohort marker, or a name that
// sits next to coach-indicating words earn extra confidence points.
//
// The learning pass is best-effort throughout: any single folder's failure
// is logged and sampling continues; the full scan runs regardless.
package patterns
