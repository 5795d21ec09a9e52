// Package matching clusters annotated files into candidate sessions and
// validates the result.
//
// Clustering is a single greedy pass: files are taken in discovery order,
// each unassigned file becomes a pivot, and every later unassigned file that
// scores at or above the threshold under the weighted rule set joins the
// pivot's group. A file that would match two separated pivots equally well
// goes to the earlier one; groups are never reopened for a later, stronger
// match. That first-pivot-wins behavior is deliberate and load-bearing for
// deterministic output, so keep it when touching this code.
//
// Validation is a separate step: a group with neither video nor audio, or
// with confidence under the floor, lands in the invalid list with
// human-readable reasons. Rejection is a normal outcome, not an error.
package matching
