// Package programcycle resolves which enrollment cycle a coaching session
// belongs to for students who re-enroll. Week numbers restart at each
// renewal, so a bare "week 3" is ambiguous for those students; the detector
// maps it onto an absolute cycle plus a cycle-relative week using a table of
// known renewal students and their program windows.
package programcycle
