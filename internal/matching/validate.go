package matching

import "fmt"

// DefaultConfidenceFloor is the minimum group confidence a session needs to
// validate.
const DefaultConfidenceFloor = 20

// Validate splits groups into viable sessions and rejects with reasons. A
// group needs at least one video or audio member; duplicate roles within a
// group are expected (quality variants) and never a rejection reason.
func Validate(groups []SessionGroup, confidenceFloor int) ValidationResult {
	if confidenceFloor < 0 {
		confidenceFloor = DefaultConfidenceFloor
	}

	var result ValidationResult
	for _, group := range groups {
		var reasons []string
		if !group.HasVideo && !group.HasAudio {
			reasons = append(reasons, "no video or audio member")
		}
		if group.Confidence < confidenceFloor {
			reasons = append(reasons, fmt.Sprintf("confidence %d below floor %d", group.Confidence, confidenceFloor))
		}

		if len(reasons) == 0 {
			result.Valid = append(result.Valid, group)
		} else {
			result.Invalid = append(result.Invalid, RejectedGroup{Group: group, Reasons: reasons})
		}
	}
	return result
}
