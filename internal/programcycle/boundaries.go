package programcycle

import "time"

// Boundary-detection heuristics for students not yet in the renewal table. A
// renewal shows up in a student's session history as a week number falling
// sharply or as a long gap between consecutive sessions.
const (
	weekDropThreshold = 5
	maxSessionGap     = 28 * 24 * time.Hour
)

// Session is one dated session of a single student, used for boundary
// detection. Week is the extracted week number; a zero Date means the date
// is unknown and gap detection is skipped for that pair.
type Session struct {
	Week float64
	Date time.Time
}

// DetectBoundaries inspects a time-ordered session list for one student and
// returns the indices where a new enrollment cycle appears to start. A
// boundary is flagged when the week number drops by more than 5 from the
// previous session, or when more than 28 days pass between sessions.
func DetectBoundaries(sessions []Session) []int {
	var boundaries []int
	for i := 1; i < len(sessions); i++ {
		prev, cur := sessions[i-1], sessions[i]
		if prev.Week-cur.Week > weekDropThreshold {
			boundaries = append(boundaries, i)
			continue
		}
		if !prev.Date.IsZero() && !cur.Date.IsZero() && cur.Date.Sub(prev.Date) > maxSessionGap {
			boundaries = append(boundaries, i)
		}
	}
	return boundaries
}
