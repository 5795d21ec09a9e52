package scanner

import "strings"

// Additive confidence points. The domain pattern extension awards further
// bonuses on top; the total is capped at 100 after all contributions.
const (
	pointsDate         = 20
	pointsParticipants = 20
	pointsWeek         = 15
	pointsZoom         = 15
	pointsRecording    = 10
	pointsSessionWord  = 10
	pointsCallWord     = 10
	confidenceCap      = 100
)

// baseConfidence scores the generic extraction signals for one file.
func baseConfidence(af AnnotatedFile) int {
	lower := strings.ToLower(af.Name)
	score := 0
	if af.Date != nil {
		score += pointsDate
	}
	if len(af.Participants) > 0 {
		score += pointsParticipants
	}
	if af.Week != nil {
		score += pointsWeek
	}
	if strings.Contains(lower, "zoom") {
		score += pointsZoom
	}
	if strings.Contains(lower, "recording") {
		score += pointsRecording
	}
	if strings.Contains(lower, "coaching") || strings.Contains(lower, "session") {
		score += pointsSessionWord
	}
	if strings.Contains(lower, "call") || strings.Contains(lower, "meeting") {
		score += pointsCallWord
	}
	return clampConfidence(score)
}

func clampConfidence(score int) int {
	if score > confidenceCap {
		return confidenceCap
	}
	if score < 0 {
		return 0
	}
	return score
}
