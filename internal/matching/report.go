package matching

// ConfidenceBand is one histogram bucket of group confidences.
type ConfidenceBand struct {
	// Label renders as "low-high", e.g. "40-59".
	Label string
	Low   int
	High  int
	Count int
}

// Summary holds pure counts over a matching result, suitable for logging or
// reporting. Computing it has no side effects; call it as often as needed.
type Summary struct {
	TotalGroups     int
	WithVideo       int
	WithAudio       int
	WithTranscript  int
	WithChat        int
	WithDate        int
	WithWeek        int
	ConfidenceBands []ConfidenceBand
}

// Summarize counts role presence and buckets confidences into fixed
// 20-point bands (the top band absorbs 100).
func Summarize(groups []SessionGroup) Summary {
	summary := Summary{
		TotalGroups: len(groups),
		ConfidenceBands: []ConfidenceBand{
			{Label: "0-19", Low: 0, High: 19},
			{Label: "20-39", Low: 20, High: 39},
			{Label: "40-59", Low: 40, High: 59},
			{Label: "60-79", Low: 60, High: 79},
			{Label: "80-100", Low: 80, High: 100},
		},
	}

	for _, group := range groups {
		if group.HasVideo {
			summary.WithVideo++
		}
		if group.HasAudio {
			summary.WithAudio++
		}
		if group.HasTranscript {
			summary.WithTranscript++
		}
		if group.HasChat {
			summary.WithChat++
		}
		if group.Date != nil {
			summary.WithDate++
		}
		if group.Week != nil {
			summary.WithWeek++
		}
		for i := range summary.ConfidenceBands {
			band := &summary.ConfidenceBands[i]
			if group.Confidence >= band.Low && group.Confidence <= band.High {
				band.Count++
				break
			}
		}
	}
	return summary
}
