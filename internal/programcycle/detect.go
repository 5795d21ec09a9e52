package programcycle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Result is the outcome of a cycle lookup. Cycle is 0 for students with a
// single enrollment; CycleWeek is the 1-based week offset within the
// resolved cycle (for non-renewal students it equals the input week).
type Result struct {
	Cycle     int
	IsRenewal bool
	CycleWeek float64
}

// ParseWeekToken parses a week token as written in file names. Zero-indexed
// onboarding sessions carry a letter suffix: "00" is week 0, "00A" is 0.1,
// "00B" is 0.2. Plain numeric tokens parse as-is.
func ParseWeekToken(token string) (float64, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return 0, fmt.Errorf("empty week token")
	}

	upper := strings.ToUpper(trimmed)
	suffix := 0.0
	switch {
	case strings.HasSuffix(upper, "A"):
		suffix = 0.1
		upper = strings.TrimSuffix(upper, "A")
	case strings.HasSuffix(upper, "B"):
		suffix = 0.2
		upper = strings.TrimSuffix(upper, "B")
	}

	value, err := strconv.Atoi(upper)
	if err != nil {
		return 0, fmt.Errorf("week token %q: %w", token, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("week token %q: negative week", token)
	}
	if suffix > 0 && value != 0 {
		return 0, fmt.Errorf("week token %q: letter suffix only valid on week 0", token)
	}
	return float64(value) + suffix, nil
}

// Detect resolves the enrollment cycle for a session. Students absent from
// the table resolve to cycle 0 with the week passed through unchanged. For
// known renewal students the week is located in the student's windows; weeks
// beyond every known window extrapolate further cycles from the student's
// nominal program length.
func (t *Table) Detect(studentName string, week float64) Result {
	student := t.lookup(studentName)
	if student == nil || len(student.Windows) == 0 {
		return Result{Cycle: 0, IsRenewal: false, CycleWeek: week}
	}

	for _, window := range student.Windows {
		if week >= float64(window.FirstWeek) && week <= float64(window.LastWeek) {
			return Result{
				Cycle:     window.Cycle,
				IsRenewal: window.Cycle > 1,
				CycleWeek: week - float64(window.FirstWeek) + 1,
			}
		}
	}

	last := student.Windows[len(student.Windows)-1]
	if week <= float64(last.LastWeek) {
		// Below or between windows: onboarding sessions (week 0 and its
		// suffixed variants) belong to the earliest cycle that starts after
		// them.
		for _, window := range student.Windows {
			if week < float64(window.FirstWeek) {
				return Result{
					Cycle:     window.Cycle,
					IsRenewal: window.Cycle > 1,
					CycleWeek: week,
				}
			}
		}
		return Result{Cycle: 0, IsRenewal: false, CycleWeek: week}
	}

	length := student.ProgramLengthWeeks
	if length <= 0 {
		length = last.LastWeek - last.FirstWeek + 1
	}
	beyond := week - float64(last.LastWeek)
	extra := int(math.Ceil(beyond / float64(length)))
	cycle := last.Cycle + extra
	cycleStart := float64(last.LastWeek) + float64(extra-1)*float64(length)
	return Result{
		Cycle:     cycle,
		IsRenewal: true,
		CycleWeek: week - cycleStart,
	}
}
