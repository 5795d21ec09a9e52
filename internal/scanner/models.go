package scanner

import (
	"fmt"

	"driftsort/internal/remote"
)

// Role classifies what part of a session a file carries.
type Role string

const (
	RoleVideo      Role = "video"
	RoleAudio      Role = "audio"
	RoleTranscript Role = "transcript"
	RoleChat       Role = "chat"
	RoleUnknown    Role = "unknown"
)

// DateMatch is a date extracted from a file or folder name.
type DateMatch struct {
	// Raw is the exact substring that matched.
	Raw string
	// Pattern names the rule that matched (iso, us, month_name, compact, ...).
	Pattern string
	Year    int
	Month   int
	Day     int
}

// ISO renders the match as YYYY-MM-DD.
func (d DateMatch) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// WeekMatch is a week (or session/module) number extracted from a name.
type WeekMatch struct {
	Number int
	// Raw is the token that matched, e.g. "Week5".
	Raw string
}

// AnnotatedFile is a remote file enriched with inferred session metadata.
// Instances are created once during a scan pass and never mutated afterward.
type AnnotatedFile struct {
	remote.File

	Role         Role
	Date         *DateMatch
	Participants []string
	Week         *WeekMatch
	// Confidence is a heuristic trust score in [0,100], not a probability.
	Confidence int
}
