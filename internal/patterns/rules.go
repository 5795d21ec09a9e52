package patterns

import "regexp"

// Convention names a naming scheme observed in folder and file names.
type Convention string

const (
	ConventionDateFirst    Convention = "date_first"
	ConventionWeekFirst    Convention = "week_first"
	ConventionSessionFirst Convention = "session_first"
	ConventionIDFirst      Convention = "id_first"
	ConventionUnderscore   Convention = "underscore_separated"
	ConventionDash         Convention = "dash_separated"
)

// conventionProbes detect which conventions a sampled name exhibits.
var conventionProbes = map[Convention]*regexp.Regexp{
	ConventionDateFirst:    regexp.MustCompile(`^\d{4}[-/]?\d{2}[-/]?\d{2}`),
	ConventionWeekFirst:    regexp.MustCompile(`(?i)^(week|wk)[\s_-]?\d`),
	ConventionSessionFirst: regexp.MustCompile(`(?i)^session[\s_-]?\d`),
	ConventionIDFirst:      regexp.MustCompile(`^[A-Z]{2,4}-\d{3,5}\b`),
	ConventionUnderscore:   regexp.MustCompile(`\w_\w`),
	ConventionDash:         regexp.MustCompile(`\w-\w`),
}

// Institution rule table. These are fixed vocabularies; the learning pass
// adds per-tree state on top.
var (
	// studentIDPattern matches institution student identifiers such as
	// "AC-1042".
	studentIDPattern = regexp.MustCompile(`\b[A-Z]{2,4}-\d{3,5}\b`)

	// cohortPattern matches cohort markers such as "Cohort 7" or "C7".
	cohortPattern = regexp.MustCompile(`(?i)\b(?:cohort[\s_-]?|c)(\d{1,3})\b`)

	// programKeywords are the program names the institution runs.
	programKeywords = []string{
		"foundations", "accelerator", "mastery", "intensive", "bootcamp",
		"leadership",
	}

	// sessionTypeKeywords classify the kind of meeting a name describes.
	sessionTypeKeywords = []string{
		"1on1", "1-on-1", "group", "onboarding", "kickoff", "review",
		"office hours",
	}

	// coachProximity captures a capitalized name adjacent to a word that
	// marks the coach in institution naming.
	coachProximity = regexp.MustCompile(`\b(?:[Cc]oach|[Mm]entor|[Ww]ith|[Bb]y)[\s_-]+([A-Z][a-z]+)`)
)

// Confidence bonuses awarded by the extension, on top of the generic
// additive scheme. The scanner caps the total at 100.
const (
	bonusConvention = 10
	bonusStudentID  = 15
	bonusProgram    = 10
	bonusCohort     = 5
	bonusCoachName  = 10
	bonusSessionTy  = 5
)
