package patterns

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"driftsort/internal/logging"
	"driftsort/internal/remote"
	"driftsort/internal/scanner"
)

// Extension is the institution-specific scanner extension. The zero value is
// not usable; construct with New.
type Extension struct {
	logger   *slog.Logger
	learned  *learnedState
	learning bool
}

var _ scanner.Extension = (*Extension)(nil)

// Option customizes the extension.
type Option func(*Extension)

// WithoutLearning disables the sampling pre-pass; the static rule table
// still applies during annotation.
func WithoutLearning() Option {
	return func(e *Extension) {
		e.learning = false
	}
}

// New builds the extension with an empty learned state.
func New(logger *slog.Logger, opts ...Option) *Extension {
	ext := &Extension{
		logger:   logging.NewComponentLogger(logger, "patterns"),
		learned:  newLearnedState(),
		learning: true,
	}
	for _, opt := range opts {
		opt(ext)
	}
	return ext
}

// Learn implements scanner.Extension. See the package doc for the sampling
// bounds; failures never propagate.
func (e *Extension) Learn(ctx context.Context, acc *remote.Accessor, rootID string) {
	e.learned = newLearnedState()
	if !e.learning {
		return
	}
	e.sample(ctx, acc, rootID, 0)
	e.logger.Debug("learning pass complete",
		logging.Int("conventions", len(e.learned.conventions)),
		logging.Int("candidate_names", len(e.learned.candidateNames)))
}

// Annotate implements scanner.Extension: award bonus confidence for
// institution signals and learned conventions, and fold coach-proximity
// names into the participant list.
func (e *Extension) Annotate(af *scanner.AnnotatedFile) {
	name := af.Name
	// Word boundaries do not fire next to underscores, so identifier
	// patterns run against a spaced copy. Convention probes keep the raw
	// name; separator conventions need it.
	spaced := underscoresToSpaces(name)
	bonus := 0

	if studentIDPattern.MatchString(spaced) {
		bonus += bonusStudentID
	}
	if cohortPattern.MatchString(spaced) {
		bonus += bonusCohort
	}
	lower := strings.ToLower(name)
	if containsAny(lower, programKeywords) {
		bonus += bonusProgram
	}
	if containsAny(lower, sessionTypeKeywords) {
		bonus += bonusSessionTy
	}

	for convention, probe := range conventionProbes {
		if e.learned.hasConvention(convention) && probe.MatchString(name) {
			bonus += bonusConvention
			break
		}
	}

	if coach := extractCoachName(name); coach != "" {
		if e.learned.isCandidateName(coach) {
			bonus += bonusCoachName
		}
		af.Participants = mergeParticipant(af.Participants, coach)
	}

	af.Confidence += bonus
}

func extractCoachName(name string) string {
	groups := coachProximity.FindStringSubmatch(underscoresToSpaces(name))
	if groups == nil {
		return ""
	}
	return groups[1]
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func mergeParticipant(participants []string, name string) []string {
	for _, existing := range participants {
		if strings.EqualFold(existing, name) {
			return participants
		}
	}
	out := append(append([]string{}, participants...), name)
	sort.Strings(out)
	return out
}

func underscoresToSpaces(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
