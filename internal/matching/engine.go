package matching

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"driftsort/internal/logging"
	"driftsort/internal/scanner"
)

// Engine clusters annotated files into session groups.
type Engine struct {
	threshold float64
	logger    *slog.Logger
}

// NewEngine builds an engine; threshold <= 0 selects DefaultThreshold.
func NewEngine(threshold float64, logger *slog.Logger) *Engine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Engine{
		threshold: threshold,
		logger:    logging.NewComponentLogger(logger, "matching"),
	}
}

// Match clusters files with a single greedy pass in discovery order. Each
// file joins at most one group per run; ties between possible pivots go to
// the earlier one, and closed groups are never reconsidered. This is a
// documented approximation, not a bug: sessions cluster tightly in practice
// and downstream output depends on the deterministic ordering.
func (e *Engine) Match(files []scanner.AnnotatedFile) []SessionGroup {
	assigned := make([]bool, len(files))
	var groups []SessionGroup

	for i := range files {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		members := []scanner.AnnotatedFile{files[i]}

		for j := i + 1; j < len(files); j++ {
			if assigned[j] {
				continue
			}
			verdict := Compare(files[i], files[j], e.threshold)
			if !verdict.Match {
				continue
			}
			assigned[j] = true
			members = append(members, files[j])
			e.logger.Debug("paired files",
				logging.String("pivot", files[i].Name),
				logging.String("member", files[j].Name),
				logging.Float64("score", verdict.Score),
				logging.String("rules", strings.Join(verdict.Rules, ",")))
		}

		groups = append(groups, buildGroup(members))
	}

	e.logger.Info("matching complete",
		logging.Int("files", len(files)),
		logging.Int("groups", len(groups)))
	return groups
}

// buildGroup merges member annotations: first non-nil date and week win,
// participant sets union, role presence flags OR, confidence is the member
// maximum.
func buildGroup(members []scanner.AnnotatedFile) SessionGroup {
	group := SessionGroup{
		ID:    uuid.NewString(),
		Files: members,
	}

	participants := make(map[string]struct{})
	for _, member := range members {
		if group.Date == nil && member.Date != nil {
			group.Date = member.Date
		}
		if group.Week == nil && member.Week != nil {
			group.Week = member.Week
		}
		for _, name := range member.Participants {
			participants[name] = struct{}{}
		}
		switch member.Role {
		case scanner.RoleVideo:
			group.HasVideo = true
		case scanner.RoleAudio:
			group.HasAudio = true
		case scanner.RoleTranscript:
			group.HasTranscript = true
		case scanner.RoleChat:
			group.HasChat = true
		}
		if member.Confidence > group.Confidence {
			group.Confidence = member.Confidence
		}
	}

	if len(participants) > 0 {
		group.Participants = make([]string, 0, len(participants))
		for name := range participants {
			group.Participants = append(group.Participants, name)
		}
		sort.Strings(group.Participants)
	}
	return group
}
