package matching

import (
	"path"
	"strings"

	"driftsort/internal/scanner"
	"driftsort/internal/textutil"
)

// Weighted similarity rules. Weights sum to 1.0; DefaultThreshold is the
// score a pair must reach to belong to the same session.
const (
	weightBaseName     = 0.4
	weightDate         = 0.3
	weightParticipants = 0.2
	weightParentFolder = 0.1

	// baseNameSimilarityFloor is the normalized edit-distance similarity
	// two stripped base names need for the base-name rule to fire.
	baseNameSimilarityFloor = 0.8

	// DefaultThreshold is the documented default match threshold.
	DefaultThreshold = 0.7
)

// roleSuffixes are trailing tokens platforms append to per-role variants of
// the same recording.
var roleSuffixes = []string{
	"audio_only", "audio only", "video", "audio", "transcript", "chat",
	"closed_caption", "cc", "gallery_view", "speaker_view", "copy",
}

// Compare scores a pair of annotated files under the weighted rule set. The
// computation is symmetric: Compare(a, b) always equals Compare(b, a).
func Compare(a, b scanner.AnnotatedFile, threshold float64) SimilarityVerdict {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	verdict := SimilarityVerdict{}

	if textutil.Similarity(normalizedBaseName(a.Name), normalizedBaseName(b.Name)) >= baseNameSimilarityFloor {
		verdict.Score += weightBaseName
		verdict.Rules = append(verdict.Rules, "base_name")
	}
	if a.Date != nil && b.Date != nil && a.Date.Raw == b.Date.Raw {
		verdict.Score += weightDate
		verdict.Rules = append(verdict.Rules, "same_date")
	}
	if participantsOverlap(a.Participants, b.Participants) {
		verdict.Score += weightParticipants
		verdict.Rules = append(verdict.Rules, "participant_overlap")
	}
	if a.ParentID != "" && a.ParentID == b.ParentID {
		verdict.Score += weightParentFolder
		verdict.Rules = append(verdict.Rules, "same_folder")
	}

	verdict.Match = verdict.Score >= threshold
	return verdict
}

// normalizedBaseName strips the extension and trailing role suffixes, then
// lowercases and collapses separators, so "X_audio_only.m4a" and "X.mp4"
// compare as the same base.
func normalizedBaseName(name string) string {
	base := strings.TrimSuffix(name, path.Ext(name))
	base = strings.ToLower(base)
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")

	for changed := true; changed; {
		changed = false
		for _, suffix := range roleSuffixes {
			token := strings.ReplaceAll(suffix, "_", " ")
			if strings.HasSuffix(base, " "+token) {
				base = strings.TrimSpace(strings.TrimSuffix(base, token))
				changed = true
			}
		}
	}
	return base
}

func participantsOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for _, x := range a {
		for _, y := range b {
			if strings.EqualFold(x, y) {
				return true
			}
		}
	}
	return false
}
