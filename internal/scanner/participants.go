package scanner

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// participantPatterns are heuristic name extractors applied to the raw file
// name. Capture groups hold candidate tokens; structural words are filtered
// afterward.
var participantPatterns = []*regexp.Regexp{
	// "with Alex", "With Alex Rivera"
	regexp.MustCompile(`\b[Ww]ith[\s_-]+([A-Z][a-z]+)(?:[\s_-]+([A-Z][a-z]+))?`),
	// "Alex-Sam" pairs
	regexp.MustCompile(`\b([A-Z][a-z]+)-([A-Z][a-z]+)\b`),
	// "Alex and Sam"
	regexp.MustCompile(`\b([A-Z][a-z]+)[\s_]+and[\s_]+([A-Z][a-z]+)\b`),
	// "Coaching Alex", "coaching_Sam"
	regexp.MustCompile(`\b[Cc]oaching[\s_-]+([A-Z][a-z]+)`),
}

// participantStopwords are structural words that look like capitalized names
// in file naming but never are.
var participantStopwords = map[string]struct{}{
	"audio": {}, "call": {}, "chat": {}, "class": {}, "cloud": {},
	"coach": {}, "coaching": {}, "cohort": {}, "copy": {}, "final": {},
	"follow": {}, "gallery": {}, "gmt": {}, "group": {}, "meeting": {},
	"module": {}, "new": {}, "notes": {}, "onboarding": {}, "part": {},
	"recording": {}, "review": {}, "session": {}, "shared": {},
	"speaker": {}, "teams": {}, "the": {}, "transcript": {}, "video": {},
	"view": {}, "week": {}, "with": {}, "zoom": {},
}

var nameCaser = cases.Title(language.Und)

// ExtractParticipants returns the deduplicated union of candidate names
// matched by the heuristic patterns, in sorted order. An empty result means
// no candidates, never an error.
func ExtractParticipants(name string) []string {
	name = normalizeSeparators(name)
	seen := make(map[string]struct{})
	for _, pattern := range participantPatterns {
		for _, groups := range pattern.FindAllStringSubmatch(name, -1) {
			for _, token := range groups[1:] {
				candidate := normalizeParticipant(token)
				if candidate == "" {
					continue
				}
				seen[candidate] = struct{}{}
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// normalizeParticipant filters structural words and short tokens, returning
// a title-cased name or "".
func normalizeParticipant(token string) string {
	token = strings.TrimSpace(token)
	if len(token) < 2 {
		return ""
	}
	if _, stop := participantStopwords[strings.ToLower(token)]; stop {
		return ""
	}
	return nameCaser.String(strings.ToLower(token))
}
