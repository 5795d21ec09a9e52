package scanner

import "regexp"

// weekPatterns are tried in order; the first match wins.
var weekPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bweek[\s_-]?(\d{1,2})\b`),
	regexp.MustCompile(`(?i)\bwk[\s_-]?(\d{1,2})\b`),
	regexp.MustCompile(`(?i)\bsession[\s_-]?(\d{1,2})\b`),
	regexp.MustCompile(`(?i)\bmodule[\s_-]?(\d{1,2})\b`),
}

// ExtractWeek returns the first week/session/module number found in name,
// or nil when none matches.
func ExtractWeek(name string) *WeekMatch {
	name = normalizeSeparators(name)
	for _, pattern := range weekPatterns {
		groups := pattern.FindStringSubmatch(name)
		if groups == nil {
			continue
		}
		return &WeekMatch{Number: atoi(groups[1]), Raw: groups[0]}
	}
	return nil
}
