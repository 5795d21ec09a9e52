package scanner

import (
	"regexp"
	"strconv"
	"strings"
)

// datePattern couples a named regexp with a converter that turns its capture
// groups into calendar components.
type datePattern struct {
	name    string
	re      *regexp.Regexp
	convert func(groups []string) (year, month, day int)
}

// datePatterns is tried in priority order; the first numerically valid match
// wins.
var datePatterns = []datePattern{
	{
		name: "iso",
		re:   regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		convert: func(g []string) (int, int, int) {
			return atoi(g[1]), atoi(g[2]), atoi(g[3])
		},
	},
	{
		name: "iso_slash",
		re:   regexp.MustCompile(`\b(\d{4})/(\d{2})/(\d{2})\b`),
		convert: func(g []string) (int, int, int) {
			return atoi(g[1]), atoi(g[2]), atoi(g[3])
		},
	},
	{
		name: "us",
		re:   regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{4})\b`),
		convert: func(g []string) (int, int, int) {
			return atoi(g[3]), atoi(g[1]), atoi(g[2])
		},
	},
	{
		name: "month_name",
		re:   regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?[\s_-]+(\d{1,2})(?:st|nd|rd|th)?,?[\s_-]+(\d{4})\b`),
		convert: func(g []string) (int, int, int) {
			return atoi(g[3]), monthNumber(g[1]), atoi(g[2])
		},
	},
	{
		name: "day_month_name",
		re:   regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?[\s_-]+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?[\s_-]+(\d{4})\b`),
		convert: func(g []string) (int, int, int) {
			return atoi(g[3]), monthNumber(g[2]), atoi(g[1])
		},
	},
	{
		name: "compact",
		re:   regexp.MustCompile(`\b(20\d{2})(\d{2})(\d{2})\b`),
		convert: func(g []string) (int, int, int) {
			return atoi(g[1]), atoi(g[2]), atoi(g[3])
		},
	},
	{
		// Bare 8-digit token, read as YYYYMMDD first and MMDDYYYY second.
		name: "digits8",
		re:   regexp.MustCompile(`\b(\d{8})\b`),
		convert: func(g []string) (int, int, int) {
			token := g[1]
			year, month, day := atoi(token[:4]), atoi(token[4:6]), atoi(token[6:])
			if plausibleDate(year, month, day) {
				return year, month, day
			}
			return atoi(token[4:]), atoi(token[:2]), atoi(token[2:4])
		},
	},
}

// ExtractDate returns the first date match from name, or nil when nothing
// parses to a numerically consistent date. Absence is never an error.
// Underscores are treated as spaces so word boundaries hold in names like
// "rec_20240301_full.mp4".
func ExtractDate(name string) *DateMatch {
	name = normalizeSeparators(name)
	if strings.TrimSpace(name) == "" {
		return nil
	}
	for _, pattern := range datePatterns {
		groups := pattern.re.FindStringSubmatch(name)
		if groups == nil {
			continue
		}
		year, month, day := pattern.convert(groups)
		if !plausibleDate(year, month, day) {
			continue
		}
		return &DateMatch{
			Raw:     groups[0],
			Pattern: pattern.name,
			Year:    year,
			Month:   month,
			Day:     day,
		}
	}
	return nil
}

func plausibleDate(year, month, day int) bool {
	return year >= 1990 && year <= 2100 && month >= 1 && month <= 12 && day >= 1 && day <= 31
}

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

func monthNumber(prefix string) int {
	return monthNumbers[strings.ToLower(prefix)]
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// normalizeSeparators rewrites underscores as spaces; regexp \b boundaries
// do not fire between digits or letters and underscores.
func normalizeSeparators(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
