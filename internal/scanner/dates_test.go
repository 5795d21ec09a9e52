package scanner

import "testing"

func TestExtractDatePatterns(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		pattern string
		year    int
		month   int
		day     int
	}{
		{"iso", "2024-03-01_Coaching_Alex.mp4", "iso", 2024, 3, 1},
		{"iso slash", "backup 2024/03/01 copy", "iso_slash", 2024, 3, 1},
		{"us dashes", "session 01-15-2024.mp4", "us", 2024, 1, 15},
		{"us slashes", "01/15/2024 recording", "us", 2024, 1, 15},
		{"month name", "March 1, 2024 coaching call", "month_name", 2024, 3, 1},
		{"day month name", "1 March 2024 session", "day_month_name", 2024, 3, 1},
		{"compact", "rec_20240301_full.mp4", "compact", 2024, 3, 1},
		{"bare digits mmddyyyy", "03152024_zoom.mp4", "digits8", 2024, 3, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractDate(tc.in)
			if got == nil {
				t.Fatalf("no match for %q", tc.in)
			}
			if got.Pattern != tc.pattern {
				t.Fatalf("pattern = %q, want %q", got.Pattern, tc.pattern)
			}
			if got.Year != tc.year || got.Month != tc.month || got.Day != tc.day {
				t.Fatalf("got %d-%d-%d, want %d-%d-%d", got.Year, got.Month, got.Day, tc.year, tc.month, tc.day)
			}
		})
	}
}

func TestExtractDateComponentsAlwaysConsistent(t *testing.T) {
	inputs := []string{
		"2024-01-15", "01/15/2024", "20240115", "15 January 2024", "Jan 15 2024",
	}
	for _, in := range inputs {
		got := ExtractDate(in)
		if got == nil {
			t.Fatalf("expected match for %q", in)
		}
		if got.Month < 1 || got.Month > 12 {
			t.Fatalf("%q: month %d out of range", in, got.Month)
		}
		if got.Day < 1 || got.Day > 31 {
			t.Fatalf("%q: day %d out of range", in, got.Day)
		}
	}
}

func TestExtractDateNoMatch(t *testing.T) {
	for _, in := range []string{"", "unrelated_memo.pdf", "week5 notes", "99-99-2024"} {
		if got := ExtractDate(in); got != nil {
			t.Fatalf("unexpected match %+v for %q", got, in)
		}
	}
}

func TestExtractDateRejectsImplausibleComponents(t *testing.T) {
	// 2024-13-45 matches the iso shape but is not a date.
	if got := ExtractDate("2024-13-45_notes"); got != nil {
		t.Fatalf("implausible date should not match, got %+v", got)
	}
}
