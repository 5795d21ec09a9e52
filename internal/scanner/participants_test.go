package scanner

import (
	"reflect"
	"testing"
)

func TestExtractParticipants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"dash pair", "2024-03-01_Coaching_Alex-Sam_Week5.mp4", []string{"Alex", "Sam"}},
		{"with clause", "Zoom Recording with Jordan.mp4", []string{"Jordan"}},
		{"and pair", "Session Maya and Noah 2024-01-10.mov", []string{"Maya", "Noah"}},
		{"coaching prefix", "coaching_Priya_week3.m4a", []string{"Priya"}},
		{"stopwords filtered", "Zoom Meeting Recording.mp4", nil},
		{"no candidates", "20240301.mp4", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractParticipants(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractParticipants(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractParticipantsUnionsPatterns(t *testing.T) {
	got := ExtractParticipants("Coaching Lena with Marco_Week2.mp4")
	want := []string{"Lena", "Marco"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNormalizeParticipant(t *testing.T) {
	if got := normalizeParticipant("ALEX"); got != "Alex" {
		t.Fatalf("expected title casing, got %q", got)
	}
	if got := normalizeParticipant("Zoom"); got != "" {
		t.Fatalf("stopword should be dropped, got %q", got)
	}
	if got := normalizeParticipant("a"); got != "" {
		t.Fatalf("single letters should be dropped, got %q", got)
	}
}
