package textutil

import "testing"

func TestSimilarityIdentical(t *testing.T) {
	if got := Similarity("Coaching_Week5", "coaching_week5"); got != 1 {
		t.Fatalf("expected 1 for case-insensitive match, got %f", got)
	}
}

func TestSimilarityEmpty(t *testing.T) {
	if got := Similarity("", "anything"); got != 0 {
		t.Fatalf("expected 0 when one side is empty, got %f", got)
	}
	if got := Similarity("  ", ""); got != 1 {
		t.Fatalf("expected 1 for two empty strings, got %f", got)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := "2024-03-01_Coaching_Alex-Sam_Week5"
	b := "2024-03-01_Coaching_Alex-Sam_Week5_audio"
	if Similarity(a, b) != Similarity(b, a) {
		t.Fatalf("similarity is not symmetric")
	}
}

func TestSimilarityCloseNames(t *testing.T) {
	got := Similarity("session recording alex", "session recording alexa")
	if got < 0.9 {
		t.Fatalf("expected high similarity, got %f", got)
	}
	if got := Similarity("budget_q3.xlsx", "coaching_call_week_12"); got > 0.4 {
		t.Fatalf("expected low similarity for unrelated names, got %f", got)
	}
}

func TestSanitizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alex Rivera", "alex_rivera"},
		{"  ", "unknown"},
		{"Week-05", "week-05"},
		{"***", "unknown"},
	}
	for _, tc := range cases {
		if got := SanitizeToken(tc.in); got != tc.want {
			t.Fatalf("SanitizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitWords(t *testing.T) {
	got := SplitWords("2024-03-01_Coaching Alex.mp4")
	want := []string{"2024", "03", "01", "Coaching", "Alex", "mp4"}
	if len(got) != len(want) {
		t.Fatalf("unexpected word count: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
}
