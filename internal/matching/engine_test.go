package matching

import (
	"testing"

	"driftsort/internal/logging"
	"driftsort/internal/scanner"
)

func TestMatchClustersSessionVariants(t *testing.T) {
	files := []scanner.AnnotatedFile{
		annotated("2024-03-01_Coaching_Alex-Sam_Week5.mp4", "folderA", scanner.RoleVideo),
		annotated("2024-03-01_Coaching_Alex-Sam_Week5.vtt", "folderA", scanner.RoleTranscript),
		annotated("2024-03-08_Coaching_Alex-Sam_Week6.mp4", "folderB", scanner.RoleVideo),
	}
	files[0].Confidence = 75
	files[1].Confidence = 40
	files[2].Confidence = 75

	engine := NewEngine(DefaultThreshold, logging.NewNop())
	groups := engine.Match(files)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	session := groups[0]
	if len(session.Files) != 2 {
		t.Fatalf("expected video+transcript in first group, got %d files", len(session.Files))
	}
	if session.ID == "" {
		t.Fatal("group ID not assigned")
	}
	if session.Date == nil || session.Date.ISO() != "2024-03-01" {
		t.Fatalf("group date = %+v, want 2024-03-01", session.Date)
	}
	if session.Week == nil || session.Week.Number != 5 {
		t.Fatalf("group week = %+v, want 5", session.Week)
	}
	if len(session.Participants) != 2 || session.Participants[0] != "Alex" || session.Participants[1] != "Sam" {
		t.Fatalf("participants = %v, want [Alex Sam]", session.Participants)
	}
	if !session.HasVideo || !session.HasTranscript {
		t.Fatalf("role flags wrong: %+v", session)
	}
	if session.HasAudio || session.HasChat {
		t.Fatalf("unexpected role flags: %+v", session)
	}
	if session.Confidence != 75 {
		t.Fatalf("group confidence = %d, want member max 75", session.Confidence)
	}

	if len(groups[1].Files) != 1 || groups[1].Week == nil || groups[1].Week.Number != 6 {
		t.Fatalf("second group wrong: %+v", groups[1])
	}
}

func TestMatchEachFileJoinsOneGroup(t *testing.T) {
	files := []scanner.AnnotatedFile{
		annotated("2024-03-01_Coaching_Alex-Sam_Week5.mp4", "folderA", scanner.RoleVideo),
		annotated("2024-03-01_Coaching_Alex-Sam_Week5.m4a", "folderA", scanner.RoleAudio),
		annotated("2024-03-01_Coaching_Alex-Sam_Week5.vtt", "folderA", scanner.RoleTranscript),
	}

	engine := NewEngine(DefaultThreshold, logging.NewNop())
	groups := engine.Match(files)

	if len(groups) != 1 {
		t.Fatalf("expected a single group, got %d", len(groups))
	}
	if len(groups[0].Files) != 3 {
		t.Fatalf("expected 3 members, got %d", len(groups[0].Files))
	}
	if !groups[0].HasVideo || !groups[0].HasAudio || !groups[0].HasTranscript {
		t.Fatalf("role flags wrong: %+v", groups[0])
	}
}

func TestMatchFirstPivotClaimsSharedMember(t *testing.T) {
	// The transcript is similar to both videos, but the earlier pivot claims
	// it; the second video neither matches the first directly nor gets a
	// second chance at the transcript.
	files := []scanner.AnnotatedFile{
		annotated("2024-05-01_Coaching_Alexandra.mp4", "folderA", scanner.RoleVideo),
		annotated("2024-05-01_Coaching_Alexandra-Sam.vtt", "folderA", scanner.RoleTranscript),
		annotated("2024-05-01_Coaching_Sam.mp4", "folderB", scanner.RoleVideo),
	}

	engine := NewEngine(DefaultThreshold, logging.NewNop())
	groups := engine.Match(files)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0].Files) != 2 || groups[0].Files[1].Role != scanner.RoleTranscript {
		t.Fatalf("first pivot should claim the transcript: %+v", groups[0])
	}
	if len(groups[1].Files) != 1 || groups[1].Files[0].Name != "2024-05-01_Coaching_Sam.mp4" {
		t.Fatalf("second video should stand alone: %+v", groups[1])
	}
}

func TestMatchDeterministic(t *testing.T) {
	files := []scanner.AnnotatedFile{
		annotated("2024-03-01_Coaching_Alex-Sam_Week5.mp4", "folderA", scanner.RoleVideo),
		annotated("2024-03-01_Coaching_Alex-Sam_Week5.vtt", "folderA", scanner.RoleTranscript),
		annotated("2024-04-12_with_Dana.mp4", "folderB", scanner.RoleVideo),
	}

	engine := NewEngine(DefaultThreshold, logging.NewNop())
	first := engine.Match(files)
	second := engine.Match(files)

	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i].Files) != len(second[i].Files) {
			t.Fatalf("group %d sizes differ", i)
		}
		for j := range first[i].Files {
			if first[i].Files[j].ID != second[i].Files[j].ID {
				t.Fatalf("group %d member %d differs: %q vs %q", i, j, first[i].Files[j].ID, second[i].Files[j].ID)
			}
		}
	}
}

func TestMatchEmptyInput(t *testing.T) {
	engine := NewEngine(0, logging.NewNop())
	if groups := engine.Match(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}
