package scanner

import (
	"testing"

	"driftsort/internal/remote"
)

func candidate(name string, size int64) remote.File {
	return remote.File{ID: name, Name: name, Kind: remote.KindFile, Size: size}
}

func TestInferRole(t *testing.T) {
	cases := []struct {
		name string
		want Role
	}{
		{"session.mp4", RoleVideo},
		{"session.MOV", RoleVideo},
		{"call.m4a", RoleAudio},
		{"captions.vtt", RoleTranscript},
		{"meeting_transcript.txt", RoleTranscript},
		{"notes.txt", RoleUnknown},
		{"chat.txt", RoleChat},
		{"meeting_saved_chat.mp4", RoleChat},
		{"memo.pdf", RoleUnknown},
	}
	for _, tc := range cases {
		if got := InferRole(tc.name); got != tc.want {
			t.Fatalf("InferRole(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestAdmitRejectsBelowMinSize(t *testing.T) {
	opts := Options{MinFileSize: 1024}
	// Name is as recording-like as it gets; size still wins.
	file := candidate("Zoom_Recording_Coaching_Session_Week5.mp4", 512)
	if admit(file, opts) {
		t.Fatal("file below min size must never be admitted")
	}
}

func TestAdmitBuiltInRules(t *testing.T) {
	opts := Options{MinFileSize: 1024}
	cases := []struct {
		name string
		want bool
	}{
		{"2024-03-01_Coaching_Alex-Sam_Week5.mp4", true},
		{"2024-03-01_Coaching_Alex-Sam_Week5.vtt", true},
		{"unrelated_memo.pdf", false},
		{"team recording notes.pdf", true},
		{"2024-06-12 agenda.pdf", true},
		{"random.bin", false},
	}
	for _, tc := range cases {
		if got := admit(candidate(tc.name, 2048), opts); got != tc.want {
			t.Fatalf("admit(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAdmitInclusionPatternsReplaceBuiltIns(t *testing.T) {
	opts := Options{MinFileSize: 1, IncludePatterns: []string{"cohort7"}}
	if !admit(candidate("Cohort7_week1.bin", 10), opts) {
		t.Fatal("expected inclusion pattern match")
	}
	// A video name that would pass the built-ins fails the explicit list.
	if admit(candidate("session.mp4", 10), opts) {
		t.Fatal("inclusion patterns must replace the built-in rules")
	}
}
