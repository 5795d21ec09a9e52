package patterns

import (
	"context"
	"net/http"
	"reflect"
	"testing"
	"time"

	"driftsort/internal/remote"
	"driftsort/internal/scanner"
	"driftsort/internal/testsupport"
)

func newAccessor(store remote.Store) *remote.Accessor {
	return remote.NewAccessor(store, remote.DefaultPolicy(), nil,
		remote.WithSleeper(func(time.Duration) {}))
}

func TestLearnRecordsConventionsAndNames(t *testing.T) {
	store := testsupport.NewFakeStore(0)
	store.AddFolder("", "root")
	sessions := store.AddFolder("root", "2024-01 Sessions")
	store.AddFile(sessions, "2024-01-08_Coach Dana_Week1.mp4", 1)
	store.AddFile(sessions, "Week2_Dana_Marco.mp4", 1)

	ext := New(nil)
	ext.Learn(context.Background(), newAccessor(store), "root")

	if !ext.learned.hasConvention(ConventionDateFirst) {
		t.Fatal("date-first convention should be learned")
	}
	if !ext.learned.hasConvention(ConventionWeekFirst) {
		t.Fatal("week-first convention should be learned")
	}
	if !ext.learned.isCandidateName("Dana") {
		t.Fatal("Dana should be a learned candidate name")
	}
	if ext.learned.isCandidateName("Week2") {
		t.Fatal("tokens with digits must not become candidate names")
	}
}

func TestLearnFanoutAndDepthBounds(t *testing.T) {
	store := testsupport.NewFakeStore(0)
	store.AddFolder("", "root")
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		sub := store.AddFolder("root", name)
		store.AddFolder(sub, name+"-child")
	}

	ext := New(nil)
	ext.Learn(context.Background(), newAccessor(store), "root")

	// Root plus 3 of 5 subfolders plus their children; the remaining
	// subfolders are never listed.
	if store.ListCalls > 1+learnMaxFanout+learnMaxFanout {
		t.Fatalf("learning pass listed %d folders, want at most %d", store.ListCalls, 1+2*learnMaxFanout)
	}
}

func TestLearnFolderFailureIsNonFatal(t *testing.T) {
	store := testsupport.NewFakeStore(0)
	store.AddFolder("", "root")
	bad := store.AddFolder("root", "Broken")
	good := store.AddFolder("root", "Sessions")
	store.AddFile(good, "Week1_Dana.mp4", 1)
	for i := 0; i < 3; i++ {
		store.FailNext(bad, remote.NewStatusError("list", http.StatusServiceUnavailable, "busy"))
	}

	ext := New(nil)
	ext.Learn(context.Background(), newAccessor(store), "root")

	if !ext.learned.isCandidateName("Dana") {
		t.Fatal("sampling should continue past a failing folder")
	}
}

func TestWithoutLearningSkipsSampling(t *testing.T) {
	store := testsupport.NewFakeStore(0)
	store.AddFolder("", "root")
	sessions := store.AddFolder("root", "Sessions")
	store.AddFile(sessions, "Week1_Dana.mp4", 1)

	ext := New(nil, WithoutLearning())
	ext.Learn(context.Background(), newAccessor(store), "root")

	if store.ListCalls != 0 {
		t.Fatalf("learning disabled but %d folders were listed", store.ListCalls)
	}
	if ext.learned.isCandidateName("Dana") {
		t.Fatal("no names should be learned with learning disabled")
	}

	// Static rules still apply during annotation.
	af := &scanner.AnnotatedFile{File: remote.File{Name: "AC-1042_Accelerator.mp4"}}
	ext.Annotate(af)
	if af.Confidence != bonusStudentID+bonusProgram {
		t.Fatalf("confidence = %d", af.Confidence)
	}
}

func TestAnnotateAwardsInstitutionBonuses(t *testing.T) {
	ext := New(nil)
	ext.learned.conventions[ConventionDateFirst] = struct{}{}
	ext.learned.candidateNames["dana"] = struct{}{}

	af := &scanner.AnnotatedFile{
		File: remote.File{Name: "2024-03-01_AC-1042_Accelerator_Cohort7_with Dana.mp4"},
	}
	af.Confidence = 40
	ext.Annotate(af)

	// student id 15 + program 10 + cohort 5 + convention 10 + coach 10.
	if af.Confidence != 40+bonusStudentID+bonusProgram+bonusCohort+bonusConvention+bonusCoachName {
		t.Fatalf("confidence = %d", af.Confidence)
	}
	if want := []string{"Dana"}; !reflect.DeepEqual(af.Participants, want) {
		t.Fatalf("participants = %v, want %v", af.Participants, want)
	}
}

func TestAnnotateWithoutSignalsAddsNothing(t *testing.T) {
	ext := New(nil)
	af := &scanner.AnnotatedFile{File: remote.File{Name: "notes.txt"}}
	ext.Annotate(af)
	if af.Confidence != 0 || af.Participants != nil {
		t.Fatalf("unexpected enrichment: %+v", af)
	}
}

func TestScannerIntegrationCapsConfidence(t *testing.T) {
	store := testsupport.NewFakeStore(0)
	store.AddFolder("", "root")
	store.AddFile("root", "2024-03-01_Zoom_Recording_Coaching_Call_with Dana_AC-1042_Accelerator_Cohort7_Week5.mp4", 10_000)

	ext := New(nil)
	acc := newAccessor(store)
	s := scanner.New(acc, nil, ext)
	files, err := s.Scan(context.Background(), "root", scanner.Options{MinFileSize: 1})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].Confidence != 100 {
		t.Fatalf("confidence must cap at 100, got %d", files[0].Confidence)
	}
}
