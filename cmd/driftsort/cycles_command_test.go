package main

import (
	"strings"
	"testing"
)

func TestCyclesDetectKnownRenewal(t *testing.T) {
	env := setupCLIEnv(t)

	out := env.mustRun(t, "cycles", "detect", "Marina", "--week", "25")
	if !strings.Contains(out, "cycle 2, week 1 (renewal: yes)") {
		t.Fatalf("unexpected detect output:\n%s", out)
	}

	out = env.mustRun(t, "cycles", "detect", "Marina", "--week", "24")
	if !strings.Contains(out, "cycle 1, week 24 (renewal: no)") {
		t.Fatalf("unexpected detect output:\n%s", out)
	}
}

func TestCyclesDetectUnknownStudent(t *testing.T) {
	env := setupCLIEnv(t)

	out := env.mustRun(t, "cycles", "detect", "Quentin", "--week", "7")
	if !strings.Contains(out, "single enrollment, week 7") {
		t.Fatalf("unexpected detect output:\n%s", out)
	}
}

func TestCyclesDetectOnboardingToken(t *testing.T) {
	env := setupCLIEnv(t)

	out := env.mustRun(t, "cycles", "detect", "Marina", "--week", "00A")
	if !strings.Contains(out, "week 0.1") {
		t.Fatalf("unexpected detect output:\n%s", out)
	}
}

func TestCyclesDetectRejectsBadToken(t *testing.T) {
	env := setupCLIEnv(t)

	if _, err := env.run(t, "cycles", "detect", "Marina", "--week", "abc"); err == nil {
		t.Fatal("expected bad week token to fail")
	}
}

func TestCyclesBoundariesFindsRenewal(t *testing.T) {
	env := setupCLIEnv(t)
	env.addFile(t, "Sessions/2024-01-05/Coaching_Noor-Amir_Week22.mp4", 4096)
	env.addFile(t, "Sessions/2024-01-12/Coaching_Noor-Amir_Week23.mp4", 4096)
	env.addFile(t, "Sessions/2024-01-19/Coaching_Noor-Amir_Week1.mp4", 4096)
	env.mustRun(t, "scan")

	out := env.mustRun(t, "cycles", "boundaries", "Noor")
	if !strings.Contains(out, "likely cycle boundaries") {
		t.Fatalf("boundary not detected:\n%s", out)
	}
	if !strings.Contains(out, "new cycle at 2024-01-19") {
		t.Fatalf("boundary date missing:\n%s", out)
	}
}

func TestCyclesBoundariesNoSessions(t *testing.T) {
	env := setupCLIEnv(t)
	env.mustRun(t, "scan")

	out := env.mustRun(t, "cycles", "boundaries", "Nobody")
	if !strings.Contains(out, "Catalog is empty") && !strings.Contains(out, "No recorded sessions") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
