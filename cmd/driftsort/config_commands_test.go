package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf strings.Builder
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runRoot(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[scan]") {
		t.Fatalf("sample config missing scan section:\n%s", data)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if out, err := runRoot(t, "config", "init", "--path", target); err == nil {
		t.Fatalf("expected init over existing file to fail:\n%s", out)
	}

	if out, err := runRoot(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init --overwrite: %v\n%s", err, out)
	}
}

func TestConfigValidate(t *testing.T) {
	env := setupCLIEnv(t)

	out := env.mustRun(t, "config", "validate")
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[logging]
format = "xml"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if out, err := runRoot(t, "--config", path, "config", "validate"); err == nil {
		t.Fatalf("expected invalid config to fail:\n%s", out)
	}
}

func TestConfigShowRendersTOML(t *testing.T) {
	env := setupCLIEnv(t)

	out := env.mustRun(t, "config", "show")
	if !strings.Contains(out, "[retry]") || !strings.Contains(out, "max_attempts = 3") {
		t.Fatalf("unexpected show output:\n%s", out)
	}
	if !strings.Contains(out, "exists: yes") {
		t.Fatalf("config path status missing:\n%s", out)
	}
}
