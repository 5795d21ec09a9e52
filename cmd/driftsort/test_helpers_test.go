package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// cliEnv is a scratch workspace for command tests: an exported remote tree,
// a catalog location, and a config file pointing at both.
type cliEnv struct {
	baseDir    string
	exportDir  string
	configPath string
}

func setupCLIEnv(t *testing.T) *cliEnv {
	t.Helper()

	base := t.TempDir()
	exportDir := filepath.Join(base, "export")
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		t.Fatalf("mkdir export: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[remote]
export_dir = %q
page_size = 50

[scan]
min_file_size_bytes = 1
page_delay_ms = 0

[paths]
catalog_path = %q

[logging]
level = "error"
`, exportDir, filepath.Join(base, "catalog.db"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliEnv{baseDir: base, exportDir: exportDir, configPath: configPath}
}

// addFile writes a file of the given size under the export tree, creating
// parent folders as needed.
func (e *cliEnv) addFile(t *testing.T, relPath string, size int) {
	t.Helper()
	full := filepath.Join(e.exportDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", relPath, err)
	}
	if err := os.WriteFile(full, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
		t.Fatalf("write %s: %v", relPath, err)
	}
}

// run executes the CLI with the env's config and returns combined output.
func (e *cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (e *cliEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("driftsort %s: %v\noutput:\n%s", strings.Join(args, " "), err, out)
	}
	return out
}
