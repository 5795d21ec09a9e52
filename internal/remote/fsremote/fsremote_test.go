package fsremote

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"driftsort/internal/remote"
)

func newExportDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Coaching", "Week 5"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]string{
		"Coaching/Week 5/2024-03-01_Alex.mp4": "payload",
		"Coaching/notes.txt":                  "notes",
		"memo.pdf":                            "memo",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestListChildrenRootSorted(t *testing.T) {
	store, err := New(newExportDir(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	page, err := store.ListChildren(context.Background(), "", "")
	if err != nil {
		t.Fatalf("ListChildren: %v", err)
	}
	if len(page.Files) != 2 {
		t.Fatalf("expected 2 children, got %d", len(page.Files))
	}
	if page.Files[0].Name != "Coaching" || !page.Files[0].IsFolder() {
		t.Fatalf("expected Coaching folder first, got %+v", page.Files[0])
	}
	if page.Files[1].Name != "memo.pdf" || page.Files[1].IsFolder() {
		t.Fatalf("expected memo.pdf second, got %+v", page.Files[1])
	}
	if page.NextPageToken != "" {
		t.Fatalf("unexpected page token %q", page.NextPageToken)
	}
}

func TestListChildrenPagination(t *testing.T) {
	store, err := New(newExportDir(t), WithPageSize(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	first, err := store.ListChildren(ctx, "", "")
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first.Files) != 1 || first.NextPageToken == "" {
		t.Fatalf("expected paged result, got %+v", first)
	}
	second, err := store.ListChildren(ctx, "", first.NextPageToken)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(second.Files) != 1 || second.NextPageToken != "" {
		t.Fatalf("expected final page, got %+v", second)
	}
}

func TestChildIdentifiersAndParents(t *testing.T) {
	store, err := New(newExportDir(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	page, err := store.ListChildren(context.Background(), "Coaching/Week 5", "")
	if err != nil {
		t.Fatalf("ListChildren: %v", err)
	}
	if len(page.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(page.Files))
	}
	file := page.Files[0]
	if file.ID != "Coaching/Week 5/2024-03-01_Alex.mp4" {
		t.Fatalf("unexpected id %q", file.ID)
	}
	if file.ParentID != "Coaching/Week 5" || file.ParentName != "Week 5" {
		t.Fatalf("unexpected parent %q / %q", file.ParentID, file.ParentName)
	}
}

func TestGetMetadataMissingIsNotFound(t *testing.T) {
	store, err := New(newExportDir(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = store.GetMetadata(context.Background(), "nope/missing.mp4")
	if err == nil {
		t.Fatal("expected error for missing item")
	}
	if !remote.IsNotFound(err) {
		t.Fatalf("expected not-found classification, got %v", err)
	}
}

func TestResolveRejectsEscape(t *testing.T) {
	store, err := New(newExportDir(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := store.GetMetadata(context.Background(), "../etc/passwd"); err == nil {
		t.Fatal("expected traversal rejection")
	}
}
