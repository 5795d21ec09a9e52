// Package fsremote adapts a local directory tree (for example a mounted
// drive export) to the remote.Store interface so scans can run without a
// live store. Item identifiers are slash-separated paths relative to the
// root; the empty identifier addresses the root itself.
package fsremote

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"driftsort/internal/remote"
)

const defaultPageSize = 100

// Store serves remote.Store calls from a directory on disk.
type Store struct {
	root     string
	pageSize int
}

var _ remote.Store = (*Store)(nil)

// Option customizes the store.
type Option func(*Store)

// WithPageSize bounds the number of children per listing page.
func WithPageSize(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// New creates a filesystem-backed store rooted at dir.
func New(dir string, opts ...Option) (*Store, error) {
	abs, err := filepath.Abs(strings.TrimSpace(dir))
	if err != nil {
		return nil, fmt.Errorf("resolve export dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat export dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("export dir %s is not a directory", abs)
	}
	s := &Store{root: abs, pageSize: defaultPageSize}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ListChildren returns one page of the direct children of folderID, sorted
// by name for deterministic traversal.
func (s *Store) ListChildren(ctx context.Context, folderID, pageToken string) (remote.Page, error) {
	if err := ctx.Err(); err != nil {
		return remote.Page{}, err
	}
	dir, err := s.resolve(folderID)
	if err != nil {
		return remote.Page{}, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return remote.Page{}, mapFSError("list children", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	offset := 0
	if pageToken != "" {
		offset, err = strconv.Atoi(pageToken)
		if err != nil || offset < 0 {
			return remote.Page{}, remote.NewStatusError("list children", http.StatusBadRequest, "invalid page token")
		}
	}
	if offset > len(entries) {
		offset = len(entries)
	}

	end := offset + s.pageSize
	if end > len(entries) {
		end = len(entries)
	}

	page := remote.Page{Files: make([]remote.File, 0, end-offset)}
	for _, entry := range entries[offset:end] {
		file, err := s.snapshot(folderID, entry)
		if err != nil {
			return remote.Page{}, err
		}
		page.Files = append(page.Files, file)
	}
	if end < len(entries) {
		page.NextPageToken = strconv.Itoa(end)
	}
	return page, nil
}

// GetMetadata returns the snapshot for one item by identifier.
func (s *Store) GetMetadata(ctx context.Context, id string) (remote.File, error) {
	if err := ctx.Err(); err != nil {
		return remote.File{}, err
	}
	full, err := s.resolve(id)
	if err != nil {
		return remote.File{}, err
	}
	info, err := os.Stat(full)
	if err != nil {
		return remote.File{}, mapFSError("get metadata", err)
	}
	return s.fileFromInfo(id, info), nil
}

func (s *Store) resolve(id string) (string, error) {
	cleaned := path.Clean(strings.TrimSpace(id))
	if cleaned == "." || cleaned == "/" {
		return s.root, nil
	}
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", remote.NewStatusError("resolve", http.StatusBadRequest, "identifier escapes root")
	}
	return filepath.Join(s.root, filepath.FromSlash(cleaned)), nil
}

func (s *Store) snapshot(parentID string, entry fs.DirEntry) (remote.File, error) {
	info, err := entry.Info()
	if err != nil {
		return remote.File{}, mapFSError("read entry", err)
	}
	id := entry.Name()
	if parentID != "" {
		id = path.Join(parentID, entry.Name())
	}
	return s.fileFromInfo(id, info), nil
}

func (s *Store) fileFromInfo(id string, info fs.FileInfo) remote.File {
	kind := remote.KindFile
	if info.IsDir() {
		kind = remote.KindFolder
	}
	parentID := path.Dir(id)
	if parentID == "." || parentID == "/" {
		parentID = ""
	}
	parentName := path.Base(parentID)
	if parentID == "" {
		parentName = ""
	}
	return remote.File{
		ID:         id,
		Name:       info.Name(),
		Kind:       kind,
		MimeType:   mime.TypeByExtension(path.Ext(info.Name())),
		Size:       info.Size(),
		ParentID:   parentID,
		ParentName: parentName,
		ModifiedAt: info.ModTime(),
	}
}

func mapFSError(op string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return remote.NewStatusError(op, http.StatusNotFound, err.Error())
	case errors.Is(err, fs.ErrPermission):
		return remote.NewStatusError(op, http.StatusForbidden, err.Error())
	default:
		return remote.NewStatusError(op, http.StatusInternalServerError, err.Error())
	}
}
