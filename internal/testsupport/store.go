// Package testsupport provides fakes and config helpers shared by tests.
package testsupport

import (
	"context"
	"net/http"
	"path"
	"sort"
	"sync"

	"driftsort/internal/remote"
)

// FakeStore is an in-memory remote.Store built from a declared tree. Errors
// can be scripted per folder; each scripted error is consumed by one call.
type FakeStore struct {
	mu       sync.Mutex
	children map[string][]remote.File
	items    map[string]remote.File
	failures map[string][]error
	pageSize int

	ListCalls int
	MetaCalls int
}

// NewFakeStore returns an empty store. Page size 0 means unpaginated.
func NewFakeStore(pageSize int) *FakeStore {
	return &FakeStore{
		children: make(map[string][]remote.File),
		items:    make(map[string]remote.File),
		failures: make(map[string][]error),
		pageSize: pageSize,
	}
}

// AddFolder declares a folder under parentID and returns its identifier.
func (s *FakeStore) AddFolder(parentID, name string) string {
	id := childID(parentID, name)
	folder := remote.File{
		ID:         id,
		Name:       name,
		Kind:       remote.KindFolder,
		ParentID:   parentID,
		ParentName: path.Base(parentID),
	}
	s.addChild(parentID, folder)
	return id
}

// AddFile declares an ordinary file under parentID and returns its
// identifier.
func (s *FakeStore) AddFile(parentID, name string, size int64) string {
	id := childID(parentID, name)
	file := remote.File{
		ID:         id,
		Name:       name,
		Kind:       remote.KindFile,
		Size:       size,
		ParentID:   parentID,
		ParentName: path.Base(parentID),
	}
	s.addChild(parentID, file)
	return id
}

// FailNext scripts err for the next ListChildren call on folderID. Multiple
// calls queue multiple failures.
func (s *FakeStore) FailNext(folderID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[folderID] = append(s.failures[folderID], err)
}

// ListChildren implements remote.Store.
func (s *FakeStore) ListChildren(ctx context.Context, folderID, pageToken string) (remote.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCalls++

	if errs := s.failures[folderID]; len(errs) > 0 {
		err := errs[0]
		s.failures[folderID] = errs[1:]
		return remote.Page{}, err
	}

	files := append([]remote.File{}, s.children[folderID]...)
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	if s.pageSize <= 0 || len(files) <= s.pageSize {
		return remote.Page{Files: files}, nil
	}

	offset := 0
	if pageToken != "" {
		for i, f := range files {
			if f.ID == pageToken {
				offset = i
				break
			}
		}
	}
	end := offset + s.pageSize
	if end >= len(files) {
		return remote.Page{Files: files[offset:]}, nil
	}
	return remote.Page{Files: files[offset:end], NextPageToken: files[end].ID}, nil
}

// GetMetadata implements remote.Store.
func (s *FakeStore) GetMetadata(ctx context.Context, id string) (remote.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MetaCalls++

	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return remote.File{}, remote.NewStatusError("get metadata", http.StatusNotFound, id)
}

func (s *FakeStore) addChild(parentID string, file remote.File) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.children[parentID] = append(s.children[parentID], file)
	s.items[file.ID] = file
	if _, ok := s.items[parentID]; !ok && parentID != "" {
		s.items[parentID] = remote.File{ID: parentID, Name: path.Base(parentID), Kind: remote.KindFolder}
	}
}

func childID(parentID, name string) string {
	if parentID == "" {
		return name
	}
	return path.Join(parentID, name)
}
