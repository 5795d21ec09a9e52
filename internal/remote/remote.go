package remote

import (
	"context"
	"time"
)

// Kind distinguishes folders from ordinary files.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// File is an immutable snapshot of one object in the remote store at scan
// time. It is not re-fetched unless the accessor's cache entry expires.
type File struct {
	ID         string
	Name       string
	Kind       Kind
	MimeType   string
	Size       int64
	ParentID   string
	ParentName string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// IsFolder reports whether the snapshot describes a folder.
func (f File) IsFolder() bool {
	return f.Kind == KindFolder
}

// Page is one paginated listing result. NextPageToken is empty on the last
// page.
type Page struct {
	Files         []File
	NextPageToken string
}

// Store is the narrow interface the remote folder store must expose.
// Implementations surface failures as StatusError so transient-vs-fatal
// classification is possible.
type Store interface {
	// ListChildren returns one page of the direct children of folderID.
	// Pass an empty pageToken for the first page.
	ListChildren(ctx context.Context, folderID, pageToken string) (Page, error)
	// GetMetadata returns the snapshot for a single item by identifier.
	GetMetadata(ctx context.Context, id string) (File, error)
}
