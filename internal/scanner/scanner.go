package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"driftsort/internal/logging"
	"driftsort/internal/remote"
)

const (
	defaultMaxDepth    = 10
	defaultMinFileSize = 1024
)

// Options controls one scan invocation. The zero value gets defaults.
type Options struct {
	// MaxDepth bounds recursion; descending past it is not an error, the
	// walk just stops there.
	MaxDepth int
	// MinFileSize in bytes; smaller files are never admitted.
	MinFileSize int64
	// ExcludeFolders are folder names (case-insensitive) skipped entirely.
	ExcludeFolders []string
	// IncludePatterns, when non-empty, replace the built-in
	// recording-indicative admission rules.
	IncludePatterns []string
	// PageDelay is slept between paginated listing calls in one folder.
	PageDelay time.Duration
	// Visited guarantees each folder identifier is processed at most once.
	// Supplying a shared set lets callers span several roots in one pass.
	Visited map[string]struct{}
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = defaultMaxDepth
	}
	if o.MinFileSize < 0 {
		o.MinFileSize = defaultMinFileSize
	}
	if o.Visited == nil {
		o.Visited = make(map[string]struct{})
	}
	return o
}

// Extension layers richer, institution-specific rules on top of the generic
// extraction. Implementations must treat Learn as best-effort: per-folder
// failures are logged internally and never abort the subsequent full scan.
type Extension interface {
	// Learn samples the tree before the full scan to pick up naming
	// conventions actually in use.
	Learn(ctx context.Context, acc *remote.Accessor, rootID string)
	// Annotate enriches a freshly annotated file in place: extra
	// participants, institution identifiers, bonus confidence.
	Annotate(af *AnnotatedFile)
}

// Scanner traverses a remote folder tree and annotates admitted files.
type Scanner struct {
	acc    *remote.Accessor
	logger *slog.Logger
	ext    Extension
}

// New builds a scanner over the given accessor. ext may be nil for the
// generic rule set.
func New(acc *remote.Accessor, logger *slog.Logger, ext Extension) *Scanner {
	return &Scanner{
		acc:    acc,
		logger: logging.NewComponentLogger(logger, "scanner"),
		ext:    ext,
	}
}

// Scan walks the tree under rootID depth-first and returns the annotated
// files it admitted. A failure inside a child subtree is logged and skipped;
// only a failure listing the root itself aborts the scan.
func (s *Scanner) Scan(ctx context.Context, rootID string, opts Options) ([]AnnotatedFile, error) {
	opts = opts.withDefaults()

	if s.ext != nil {
		s.ext.Learn(ctx, s.acc, rootID)
	}

	var out []AnnotatedFile
	if err := s.walk(ctx, rootID, 0, opts, &out); err != nil {
		return nil, fmt.Errorf("scan root %q: %w", rootID, err)
	}
	s.logger.Info("scan complete",
		logging.String(logging.FieldFolderID, rootID),
		logging.Int("admitted", len(out)))
	return out, nil
}

func (s *Scanner) walk(ctx context.Context, folderID string, depth int, opts Options, out *[]AnnotatedFile) error {
	if _, seen := opts.Visited[folderID]; seen {
		return nil
	}
	opts.Visited[folderID] = struct{}{}

	pageToken := ""
	firstPage := true
	for {
		if !firstPage && opts.PageDelay > 0 {
			time.Sleep(opts.PageDelay)
		}
		firstPage = false

		page, err := s.acc.ListChildren(ctx, folderID, pageToken)
		if err != nil {
			return err
		}

		for _, file := range page.Files {
			if file.IsFolder() {
				s.descend(ctx, file, depth, opts, out)
				continue
			}
			if !admit(file, opts) {
				continue
			}
			*out = append(*out, s.annotate(file))
		}

		if page.NextPageToken == "" {
			return nil
		}
		pageToken = page.NextPageToken
	}
}

// descend recurses into a subfolder, scoping any failure to that subtree so
// sibling folders still get scanned.
func (s *Scanner) descend(ctx context.Context, folder remote.File, depth int, opts Options, out *[]AnnotatedFile) {
	if excludedFolder(folder.Name, opts.ExcludeFolders) {
		return
	}
	if depth+1 > opts.MaxDepth {
		s.logger.Debug("depth limit reached, not descending",
			logging.String(logging.FieldFolderID, folder.ID),
			logging.Int("depth", depth+1))
		return
	}
	if err := s.walk(ctx, folder.ID, depth+1, opts, out); err != nil {
		s.logger.Warn("subtree scan failed, continuing with siblings",
			logging.String(logging.FieldEventType, "subtree_scan_failed"),
			logging.String(logging.FieldFolderID, folder.ID),
			logging.String("folder_name", folder.Name),
			logging.Error(err))
	}
}

// annotate derives all metadata for an admitted file. This is the only place
// AnnotatedFile values are created.
func (s *Scanner) annotate(file remote.File) AnnotatedFile {
	af := AnnotatedFile{File: file}
	af.Role = InferRole(file.Name)

	if date := ExtractDate(file.Name); date != nil {
		af.Date = date
	} else if date := ExtractDate(file.ParentName); date != nil {
		af.Date = date
	}

	af.Participants = ExtractParticipants(file.Name)

	if week := ExtractWeek(file.Name); week != nil {
		af.Week = week
	} else if week := ExtractWeek(file.ParentName); week != nil {
		af.Week = week
	}

	af.Confidence = baseConfidence(af)
	if s.ext != nil {
		s.ext.Annotate(&af)
	}
	af.Confidence = clampConfidence(af.Confidence)
	return af
}

func excludedFolder(name string, excluded []string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, candidate := range excluded {
		if lower == candidate {
			return true
		}
	}
	return false
}
