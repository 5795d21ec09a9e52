package patterns

import (
	"context"
	"strings"

	"driftsort/internal/logging"
	"driftsort/internal/remote"
)

// Sampling bounds for the learning pass.
const (
	learnMaxDepth  = 2
	learnMaxFanout = 3
)

// learnedState accumulates what the shallow pass observed about one tree.
type learnedState struct {
	// folderNamesByDepth records folder names seen per depth level.
	folderNamesByDepth map[int][]string
	// conventions marks which naming schemes appeared in sampled names.
	conventions map[Convention]struct{}
	// candidateNames holds capitalized tokens that look like participant
	// names, keyed lowercase.
	candidateNames map[string]struct{}
}

func newLearnedState() *learnedState {
	return &learnedState{
		folderNamesByDepth: make(map[int][]string),
		conventions:        make(map[Convention]struct{}),
		candidateNames:     make(map[string]struct{}),
	}
}

func (l *learnedState) hasConvention(c Convention) bool {
	_, ok := l.conventions[c]
	return ok
}

func (l *learnedState) isCandidateName(name string) bool {
	_, ok := l.candidateNames[strings.ToLower(name)]
	return ok
}

// structuralWords never count as candidate participant names during
// learning.
var structuralWords = map[string]struct{}{
	"week": {}, "session": {}, "module": {}, "cohort": {}, "coaching": {},
	"coach": {}, "mentor": {},
	"recording": {}, "recordings": {}, "zoom": {}, "meeting": {}, "call": {},
	"video": {}, "audio": {}, "transcript": {}, "chat": {}, "group": {},
	"archive": {}, "shared": {}, "drive": {}, "folder": {}, "files": {},
	"sessions": {}, "students": {}, "coaches": {}, "program": {},
}

// sample visits one folder during the learning pass and recurses into at
// most learnMaxFanout subfolders until learnMaxDepth.
func (e *Extension) sample(ctx context.Context, acc *remote.Accessor, folderID string, depth int) {
	if depth > learnMaxDepth {
		return
	}

	page, err := acc.ListChildren(ctx, folderID, "")
	if err != nil {
		e.logger.Warn("learning pass skipped a folder",
			logging.String(logging.FieldEventType, "learning_folder_skipped"),
			logging.String(logging.FieldFolderID, folderID),
			logging.Error(err))
		return
	}

	descended := 0
	for _, file := range page.Files {
		e.observeName(file.Name)
		if !file.IsFolder() {
			continue
		}
		e.learned.folderNamesByDepth[depth] = append(e.learned.folderNamesByDepth[depth], file.Name)
		if descended < learnMaxFanout {
			descended++
			e.sample(ctx, acc, file.ID, depth+1)
		}
	}
}

// observeName records conventions and candidate participant names from one
// sampled name.
func (e *Extension) observeName(name string) {
	for convention, probe := range conventionProbes {
		if probe.MatchString(name) {
			e.learned.conventions[convention] = struct{}{}
		}
	}

	for _, word := range strings.FieldsFunc(name, isNameSeparator) {
		if len(word) < 2 || !isCapitalized(word) {
			continue
		}
		lower := strings.ToLower(word)
		if _, structural := structuralWords[lower]; structural {
			continue
		}
		if hasDigit(word) {
			continue
		}
		e.learned.candidateNames[lower] = struct{}{}
	}
}

func isNameSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ', '(', ')', '[', ']':
		return true
	}
	return false
}

func isCapitalized(word string) bool {
	first := word[0]
	if first < 'A' || first > 'Z' {
		return false
	}
	rest := word[1:]
	return rest == strings.ToLower(rest)
}

func hasDigit(word string) bool {
	return strings.ContainsAny(word, "0123456789")
}
