package scanner

import (
	"path"
	"strings"

	"driftsort/internal/remote"
)

// videoExtensions maps file extensions to the video role.
var videoExtensions = map[string]struct{}{
	".mp4": {}, ".mov": {}, ".mkv": {}, ".avi": {}, ".webm": {}, ".m4v": {},
}

var audioExtensions = map[string]struct{}{
	".mp3": {}, ".m4a": {}, ".wav": {}, ".aac": {}, ".ogg": {}, ".flac": {},
}

var transcriptExtensions = map[string]struct{}{
	".vtt": {}, ".srt": {},
}

// recordingKeywords is the built-in list of recording-indicative substrings
// used when the caller supplies no inclusion patterns.
var recordingKeywords = []string{
	"recording", "session", "coaching", "zoom", "meeting", "call", "class",
}

// InferRole classifies a file name into a session role. Any name containing
// "chat" is role=chat regardless of extension; .txt files count as
// transcripts only when the name says so.
func InferRole(name string) Role {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "chat") {
		return RoleChat
	}
	ext := path.Ext(lower)
	switch {
	case hasKey(videoExtensions, ext):
		return RoleVideo
	case hasKey(audioExtensions, ext):
		return RoleAudio
	case hasKey(transcriptExtensions, ext):
		return RoleTranscript
	case ext == ".txt" && strings.Contains(lower, "transcript"):
		return RoleTranscript
	default:
		return RoleUnknown
	}
}

// admit decides whether a discovered file is a session-file candidate. Files
// below the size threshold are never admitted, regardless of name content.
// When inclusion patterns are supplied they replace the built-in indicative
// rules entirely.
func admit(file remote.File, opts Options) bool {
	if file.Size < opts.MinFileSize {
		return false
	}
	lower := strings.ToLower(file.Name)

	if len(opts.IncludePatterns) > 0 {
		for _, pattern := range opts.IncludePatterns {
			if strings.Contains(lower, strings.ToLower(pattern)) {
				return true
			}
		}
		return false
	}

	if InferRole(file.Name) != RoleUnknown {
		return true
	}
	for _, keyword := range recordingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return ExtractDate(file.Name) != nil
}

func hasKey(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
