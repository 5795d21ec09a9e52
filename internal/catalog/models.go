package catalog

import "time"

// Run is one recorded scan over a remote tree.
type Run struct {
	ID             int64
	RootID         string
	StartedAt      time.Time
	FinishedAt     *time.Time
	FilesScanned   int
	GroupsValid    int
	GroupsRejected int
}

// GroupFile is the per-member slice of a persisted session group.
type GroupFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Size int64  `json:"size"`
}

// GroupRecord is a persisted session group. Valid mirrors the validation
// outcome at scan time; RejectReasons is empty for valid groups.
type GroupRecord struct {
	ID            string
	RunID         int64
	Date          string
	Week          *int
	Participants  []string
	HasVideo      bool
	HasAudio      bool
	HasTranscript bool
	HasChat       bool
	Confidence    int
	Valid         bool
	RejectReasons []string
	Files         []GroupFile
}
