package matching

import (
	"driftsort/internal/scanner"
)

// SessionGroup is a cluster of files believed to originate from one
// real-world session. Membership is written only by the Engine.
type SessionGroup struct {
	// ID is a generated identifier unique per matching run.
	ID string
	// Files are the members in discovery order.
	Files []scanner.AnnotatedFile

	// Merged metadata: earliest-assigned date and week win, participants
	// union, role flags OR.
	Date          *scanner.DateMatch
	Week          *scanner.WeekMatch
	Participants  []string
	HasVideo      bool
	HasAudio      bool
	HasTranscript bool
	HasChat       bool
	// Confidence is the maximum of member confidences.
	Confidence int
}

// SimilarityVerdict is the outcome of comparing two annotated files. It is
// ephemeral; the engine discards it after the pairing decision.
type SimilarityVerdict struct {
	// Score is the sum of the weights of the rules that matched.
	Score float64
	// Rules names the contributing rules.
	Rules []string
	// Match reports whether Score reached the threshold.
	Match bool
}

// RejectedGroup pairs an invalid group with the reasons it failed
// validation.
type RejectedGroup struct {
	Group   SessionGroup
	Reasons []string
}

// ValidationResult splits groups into valid sessions and rejects.
type ValidationResult struct {
	Valid   []SessionGroup
	Invalid []RejectedGroup
}
