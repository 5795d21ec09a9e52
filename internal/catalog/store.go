package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"driftsort/internal/config"
	"driftsort/internal/matching"
)

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database at the configured
// path and verifies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if cfg.Paths.CatalogPath == "" {
		return nil, errors.New("catalog path is not configured")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Paths.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: cfg.Paths.CatalogPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// BeginRun records the start of a scan over rootID.
func (s *Store) BeginRun(ctx context.Context, rootID string) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO scan_runs (root_id, started_at) VALUES (?, ?)`,
		rootID,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// FinishRun stores the validated matching result under runID and stamps the
// run finished. Groups are written in one transaction with the run update.
func (s *Store) FinishRun(ctx context.Context, runID int64, filesScanned int, result matching.ValidationResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, group := range result.Valid {
		if err := insertGroup(ctx, tx, runID, group, true, nil); err != nil {
			return err
		}
	}
	for _, rejected := range result.Invalid {
		if err := insertGroup(ctx, tx, runID, rejected.Group, false, rejected.Reasons); err != nil {
			return err
		}
	}

	_, err = tx.ExecContext(
		ctx,
		`UPDATE scan_runs
         SET finished_at = ?, files_scanned = ?, groups_valid = ?, groups_rejected = ?
         WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano),
		filesScanned,
		len(result.Valid),
		len(result.Invalid),
		runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

func insertGroup(ctx context.Context, tx *sql.Tx, runID int64, group matching.SessionGroup, valid bool, reasons []string) error {
	files := make([]GroupFile, 0, len(group.Files))
	for _, member := range group.Files {
		files = append(files, GroupFile{
			ID:   member.ID,
			Name: member.Name,
			Role: string(member.Role),
			Size: member.Size,
		})
	}
	filesJSON, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("marshal group files: %w", err)
	}

	var date any
	if group.Date != nil {
		date = group.Date.ISO()
	}
	var week any
	if group.Week != nil {
		week = group.Week.Number
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO session_groups (
            id, run_id, session_date, week, participants,
            has_video, has_audio, has_transcript, has_chat,
            confidence, valid, reject_reasons, files_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		group.ID,
		runID,
		date,
		week,
		nullableString(strings.Join(group.Participants, ", ")),
		boolToInt(group.HasVideo),
		boolToInt(group.HasAudio),
		boolToInt(group.HasTranscript),
		boolToInt(group.HasChat),
		group.Confidence,
		boolToInt(valid),
		nullableString(strings.Join(reasons, "; ")),
		string(filesJSON),
	)
	if err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// LatestRun returns the most recent run, or nil when the catalog is empty.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM scan_runs ORDER BY id DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

// Runs returns recorded runs newest first, capped at limit (0 means all).
func (s *Store) Runs(ctx context.Context, limit int) ([]*Run, error) {
	query := `SELECT ` + runColumns + ` FROM scan_runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GroupsByRun returns the persisted groups of one run, valid first, then by
// descending confidence.
func (s *Store) GroupsByRun(ctx context.Context, runID int64) ([]*GroupRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+groupColumns+` FROM session_groups WHERE run_id = ? ORDER BY valid DESC, confidence DESC, id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	var groups []*GroupRecord
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// GroupsByDate returns valid groups recorded for a session date (ISO form)
// across all runs, newest run first.
func (s *Store) GroupsByDate(ctx context.Context, date string) ([]*GroupRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+groupColumns+` FROM session_groups WHERE session_date = ? AND valid = 1 ORDER BY run_id DESC, confidence DESC`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("query groups by date: %w", err)
	}
	defer rows.Close()

	var groups []*GroupRecord
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// Clear removes all runs and their groups.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scan_runs`)
	if err != nil {
		return 0, fmt.Errorf("clear catalog: %w", err)
	}
	return res.RowsAffected()
}

const runColumns = "id, root_id, started_at, finished_at, files_scanned, groups_valid, groups_rejected"

const groupColumns = "id, run_id, session_date, week, participants, has_video, has_audio, has_transcript, has_chat, confidence, valid, reject_reasons, files_json"

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		run         Run
		startedRaw  string
		finishedRaw sql.NullString
	)
	if err := scanner.Scan(
		&run.ID,
		&run.RootID,
		&startedRaw,
		&finishedRaw,
		&run.FilesScanned,
		&run.GroupsValid,
		&run.GroupsRejected,
	); err != nil {
		return nil, err
	}

	if started, err := time.Parse(time.RFC3339Nano, startedRaw); err == nil {
		run.StartedAt = started
	}
	if finishedRaw.Valid {
		if finished, err := time.Parse(time.RFC3339Nano, finishedRaw.String); err == nil {
			run.FinishedAt = &finished
		}
	}
	return &run, nil
}

func scanGroup(scanner interface{ Scan(dest ...any) error }) (*GroupRecord, error) {
	var (
		group        GroupRecord
		date         sql.NullString
		week         sql.NullInt64
		participants sql.NullString
		hasVideo     int
		hasAudio     int
		hasTrans     int
		hasChat      int
		valid        int
		reasons      sql.NullString
		filesJSON    string
	)
	if err := scanner.Scan(
		&group.ID,
		&group.RunID,
		&date,
		&week,
		&participants,
		&hasVideo,
		&hasAudio,
		&hasTrans,
		&hasChat,
		&group.Confidence,
		&valid,
		&reasons,
		&filesJSON,
	); err != nil {
		return nil, err
	}

	group.Date = date.String
	if week.Valid {
		number := int(week.Int64)
		group.Week = &number
	}
	if participants.Valid && participants.String != "" {
		group.Participants = strings.Split(participants.String, ", ")
	}
	group.HasVideo = hasVideo != 0
	group.HasAudio = hasAudio != 0
	group.HasTranscript = hasTrans != 0
	group.HasChat = hasChat != 0
	group.Valid = valid != 0
	if reasons.Valid && reasons.String != "" {
		group.RejectReasons = strings.Split(reasons.String, "; ")
	}
	if err := json.Unmarshal([]byte(filesJSON), &group.Files); err != nil {
		return nil, fmt.Errorf("unmarshal group files: %w", err)
	}
	return &group, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
