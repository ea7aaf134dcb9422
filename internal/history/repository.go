package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Repository defines the interface for run and execution persistence.
// This abstraction allows different implementations (SQLite, mock, etc.)
// and enables unit testing without database dependencies.
type Repository interface {
	CreateRun(ctx context.Context, run *Run) error
	CompleteRun(ctx context.Context, id string, status RunStatus) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	CreateSceneExecution(ctx context.Context, exec *SceneExecution) error
	ListSceneExecutions(ctx context.Context, runID string, limit int) ([]SceneExecution, error)
}

// runColumns is the SELECT column list for run queries.
const runColumns = `id, seed, device_count, started_at, completed_at, status`

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateRun inserts a new run record.
func (r *SQLiteRepository) CreateRun(ctx context.Context, run *Run) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if run.Status == "" {
		run.Status = RunRunning
	}

	query := `
		INSERT INTO simulation_runs (id, seed, device_count, started_at, completed_at, status)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Seed,
		run.DeviceCount,
		run.StartedAt.Format(time.RFC3339),
		nullableTime(run.CompletedAt),
		string(run.Status),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrRunExists
		}
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// CompleteRun stamps a run with its final status and completion time.
func (r *SQLiteRepository) CompleteRun(ctx context.Context, id string, status RunStatus) error {
	query := `UPDATE simulation_runs SET completed_at = ?, status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		time.Now().UTC().Format(time.RFC3339),
		string(status),
		id,
	)
	if err != nil {
		return fmt.Errorf("completing run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrRunNotFound
	}
	return nil
}

// GetRun retrieves a run by its unique identifier.
func (r *SQLiteRepository) GetRun(ctx context.Context, id string) (*Run, error) {
	query := `SELECT ` + runColumns + ` FROM simulation_runs WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	run, err := scanRunRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("querying run: %w", err)
	}
	return run, nil
}

// ListRuns retrieves recent runs, newest first.
func (r *SQLiteRepository) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	query := `SELECT ` + runColumns + ` FROM simulation_runs ORDER BY started_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, scanErr := scanRunRow(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scanning run: %w", scanErr)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// CreateSceneExecution inserts a new execution record.
func (r *SQLiteRepository) CreateSceneExecution(ctx context.Context, exec *SceneExecution) error {
	activatedJSON, err := marshalActivatedIDs(exec.ActivatedIDs)
	if err != nil {
		return fmt.Errorf("marshalling activated ids: %w", err)
	}

	query := `
		INSERT INTO scene_executions (
			id, run_id, triggered_at, motion_detected, devices_activated, activated_ids
		) VALUES (?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		exec.ID,
		exec.RunID,
		exec.TriggeredAt.Format(time.RFC3339),
		boolToInt(exec.MotionDetected),
		exec.DevicesActivated,
		activatedJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting execution: %w", err)
	}
	return nil
}

// ListSceneExecutions retrieves recent executions for a run.
func (r *SQLiteRepository) ListSceneExecutions(ctx context.Context, runID string, limit int) ([]SceneExecution, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	query := `
		SELECT id, run_id, triggered_at, motion_detected, devices_activated, activated_ids
		FROM scene_executions
		WHERE run_id = ?
		ORDER BY triggered_at DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying executions: %w", err)
	}
	defer rows.Close()

	var executions []SceneExecution
	for rows.Next() {
		exec, scanErr := scanExecutionRow(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scanning execution: %w", scanErr)
		}
		executions = append(executions, *exec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating executions: %w", err)
	}
	return executions, nil
}

// ─── Row Scanning Helpers ───────────────────────────────────────────────────

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRunRow(scanner rowScanner) (*Run, error) {
	var r Run
	var startedAt, status string
	var completedAt sql.NullString

	err := scanner.Scan(
		&r.ID,
		&r.Seed,
		&r.DeviceCount,
		&startedAt,
		&completedAt,
		&status,
	)
	if err != nil {
		return nil, err
	}

	r.Status = RunStatus(status)
	if t, parseErr := time.Parse(time.RFC3339, startedAt); parseErr == nil {
		r.StartedAt = t
	}
	if completedAt.Valid {
		if t, parseErr := time.Parse(time.RFC3339, completedAt.String); parseErr == nil {
			r.CompletedAt = &t
		}
	}

	return &r, nil
}

func scanExecutionRow(scanner rowScanner) (*SceneExecution, error) {
	var e SceneExecution
	var triggeredAt string
	var motionDetected int
	var activatedJSON sql.NullString

	err := scanner.Scan(
		&e.ID,
		&e.RunID,
		&triggeredAt,
		&motionDetected,
		&e.DevicesActivated,
		&activatedJSON,
	)
	if err != nil {
		return nil, err
	}

	e.MotionDetected = motionDetected != 0
	if t, parseErr := time.Parse(time.RFC3339, triggeredAt); parseErr == nil {
		e.TriggeredAt = t
	}

	if activatedJSON.Valid && activatedJSON.String != "" && activatedJSON.String != "null" {
		if jsonErr := json.Unmarshal([]byte(activatedJSON.String), &e.ActivatedIDs); jsonErr != nil {
			return nil, fmt.Errorf("unmarshalling activated ids: %w", jsonErr)
		}
	}
	if e.ActivatedIDs == nil {
		e.ActivatedIDs = []int{}
	}

	return &e, nil
}

// ─── SQL Helpers ────────────────────────────────────────────────────────────

func nullableTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func marshalActivatedIDs(ids []int) (sql.NullString, error) {
	if len(ids) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "unique constraint")
}
