package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/journal.db",
	}
}

// NewSQLiteStore creates a new SQLite-based journal
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError(err, "failed to create directory").WithDetail("dir", dir)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database").WithDetail("path", cfg.Path)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema").WithDetail("path", cfg.Path)
	}

	return store, nil
}

func dbError(err error, message string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).WithCode(mdwerror.CodeDatabaseError)
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		duration_ns INTEGER NOT NULL,
		source TEXT NOT NULL,
		mode TEXT NOT NULL,
		status TEXT NOT NULL,
		error_code TEXT,
		error_severity TEXT,
		error_message TEXT,
		tokens INTEGER NOT NULL DEFAULT 0,
		statements INTEGER NOT NULL DEFAULT 0,
		prints INTEGER NOT NULL DEFAULT 0,
		iterations INTEGER NOT NULL DEFAULT 0,
		output TEXT,
		metadata TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
	CREATE INDEX IF NOT EXISTS idx_runs_error_code ON runs(error_code);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run, filling in a missing id and start time
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prepare(run)

	var metadataJSON []byte
	if run.Metadata != nil {
		metadataJSON, _ = json.Marshal(run.Metadata)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, duration_ns, source, mode, status, error_code,
			error_severity, error_message, tokens, statements, prints, iterations, output, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt, int64(run.Duration), run.Source, string(run.Mode), string(run.Status),
		nullable(run.ErrorCode), nullable(run.ErrorSeverity), nullable(run.ErrorMessage),
		run.Tokens, run.Statements, run.Prints, run.Iterations, truncateOutput(run.Output), metadataJSON)

	if err != nil {
		return dbError(err, "failed to insert run").WithDetail("run_id", run.ID)
	}

	return nil
}

func prepare(run *Run) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	if run.Mode == "" {
		run.Mode = ModeRun
	}
	if run.Status == "" {
		run.Status = StatusOK
	}
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

const selectRuns = `SELECT id, started_at, duration_ns, source, mode, status, error_code,
	error_severity, error_message, tokens, statements, prints, iterations, output, metadata FROM runs`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (*Run, error) {
	var (
		run                           Run
		durationNS                    int64
		mode, status                  string
		errorCode, errorSev, errorMsg sql.NullString
		output, metadataJSON          sql.NullString
	)

	if err := row.Scan(&run.ID, &run.StartedAt, &durationNS, &run.Source, &mode, &status,
		&errorCode, &errorSev, &errorMsg, &run.Tokens, &run.Statements, &run.Prints,
		&run.Iterations, &output, &metadataJSON); err != nil {
		return nil, err
	}

	run.Duration = time.Duration(durationNS)
	run.Mode = Mode(mode)
	run.Status = Status(status)
	run.ErrorCode = errorCode.String
	run.ErrorSeverity = errorSev.String
	run.ErrorMessage = errorMsg.String
	run.Output = output.String
	if metadataJSON.Valid && metadataJSON.String != "" {
		json.Unmarshal([]byte(metadataJSON.String), &run.Metadata)
	}

	return &run, nil
}

// Get returns the run with the given id. A unique id prefix of at least
// four characters is accepted as well.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, err := scanRun(s.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id))
	if err == nil {
		return run, nil
	}
	if err != sql.ErrNoRows {
		return nil, dbError(err, "failed to read run").WithDetail("run_id", id)
	}

	if len(id) < 4 {
		return nil, notFound(id)
	}

	rows, err := s.db.QueryContext(ctx, selectRuns+` WHERE id LIKE ? LIMIT 2`, id+"%")
	if err != nil {
		return nil, dbError(err, "failed to read run").WithDetail("run_id", id)
	}
	defer rows.Close()

	var matches []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, dbError(err, "failed to scan run")
		}
		matches = append(matches, run)
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, notFound(id)
	default:
		return nil, mdwerror.Newf(mdwerror.CodeInvalidInput, "run id prefix %q is ambiguous", id).
			WithDetail("run_id", id)
	}
}

func notFound(id string) error {
	return mdwerror.Newf(mdwerror.CodeNotFound, "run %q not found", id).WithDetail("run_id", id)
}

// List retrieves runs based on filter criteria, newest first
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := selectRuns + ` WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.Mode != "" {
		query += " AND mode = ?"
		args = append(args, string(filter.Mode))
	}
	if filter.Source != "" {
		query += " AND source = ?"
		args = append(args, filter.Source)
	}
	if filter.ErrorCode != "" {
		query += " AND error_code = ?"
		args = append(args, filter.ErrorCode)
	}
	if !filter.Since.IsZero() {
		query += " AND started_at >= ?"
		args = append(args, filter.Since)
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query runs")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, dbError(err, "failed to scan run")
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Stats returns journal statistics
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{
		ByStatus:    make(map[string]int64),
		ByErrorCode: make(map[string]int64),
	}

	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), AVG(duration_ns), COUNT(DISTINCT source) FROM runs`).
		Scan(&stats.Total, &avg, &stats.Sources); err != nil {
		return nil, dbError(err, "failed to read journal stats")
	}
	if avg.Valid {
		stats.AvgDuration = time.Duration(avg.Float64)
	}

	if err := s.countInto(ctx, `SELECT status, COUNT(*) FROM runs GROUP BY status`, stats.ByStatus); err != nil {
		return nil, err
	}
	if err := s.countInto(ctx,
		`SELECT error_code, COUNT(*) FROM runs WHERE error_code IS NOT NULL GROUP BY error_code`,
		stats.ByErrorCode); err != nil {
		return nil, err
	}

	// Last run time
	var lastRun time.Time
	err := s.db.QueryRowContext(ctx, `SELECT started_at FROM runs ORDER BY started_at DESC LIMIT 1`).Scan(&lastRun)
	switch {
	case err == nil:
		stats.LastRun = lastRun
	case err != sql.ErrNoRows:
		return nil, dbError(err, "failed to read last run")
	}

	return stats, nil
}

func (s *SQLiteStore) countInto(ctx context.Context, query string, into map[string]int64) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return dbError(err, "failed to read journal stats")
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return dbError(err, "failed to scan journal stats")
		}
		into[key] = count
	}
	return rows.Err()
}

// Vacuum optimizes the database
func (s *SQLiteStore) Vacuum(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `VACUUM`); err != nil {
		return dbError(err, "failed to vacuum journal")
	}
	return nil
}

// Prune removes runs older than the specified duration
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, dbError(err, "failed to prune runs")
	}
	deleted, _ := result.RowsAffected()

	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
