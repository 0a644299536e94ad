package apply

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Runner executes generated SQL scripts against PostgreSQL and records them
// in a ledger so a script is not applied twice by accident.
type Runner struct {
	db *sql.DB
}

// ErrAlreadyApplied is returned when a script's checksum is already recorded
// in the ledger and force was not set.
var ErrAlreadyApplied = errors.New("script already applied")

// Open connects to PostgreSQL and ensures the ledger table exists.
func Open(ctx context.Context, connStr string) (*Runner, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	r := &Runner{db: db}
	if err := r.initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// Close closes the database connection.
func (r *Runner) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Runner) initialize(ctx context.Context) error {
	createTableSQL := `
		CREATE TABLE IF NOT EXISTS schema_scripts (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			checksum CHAR(64) NOT NULL UNIQUE,
			status VARCHAR(20) NOT NULL DEFAULT 'applied',
			error_message TEXT,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create schema_scripts table: %w", err)
	}

	indexSQL := "CREATE INDEX IF NOT EXISTS idx_schema_scripts_name ON schema_scripts (name)"
	_, _ = r.db.ExecContext(ctx, indexSQL)

	return nil
}

// Apply executes script inside one transaction and records the outcome in the
// ledger. A checksum already present in the ledger aborts with
// ErrAlreadyApplied unless force is set.
func (r *Runner) Apply(ctx context.Context, name, script string, force bool) error {
	sum := Checksum(script)

	if !force {
		applied, err := r.IsApplied(ctx, sum)
		if err != nil {
			return err
		}
		if applied {
			return fmt.Errorf("%w: %s (checksum %s)", ErrAlreadyApplied, name, sum[:12])
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, script); err != nil {
		_ = tx.Rollback()
		if recErr := r.record(ctx, name, sum, "failed", err.Error()); recErr != nil {
			return fmt.Errorf("failed to execute %s: %w (ledger update also failed: %v)", name, err, recErr)
		}
		return fmt.Errorf("failed to execute %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", name, err)
	}

	return r.record(ctx, name, sum, "applied", "")
}

// IsApplied reports whether a script with the given checksum has been applied.
func (r *Runner) IsApplied(ctx context.Context, checksum string) (bool, error) {
	var status string
	query := "SELECT status FROM schema_scripts WHERE checksum = $1"
	err := r.db.QueryRowContext(ctx, query, checksum).Scan(&status)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query schema_scripts: %w", err)
	}
	return status == "applied", nil
}

func (r *Runner) record(ctx context.Context, name, checksum, status, errorMessage string) error {
	query := `
		INSERT INTO schema_scripts (name, checksum, status, error_message, applied_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), CURRENT_TIMESTAMP)
		ON CONFLICT (checksum) DO UPDATE SET
			status = EXCLUDED.status,
			error_message = EXCLUDED.error_message,
			applied_at = EXCLUDED.applied_at
	`
	if _, err := r.db.ExecContext(ctx, query, name, checksum, status, errorMessage); err != nil {
		return fmt.Errorf("failed to record script %s: %w", name, err)
	}
	return nil
}

// ScriptRecord is one ledger row.
type ScriptRecord struct {
	Name      string
	Checksum  string
	Status    string
	AppliedAt time.Time
}

// List returns all ledger rows, oldest first.
func (r *Runner) List(ctx context.Context) ([]ScriptRecord, error) {
	query := "SELECT name, checksum, status, applied_at FROM schema_scripts ORDER BY applied_at, id"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schema_scripts: %w", err)
	}
	defer rows.Close()

	var records []ScriptRecord
	for rows.Next() {
		var rec ScriptRecord
		if err := rows.Scan(&rec.Name, &rec.Checksum, &rec.Status, &rec.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schema_scripts row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Checksum returns the hex SHA-256 of a script's contents. The ledger keys on
// content, not file name, so a renamed copy of an applied script is caught.
func Checksum(script string) string {
	sum := sha256.Sum256([]byte(script))
	return hex.EncodeToString(sum[:])
}
