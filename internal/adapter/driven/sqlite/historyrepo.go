package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
	"github.com/ericfisherdev/prsizer/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.HistoryStore = (*HistoryRepo)(nil)

// HistoryRepo is the SQLite implementation of the HistoryStore port interface.
type HistoryRepo struct {
	db *DB
}

// NewHistoryRepo creates a new HistoryRepo backed by the given DB.
func NewHistoryRepo(db *DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Record inserts one relabel audit row. Removed labels are stored as a
// comma-joined list; label names cannot contain commas on GitHub.
func (r *HistoryRepo) Record(ctx context.Context, relabel model.Relabel) error {
	const query = `
		INSERT INTO relabels (repo_full_name, pr_number, change_size, label, added, removed, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.conn.ExecContext(ctx, query,
		relabel.RepoFullName,
		relabel.PRNumber,
		relabel.ChangeSize,
		relabel.Label,
		relabel.Added,
		strings.Join(relabel.Removed, ","),
		relabel.AppliedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert relabel for %s#%d: %w", relabel.RepoFullName, relabel.PRNumber, err)
	}

	return nil
}

// ListRecent returns up to limit relabel records, newest first, optionally
// filtered by repository. limit must be positive: SQLite treats a negative
// LIMIT as unbounded, which is never what a caller asking for "recent"
// records means.
func (r *HistoryRepo) ListRecent(ctx context.Context, repoFullName string, limit int) ([]model.Relabel, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	query := `
		SELECT id, repo_full_name, pr_number, change_size, label, added, removed, applied_at
		FROM relabels
	`
	args := []any{}
	if repoFullName != "" {
		query += ` WHERE repo_full_name = ?`
		args = append(args, repoFullName)
	}
	query += ` ORDER BY applied_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query relabels: %w", err)
	}
	defer rows.Close()

	var records []model.Relabel
	for rows.Next() {
		var rec model.Relabel
		var removed, appliedAt string
		if err := rows.Scan(
			&rec.ID,
			&rec.RepoFullName,
			&rec.PRNumber,
			&rec.ChangeSize,
			&rec.Label,
			&rec.Added,
			&removed,
			&appliedAt,
		); err != nil {
			return nil, fmt.Errorf("scan relabel: %w", err)
		}
		if removed != "" {
			rec.Removed = strings.Split(removed, ",")
		}
		rec.AppliedAt, err = parseTime(appliedAt)
		if err != nil {
			return nil, fmt.Errorf("parse applied_at: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate relabels: %w", err)
	}

	return records, nil
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
