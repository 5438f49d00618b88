// Package sqlite persists the relabel audit trail.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a single-connection SQLite handle. prsizer runs are short-lived
// CLI invocations that append or read a handful of relabel rows and exit,
// so one connection with a busy timeout covers the workload; there is no
// server traffic to pool for. WAL mode keeps two overlapping invocations
// (a sweep and a manual check, say) from failing with "database is locked".
type DB struct {
	conn *sql.DB
}

// Open opens the audit database at dbPath, creating it if needed.
func Open(dbPath string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		dbPath,
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", dbPath, err)
	}

	return &DB{conn: conn}, nil
}

// Close releases the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
