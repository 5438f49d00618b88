package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"
	"testing"
)

// setupTestDB opens a named in-memory database and applies the schema.
// The name is derived from t.Name() so parallel tests stay isolated, and
// cache=shared keeps the database alive if the pool recycles its single
// connection. WAL mode does not apply to in-memory databases.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		url.PathEscape(t.Name()),
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	return db
}
