package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
)

func TestOpen_SingleConnection(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, 1, db.conn.Stats().MaxOpenConnections)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	// Running again on an up-to-date schema must be a no-op, not an error.
	require.NoError(t, db.Migrate())

	// The schema is usable after both runs.
	repo := NewHistoryRepo(db)
	require.NoError(t, repo.Record(context.Background(), model.Relabel{
		RepoFullName: "owner/repo",
		PRNumber:     1,
		ChangeSize:   3,
		Label:        "size/tiny",
		Added:        "size/tiny",
	}))
}
