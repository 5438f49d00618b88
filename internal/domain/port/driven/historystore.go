package driven

import (
	"context"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
)

// HistoryStore defines the driven port for the relabel audit trail.
type HistoryStore interface {
	// Record persists one applied relabel.
	Record(ctx context.Context, relabel model.Relabel) error

	// ListRecent returns up to limit records, newest first. An empty
	// repoFullName returns records for all repositories.
	ListRecent(ctx context.Context, repoFullName string, limit int) ([]model.Relabel, error)
}
