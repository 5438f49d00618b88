package driven

import (
	"context"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
)

// DiffStatsProvider defines the driven port for retrieving pre-aggregated
// diff statistics for a PR. Implementations own whatever raw formats they
// consume (REST payloads, git shortstat text, patch files); only validated
// non-negative counts cross this boundary.
//
// Errors: model.ErrDiffUnavailable when the PR cannot be diffed,
// model.ErrMalformedInput when the raw output does not yield two
// non-negative integers.
type DiffStatsProvider interface {
	FetchDiffStats(ctx context.Context, repoFullName string, prNumber int) (model.DiffStats, error)
}
