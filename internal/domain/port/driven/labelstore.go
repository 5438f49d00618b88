package driven

import "context"

// LabelStore defines the driven port for reading and mutating PR labels.
// Failures surface as model.ErrExternalService.
type LabelStore interface {
	// ListLabels returns a snapshot of the PR's current label set.
	ListLabels(ctx context.Context, repoFullName string, prNumber int) ([]string, error)

	// EditLabels applies one add/remove batch to the PR. From the caller's
	// perspective the edit is atomic: either the PR converges or the error
	// aborts processing of that PR. Callers skip the call entirely for an
	// empty delta.
	EditLabels(ctx context.Context, repoFullName string, prNumber int, add []string, remove []string) error

	// ListOpenPullRequests returns the numbers of all open PRs in the
	// repository, for sweep runs.
	ListOpenPullRequests(ctx context.Context, repoFullName string) ([]int, error)
}
