// Package application contains use-case orchestration services.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
	"github.com/ericfisherdev/prsizer/internal/domain/port/driven"
)

// LabelService runs the classify→reconcile→apply sequence for PRs.
// The service itself holds no mutable state; each call works on a fresh
// snapshot of the PR's labels.
type LabelService struct {
	stats   driven.DiffStatsProvider
	labels  driven.LabelStore
	history driven.HistoryStore // Optional; nil disables the audit trail.
	sizes   *model.SizeClass
	prefix  string
	dryRun  bool
	logger  *slog.Logger
}

// NewLabelService creates a LabelService. history may be nil when no audit
// trail is configured. dryRun computes and logs deltas without applying them.
func NewLabelService(
	stats driven.DiffStatsProvider,
	labels driven.LabelStore,
	history driven.HistoryStore,
	sizes *model.SizeClass,
	prefix string,
	dryRun bool,
) *LabelService {
	if prefix == "" {
		prefix = model.DefaultLabelPrefix
	}
	return &LabelService{
		stats:   stats,
		labels:  labels,
		history: history,
		sizes:   sizes,
		prefix:  prefix,
		dryRun:  dryRun,
		logger:  slog.Default(),
	}
}

// LabelPR converges one PR's size labels and returns the delta it computed.
// The sequence either completes fully or aborts with the PR's labels
// untouched: the only label write happens after classification and
// reconciliation succeed, and an empty delta short-circuits before any write.
func (s *LabelService) LabelPR(ctx context.Context, repoFullName string, prNumber int) (model.LabelDelta, error) {
	stats, err := s.stats.FetchDiffStats(ctx, repoFullName, prNumber)
	if err != nil {
		return model.LabelDelta{}, err
	}

	size := stats.ChangeSize()
	target, matched := s.sizes.Classify(size)
	s.logger.Info("classified pull request",
		"repo", repoFullName,
		"pr_number", prNumber,
		"additions", stats.Additions,
		"deletions", stats.Deletions,
		"change_size", size,
		"label", target,
		"matched", matched,
	)

	current, err := s.labels.ListLabels(ctx, repoFullName, prNumber)
	if err != nil {
		return model.LabelDelta{}, err
	}

	delta := model.Reconcile(current, target, s.prefix)
	if delta.Empty() {
		s.logger.Debug("labels already converged", "repo", repoFullName, "pr_number", prNumber)
		return delta, nil
	}

	if s.dryRun {
		s.logger.Info("dry run, skipping label edit",
			"repo", repoFullName,
			"pr_number", prNumber,
			"to_add", delta.ToAdd,
			"to_remove", delta.ToRemove,
		)
		return delta, nil
	}

	var add []string
	if delta.ToAdd != "" {
		add = []string{delta.ToAdd}
	}
	if err := s.labels.EditLabels(ctx, repoFullName, prNumber, add, delta.ToRemove); err != nil {
		return model.LabelDelta{}, err
	}

	s.logger.Info("labels updated",
		"repo", repoFullName,
		"pr_number", prNumber,
		"added", delta.ToAdd,
		"removed", delta.ToRemove,
	)

	if s.history != nil {
		rec := model.Relabel{
			RepoFullName: repoFullName,
			PRNumber:     prNumber,
			ChangeSize:   size,
			Label:        target,
			Added:        delta.ToAdd,
			Removed:      delta.ToRemove,
			AppliedAt:    time.Now().UTC(),
		}
		if err := s.history.Record(ctx, rec); err != nil {
			// The PR already converged; a failed audit write is not worth
			// failing the run over.
			s.logger.Warn("recording relabel history failed",
				"repo", repoFullName, "pr_number", prNumber, "error", err)
		}
	}

	return delta, nil
}

// LabelAll converges every open PR in the repository, stopping at the first
// per-PR failure. It returns the number of PRs whose labels were mutated.
func (s *LabelService) LabelAll(ctx context.Context, repoFullName string) (int, error) {
	numbers, err := s.labels.ListOpenPullRequests(ctx, repoFullName)
	if err != nil {
		return 0, err
	}

	s.logger.Info("sweeping open pull requests", "repo", repoFullName, "count", len(numbers))

	mutated := 0
	for _, n := range numbers {
		delta, err := s.LabelPR(ctx, repoFullName, n)
		if err != nil {
			return mutated, fmt.Errorf("labeling %s#%d: %w", repoFullName, n, err)
		}
		if !delta.Empty() {
			mutated++
		}
	}

	return mutated, nil
}
