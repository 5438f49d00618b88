// Package patchfile implements the DiffStatsProvider port over a unified
// diff file, e.g. the output of `gh pr diff` saved by a CI step.
package patchfile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
	"github.com/ericfisherdev/prsizer/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DiffStatsProvider = (*Provider)(nil)

// Provider reads one patch file and counts its added and deleted lines.
type Provider struct {
	path string
}

// NewProvider creates a Provider for the patch at path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// FetchDiffStats parses the patch file and aggregates line counts across all
// files and fragments. The repoFullName and prNumber arguments are unused;
// the patch file is the single source of truth. An unreadable file maps to
// ErrDiffUnavailable, an unparseable patch to ErrMalformedInput.
func (p *Provider) FetchDiffStats(ctx context.Context, repoFullName string, prNumber int) (model.DiffStats, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return model.DiffStats{}, fmt.Errorf("opening patch %s: %w",
			p.path, errors.Join(model.ErrDiffUnavailable, err))
	}
	defer f.Close()

	files, _, err := gitdiff.Parse(f)
	if err != nil {
		return model.DiffStats{}, fmt.Errorf("parsing patch %s: %w",
			p.path, errors.Join(model.ErrMalformedInput, err))
	}

	var stats model.DiffStats
	for _, file := range files {
		for _, frag := range file.TextFragments {
			for _, line := range frag.Lines {
				switch line.Op {
				case gitdiff.OpAdd:
					stats.Additions++
				case gitdiff.OpDelete:
					stats.Deletions++
				}
			}
		}
	}

	return stats, nil
}
