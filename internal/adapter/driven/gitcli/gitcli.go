// Package gitcli implements the DiffStatsProvider port by shelling out to a
// local git checkout. GitHub publishes every PR head under refs/pull/N/head,
// so the provider fetches that ref and scrapes `git diff --shortstat` output.
package gitcli

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
	"github.com/ericfisherdev/prsizer/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DiffStatsProvider = (*Provider)(nil)

// Provider computes diff statistics from a local clone of the repository.
type Provider struct {
	dir    string // Working tree directory; empty means current directory.
	remote string // Remote carrying the pull refs, usually "origin".
}

// NewProvider creates a Provider rooted at dir. An empty remote defaults to
// "origin".
func NewProvider(dir, remote string) *Provider {
	if remote == "" {
		remote = "origin"
	}
	return &Provider{dir: dir, remote: remote}
}

// FetchDiffStats fetches the PR head ref and diffs it against the current
// HEAD with --shortstat. The repoFullName argument is unused: the local
// clone determines the repository.
func (p *Provider) FetchDiffStats(ctx context.Context, repoFullName string, prNumber int) (model.DiffStats, error) {
	fetchRef := fmt.Sprintf("refs/pull/%d/head", prNumber)
	if out, err := p.git(ctx, "fetch", "--quiet", p.remote, fetchRef); err != nil {
		return model.DiffStats{}, fmt.Errorf("fetching %s from %s: %s: %w",
			fetchRef, p.remote, strings.TrimSpace(out), errors.Join(model.ErrDiffUnavailable, err))
	}

	out, err := p.git(ctx, "diff", "--shortstat", "HEAD...FETCH_HEAD")
	if err != nil {
		return model.DiffStats{}, fmt.Errorf("diffing PR #%d: %s: %w",
			prNumber, strings.TrimSpace(out), errors.Join(model.ErrDiffUnavailable, err))
	}

	stats, err := ParseShortStat(out)
	if err != nil {
		return model.DiffStats{}, fmt.Errorf("diff stats for PR #%d: %w", prNumber, err)
	}

	return stats, nil
}

// git runs a git subcommand in the provider's directory and returns its
// combined output.
func (p *Provider) git(ctx context.Context, args ...string) (string, error) {
	if p.dir != "" {
		args = append([]string{"-C", p.dir}, args...)
	}
	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	return string(out), err
}

var (
	insertionsRe = regexp.MustCompile(`(\d+) insertion`)
	deletionsRe  = regexp.MustCompile(`(\d+) deletion`)
)

// ParseShortStat extracts additions and deletions from `git diff --shortstat`
// output, e.g. " 3 files changed, 10 insertions(+), 2 deletions(-)".
// A term absent from the text counts as zero: git omits "insertions" for
// pure deletions and vice versa, and an empty diff produces no output at
// all. A stat keyword present without a parseable count is a MalformedInput
// condition.
func ParseShortStat(text string) (model.DiffStats, error) {
	additions, err := scrapeCount(text, "insertion", insertionsRe)
	if err != nil {
		return model.DiffStats{}, err
	}
	deletions, err := scrapeCount(text, "deletion", deletionsRe)
	if err != nil {
		return model.DiffStats{}, err
	}

	stats := model.DiffStats{Additions: additions, Deletions: deletions}
	if err := stats.Validate(); err != nil {
		return model.DiffStats{}, err
	}
	return stats, nil
}

// scrapeCount pulls the integer preceding keyword out of text. Missing
// keyword means zero; keyword without a leading integer is malformed.
func scrapeCount(text, keyword string, re *regexp.Regexp) (int, error) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		if strings.Contains(text, keyword) {
			return 0, fmt.Errorf("%w: %q has no count before %q", model.ErrMalformedInput, strings.TrimSpace(text), keyword)
		}
		return 0, nil
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrMalformedInput, m[1])
	}
	return n, nil
}
