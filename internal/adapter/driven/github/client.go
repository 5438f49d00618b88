// Package github implements the DiffStatsProvider and LabelStore ports using
// the go-github library.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
	"github.com/ericfisherdev/prsizer/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.DiffStatsProvider = (*Client)(nil)
	_ driven.LabelStore        = (*Client)(nil)
)

// Client implements the DiffStatsProvider and LabelStore ports against the
// GitHub REST API.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with PAT auth)
//
// An empty token leaves the client unauthenticated, which is enough for dry
// runs against public repositories.
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &Client{gh: client}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// FetchDiffStats returns the additions/deletions counts for a single PR,
// as pre-aggregated by GitHub. A missing PR maps to ErrDiffUnavailable;
// counts outside the non-negative integer domain map to ErrMalformedInput.
func (c *Client) FetchDiffStats(ctx context.Context, repoFullName string, prNumber int) (model.DiffStats, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return model.DiffStats{}, err
	}

	pr, resp, err := c.gh.PullRequests.Get(ctx, owner, repo, prNumber)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return model.DiffStats{}, fmt.Errorf("fetching diff stats for %s#%d: %w",
				repoFullName, prNumber, errors.Join(model.ErrDiffUnavailable, err))
		}
		return model.DiffStats{}, fmt.Errorf("fetching diff stats for %s#%d: %w",
			repoFullName, prNumber, errors.Join(model.ErrExternalService, err))
	}

	logRateLimit(resp, repoFullName+"/pr-detail", 0, 1)

	stats := model.DiffStats{
		Additions: pr.GetAdditions(),
		Deletions: pr.GetDeletions(),
	}
	if err := stats.Validate(); err != nil {
		return model.DiffStats{}, fmt.Errorf("diff stats for %s#%d: %w", repoFullName, prNumber, err)
	}

	return stats, nil
}

// ListLabels returns the PR's current label names. It handles pagination
// automatically. PR labels live on the Issues API.
func (c *Client) ListLabels(ctx context.Context, repoFullName string, prNumber int) ([]string, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	opts := &gh.ListOptions{PerPage: 100}
	var labels []string

	for {
		page, resp, err := c.gh.Issues.ListLabelsByIssue(ctx, owner, repo, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("listing labels for %s#%d (page %d): %w",
				repoFullName, prNumber, opts.Page, errors.Join(model.ErrExternalService, err))
		}

		logRateLimit(resp, repoFullName+"/labels", opts.Page, len(page))

		for _, l := range page {
			labels = append(labels, l.GetName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if labels == nil {
		labels = []string{}
	}

	return labels, nil
}

// EditLabels adds and removes the given labels on a PR. Additions go out in
// one batch; removals are one API call per label because the Issues API has
// no batch remove. A 404 on removal is tolerated: the label is already gone,
// which is the state the delta was converging to.
func (c *Client) EditLabels(ctx context.Context, repoFullName string, prNumber int, add []string, remove []string) error {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return err
	}

	if len(add) > 0 {
		_, _, err := c.gh.Issues.AddLabelsToIssue(ctx, owner, repo, prNumber, add)
		if err != nil {
			return fmt.Errorf("adding labels %v to %s#%d: %w",
				add, repoFullName, prNumber, errors.Join(model.ErrExternalService, err))
		}
	}

	for _, label := range remove {
		resp, err := c.gh.Issues.RemoveLabelForIssue(ctx, owner, repo, prNumber, label)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				continue
			}
			return fmt.Errorf("removing label %q from %s#%d: %w",
				label, repoFullName, prNumber, errors.Join(model.ErrExternalService, err))
		}
	}

	return nil
}

// ListOpenPullRequests returns the numbers of all open PRs in the repository.
// It handles pagination automatically.
func (c *Client) ListOpenPullRequests(ctx context.Context, repoFullName string) ([]int, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	opts := &gh.PullRequestListOptions{
		State:     "open",
		Sort:      "created",
		Direction: "asc",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var numbers []int

	for {
		prs, resp, err := c.gh.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing open pull requests for %s (page %d): %w",
				repoFullName, opts.Page, errors.Join(model.ErrExternalService, err))
		}

		logRateLimit(resp, repoFullName, opts.Page, len(prs))

		for _, pr := range prs {
			numbers = append(numbers, pr.GetNumber())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if numbers == nil {
		numbers = []int{}
	}

	return numbers, nil
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}

// splitRepo splits a "owner/repo" string into its two components.
func splitRepo(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo name %q: expected owner/repo", fullName)
	}
	return parts[0], parts[1], nil
}
