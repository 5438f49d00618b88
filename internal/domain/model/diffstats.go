package model

import "fmt"

// DiffStats holds the pre-aggregated line counts for one PR, as delivered by
// a diff-statistics provider. The core never computes diffs itself.
type DiffStats struct {
	Additions int
	Deletions int
}

// Validate checks that both counts are non-negative integers. Providers call
// this before handing stats to the classifier; a violation is a
// MalformedInput condition for that PR.
func (s DiffStats) Validate() error {
	if s.Additions < 0 || s.Deletions < 0 {
		return fmt.Errorf("%w: additions=%d deletions=%d", ErrMalformedInput, s.Additions, s.Deletions)
	}
	return nil
}

// ChangeSize is the classification input: lines added plus lines removed.
func (s DiffStats) ChangeSize() int {
	return s.Additions + s.Deletions
}
