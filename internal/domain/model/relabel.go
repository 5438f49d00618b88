package model

import "time"

// Relabel is one audit record of a size-label convergence applied to a PR.
type Relabel struct {
	ID           int64
	RepoFullName string
	PRNumber     int
	ChangeSize   int
	Label        string   // Chosen size label; empty when no tier matched.
	Added        string   // Label added by the delta; empty if none.
	Removed      []string // Labels removed by the delta.
	AppliedAt    time.Time
}
