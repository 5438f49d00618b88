package model

import (
	"slices"
	"strings"
)

// LabelDelta is the minimal label mutation converging a PR's namespaced
// labels to exactly the target label (or to none). It is computed fresh per
// reconciliation and consumed immediately; it never mutates the PR itself.
type LabelDelta struct {
	ToAdd    string   // Label to add; empty when nothing needs adding.
	ToRemove []string // Namespaced labels to remove, sorted.
}

// Empty reports whether the delta requires no mutation. Callers short-circuit
// on an empty delta to avoid redundant writes against the label store.
func (d LabelDelta) Empty() bool {
	return d.ToAdd == "" && len(d.ToRemove) == 0
}

// Apply returns the label set that results from applying the delta to
// current. Order of surviving labels is preserved; the added label, if any,
// is appended.
func (d LabelDelta) Apply(current []string) []string {
	out := make([]string, 0, len(current)+1)
	for _, l := range current {
		if !slices.Contains(d.ToRemove, l) {
			out = append(out, l)
		}
	}
	if d.ToAdd != "" && !slices.Contains(out, d.ToAdd) {
		out = append(out, d.ToAdd)
	}
	return out
}

// Reconcile computes the delta that makes current carry exactly target among
// all labels namespaced by prefix. Labels without the prefix are ignored
// entirely. An empty target means no tier matched: every namespaced label is
// removed and nothing is added.
//
// Reconcile is pure and idempotent: reconciling the set produced by applying
// the returned delta yields an empty delta.
func Reconcile(current []string, target string, prefix string) LabelDelta {
	var delta LabelDelta

	found := false
	for _, l := range current {
		if !strings.HasPrefix(l, prefix) {
			continue
		}
		if target != "" && l == target {
			found = true
			continue
		}
		delta.ToRemove = append(delta.ToRemove, l)
	}

	if target != "" && !found {
		delta.ToAdd = target
	}

	slices.Sort(delta.ToRemove)
	return delta
}
