// Package model contains the pure domain types of prsizer: size
// classification, label reconciliation, and diff statistics.
package model

import "fmt"

// DefaultLabelPrefix namespaces size labels apart from unrelated PR labels.
const DefaultLabelPrefix = "size/"

// Default range specs per tier. Boundaries are exclusive on both ends for
// Between ranges (see RangeSpec.Contains), so sizes 10, 49, 50, 100, 101
// and 500 match no tier under these defaults.
const (
	DefaultRangeTiny   = "<10"
	DefaultRangeSmall  = "10-49"
	DefaultRangeMedium = "50-100"
	DefaultRangeLarge  = "101-500"
	DefaultRangeHuge   = ">500"
)

// RangeConfig carries the five per-tier range spec strings and the label
// namespace prefix. Each field can be overridden independently; zero values
// fall back to the defaults above.
type RangeConfig struct {
	Tiny        string
	Small       string
	Medium      string
	Large       string
	Huge        string
	LabelPrefix string
}

// DefaultRangeConfig returns the documented default configuration.
func DefaultRangeConfig() RangeConfig {
	return RangeConfig{
		Tiny:        DefaultRangeTiny,
		Small:       DefaultRangeSmall,
		Medium:      DefaultRangeMedium,
		Large:       DefaultRangeLarge,
		Huge:        DefaultRangeHuge,
		LabelPrefix: DefaultLabelPrefix,
	}
}

// SizeEntry is one (label, range) pair within a SizeClass.
type SizeEntry struct {
	Label string
	Range RangeSpec
}

// SizeClass is an ordered sequence of (label, range) pairs. Iteration order
// is part of the contract: Classify returns the first matching label.
// A SizeClass is immutable after construction and safe for concurrent use.
//
// The ranges are expected to be non-overlapping; that is a configuration
// precondition, not something the classifier enforces.
type SizeClass struct {
	entries []SizeEntry
}

// NewSizeClass builds the ordered tiny→small→medium→large→huge tier list
// from cfg, applying defaults for empty fields. Malformed range specs and
// reversed bounds fail here, before any PR is processed.
func NewSizeClass(cfg RangeConfig) (*SizeClass, error) {
	prefix := cfg.LabelPrefix
	if prefix == "" {
		prefix = DefaultLabelPrefix
	}

	tiers := []struct {
		name string
		spec string
		dflt string
	}{
		{"tiny", cfg.Tiny, DefaultRangeTiny},
		{"small", cfg.Small, DefaultRangeSmall},
		{"medium", cfg.Medium, DefaultRangeMedium},
		{"large", cfg.Large, DefaultRangeLarge},
		{"huge", cfg.Huge, DefaultRangeHuge},
	}

	entries := make([]SizeEntry, 0, len(tiers))
	for _, tier := range tiers {
		spec := tier.spec
		if spec == "" {
			spec = tier.dflt
		}
		r, err := ParseRangeSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("range for %s tier: %w", tier.name, err)
		}
		entries = append(entries, SizeEntry{Label: prefix + tier.name, Range: r})
	}

	return &SizeClass{entries: entries}, nil
}

// Classify returns the label of the first range containing size, in tier
// order. ok is false when no range matches; that is not an error, the PR
// is simply left without a size label.
//
// The caller guarantees size >= 0 (raw additions/deletions are validated
// before summing).
func (sc *SizeClass) Classify(size int) (label string, ok bool) {
	for _, e := range sc.entries {
		if e.Range.Contains(size) {
			return e.Label, true
		}
	}
	return "", false
}

// Entries returns a copy of the ordered (label, range) pairs, for logging
// and diagnostics.
func (sc *SizeClass) Entries() []SizeEntry {
	out := make([]SizeEntry, len(sc.entries))
	copy(out, sc.entries)
	return out
}
