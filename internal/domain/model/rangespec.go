package model

import (
	"fmt"
	"strconv"
	"strings"
)

// RangeKind identifies the shape of a RangeSpec.
type RangeKind int

const (
	// RangeLessThan matches sizes strictly below an upper bound.
	RangeLessThan RangeKind = iota
	// RangeBetween matches sizes strictly between two bounds.
	// Both bounds are exclusive: a size equal to either bound does not match.
	RangeBetween
	// RangeGreaterThan matches sizes strictly above a lower bound.
	RangeGreaterThan
)

// RangeSpec is one numeric interval over non-negative change sizes,
// parsed from a spec string of the form "<N", "LO-HI", or ">N".
type RangeSpec struct {
	Kind RangeKind
	Lo   int // Lower bound for RangeBetween and RangeGreaterThan.
	Hi   int // Upper bound for RangeBetween and RangeLessThan.
}

// ParseRangeSpec parses a range spec string. Exactly three shapes are accepted:
//
//	"<N"    match iff size < N
//	"LO-HI" match iff size > LO and size < HI (both bounds exclusive)
//	">N"    match iff size > N
//
// Anything else, including a Between range with LO > HI, is a configuration
// error reported via ErrInvalidRange.
func ParseRangeSpec(s string) (RangeSpec, error) {
	spec := strings.TrimSpace(s)
	if spec == "" {
		return RangeSpec{}, fmt.Errorf("%w: empty spec", ErrInvalidRange)
	}

	switch {
	case strings.HasPrefix(spec, "<"):
		n, err := parseBound(spec[1:])
		if err != nil {
			return RangeSpec{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
		}
		return RangeSpec{Kind: RangeLessThan, Hi: n}, nil

	case strings.HasPrefix(spec, ">"):
		n, err := parseBound(spec[1:])
		if err != nil {
			return RangeSpec{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
		}
		return RangeSpec{Kind: RangeGreaterThan, Lo: n}, nil

	case strings.Contains(spec, "-"):
		loStr, hiStr, _ := strings.Cut(spec, "-")
		lo, loErr := parseBound(loStr)
		hi, hiErr := parseBound(hiStr)
		if loErr != nil || hiErr != nil {
			return RangeSpec{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
		}
		if lo > hi {
			return RangeSpec{}, fmt.Errorf("%w: bounds reversed in %q", ErrInvalidRange, s)
		}
		return RangeSpec{Kind: RangeBetween, Lo: lo, Hi: hi}, nil
	}

	return RangeSpec{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
}

// parseBound parses one non-negative integer bound.
func parseBound(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative bound %d", n)
	}
	return n, nil
}

// Contains reports whether size falls inside the range. Between ranges
// exclude both bounds, so a size exactly on a configured boundary matches
// neither the range nor, under contiguous defaults, its neighbour. That
// boundary gap is a documented quirk of the comparison semantics, kept
// as the contract rather than silently widened to inclusive bounds.
func (r RangeSpec) Contains(size int) bool {
	switch r.Kind {
	case RangeLessThan:
		return size < r.Hi
	case RangeBetween:
		return size > r.Lo && size < r.Hi
	case RangeGreaterThan:
		return size > r.Lo
	default:
		return false
	}
}

// String renders the spec back in its configuration syntax.
func (r RangeSpec) String() string {
	switch r.Kind {
	case RangeLessThan:
		return fmt.Sprintf("<%d", r.Hi)
	case RangeBetween:
		return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
	case RangeGreaterThan:
		return fmt.Sprintf(">%d", r.Lo)
	default:
		return "invalid"
	}
}
