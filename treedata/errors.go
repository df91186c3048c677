// SPDX-License-Identifier: MIT
// Package: treedata
//
// errors.go - sentinel and typed errors for the treedata package.
//
// Error policy:
//   • Sentinels classify failures; callers branch with errors.Is(err, ErrX).
//   • Typed errors (*ValidationError, *DegenerateGroupError) carry the
//     offending field/group and unwrap to their sentinel; use errors.As.
//   • Operations attach method context with %w ("GenerateTree: ...").
//   • Algorithms never panic; option constructors (WithX) panic on nil input.

package treedata

import (
	"errors"
	"fmt"
)

// ErrValidation indicates an invalid Config or level set, detected before
// any sampling. No partial output accompanies it.
var ErrValidation = errors.New("treedata: invalid configuration")

// ErrDegenerateGroup indicates a sibling group whose series sum is zero for
// some period, so no finite scale factor exists.
var ErrDegenerateGroup = errors.New("treedata: degenerate sibling group")

// ErrInvariant indicates an entry collection that breaks a dataset invariant
// (count, path, sum or rel bounds). Returned by Verify.
var ErrInvariant = errors.New("treedata: invariant violated")

// ValidationError describes which config field failed validation and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("treedata: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap exposes ErrValidation to errors.Is.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// DegenerateGroupError identifies the sibling group that could not be scaled.
type DegenerateGroupError struct {
	Depth  int
	Parent []string // nil for the root group
	Period string
	Series Series
}

func (e *DegenerateGroupError) Error() string {
	parent := FormatPath(e.Parent)
	if parent == "" {
		parent = "<root>"
	}

	return fmt.Sprintf("treedata: %s sums to zero at depth %d under %s for period %q",
		e.Series, e.Depth, parent, e.Period)
}

// Unwrap exposes ErrDegenerateGroup to errors.Is.
func (e *DegenerateGroupError) Unwrap() error { return ErrDegenerateGroup }

// methodErrorf prefixes an error with the operation name, keeping %w chains.
func methodErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
