// Package compare implements the grid comparator used by every
// validation flow: structural preflight on edges and bin counts, then a
// per-cell diff against an absolute tolerance.
package compare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

// CellDiff records one bin whose contents disagree beyond tolerance.
// Row/Col are zero-based bin coordinates (eta, phi); Diff is B - A.
type CellDiff struct {
	Index int
	Row   int
	Col   int
	A     float64
	B     float64
	Diff  float64
}

// Result is the outcome of one comparison. It is created fresh per call
// and not modified afterwards.
type Result struct {
	// Bins is the total number of bins compared.
	Bins int
	// Diffs lists differing cells in ascending flat-index order.
	Diffs []CellDiff
}

// Count returns the number of differing cells.
func (r *Result) Count() int { return len(r.Diffs) }

// Clean reports whether no cell exceeded the tolerance.
func (r *Result) Clean() bool { return len(r.Diffs) == 0 }

// Compare verifies that two grids share the same binning within tol and
// reports every cell whose contents differ by strictly more than tol.
// A difference of exactly tol counts as equal. The tolerance is
// absolute. Edge or bin-count disagreements fail fast with no partial
// result.
func Compare(a, b *types.Grid, tol float64) (*Result, error) {
	if tol < 0 {
		return nil, fmt.Errorf("negative tolerance %v", tol)
	}
	if err := compareEdges("x", a.EdgesX, b.EdgesX, tol); err != nil {
		return nil, err
	}
	if err := compareEdges("y", a.EdgesY, b.EdgesY, tol); err != nil {
		return nil, err
	}
	if len(a.Values) != len(b.Values) {
		return nil, fmt.Errorf("%w: %d bins vs %d bins",
			types.ErrBinCountMismatch, len(a.Values), len(b.Values))
	}

	res := &Result{Bins: len(a.Values)}
	for i := range a.Values {
		diff := b.Values[i] - a.Values[i]
		if math.Abs(diff) > tol {
			row, col := a.Coords(i)
			res.Diffs = append(res.Diffs, CellDiff{
				Index: i,
				Row:   row,
				Col:   col,
				A:     a.Values[i],
				B:     b.Values[i],
				Diff:  diff,
			})
		}
	}
	return res, nil
}

func compareEdges(axis string, a, b []float64, tol float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %s axis has %d edges vs %d edges",
			types.ErrEdgeMismatch, axis, len(a), len(b))
	}
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return fmt.Errorf("%w: %s axis edge %d: %v vs %v",
				types.ErrEdgeMismatch, axis, i, a[i], b[i])
		}
	}
	return nil
}
