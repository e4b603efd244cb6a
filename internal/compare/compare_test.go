package compare

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

func mustGrid(t *testing.T, edgesX, edgesY, values []float64) *types.Grid {
	t.Helper()
	g, err := types.NewGrid("h", edgesX, edgesY, values)
	require.NoError(t, err)
	return g
}

func TestCompareIdenticalGrids(t *testing.T) {
	g := mustGrid(t, []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 2, 3, 4})

	for _, tol := range []float64{0, 1e-9, 1e-6, 0.5} {
		res, err := Compare(g, g, tol)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Count(), "tol=%v", tol)
		assert.True(t, res.Clean())
		assert.Equal(t, 4, res.Bins)
	}
}

func TestCompareSingleDiff(t *testing.T) {
	a := mustGrid(t, []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 2, 3, 4})
	b := mustGrid(t, []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 2, 3.5, 4})

	res, err := Compare(a, b, 0.1)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count())

	want := CellDiff{Index: 2, Row: 1, Col: 0, A: 3, B: 3.5, Diff: 0.5}
	if diff := cmp.Diff(want, res.Diffs[0]); diff != "" {
		t.Errorf("cell diff mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareSymmetry(t *testing.T) {
	a := mustGrid(t, []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 2, 3, 4})
	b := mustGrid(t, []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1.5, 2, 3, 3.2})

	ab, err := Compare(a, b, 0.1)
	require.NoError(t, err)
	ba, err := Compare(b, a, 0.1)
	require.NoError(t, err)

	require.Equal(t, ab.Count(), ba.Count())
	for i := range ab.Diffs {
		assert.Equal(t, ab.Diffs[i].Index, ba.Diffs[i].Index)
		assert.InDelta(t, -ab.Diffs[i].Diff, ba.Diffs[i].Diff, 1e-12)
	}
}

func TestCompareToleranceBoundary(t *testing.T) {
	a := mustGrid(t, []float64{0, 1}, []float64{0, 1}, []float64{1})
	b := mustGrid(t, []float64{0, 1}, []float64{0, 1}, []float64{1.1})

	// Exactly at the tolerance is not a difference.
	res, err := Compare(a, b, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count())

	res, err = Compare(a, b, 0.0999)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count())
}

func TestCompareOrdering(t *testing.T) {
	a := mustGrid(t, []float64{0, 1, 2, 3}, []float64{0, 1, 2}, make([]float64, 6))
	vals := []float64{5, 0, 0, 7, 0, 9}
	b := mustGrid(t, []float64{0, 1, 2, 3}, []float64{0, 1, 2}, vals)

	res, err := Compare(a, b, 1e-6)
	require.NoError(t, err)
	require.Equal(t, 3, res.Count())
	assert.Equal(t, []int{0, 3, 5}, []int{res.Diffs[0].Index, res.Diffs[1].Index, res.Diffs[2].Index})
}

func TestCompareEdgeMismatchFailsFast(t *testing.T) {
	a := mustGrid(t, []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 2, 3, 4})
	bx := mustGrid(t, []float64{0, 1.5, 2}, []float64{0, 1, 2}, []float64{1, 2, 3, 4})
	by := mustGrid(t, []float64{0, 1, 2}, []float64{0, 1.5, 2}, []float64{1, 2, 3, 4})

	// Identical values do not save a grid with shifted edges.
	res, err := Compare(a, bx, 1e-6)
	assert.ErrorIs(t, err, types.ErrEdgeMismatch)
	assert.Nil(t, res, "no partial result on edge mismatch")

	_, err = Compare(a, by, 1e-6)
	assert.ErrorIs(t, err, types.ErrEdgeMismatch)

	// Edges differing within tolerance are fine.
	bclose := mustGrid(t, []float64{0, 1 + 1e-9, 2}, []float64{0, 1, 2}, []float64{1, 2, 3, 4})
	_, err = Compare(a, bclose, 1e-6)
	assert.NoError(t, err)
}

func TestCompareEdgeCountMismatch(t *testing.T) {
	a := mustGrid(t, []float64{0, 1, 2}, []float64{0, 1}, []float64{1, 2})
	b := mustGrid(t, []float64{0, 1}, []float64{0, 1}, []float64{1})

	_, err := Compare(a, b, 1e-6)
	assert.ErrorIs(t, err, types.ErrEdgeMismatch)
}

func TestCompareBinCountMismatch(t *testing.T) {
	// Same edges, truncated value array: only constructible by hand,
	// but the comparator still guards against it.
	a := mustGrid(t, []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 2, 3, 4})
	b := a.Clone()
	b.Values = b.Values[:3]

	_, err := Compare(a, b, 1e-6)
	assert.ErrorIs(t, err, types.ErrBinCountMismatch)
}

func TestCompareNegativeTolerance(t *testing.T) {
	a := mustGrid(t, []float64{0, 1}, []float64{0, 1}, []float64{1})
	_, err := Compare(a, a, -1)
	assert.Error(t, err)
}
