package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		edgesX  []float64
		edgesY  []float64
		values  []float64
		wantErr bool
	}{
		{
			name:   "valid 2x2",
			edgesX: []float64{0, 1, 2},
			edgesY: []float64{0, 1, 2},
			values: []float64{1, 2, 3, 4},
		},
		{
			name:   "valid variable-width edges",
			edgesX: []float64{-5.191, -3.839, 0, 3.839, 5.191},
			edgesY: []float64{-3.142, 0, 3.142},
			values: make([]float64, 8),
		},
		{
			name:    "value count mismatch",
			edgesX:  []float64{0, 1, 2},
			edgesY:  []float64{0, 1, 2},
			values:  []float64{1, 2, 3},
			wantErr: true,
		},
		{
			name:    "too few x edges",
			edgesX:  []float64{0},
			edgesY:  []float64{0, 1},
			values:  []float64{},
			wantErr: true,
		},
		{
			name:    "non-increasing x edges",
			edgesX:  []float64{0, 1, 1},
			edgesY:  []float64{0, 1},
			values:  []float64{1, 2},
			wantErr: true,
		},
		{
			name:    "decreasing y edges",
			edgesX:  []float64{0, 1},
			edgesY:  []float64{0, 2, 1},
			values:  []float64{1, 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid("h", tt.edgesX, tt.edgesY, tt.values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.edgesX)-1, g.Nx())
			assert.Equal(t, len(tt.edgesY)-1, g.Ny())
		})
	}
}

func TestGridIndexing(t *testing.T) {
	g, err := NewGrid("h", []float64{0, 1, 2, 3}, []float64{0, 1, 2}, []float64{
		10, 11, // ix=0
		20, 21, // ix=1
		30, 31, // ix=2
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, g.At(0, 0))
	assert.Equal(t, 21.0, g.At(1, 1))
	assert.Equal(t, 30.0, g.At(2, 0))

	for i := range g.Values {
		ix, iy := g.Coords(i)
		assert.Equal(t, i, g.FlatIndex(ix, iy))
	}

	g.Set(2, 1, 99)
	assert.Equal(t, 99.0, g.At(2, 1))
}

func TestGridCenters(t *testing.T) {
	g, err := NewGrid("h", []float64{-2, 0, 3}, []float64{0, 0.5, 1.5}, make([]float64, 4))
	require.NoError(t, err)

	assert.InDelta(t, -1.0, g.CenterX(0), 1e-12)
	assert.InDelta(t, 1.5, g.CenterX(1), 1e-12)
	assert.InDelta(t, 0.25, g.CenterY(0), 1e-12)
	assert.InDelta(t, 1.0, g.CenterY(1), 1e-12)
}

func TestGridClone(t *testing.T) {
	g, err := NewGrid("h", []float64{0, 1, 2}, []float64{0, 1}, []float64{1, 2})
	require.NoError(t, err)

	c := g.Clone()
	c.Set(0, 0, 42)
	c.EdgesX[0] = -9

	assert.Equal(t, 1.0, g.At(0, 0), "clone must not alias values")
	assert.Equal(t, 0.0, g.EdgesX[0], "clone must not alias edges")
	assert.Equal(t, g.Name, c.Name)
}

func TestGridSameBinning(t *testing.T) {
	a, _ := NewGrid("a", []float64{0, 1, 2}, []float64{0, 1, 2}, make([]float64, 4))
	b, _ := NewGrid("b", []float64{5, 6, 7}, []float64{5, 6, 7}, make([]float64, 4))
	c, _ := NewGrid("c", []float64{0, 1}, []float64{0, 1, 2}, make([]float64, 2))

	assert.True(t, a.SameBinning(b), "binning compares counts, not positions")
	assert.False(t, a.SameBinning(c))
}
