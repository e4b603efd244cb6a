package types

import (
	"fmt"
)

// Grid is a labeled 2D histogram: bin edges on both axes plus a flat
// value array. Values are row-major over X then Y, so the value of bin
// (ix, iy) lives at ix*Ny()+iy. For veto maps X is jet eta and Y is
// jet phi, and eta varies slower than phi.
type Grid struct {
	Name   string    // histogram or map key, cycle suffix stripped
	Title  string    // histogram title, kept verbatim through rewrites
	EdgesX []float64 // Nx+1 strictly increasing edges
	EdgesY []float64 // Ny+1 strictly increasing edges
	Values []float64 // Nx*Ny bin contents
}

// NewGrid builds a Grid and validates the edge/value invariants:
// at least two strictly increasing edges per axis and exactly
// (len(edgesX)-1)*(len(edgesY)-1) values.
func NewGrid(name string, edgesX, edgesY, values []float64) (*Grid, error) {
	if err := checkEdges("x", edgesX); err != nil {
		return nil, err
	}
	if err := checkEdges("y", edgesY); err != nil {
		return nil, err
	}
	want := (len(edgesX) - 1) * (len(edgesY) - 1)
	if len(values) != want {
		return nil, fmt.Errorf("grid %q: %d values for %dx%d bins (want %d)",
			name, len(values), len(edgesX)-1, len(edgesY)-1, want)
	}
	return &Grid{Name: name, EdgesX: edgesX, EdgesY: edgesY, Values: values}, nil
}

func checkEdges(axis string, edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%s axis: need at least 2 edges, got %d", axis, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return fmt.Errorf("%s axis: edges not strictly increasing at index %d (%v >= %v)",
				axis, i, edges[i-1], edges[i])
		}
	}
	return nil
}

// Nx returns the number of bins along X.
func (g *Grid) Nx() int { return len(g.EdgesX) - 1 }

// Ny returns the number of bins along Y.
func (g *Grid) Ny() int { return len(g.EdgesY) - 1 }

// FlatIndex returns the flat value index of bin (ix, iy).
func (g *Grid) FlatIndex(ix, iy int) int { return ix*g.Ny() + iy }

// Coords returns the (ix, iy) bin coordinates of a flat index.
func (g *Grid) Coords(i int) (ix, iy int) { return i / g.Ny(), i % g.Ny() }

// At returns the value of bin (ix, iy).
func (g *Grid) At(ix, iy int) float64 { return g.Values[g.FlatIndex(ix, iy)] }

// Set overwrites the value of bin (ix, iy).
func (g *Grid) Set(ix, iy int, v float64) { g.Values[g.FlatIndex(ix, iy)] = v }

// CenterX returns the center of bin ix along X.
func (g *Grid) CenterX(ix int) float64 { return 0.5 * (g.EdgesX[ix] + g.EdgesX[ix+1]) }

// CenterY returns the center of bin iy along Y.
func (g *Grid) CenterY(iy int) float64 { return 0.5 * (g.EdgesY[iy] + g.EdgesY[iy+1]) }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Name:   g.Name,
		Title:  g.Title,
		EdgesX: make([]float64, len(g.EdgesX)),
		EdgesY: make([]float64, len(g.EdgesY)),
		Values: make([]float64, len(g.Values)),
	}
	copy(c.EdgesX, g.EdgesX)
	copy(c.EdgesY, g.EdgesY)
	copy(c.Values, g.Values)
	return c
}

// SameBinning reports whether two grids have identical bin counts on
// both axes. Edge positions are not compared; use the comparator for
// tolerance-aware edge checks.
func (g *Grid) SameBinning(o *Grid) bool {
	return g.Nx() == o.Nx() && g.Ny() == o.Ny()
}
