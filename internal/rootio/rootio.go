// Package rootio loads and writes veto-map grids stored as 2D
// histograms in ROOT container files. ROOT access goes through go-hep's
// groot; histogram objects are bridged to hbook via their YODA encoding
// and reduced to the flat Grid model.
package rootio

import (
	"fmt"
	"sort"
	"strings"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/yodacnv"

	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

// Load reads one named 2D histogram from a ROOT file. The name may
// carry a ROOT cycle suffix (";1"), which is stripped.
func Load(path, name string) (*types.Grid, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	name = stripCycle(name)
	obj, err := f.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %q: %v", types.ErrHistogramNotFound, name, path, err)
	}

	g, err := gridFrom(obj, name)
	if err != nil {
		return nil, fmt.Errorf("histogram %q in %q: %w", name, path, err)
	}
	return g, nil
}

// LoadAll reads every 2D histogram in the file, in file order, with
// cycle suffixes stripped from the names. Objects of other classes are
// skipped.
func LoadAll(path string) ([]*types.Grid, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	var grids []*types.Grid
	for _, key := range f.Keys() {
		obj, err := key.Object()
		if err != nil {
			return nil, fmt.Errorf("read key %q in %q: %w", key.Name(), path, err)
		}
		if !is2D(obj) {
			continue
		}
		g, err := gridFrom(obj, stripCycle(key.Name()))
		if err != nil {
			return nil, fmt.Errorf("histogram %q in %q: %w", key.Name(), path, err)
		}
		grids = append(grids, g)
	}
	if len(grids) == 0 {
		return nil, fmt.Errorf("%w: no 2D histograms in %q", types.ErrHistogramNotFound, path)
	}
	return grids, nil
}

// Write creates (or replaces) a ROOT file holding the given grids as 2D
// histograms, in slice order.
func Write(path string, grids []*types.Grid) (err error) {
	f, err := groot.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()

	for _, g := range grids {
		if perr := f.Put(g.Name, rhist.NewH2DFrom(toH2D(g))); perr != nil {
			return fmt.Errorf("write %q to %q: %w", g.Name, path, perr)
		}
	}
	return nil
}

// Rewrite copies src to dst key by key, swapping in the replacement
// grids for the 2D histograms of the same name. Every other object
// (trigger-count maps, non-histogram siblings) is carried through
// unchanged under its original key. Every replacement name must match
// a 2D histogram in src.
func Rewrite(srcPath, dstPath string, replace map[string]*types.Grid) (err error) {
	src, err := groot.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %q: %w", srcPath, err)
	}
	defer src.Close()

	dst, err := groot.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", dstPath, err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", dstPath, cerr)
		}
	}()

	replaced := make(map[string]bool, len(replace))
	for _, key := range src.Keys() {
		obj, oerr := key.Object()
		if oerr != nil {
			return fmt.Errorf("read key %q in %q: %w", key.Name(), srcPath, oerr)
		}
		name := stripCycle(key.Name())
		if g, ok := replace[name]; ok && is2D(obj) {
			replaced[name] = true
			if perr := dst.Put(name, rhist.NewH2DFrom(toH2D(g))); perr != nil {
				return fmt.Errorf("write %q to %q: %w", name, dstPath, perr)
			}
			continue
		}
		if perr := dst.Put(name, obj); perr != nil {
			return fmt.Errorf("copy %q to %q: %w", name, dstPath, perr)
		}
	}
	for name := range replace {
		if !replaced[name] {
			return fmt.Errorf("%w: %q in %q", types.ErrHistogramNotFound, name, srcPath)
		}
	}
	return nil
}

// stripCycle removes a ROOT key cycle suffix such as ";1".
func stripCycle(name string) string {
	if i := strings.IndexByte(name, ';'); i >= 0 {
		return name[:i]
	}
	return name
}

func is2D(obj any) bool {
	switch obj.(type) {
	case *rhist.H2D, *rhist.H2F, *rhist.H2I:
		return true
	}
	return false
}

// gridFrom converts a groot 2D histogram object to a Grid. The object
// is re-encoded as YODA and decoded into an hbook.H2D, which exposes
// per-bin geometry regardless of the on-disk histogram class.
func gridFrom(obj any, name string) (*types.Grid, error) {
	m, ok := obj.(yodacnv.Marshaler)
	if !ok || !is2D(obj) {
		return nil, fmt.Errorf("object is not a 2D histogram (%T)", obj)
	}
	raw, err := m.MarshalYODA()
	if err != nil {
		return nil, fmt.Errorf("encode histogram: %w", err)
	}
	var h hbook.H2D
	if err := h.UnmarshalYODA(raw); err != nil {
		return nil, fmt.Errorf("decode histogram: %w", err)
	}
	return fromH2D(name, &h)
}

// fromH2D flattens an hbook 2D histogram into the Grid model. Edges are
// recovered from the per-bin geometry, so bin ordering inside hbook
// does not matter and variable-width axes survive.
func fromH2D(name string, h *hbook.H2D) (*types.Grid, error) {
	bins := h.Binning.Bins
	if len(bins) == 0 {
		return nil, fmt.Errorf("histogram has no bins")
	}

	edgesX := edgesOf(bins, func(b hbook.Bin2D) (float64, float64) { return b.XMin(), b.XMax() })
	edgesY := edgesOf(bins, func(b hbook.Bin2D) (float64, float64) { return b.YMin(), b.YMax() })

	nx, ny := len(edgesX)-1, len(edgesY)-1
	values := make([]float64, nx*ny)
	for _, b := range bins {
		ix := binIndex(edgesX, 0.5*(b.XMin()+b.XMax()))
		iy := binIndex(edgesY, 0.5*(b.YMin()+b.YMax()))
		if ix < 0 || iy < 0 {
			return nil, fmt.Errorf("bin (%v,%v) outside recovered edges", b.XMin(), b.YMin())
		}
		values[ix*ny+iy] = b.SumW()
	}
	g, err := types.NewGrid(name, edgesX, edgesY, values)
	if err != nil {
		return nil, err
	}
	for _, k := range []string{"title", "Title"} {
		if s, ok := h.Annotation()[k].(string); ok && s != "" {
			g.Title = s
			break
		}
	}
	return g, nil
}

// toH2D builds an edge-preserving hbook 2D histogram from a grid, with
// every bin content applied as a weight at the bin center.
func toH2D(g *types.Grid) *hbook.H2D {
	h := hbook.NewH2DFromEdges(g.EdgesX, g.EdgesY)
	title := g.Title
	if title == "" {
		title = g.Name
	}
	h.Annotation()["name"] = g.Name
	h.Annotation()["title"] = title
	for ix := 0; ix < g.Nx(); ix++ {
		for iy := 0; iy < g.Ny(); iy++ {
			if v := g.At(ix, iy); v != 0 {
				h.Fill(g.CenterX(ix), g.CenterY(iy), v)
			}
		}
	}
	return h
}

// edgesOf recovers the sorted unique axis edges from per-bin ranges.
func edgesOf(bins []hbook.Bin2D, rng func(hbook.Bin2D) (float64, float64)) []float64 {
	seen := make(map[float64]struct{})
	for _, b := range bins {
		lo, hi := rng(b)
		seen[lo] = struct{}{}
		seen[hi] = struct{}{}
	}
	edges := make([]float64, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Float64s(edges)
	return edges
}

// binIndex returns the bin holding x, or -1 when x is outside the axis.
func binIndex(edges []float64, x float64) int {
	i := sort.SearchFloat64s(edges, x) - 1
	if i < 0 || i >= len(edges)-1 {
		return -1
	}
	return i
}
