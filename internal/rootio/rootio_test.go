package rootio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/hbook"

	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

func mustGrid(t *testing.T, name string, edgesX, edgesY, values []float64) *types.Grid {
	t.Helper()
	g, err := types.NewGrid(name, edgesX, edgesY, values)
	require.NoError(t, err)
	return g
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps.root")

	official := mustGrid(t, "jetvetomap",
		[]float64{-5.191, -2.5, 0, 2.5, 5.191},
		[]float64{-3.1416, 0, 3.1416},
		[]float64{100, 0, 0, -100, 7.5, 0, 0, 100})
	hot := mustGrid(t, "jetvetomap_hot",
		[]float64{-5.191, -2.5, 0, 2.5, 5.191},
		[]float64{-3.1416, 0, 3.1416},
		[]float64{100, 0, 0, 0, 0, 0, 0, 100})

	require.NoError(t, Write(path, []*types.Grid{official, hot}))

	got, err := Load(path, "jetvetomap")
	require.NoError(t, err)
	assert.Equal(t, "jetvetomap", got.Name)
	assert.InDeltaSlice(t, official.EdgesX, got.EdgesX, 1e-9)
	assert.InDeltaSlice(t, official.EdgesY, got.EdgesY, 1e-9)
	assert.InDeltaSlice(t, official.Values, got.Values, 1e-9)
}

func TestLoadStripsCycleSuffix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps.root")
	g := mustGrid(t, "jetvetomap", []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 0, 0, 2})
	require.NoError(t, Write(path, []*types.Grid{g}))

	got, err := Load(path, "jetvetomap;1")
	require.NoError(t, err)
	assert.Equal(t, "jetvetomap", got.Name)
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps.root")
	g := mustGrid(t, "jetvetomap", []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 0, 0, 2})
	require.NoError(t, Write(path, []*types.Grid{g}))

	_, err := Load(path, "nosuchmap")
	assert.ErrorIs(t, err, types.ErrHistogramNotFound)

	_, err = Load(filepath.Join(t.TempDir(), "absent.root"), "jetvetomap")
	assert.Error(t, err)
}

func TestLoadAllPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maps.root")
	grids := []*types.Grid{
		mustGrid(t, "jetvetomap", []float64{0, 1, 2}, []float64{0, 1}, []float64{1, 2}),
		mustGrid(t, "jetvetomap_hot", []float64{0, 1, 2}, []float64{0, 1}, []float64{0, 100}),
		mustGrid(t, "jetvetomap_cold", []float64{0, 1, 2}, []float64{0, 1}, []float64{-100, 0}),
	}
	require.NoError(t, Write(path, grids))

	got, err := LoadAll(path)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, g := range got {
		assert.Equal(t, grids[i].Name, g.Name)
		assert.InDeltaSlice(t, grids[i].Values, g.Values, 1e-9)
	}
}

func TestRewriteCarriesSiblingsThrough(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.root")

	official := mustGrid(t, "jetvetomap", []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{100, 0, 0, -100})
	hot := mustGrid(t, "jetvetomap_hot", []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{100, 0, 0, 0})

	f, err := groot.Create(src)
	require.NoError(t, err)
	require.NoError(t, f.Put("jetvetomap", rhist.NewH2DFrom(toH2D(official))))
	require.NoError(t, f.Put("jetvetomap_hot", rhist.NewH2DFrom(toH2D(hot))))
	counts := hbook.NewH1D(4, 0, 4)
	counts.Annotation()["name"] = "trigs"
	counts.Fill(0.5, 12)
	require.NoError(t, f.Put("trigs", rhist.NewH1DFrom(counts)))
	require.NoError(t, f.Close())

	masked := official.Clone()
	for i := range masked.Values {
		masked.Values[i] = 0
	}

	dst := filepath.Join(dir, "dst.root")
	require.NoError(t, Rewrite(src, dst, map[string]*types.Grid{"jetvetomap": masked}))

	got, err := Load(dst, "jetvetomap")
	require.NoError(t, err)
	assert.InDeltaSlice(t, masked.Values, got.Values, 1e-9)

	gotHot, err := Load(dst, "jetvetomap_hot")
	require.NoError(t, err)
	assert.InDeltaSlice(t, hot.Values, gotHot.Values, 1e-9, "untouched histogram unchanged")

	out, err := groot.Open(dst)
	require.NoError(t, err)
	defer out.Close()
	_, err = out.Get("trigs")
	assert.NoError(t, err, "non-2D sibling carried through")

	err = Rewrite(src, filepath.Join(dir, "bad.root"), map[string]*types.Grid{"nosuchmap": masked})
	assert.ErrorIs(t, err, types.ErrHistogramNotFound)
}

func TestTitleRoundTrip(t *testing.T) {
	g := mustGrid(t, "jetvetomap", []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 0, 0, 2})
	g.Title = "jet veto map, Summer24"

	back, err := fromH2D(g.Name, toH2D(g))
	require.NoError(t, err)
	assert.Equal(t, "jet veto map, Summer24", back.Title)

	// An untitled grid falls back to its name.
	plain := mustGrid(t, "jetvetomap_hot", []float64{0, 1, 2}, []float64{0, 1, 2}, []float64{1, 0, 0, 2})
	back, err = fromH2D(plain.Name, toH2D(plain))
	require.NoError(t, err)
	assert.Equal(t, "jetvetomap_hot", back.Title)
}

func TestStripCycle(t *testing.T) {
	assert.Equal(t, "jetvetomap", stripCycle("jetvetomap;1"))
	assert.Equal(t, "jetvetomap", stripCycle("jetvetomap"))
	assert.Equal(t, "", stripCycle(";2"))
}
