package main

import (
	"fmt"
	"strings"

	"github.com/ravindkv/cms-jme-scripts/internal/correction"
	"github.com/ravindkv/cms-jme-scripts/internal/rootio"
	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

// loadGrid reads a named map from either source format, chosen by file
// extension.
func loadGrid(path, mapName string) (*types.Grid, error) {
	switch {
	case strings.HasSuffix(path, ".root"):
		return rootio.Load(path, mapName)
	case strings.HasSuffix(path, ".json"), strings.HasSuffix(path, ".json.gz"):
		return correction.LoadMap(path, mapName)
	default:
		return nil, fmt.Errorf("unsupported source %q (want .root, .json or .json.gz)", path)
	}
}

// loadVariantGrids loads the histograms backing the requested variants
// from a ROOT container. Every missing variant is reported by name in
// one error.
func loadVariantGrids(path string, variants []types.Variant) (map[types.Variant]*types.Grid, error) {
	grids, err := rootio.LoadAll(path)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*types.Grid, len(grids))
	for _, g := range grids {
		byName[g.Name] = g
	}

	out := make(map[types.Variant]*types.Grid, len(variants))
	var missing []string
	for _, v := range variants {
		g, ok := byName[v.HistName()]
		if !ok {
			missing = append(missing, fmt.Sprintf("%s (%s)", v, v.HistName()))
			continue
		}
		out[v] = g
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q is missing %s",
			types.ErrHistogramNotFound, path, strings.Join(missing, ", "))
	}
	return out, nil
}
