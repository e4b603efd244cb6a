package correction

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

// ReadFile parses a correction-set document, decompressing when the
// path ends in ".gz".
func ReadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	var set Set
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	if len(set.Corrections) == 0 {
		return nil, fmt.Errorf("%q: no corrections in document", path)
	}
	return &set, nil
}

// Lookup finds the named multibinning map inside the set and returns it
// as a grid.
func (s *Set) Lookup(mapName string) (*types.Grid, error) {
	for _, corr := range s.Corrections {
		if corr.Data.NodeType != nodeCategory {
			continue
		}
		for _, item := range corr.Data.Content {
			if item.Key != mapName {
				continue
			}
			if item.Value.NodeType != nodeMultiBinning {
				continue
			}
			return gridFromBinning(mapName, item.Value)
		}
	}
	return nil, fmt.Errorf("%w: %q", types.ErrMapNotFound, mapName)
}

// LoadMap is the one-call read path used by the validators.
func LoadMap(path, mapName string) (*types.Grid, error) {
	set, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := set.Lookup(mapName)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return g, nil
}

func gridFromBinning(name string, mb MultiBinning) (*types.Grid, error) {
	if len(mb.Edges) != 2 {
		return nil, fmt.Errorf("map %q: %d edge arrays (want 2)", name, len(mb.Edges))
	}
	if len(mb.Content) == 0 {
		return nil, fmt.Errorf("map %q: empty content", name)
	}
	g, err := types.NewGrid(name, mb.Edges[0], mb.Edges[1], mb.Content)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", name, err)
	}
	return g, nil
}
