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

// Metadata text carried verbatim from the veto-map production.
const (
	correctionDescription = "These are the jet veto maps showing regions with an excess of jets (hot zones) " +
		"and lack of jets (cold zones). Using the phi-symmetry of the CMS detector, " +
		"these areas with detector and/or calibration issues can be pinpointed."
	typeInputDescription = "Name of the type of veto map. The recommended map for analyses is 'jetvetomap'."
	outputDescription    = "Non-zero value for (eta, phi) indicates that the region is vetoed."
)

// Build assembles a schema v2 correction set holding the given grids as
// one category-dispatched correction named name.
func Build(name string, grids []*types.Grid) (*Set, error) {
	if len(grids) == 0 {
		return nil, fmt.Errorf("no grids to convert")
	}

	content := make([]CategoryItem, 0, len(grids))
	for _, g := range grids {
		content = append(content, CategoryItem{
			Key: g.Name,
			Value: MultiBinning{
				NodeType: nodeMultiBinning,
				Inputs:   []string{"eta", "phi"},
				Edges:    [][]float64{g.EdgesX, g.EdgesY},
				Content:  g.Values,
				Flow:     0.0,
			},
		})
	}

	return &Set{
		SchemaVersion: schemaVersion,
		Description: fmt.Sprintf("These are the jet veto maps for %s. "+
			"The recommended veto maps to be applied to both data and MC for analysis is 'jetvetomap'.", name),
		Corrections: []Correction{{
			Version:     1,
			Name:        name,
			Description: correctionDescription,
			Inputs: []Variable{
				{Name: "type", Type: "string", Description: typeInputDescription},
				{Name: "eta", Type: "real", Description: "Jet eta"},
				{Name: "phi", Type: "real", Description: "Jet phi"},
			},
			Output: Variable{Name: "vetomaps", Type: "real", Description: outputDescription},
			Data: Category{
				NodeType: nodeCategory,
				Input:    "type",
				Content:  content,
			},
		}},
	}, nil
}

// WriteFile writes the set as indented JSON. A path ending in ".gz"
// selects a gzip-compressed stream.
func WriteFile(path string, set *Set) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()

	var w io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(f)
		defer func() {
			if cerr := zw.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close gzip stream: %w", cerr)
			}
		}()
		w = zw
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return nil
}
