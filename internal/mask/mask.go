// Package mask removes detector regions from veto-map grids, either by
// coordinate rectangles or by subtracting another map. Both operations
// return fresh grids and leave their inputs untouched.
package mask

import (
	"fmt"

	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

// ZeroRegions returns a copy of g with every cell zeroed whose center
// lies strictly inside any of the given regions, plus the number of
// cells zeroed. Regions may overlap; each cell is zeroed at most once.
func ZeroRegions(g *types.Grid, regions []types.Region) (*types.Grid, int) {
	out := g.Clone()
	zeroed := 0
	for ix := 0; ix < out.Nx(); ix++ {
		eta := out.CenterX(ix)
		for iy := 0; iy < out.Ny(); iy++ {
			phi := out.CenterY(iy)
			for _, r := range regions {
				if r.Contains(eta, phi) {
					out.Set(ix, iy, 0)
					zeroed++
					break
				}
			}
		}
	}
	return out, zeroed
}

// Subtract returns a copy of base with every cell zeroed where the mask
// grid's value is greater than 0. Cells with mask value 0 or below pass
// through unchanged. The two grids must agree on bin counts on both
// axes.
func Subtract(base, mask *types.Grid) (*types.Grid, error) {
	if !base.SameBinning(mask) {
		return nil, fmt.Errorf("%w: %q is %dx%d, mask %q is %dx%d",
			types.ErrBinCountMismatch,
			base.Name, base.Nx(), base.Ny(),
			mask.Name, mask.Nx(), mask.Ny())
	}
	out := base.Clone()
	for i, v := range mask.Values {
		if v > 0 {
			out.Values[i] = 0
		}
	}
	return out, nil
}
