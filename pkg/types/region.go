package types

import "fmt"

// Region is an open rectangle in (eta, phi). Cells whose centers fall
// strictly inside the rectangle are considered members; centers exactly
// on a boundary are not.
type Region struct {
	EtaMin float64 `mapstructure:"eta_min" json:"eta_min"`
	EtaMax float64 `mapstructure:"eta_max" json:"eta_max"`
	PhiMin float64 `mapstructure:"phi_min" json:"phi_min"`
	PhiMax float64 `mapstructure:"phi_max" json:"phi_max"`
}

// Contains reports whether (eta, phi) lies strictly inside the region.
func (r Region) Contains(eta, phi float64) bool {
	return r.EtaMin < eta && eta < r.EtaMax && r.PhiMin < phi && phi < r.PhiMax
}

// Validate checks that the region is non-degenerate.
func (r Region) Validate() error {
	if r.EtaMin >= r.EtaMax {
		return fmt.Errorf("region: eta_min %v >= eta_max %v", r.EtaMin, r.EtaMax)
	}
	if r.PhiMin >= r.PhiMax {
		return fmt.Errorf("region: phi_min %v >= phi_max %v", r.PhiMin, r.PhiMax)
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("eta (%v, %v) phi (%v, %v)", r.EtaMin, r.EtaMax, r.PhiMin, r.PhiMax)
}

// DefaultRegions are the FPix exclusion rectangles carried over from the
// 2024 veto-map preparation, used when no region file is configured.
var DefaultRegions = []Region{
	{EtaMin: -2.043, EtaMax: -1.566, PhiMin: 2.443461, PhiMax: 2.7925268},
	{EtaMin: -2.043, EtaMax: -1.83, PhiMin: 2.7925268, PhiMax: 3.0543262},
}
