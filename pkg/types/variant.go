package types

import (
	"fmt"
	"sort"
	"strings"
)

// Variant enumerates the veto-map flavours a container file may carry.
// Each variant maps to a fixed histogram name; the mapping is validated
// up front instead of probing string keys at use sites.
type Variant int

const (
	VariantOfficial Variant = iota
	VariantHot
	VariantCold
	VariantHotAndCold
	VariantEEP
	VariantBPix
	VariantFPix
	VariantHEM1516
	VariantHBP2M1
	VariantHEP17
	VariantHBPW89
	VariantHBM2
	VariantHBP12
	VariantQIE11
	VariantAll
)

// variantInfo carries the per-variant lookup tables: the short CLI name,
// the histogram name inside the ROOT container, the display level used
// when several variants are composited into one image, and the legend
// label.
type variantInfo struct {
	name   string
	hist   string
	level  float64
	legend string
}

var variants = map[Variant]variantInfo{
	VariantOfficial:   {"official", "jetvetomap", 10, "Veto map"},
	VariantHot:        {"hot", "jetvetomap_hot", 10, "Hot towers"},
	VariantCold:       {"cold", "jetvetomap_cold", 0, "Dead channels"},
	VariantHotAndCold: {"hotandcold", "jetvetomap_hotandcold", 10, "Hot and cold"},
	VariantEEP:        {"eep", "jetvetomap_eep", 7.5, "EE+ region"},
	VariantBPix:       {"bpix", "jetvetomap_bpix", 7.5, "BPix region"},
	VariantFPix:       {"fpix", "jetvetomap_fpix", 7.5, "FPix region"},
	VariantHEM1516:    {"hem1516", "jetvetomap_hem1516", 8.5, "HEM 15/16"},
	VariantHBP2M1:     {"hbp2m1", "jetvetomap_hbp2m1", 7, "HBP2M1"},
	VariantHEP17:      {"hep17", "jetvetomap_hep17", 3.6, "HEP17"},
	VariantHBPW89:     {"hbpw89", "jetvetomap_hbpw89", 3.5, "HBPW89"},
	VariantHBM2:       {"hbm2", "jetvetomap_hbm2", 1.5, "HBM2"},
	VariantHBP12:      {"hbp12", "jetvetomap_hbp12", 1, "HBP12"},
	VariantQIE11:      {"qie11", "jetvetomap_qie11", 0.1, "QIE11"},
	VariantAll:        {"all", "jetvetomap_all", 10, "All regions"},
}

// String returns the short CLI name of the variant.
func (v Variant) String() string {
	if info, ok := variants[v]; ok {
		return info.name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// HistName returns the histogram name backing the variant inside a ROOT
// container file.
func (v Variant) HistName() string { return variants[v].hist }

// DisplayLevel returns the value assigned to this variant's cells when
// compositing several variants into one overlay image.
func (v Variant) DisplayLevel() float64 { return variants[v].level }

// Legend returns the human-readable legend label for the variant.
func (v Variant) Legend() string { return variants[v].legend }

// ParseVariant resolves a short variant name (case-insensitive).
func ParseVariant(name string) (Variant, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for v, info := range variants {
		if info.name == want {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %s)", ErrVariantUnknown, name, strings.Join(VariantNames(), ", "))
}

// ParseVariants resolves a comma-separated variant list, preserving order.
func ParseVariants(list string) ([]Variant, error) {
	var out []Variant
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		v, err := ParseVariant(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty variant list", ErrVariantUnknown)
	}
	return out, nil
}

// VariantNames returns all short variant names, sorted.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for _, info := range variants {
		names = append(names, info.name)
	}
	sort.Strings(names)
	return names
}
