package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ravindkv/cms-jme-scripts/internal/compare"
	"github.com/ravindkv/cms-jme-scripts/internal/render"
	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

var (
	overlayInput    string
	overlayOutput   string
	overlayVariants string
)

var overlayCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Render several veto-map variants in one PNG image",
	Long: `Overlay composites the requested regional veto-map variants into a
single image, remapping the hot/cold sentinel contents onto
per-variant display levels. The official and combined ("all") maps are
never painted: requesting them loads them for a content cross-check
against each other, and any disagreement is reported.

Example:
  vetomap overlay -i maps.root -o vetomaps.png --variants official,fpix,all`,
	Args: cobra.NoArgs,
	RunE: runOverlay,
}

func init() {
	overlayCmd.Flags().StringVarP(&overlayInput, "input", "i", "", "input ROOT file (required)")
	overlayCmd.Flags().StringVarP(&overlayOutput, "output", "o", "vetomaps.png", "output PNG file")
	overlayCmd.Flags().StringVar(&overlayVariants, "variants", "official,fpix,all", "comma-separated variants to draw")
	_ = overlayCmd.MarkFlagRequired("input")
}

func runOverlay(cmd *cobra.Command, args []string) error {
	style, err := styleFromConfig(cfg)
	if err != nil {
		return err
	}

	variants, err := types.ParseVariants(overlayVariants)
	if err != nil {
		return err
	}

	grids, err := loadVariantGrids(overlayInput, variants)
	if err != nil {
		return err
	}

	if official, ok := grids[types.VariantOfficial]; ok {
		if all, ok := grids[types.VariantAll]; ok {
			verifyOfficialAll(official, all)
		}
	}

	layers := drawableLayers(variants, grids)
	if len(layers) == 0 {
		return fmt.Errorf("nothing to draw: variants %q are cross-check only, add a regional variant", overlayVariants)
	}
	if err := render.Overlay(layers, style, overlayOutput); err != nil {
		return err
	}

	log.Info().Str("output", overlayOutput).Msg("overlay rendered")
	return nil
}

// drawableLayers selects the variants to paint, preserving order. The
// official and combined maps cover every vetoed cell at the top level
// and would hide the regional variants underneath, so they are loaded
// for cross-checking only and never drawn.
func drawableLayers(variants []types.Variant, grids map[types.Variant]*types.Grid) []render.Layer {
	var layers []render.Layer
	for _, v := range variants {
		if v == types.VariantOfficial || v == types.VariantAll {
			continue
		}
		layers = append(layers, render.Layer{Variant: v, Grid: grids[v]})
	}
	return layers
}

// verifyOfficialAll warns when the official map and the combined map
// disagree on any cell. A disagreement does not abort the rendering.
func verifyOfficialAll(official, all *types.Grid) {
	res, err := compare.Compare(official, all, 0)
	if err != nil {
		log.Warn().Err(err).Msg("official/all cross-check impossible")
		return
	}
	for _, d := range res.Diffs {
		log.Warn().Msgf("official and all disagree in bin (%d,%d): %v vs %v",
			d.Row+1, d.Col+1, d.A, d.B)
	}
	if !res.Clean() {
		log.Warn().Int("bins", res.Count()).Msg("official and combined maps differ")
	}
}
