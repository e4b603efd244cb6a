package main

import (
	"github.com/spf13/cobra"

	"github.com/ravindkv/cms-jme-scripts/internal/render"
	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

var (
	plotInput  string
	plotOutput string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the hot/cold veto map as a PNG image",
	Long: `Plot reads the official veto map together with its hot and cold
companions and renders the vetoed cells: hot towers on one side of a
diverging colour scale, dead channels on the other.

Example:
  vetomap plot -i Summer24Prompt24_RunBCDEFGHI.root -o jetvetomap_hotcold.png`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().StringVarP(&plotInput, "input", "i", "", "input ROOT file (required)")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "jetvetomap_hotcold.png", "output PNG file")
	_ = plotCmd.MarkFlagRequired("input")
}

func runPlot(cmd *cobra.Command, args []string) error {
	style, err := styleFromConfig(cfg)
	if err != nil {
		return err
	}

	grids, err := loadVariantGrids(plotInput, []types.Variant{
		types.VariantOfficial, types.VariantHot, types.VariantCold,
	})
	if err != nil {
		return err
	}

	err = render.HotCold(
		grids[types.VariantOfficial],
		grids[types.VariantHot],
		grids[types.VariantCold],
		style, plotOutput)
	if err != nil {
		return err
	}

	log.Info().Str("output", plotOutput).Msg("hot/cold map rendered")
	return nil
}
