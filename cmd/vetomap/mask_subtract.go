package main

import (
	"github.com/spf13/cobra"

	"github.com/ravindkv/cms-jme-scripts/internal/mask"
	"github.com/ravindkv/cms-jme-scripts/internal/rootio"
	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

var (
	maskSubtractInput   string
	maskSubtractOutput  string
	maskSubtractMap     string
	maskSubtractMaskMap string
)

var maskSubtractCmd = &cobra.Command{
	Use:   "subtract",
	Short: "Zero cells of one map wherever a mask map is set",
	Long: `Subtract zeroes every cell of the named map wherever the mask map's
content is greater than zero, then rewrites the container with every
other object carried through unchanged. Both maps must live in the
input file and
share the same binning.

Example:
  vetomap mask subtract -i maps.root -o maps_nobpix.root -m jetvetomap_cold --mask-map jetvetomap_bpix`,
	Args: cobra.NoArgs,
	RunE: runMaskSubtract,
}

func init() {
	maskSubtractCmd.Flags().StringVarP(&maskSubtractInput, "input", "i", "", "input ROOT file (required)")
	maskSubtractCmd.Flags().StringVarP(&maskSubtractOutput, "output", "o", "", "output ROOT file (required)")
	maskSubtractCmd.Flags().StringVarP(&maskSubtractMap, "map", "m", "", "histogram to modify (required)")
	maskSubtractCmd.Flags().StringVar(&maskSubtractMaskMap, "mask-map", "jetvetomap_bpix", "histogram acting as the mask")
	_ = maskSubtractCmd.MarkFlagRequired("input")
	_ = maskSubtractCmd.MarkFlagRequired("output")
	_ = maskSubtractCmd.MarkFlagRequired("map")
}

func runMaskSubtract(cmd *cobra.Command, args []string) error {
	target, err := rootio.Load(maskSubtractInput, maskSubtractMap)
	if err != nil {
		return err
	}
	maskGrid, err := rootio.Load(maskSubtractInput, maskSubtractMaskMap)
	if err != nil {
		return err
	}

	masked, err := mask.Subtract(target, maskGrid)
	if err != nil {
		return err
	}

	err = rootio.Rewrite(maskSubtractInput, maskSubtractOutput,
		map[string]*types.Grid{maskSubtractMap: masked})
	if err != nil {
		return err
	}

	log.Info().
		Str("histogram", maskSubtractMap).
		Str("mask", maskSubtractMaskMap).
		Str("output", maskSubtractOutput).
		Msg("mask subtracted and container rewritten")
	return nil
}
