package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ravindkv/cms-jme-scripts/internal/correction"
	"github.com/ravindkv/cms-jme-scripts/internal/rootio"
	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

var (
	convertInput   string
	convertOutput  string
	convertName    string
	convertExclude string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a ROOT veto-map container to correction-set JSON",
	Long: `Convert reads every 2D histogram from a ROOT container and writes a
correctionlib schema v2 document. Histograms whose name contains the
exclusion substring (trigger-count maps by default) are skipped. An
output path ending in .gz is gzip-compressed.

Example:
  vetomap convert -i Summer24Prompt24_RunBCDEFGHI.root -o jetvetomaps.json.gz`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "input ROOT file (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output JSON file, .json or .json.gz (required)")
	convertCmd.Flags().StringVar(&convertName, "name", "", "correction name (default: input file base name + _V1)")
	convertCmd.Flags().StringVar(&convertExclude, "exclude", "trigs", "skip histograms whose name contains this substring")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	name := convertName
	if name == "" {
		base := filepath.Base(convertInput)
		name = strings.TrimSuffix(base, filepath.Ext(base)) + "_V1"
	}

	grids, err := rootio.LoadAll(convertInput)
	if err != nil {
		return err
	}

	kept := make([]*types.Grid, 0, len(grids))
	for _, g := range grids {
		if convertExclude != "" && strings.Contains(g.Name, convertExclude) {
			log.Debug().Str("histogram", g.Name).Msg("excluded from conversion")
			continue
		}
		kept = append(kept, g)
	}
	if len(kept) == 0 {
		return fmt.Errorf("no histograms left to convert in %q", convertInput)
	}

	set, err := correction.Build(name, kept)
	if err != nil {
		return err
	}
	if err := correction.WriteFile(convertOutput, set); err != nil {
		return err
	}

	log.Info().
		Str("correction", name).
		Int("maps", len(kept)).
		Str("output", convertOutput).
		Msg("conversion done")
	return nil
}
