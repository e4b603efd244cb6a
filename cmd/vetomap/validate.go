package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ravindkv/cms-jme-scripts/internal/compare"
	"github.com/ravindkv/cms-jme-scripts/internal/ledger"
)

var (
	validateOld       string
	validateNew       string
	validateMap       string
	validateTolerance float64
	validateRecordDB  string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compare a named map between two sources",
	Long: `Validate compares the bin contents of one veto map between two
sources. Each source may be a ROOT container (.root) or a correction-set
JSON document (.json, .json.gz); the format is chosen by extension.

Bin edges must agree within the tolerance on both axes, otherwise the
comparison aborts. Differing cells are reported one per line and the
command exits non-zero when any cell differs beyond the tolerance.

Example:
  vetomap validate -o old.root -n new.root -m jetvetomap
  vetomap validate -o maps.root -n jetvetomaps.json.gz -m jetvetomap -t 1e-6`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateOld, "old", "o", "", "path to the reference source (required)")
	validateCmd.Flags().StringVarP(&validateNew, "new", "n", "", "path to the candidate source (required)")
	validateCmd.Flags().StringVarP(&validateMap, "map", "m", "", "name of the map to validate, e.g. jetvetomap (required)")
	validateCmd.Flags().Float64VarP(&validateTolerance, "tolerance", "t", 1e-6, "absolute tolerance for bin content differences")
	validateCmd.Flags().StringVar(&validateRecordDB, "record", "",
		"record the outcome in this ledger database (bare --record uses ledger_path from config)")
	validateCmd.Flags().Lookup("record").NoOptDefVal = defaultLedgerPath
	_ = validateCmd.MarkFlagRequired("old")
	_ = validateCmd.MarkFlagRequired("new")
	_ = validateCmd.MarkFlagRequired("map")
}

func runValidate(cmd *cobra.Command, args []string) error {
	log.Info().
		Str("map", validateMap).
		Str("old", validateOld).
		Str("new", validateNew).
		Float64("tolerance", validateTolerance).
		Msg("starting validation")

	oldGrid, err := loadGrid(validateOld, validateMap)
	if err != nil {
		return fmt.Errorf("load reference: %w", err)
	}
	newGrid, err := loadGrid(validateNew, validateMap)
	if err != nil {
		return fmt.Errorf("load candidate: %w", err)
	}

	res, err := compare.Compare(oldGrid, newGrid, validateTolerance)
	if err != nil {
		return fmt.Errorf("compare %q: %w", validateMap, err)
	}

	log.Info().Int("bins", res.Bins).Msgf("comparing histograms for %q", validateMap)
	for _, d := range res.Diffs {
		// 1-based bin numbers, eta varying slower than phi.
		log.Warn().Msgf("difference in bin (eta_bin=%d, phi_bin=%d): old=%v new=%v diff=%v",
			d.Row+1, d.Col+1, d.A, d.B, d.Diff)
	}

	if validateRecordDB != "" {
		path := validateRecordDB
		if path == defaultLedgerPath {
			path = cfg.GetString(cfgKeyLedger)
		}
		if err := recordRun(path, res); err != nil {
			return err
		}
	}

	if !res.Clean() {
		return fmt.Errorf("%d of %d bins differ beyond tolerance %v for map %q",
			res.Count(), res.Bins, validateTolerance, validateMap)
	}
	log.Info().Msgf("no differences found for map %q", validateMap)
	return nil
}

func recordRun(path string, res *compare.Result) error {
	l, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer l.Close()

	status := ledger.StatusClean
	if !res.Clean() {
		status = ledger.StatusDirty
	}
	run := &ledger.Run{
		MapName:   validateMap,
		SourceA:   validateOld,
		SourceB:   validateNew,
		Tolerance: validateTolerance,
		Bins:      res.Bins,
		Differing: res.Count(),
		Status:    status,
	}
	if err := l.Record(run); err != nil {
		return err
	}
	log.Debug().Str("run_id", run.ID).Str("ledger", path).Msg("recorded validation run")
	return nil
}
