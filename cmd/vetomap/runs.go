package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ravindkv/cms-jme-scripts/internal/ledger"
)

var runsDB string

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded validation runs",
	Long: `Runs lists the validation history recorded by "validate --record",
newest first.`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsDB, "db", "", "ledger database (default: ledger_path from config)")
}

func runRuns(cmd *cobra.Command, args []string) error {
	path := runsDB
	if path == "" {
		path = cfg.GetString(cfgKeyLedger)
	}

	l, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer l.Close()

	runs, err := l.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%s  %-5s  %-20s  tol=%-8g  %d/%d differing  %s -> %s\n",
			r.CreatedAt.Format(time.RFC3339), r.Status, r.MapName,
			r.Tolerance, r.Differing, r.Bins, r.SourceA, r.SourceB)
	}
	return nil
}
