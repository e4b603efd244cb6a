package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global flag values.
var (
	flagConfig  string
	flagVerbose bool
)

// cfg holds the loaded configuration; log is the process logger. Both
// are set by PersistentPreRunE before any subcommand runs.
var (
	cfg *viper.Viper
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vetomap",
	Short: "Jet veto map utilities",
	Long: `vetomap prepares and checks CMS jet veto maps: it converts ROOT
histogram containers to correctionlib JSON, removes detector regions,
renders overlay images, and cross-validates map contents between any
two sources (ROOT or JSON) within a numeric tolerance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = newLogger(flagVerbose)

		var err error
		cfg, err = loadConfig(flagConfig)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./.vetomap.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(overlayCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger builds the console logger used by all subcommands.
func newLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
