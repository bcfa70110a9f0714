package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedpawar2254/aeon/internal/commands"
	"github.com/vedpawar2254/aeon/pkg/log"
)

var version = "dev"

func main() {
	var logLevel string

	root := &cobra.Command{
		Use:   "aeon",
		Short: "Time series regression toolkit",
		Long: `Aeon fits and evaluates time series regressors on panel data.
It ships a set of estimators (baseline, nearest-neighbour, feature-based)
and two embedded benchmark datasets to run them against.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetupLogger(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		commands.NewDatasetsCmd(),
		commands.NewBenchCmd(),
		commands.NewPlotCmd(),
		commands.NewGoldenCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
