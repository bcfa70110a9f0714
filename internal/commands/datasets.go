// Package commands implements the aeon CLI subcommands.
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vedpawar2254/aeon/datasets"
)

// NewDatasetsCmd creates the datasets command.
func NewDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the embedded benchmark datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := datasets.Describe()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCHANNELS\tLENGTH\tTRAIN\tTEST")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
					info.Name, info.NChannels, info.SeriesLength,
					info.TrainInstances, info.TestInstances)
			}
			return w.Flush()
		},
	}
}
