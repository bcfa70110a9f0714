package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vedpawar2254/aeon/datasets"
	"github.com/vedpawar2254/aeon/visualization"
)

// NewPlotCmd creates the plot command.
func NewPlotCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "plot <regressor> <dataset>",
		Short: "Plot predicted against actual values on the test split",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args[0], args[1], out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "predicted_vs_actual.png", "output image path")
	return cmd
}

func runPlot(cmd *cobra.Command, regressorName, datasetName, out string) error {
	load, err := resolveDataset(datasetName)
	if err != nil {
		return err
	}
	est, err := resolveRegressor(regressorName)
	if err != nil {
		return err
	}

	XTrain, yTrain, err := load(datasets.TrainSplit)
	if err != nil {
		return err
	}
	XTest, yTest, err := load(datasets.TestSplit)
	if err != nil {
		return err
	}

	if err := est.Fit(XTrain, yTrain); err != nil {
		return fmt.Errorf("fitting %s: %w", regressorName, err)
	}
	yPred, err := est.Predict(XTest)
	if err != nil {
		return fmt.Errorf("predicting with %s: %w", regressorName, err)
	}

	title := fmt.Sprintf("%s on %s", regressorName, datasetName)
	if err := visualization.PredictedVsActual(yTest, yPred, title, out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	return nil
}
