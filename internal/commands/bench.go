package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vedpawar2254/aeon/datasets"
	"github.com/vedpawar2254/aeon/metrics"
)

// NewBenchCmd creates the bench command.
func NewBenchCmd() *cobra.Command {
	var cpuProfile string

	cmd := &cobra.Command{
		Use:   "bench <regressor> <dataset>",
		Short: "Fit a regressor on a dataset and report error metrics",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfile)).Stop()
			}
			return runBench(cmd, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this directory")
	return cmd
}

func runBench(cmd *cobra.Command, regressorName, datasetName string) error {
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

	fitStart := time.Now()
	if err := est.Fit(XTrain, yTrain); err != nil {
		return fmt.Errorf("fitting %s: %w", regressorName, err)
	}
	fitDur := time.Since(fitStart)

	predictStart := time.Now()
	yPred, err := est.Predict(XTest)
	if err != nil {
		return fmt.Errorf("predicting with %s: %w", regressorName, err)
	}
	predictDur := time.Since(predictStart)

	mse, err := metrics.MSE(yTest, yPred)
	if err != nil {
		return err
	}
	rmse, err := metrics.RMSE(yTest, yPred)
	if err != nil {
		return err
	}
	mae, err := metrics.MAE(yTest, yPred)
	if err != nil {
		return err
	}
	r2, err := metrics.R2(yTest, yPred)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s on %s (%d train, %d test)\n",
		regressorName, datasetName, XTrain.NumInstances(), XTest.NumInstances())
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "fit\t%s\n", fitDur.Round(time.Microsecond))
	fmt.Fprintf(w, "predict\t%s\n", predictDur.Round(time.Microsecond))
	fmt.Fprintf(w, "mse\t%.6f\n", mse)
	fmt.Fprintf(w, "rmse\t%.6f\n", rmse)
	fmt.Fprintf(w, "mae\t%.6f\n", mae)
	fmt.Fprintf(w, "r2\t%.6f\n", r2)
	return w.Flush()
}
