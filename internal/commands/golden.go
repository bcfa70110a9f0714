package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vedpawar2254/aeon/datasets"
	"github.com/vedpawar2254/aeon/regression"
	"github.com/vedpawar2254/aeon/testutil"
)

// NewGoldenCmd creates the golden command. It reruns the
// results-comparison procedure and prints the prediction vectors as Go
// map literals, so the frozen tables in the conformance suite can be
// regenerated after an intentional implementation change.
func NewGoldenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "golden",
		Short: "Recompute the golden prediction vectors for the conformance suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type dataset struct {
				name string
				seed int64
				load datasetLoader
			}
			for _, ds := range []dataset{
				{"covid_3month", 0, datasets.LoadCovid3Month},
				{"cardano_sentiment", 4, datasets.LoadCardanoSentiment},
			} {
				if err := printGolden(cmd, ds.name, ds.seed, ds.load); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printGolden(cmd *cobra.Command, name string, seed int64, load datasetLoader) error {
	XTrain, yTrain, err := load(datasets.TrainSplit)
	if err != nil {
		return err
	}
	XTest, _, err := load(datasets.TestSplit)
	if err != nil {
		return err
	}

	trainIdx := testutil.SampleIndices(seed, XTrain.NumInstances(), 10)
	testIdx := testutil.SampleIndices(seed, XTest.NumInstances(), 10)

	XTrainSub, yTrainSub, err := testutil.Subsample(XTrain, yTrain, trainIdx)
	if err != nil {
		return err
	}
	XTestSub, err := XTest.Subset(testIdx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "// %s (seed %d)\n", name, seed)
	fmt.Fprintln(out, "map[string][]float64{")
	for _, entry := range regression.Registry() {
		est := entry.New(regression.ParamsResultsComparison)
		if _, has := est.GetParams()["random_state"]; has {
			if err := est.SetParams(map[string]interface{}{"random_state": 0}); err != nil {
				return err
			}
		}
		if err := est.Fit(XTrainSub, yTrainSub); err != nil {
			fmt.Fprintf(out, "\t// %s: not applicable (%v)\n", entry.Name, err)
			continue
		}
		preds, err := est.Predict(XTestSub)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\t%q: {", entry.Name)
		for i, p := range preds {
			if i > 0 {
				fmt.Fprint(out, ", ")
			}
			fmt.Fprintf(out, "%.4f", p)
		}
		fmt.Fprintln(out, "},")
	}
	fmt.Fprintln(out, "}")
	return nil
}
