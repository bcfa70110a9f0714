// Package testutil holds the shared machinery of the estimator test
// suite: deterministic fit/predict scenarios, seeded subsampling of the
// bundled datasets, warning capture and numeric assertions.
package testutil

import (
	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/datatypes"
)

// Scenario is a self-contained fit/predict exercise: a training panel
// with aligned targets and a separate panel to predict on. Scenario data
// is generated from fixed formulas so every run sees identical input.
type Scenario struct {
	Name     string
	FitX     datatypes.Panel
	FitY     []float64
	PredictX datatypes.Panel
}

// Run fits the estimator on the scenario's training data and returns its
// predictions for the scenario's predict panel.
func (s Scenario) Run(est model.TimeSeriesRegressor) ([]float64, error) {
	if err := est.Fit(s.FitX, s.FitY); err != nil {
		return nil, err
	}
	return est.Predict(s.PredictX)
}

func makePanel(nInstances, nChannels, length int, offset float64) datatypes.Panel {
	panel := make(datatypes.Panel, nInstances)
	for i := range panel {
		inst := make(datatypes.Instance, nChannels)
		for c := range inst {
			series := make([]float64, length)
			for t := range series {
				series[t] = offset + 0.1*float64(i) + 0.01*float64(t) + 0.5*float64(c)
			}
			inst[c] = series
		}
		panel[i] = inst
	}
	return panel
}

func makeTargets(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = 0.05 + 0.1*float64(i)
	}
	return y
}

// FitPredictUnivariate returns the standard single-channel scenario:
// ten training instances of length twelve and five predict instances
// drawn from the same formula with a small offset.
func FitPredictUnivariate() Scenario {
	return Scenario{
		Name:     "fit_predict_univariate",
		FitX:     makePanel(10, 1, 12, 0),
		FitY:     makeTargets(10),
		PredictX: makePanel(5, 1, 12, 0.03),
	}
}

// FitPredictMultivariate returns the two-channel counterpart of
// FitPredictUnivariate, used to exercise the multivariate input policy.
func FitPredictMultivariate() Scenario {
	return Scenario{
		Name:     "fit_predict_multivariate",
		FitX:     makePanel(10, 2, 12, 0),
		FitY:     makeTargets(10),
		PredictX: makePanel(5, 2, 12, 0.03),
	}
}
