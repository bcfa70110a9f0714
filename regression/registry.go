package regression

import (
	"github.com/vedpawar2254/aeon/core/model"
)

// ParameterSet selects which hyperparameter preset a registry entry
// constructs its estimator with.
type ParameterSet int

const (
	// ParamsDefault builds the estimator with its library defaults.
	ParamsDefault ParameterSet = iota

	// ParamsResultsComparison builds a small, fully deterministic
	// configuration used by the golden regression tests.
	ParamsResultsComparison
)

// Entry describes one registered regressor: its canonical name, whether
// it is a composite, and a constructor for a fresh instance under a
// given parameter preset.
type Entry struct {
	Name      string
	Composite bool
	New       func(ps ParameterSet) model.TimeSeriesRegressor
}

// Registry returns every regressor shipped with the toolkit. The suite
// in conformance_test.go iterates this list, so new estimators must be
// added here to be covered.
func Registry() []Entry {
	return []Entry{
		{
			Name: "DummyRegressor",
			New: func(ps ParameterSet) model.TimeSeriesRegressor {
				return NewDummyRegressor()
			},
		},
		{
			Name: "KNeighborsTimeSeriesRegressor",
			New: func(ps ParameterSet) model.TimeSeriesRegressor {
				if ps == ParamsResultsComparison {
					return NewKNeighborsTimeSeriesRegressor(3)
				}
				return NewKNeighborsTimeSeriesRegressor(5)
			},
		},
		{
			Name: "SummaryFeaturesRegressor",
			New: func(ps ParameterSet) model.TimeSeriesRegressor {
				return NewSummaryFeaturesRegressor(1.0)
			},
		},
		{
			Name: "RandomIntervalRegressor",
			New: func(ps ParameterSet) model.TimeSeriesRegressor {
				if ps == ParamsResultsComparison {
					return NewRandomIntervalRegressor(4)
				}
				return NewRandomIntervalRegressor(10)
			},
		},
		{
			Name:      "RegressorPipeline",
			Composite: true,
			New: func(ps ParameterSet) model.TimeSeriesRegressor {
				return NewRegressorPipeline(NewSummaryFeaturesRegressor(1.0))
			},
		},
		{
			Name:      "WeightedEnsembleRegressor",
			Composite: true,
			New: func(ps ParameterSet) model.TimeSeriesRegressor {
				return NewWeightedEnsembleRegressor(
					NewDummyRegressor(),
					NewSummaryFeaturesRegressor(1.0),
				)
			},
		},
	}
}
