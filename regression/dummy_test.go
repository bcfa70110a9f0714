package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedpawar2254/aeon/testutil"
)

func TestDummyRegressorStrategies(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()
	y := []float64{1, 2, 3, 4, 10, 0, 0, 0, 0, 0}

	tests := []struct {
		name     string
		strategy string
		constant float64
		want     float64
	}{
		{"mean", StrategyMean, 0, 2},
		{"median", StrategyMedian, 0, 0.5},
		{"constant", StrategyConstant, -7.25, -7.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDummyRegressor()
			d.Strategy = tt.strategy
			d.Constant = tt.constant

			require.NoError(t, d.Fit(scenario.FitX, y))
			preds, err := d.Predict(scenario.PredictX)
			require.NoError(t, err)
			for _, p := range preds {
				assert.InDelta(t, tt.want, p, 1e-12)
			}
		})
	}
}

func TestDummyRegressorMedianOdd(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()
	X := scenario.FitX[:5]
	y := []float64{5, 1, 9, 3, 7}

	d := NewDummyRegressor()
	d.Strategy = StrategyMedian
	require.NoError(t, d.Fit(X, y))
	preds, err := d.Predict(scenario.PredictX)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, preds[0], 1e-12)
}

func TestDummyRegressorInvalidStrategy(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()

	d := NewDummyRegressor()
	d.Strategy = "mode"
	err := d.Fit(scenario.FitX, scenario.FitY)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strategy")
}

func TestDummyRegressorParams(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()

	d := NewDummyRegressor()
	require.NoError(t, d.Fit(scenario.FitX, scenario.FitY))
	require.True(t, d.IsFitted())

	params := d.GetParams()
	assert.Equal(t, StrategyMean, params["strategy"])

	require.NoError(t, d.SetParams(map[string]interface{}{
		"strategy": StrategyConstant,
		"constant": 2.5,
	}))
	assert.False(t, d.IsFitted(), "SetParams resets the fitted state")

	err := d.SetParams(map[string]interface{}{"bandwidth": 1})
	assert.Error(t, err)
}
