package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/testutil"
)

func TestPipelineMatchesScaledInner(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()

	// the dummy ignores the series, so scaling must not change anything
	p := NewRegressorPipeline(NewDummyRegressor())
	require.NoError(t, p.Fit(scenario.FitX, scenario.FitY))
	preds, err := p.Predict(scenario.PredictX)
	require.NoError(t, err)

	d := NewDummyRegressor()
	require.NoError(t, d.Fit(scenario.FitX, scenario.FitY))
	want, err := d.Predict(scenario.PredictX)
	require.NoError(t, err)

	assert.Equal(t, want, preds)
}

func TestPipelineScaleOff(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()

	p := NewRegressorPipeline(NewSummaryFeaturesRegressor(1.0))
	p.Scale = false
	require.NoError(t, p.Fit(scenario.FitX, scenario.FitY))
	preds, err := p.Predict(scenario.PredictX)
	require.NoError(t, err)

	inner := NewSummaryFeaturesRegressor(1.0)
	require.NoError(t, inner.Fit(scenario.FitX, scenario.FitY))
	want, err := inner.Predict(scenario.PredictX)
	require.NoError(t, err)

	assert.Equal(t, want, preds, "with scaling off the pipeline is its inner regressor")
}

func TestPipelineDegradesOnMultivariate(t *testing.T) {
	scenario := testutil.FitPredictMultivariate()

	p := NewRegressorPipeline(NewSummaryFeaturesRegressor(1.0))
	var preds []float64
	warnings := testutil.CaptureWarnings(func() {
		var err error
		preds, err = scenario.Run(p)
		require.NoError(t, err)
	})

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Error(), "multivariate series")
	assert.Contains(t, warnings[0].Error(), "channel 0")
	assert.Len(t, preds, scenario.PredictX.NumInstances())
}

func TestPipelineNoInner(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()

	p := &RegressorPipeline{Scale: true}
	assert.Error(t, p.Fit(scenario.FitX, scenario.FitY))
}

func TestEnsembleWeightedMean(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()

	a := NewDummyRegressor()
	a.Strategy = StrategyConstant
	a.Constant = 1
	b := NewDummyRegressor()
	b.Strategy = StrategyConstant
	b.Constant = 3

	e := NewWeightedEnsembleRegressor(a, b)
	e.Weights = []float64{1, 3}
	require.NoError(t, e.Fit(scenario.FitX, scenario.FitY))

	preds, err := e.Predict(scenario.PredictX)
	require.NoError(t, err)
	for _, p := range preds {
		assert.InDelta(t, 2.5, p, 1e-12)
	}
}

func TestEnsembleCapabilities(t *testing.T) {
	allMulti := NewWeightedEnsembleRegressor(
		NewDummyRegressor(),
		NewKNeighborsTimeSeriesRegressor(1),
	)
	assert.True(t, allMulti.Capabilities().Multivariate)

	mixed := NewWeightedEnsembleRegressor(
		NewDummyRegressor(),
		NewSummaryFeaturesRegressor(1.0),
	)
	assert.False(t, mixed.Capabilities().Multivariate,
		"one univariate-only member makes the ensemble univariate-only")
}

func TestEnsembleDegradesOnMultivariate(t *testing.T) {
	scenario := testutil.FitPredictMultivariate()

	e := NewWeightedEnsembleRegressor(
		NewDummyRegressor(),
		NewSummaryFeaturesRegressor(1.0),
	)
	var preds []float64
	warnings := testutil.CaptureWarnings(func() {
		var err error
		preds, err = scenario.Run(e)
		require.NoError(t, err)
	})

	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0].Error(), "multivariate series")
	assert.Len(t, preds, scenario.PredictX.NumInstances())
}

func TestEnsembleValidation(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()

	e := NewWeightedEnsembleRegressor()
	assert.Error(t, e.Fit(scenario.FitX, scenario.FitY), "no members")

	e = NewWeightedEnsembleRegressor(NewDummyRegressor())
	e.Weights = []float64{1, 2}
	assert.Error(t, e.Fit(scenario.FitX, scenario.FitY), "weight count mismatch")

	e = NewWeightedEnsembleRegressor(NewDummyRegressor())
	e.Weights = []float64{-1}
	assert.Error(t, e.Fit(scenario.FitX, scenario.FitY), "negative weight")

	e = NewWeightedEnsembleRegressor(NewDummyRegressor())
	e.Weights = []float64{0}
	assert.Error(t, e.Fit(scenario.FitX, scenario.FitY), "all-zero weights")
}

func TestEnsembleParams(t *testing.T) {
	e := NewWeightedEnsembleRegressor(NewDummyRegressor(), NewDummyRegressor())
	assert.Equal(t, []float64{1, 1}, e.GetParams()["weights"])

	require.NoError(t, e.SetParams(map[string]interface{}{"weights": []float64{0.2, 0.8}}))
	assert.Equal(t, []float64{0.2, 0.8}, e.Weights)

	assert.Error(t, e.SetParams(map[string]interface{}{"weights": []float64{1}}))
	assert.Error(t, e.SetParams(map[string]interface{}{"voting": "soft"}))
}

func TestPredictShapeMismatch(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()

	d := NewDummyRegressor()
	require.NoError(t, d.Fit(scenario.FitX, scenario.FitY))

	short := datatypes.Panel{datatypes.Instance{[]float64{1, 2, 3}}}
	_, err := d.Predict(short)
	assert.Error(t, err, "predict-time series length must match training")
}
