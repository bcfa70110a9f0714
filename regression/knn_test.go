package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/testutil"
)

func univariatePanel(series ...[]float64) datatypes.Panel {
	p := make(datatypes.Panel, len(series))
	for i, s := range series {
		p[i] = datatypes.Instance{s}
	}
	return p
}

func TestKNNExactMatch(t *testing.T) {
	X := univariatePanel(
		[]float64{0, 0, 0},
		[]float64{1, 1, 1},
		[]float64{5, 5, 5},
	)
	y := []float64{10, 20, 30}

	knn := NewKNeighborsTimeSeriesRegressor(1)
	require.NoError(t, knn.Fit(X, y))

	preds, err := knn.Predict(univariatePanel([]float64{1, 1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{20}, preds)
}

func TestKNNTieBreakOnLowerIndex(t *testing.T) {
	// instances 0 and 1 are equidistant from the query; the lower
	// training index wins
	X := univariatePanel(
		[]float64{1, 0},
		[]float64{-1, 0},
		[]float64{9, 9},
	)
	y := []float64{100, 200, 300}

	knn := NewKNeighborsTimeSeriesRegressor(1)
	require.NoError(t, knn.Fit(X, y))

	preds, err := knn.Predict(univariatePanel([]float64{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, []float64{100}, preds)
}

func TestKNNAveragesNeighbors(t *testing.T) {
	X := univariatePanel(
		[]float64{0, 0},
		[]float64{1, 0},
		[]float64{50, 50},
	)
	y := []float64{2, 4, 1000}

	knn := NewKNeighborsTimeSeriesRegressor(2)
	require.NoError(t, knn.Fit(X, y))

	preds, err := knn.Predict(univariatePanel([]float64{0, 0}))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, preds[0], 1e-12)
}

func TestKNNMultivariate(t *testing.T) {
	scenario := testutil.FitPredictMultivariate()

	knn := NewKNeighborsTimeSeriesRegressor(3)
	warnings := testutil.CaptureWarnings(func() {
		require.NoError(t, knn.Fit(scenario.FitX, scenario.FitY))
	})
	assert.Empty(t, warnings, "multivariate input is handled natively")

	preds, err := knn.Predict(scenario.PredictX)
	require.NoError(t, err)
	assert.Len(t, preds, scenario.PredictX.NumInstances())
}

func TestKNNValidation(t *testing.T) {
	scenario := testutil.FitPredictUnivariate()

	knn := NewKNeighborsTimeSeriesRegressor(0)
	assert.Error(t, knn.Fit(scenario.FitX, scenario.FitY))

	knn = NewKNeighborsTimeSeriesRegressor(11)
	err := knn.Fit(scenario.FitX, scenario.FitY)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n_neighbors")
}

func TestKNNParams(t *testing.T) {
	knn := NewKNeighborsTimeSeriesRegressor(5)
	assert.Equal(t, 5, knn.GetParams()["n_neighbors"])

	require.NoError(t, knn.SetParams(map[string]interface{}{"n_neighbors": 3}))
	assert.Equal(t, 3, knn.NNeighbors)

	assert.Error(t, knn.SetParams(map[string]interface{}{"n_neighbors": 0}))
	assert.Error(t, knn.SetParams(map[string]interface{}{"metric": "dtw"}))
}
