package errors

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("KNeighborsTimeSeriesRegressor", "Predict")
	require.Error(t, err)

	var nf *NotFittedError
	require.True(t, As(err, &nf))
	assert.Equal(t, "KNeighborsTimeSeriesRegressor", nf.ModelName)
	assert.Contains(t, err.Error(), "not fitted")
}

func TestValueError(t *testing.T) {
	err := NewValueError("CheckPanel", "empty panel")
	require.Error(t, err)

	var ve *ValueError
	require.True(t, As(err, &ve))
	assert.Equal(t, "CheckPanel", ve.Op)
	assert.Contains(t, err.Error(), "empty panel")
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("DummyRegressor.Fit", 10, 7, 0)
	require.Error(t, err)

	var de *DimensionError
	require.True(t, As(err, &de))
	assert.Equal(t, 10, de.Expected)
	assert.Equal(t, 7, de.Got)
	assert.Contains(t, err.Error(), "dimension mismatch")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("n_neighbors", "must be a positive integer", -2)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, As(err, &ve))
	assert.Equal(t, "n_neighbors", ve.ParamName)
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("SummaryFeaturesRegressor.Fit", "ridge solve failed", ErrSingularMatrix)
	assert.True(t, Is(err, ErrSingularMatrix))
}

func TestWarningHandler(t *testing.T) {
	var captured []error
	prev := SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer SetWarningHandler(prev)

	w := NewMultivariateDataWarning("RegressorPipeline", 3, 0)
	Warn(w)

	require.Len(t, captured, 1)
	assert.Contains(t, captured[0].Error(), "multivariate series")
}

func TestMultivariateDataWarningMessage(t *testing.T) {
	w := NewMultivariateDataWarning("WeightedEnsembleRegressor", 2, 0)
	assert.Contains(t, w.Error(), "multivariate series")
	assert.Contains(t, w.Error(), "WeightedEnsembleRegressor")
}

func TestCheckNumericalStability(t *testing.T) {
	require.NoError(t, CheckNumericalStability("fit", []float64{1, 2, 3}))

	err := CheckNumericalStability("fit", []float64{1, math.NaN(), 3})
	require.Error(t, err)

	err = CheckScalar("predict", math.Inf(1))
	require.Error(t, err)
}
