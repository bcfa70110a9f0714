package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/vedpawar2254/aeon/datatypes"
)

func TestSeriesScalerFitTransform(t *testing.T) {
	X := datatypes.Panel{
		{{1, 2, 3}, {10, 20, 30}},
		{{4, 5, 6}, {40, 50, 60}},
	}

	scaler := NewSeriesScaler()
	out, err := scaler.FitTransform(X)
	require.NoError(t, err)
	require.Equal(t, 2, out.NumInstances())

	// transformed channels pool to zero mean, unit variance
	for c := 0; c < 2; c++ {
		var pooled []float64
		for _, inst := range out {
			pooled = append(pooled, inst[c]...)
		}
		assert.InDelta(t, 0, stat.Mean(pooled, nil), 1e-12)
		assert.InDelta(t, 1, math.Sqrt(stat.PopVariance(pooled, nil)), 1e-12)
	}

	// the input panel is untouched
	assert.Equal(t, 1.0, X[0][0][0])
}

func TestSeriesScalerConstantChannel(t *testing.T) {
	X := datatypes.Panel{
		{{7, 7, 7}},
		{{7, 7, 7}},
	}

	scaler := NewSeriesScaler()
	out, err := scaler.FitTransform(X)
	require.NoError(t, err)

	// zero variance: values are centered, not divided by zero
	for _, inst := range out {
		for _, v := range inst[0] {
			assert.Equal(t, 0.0, v)
		}
	}
}

func TestSeriesScalerNotFitted(t *testing.T) {
	scaler := NewSeriesScaler()
	_, err := scaler.Transform(datatypes.Panel{{{1, 2}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not fitted")
}

func TestSeriesScalerChannelMismatch(t *testing.T) {
	scaler := NewSeriesScaler()
	require.NoError(t, scaler.Fit(datatypes.Panel{{{1, 2}, {3, 4}}}))

	_, err := scaler.Transform(datatypes.Panel{{{1, 2}}})
	require.Error(t, err)
}
