package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSE(t *testing.T) {
	testData := map[string]struct {
		yTrue []float64
		yPred []float64
		want  float64
		fails bool
	}{
		"perfect":  {[]float64{1, 2, 3}, []float64{1, 2, 3}, 0, false},
		"constant": {[]float64{1, 2, 3}, []float64{2, 2, 2}, 2.0 / 3.0, false},
		"simple":   {[]float64{0, 0}, []float64{3, 4}, 12.5, false},
		"empty":    {nil, nil, 0, true},
		"mismatch": {[]float64{1, 2}, []float64{1}, 0, true},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got, err := MSE(td.yTrue, td.yPred)
			if td.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, td.want, got, 1e-12)
		})
	}
}

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 3.5355339059327378, got, 1e-12)
}

func TestMAE(t *testing.T) {
	got, err := MAE([]float64{1, 2, 3}, []float64{2, 2, 5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	_, err = MAE([]float64{1}, []float64{})
	require.Error(t, err)
}

func TestR2(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}

	got, err := R2(yTrue, yTrue)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	// predicting the mean scores zero
	got, err = R2(yTrue, []float64{2.5, 2.5, 2.5, 2.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-12)

	// constant target is undefined
	_, err = R2([]float64{5, 5, 5}, []float64{1, 2, 3})
	require.Error(t, err)
}
