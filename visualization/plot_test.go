package visualization

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedpawar2254/aeon/datatypes"
)

func TestPredictedVsActual(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.png")
	yTrue := []float64{0.1, 0.2, 0.3, 0.4}
	yPred := []float64{0.12, 0.18, 0.33, 0.37}

	require.NoError(t, PredictedVsActual(yTrue, yPred, "test", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPredictedVsActualValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.png")

	assert.Error(t, PredictedVsActual(nil, nil, "empty", path))
	assert.Error(t, PredictedVsActual([]float64{1, 2}, []float64{1}, "mismatch", path))
}

func TestSeriesOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.png")
	inst := datatypes.Instance{
		{0, 1, 2, 3, 2, 1},
		{3, 2, 1, 0, 1, 2},
	}

	require.NoError(t, SeriesOverlay(inst, "two channels", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSeriesOverlayEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.png")
	assert.Error(t, SeriesOverlay(datatypes.Instance{}, "empty", path))
}
