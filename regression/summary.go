package regression

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
	"github.com/vedpawar2254/aeon/pkg/log"
)

// summaryFeatureCount is the design-matrix width: intercept, mean,
// standard deviation, slope, min, max.
const summaryFeatureCount = 6

// SummaryFeaturesRegressor reduces each univariate series to five summary
// statistics (mean, standard deviation, linear-trend slope, min, max) and
// fits a ridge regression on them. It only handles univariate input.
type SummaryFeaturesRegressor struct {
	model.BaseEstimator

	// Alpha is the ridge regularization strength.
	Alpha float64

	weights   *mat.VecDense
	trainMeta datatypes.PanelMetadata
}

// NewSummaryFeaturesRegressor creates a summary regressor with the given
// ridge strength.
func NewSummaryFeaturesRegressor(alpha float64) *SummaryFeaturesRegressor {
	return &SummaryFeaturesRegressor{Alpha: alpha}
}

// Fit extracts summary features from X and solves the ridge system.
func (s *SummaryFeaturesRegressor) Fit(X datatypes.Panel, y []float64) error {
	start := time.Now()

	X, meta, err := validateFit("SummaryFeaturesRegressor", X, y, s.Capabilities(), s.IsComposite(), 0)
	if err != nil {
		return err
	}
	if s.Alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", s.Alpha)
	}

	F := s.designMatrix(X, meta)
	w, err := solveRidge("SummaryFeaturesRegressor.Fit", F, y, s.Alpha)
	if err != nil {
		return err
	}

	s.weights = w
	s.trainMeta = meta
	s.SetFitted()

	log.GetLoggerWithName("regression").Debug("fit complete",
		log.ModelNameKey, "SummaryFeaturesRegressor",
		log.OperationKey, "fit",
		log.InstancesKey, meta.NInstances,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict applies the ridge weights to the summary features of X.
func (s *SummaryFeaturesRegressor) Predict(X datatypes.Panel) ([]float64, error) {
	X, meta, err := validatePredict("SummaryFeaturesRegressor", X, s.IsFitted(), s.trainMeta, -1)
	if err != nil {
		return nil, err
	}
	return predictLinear(s.designMatrix(X, meta), s.weights), nil
}

func (s *SummaryFeaturesRegressor) designMatrix(X datatypes.Panel, meta datatypes.PanelMetadata) *mat.Dense {
	ts := make([]float64, meta.NTimepoints)
	for t := range ts {
		ts[t] = float64(t)
	}

	F := mat.NewDense(meta.NInstances, summaryFeatureCount, nil)
	for i, inst := range X {
		xs := inst[0]
		_, slope := stat.LinearRegression(ts, xs, nil, false)
		F.Set(i, 0, 1)
		F.Set(i, 1, stat.Mean(xs, nil))
		F.Set(i, 2, math.Sqrt(stat.Variance(xs, nil)))
		F.Set(i, 3, slope)
		F.Set(i, 4, floats.Min(xs))
		F.Set(i, 5, floats.Max(xs))
	}
	return F
}

// Capabilities implements model.TimeSeriesRegressor. Summary features are
// defined on a single channel only.
func (s *SummaryFeaturesRegressor) Capabilities() model.Capabilities {
	return model.Capabilities{}
}

// IsComposite implements model.TimeSeriesRegressor.
func (s *SummaryFeaturesRegressor) IsComposite() bool { return false }

// GetParams implements model.ParameterGetter.
func (s *SummaryFeaturesRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"alpha": s.Alpha,
	}
}

// SetParams implements model.ParameterSetter.
func (s *SummaryFeaturesRegressor) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "alpha":
			f, ok := toFloat(value)
			if !ok || f < 0 {
				return errors.NewValidationError(key, "must be a non-negative number", value)
			}
			s.Alpha = f
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	s.Reset()
	return nil
}
