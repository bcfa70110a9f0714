package regression

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
	"github.com/vedpawar2254/aeon/pkg/log"
)

// RandomIntervalRegressor draws random intervals of the series (fixed by
// RandomState), summarizes each interval by its mean and standard
// deviation, and fits a ridge regression on those features. Univariate
// input only.
type RandomIntervalRegressor struct {
	model.BaseEstimator

	// NIntervals is the number of random intervals drawn.
	NIntervals int

	// MinIntervalLength is the shortest interval allowed, at least 2 so
	// the interval deviation is defined.
	MinIntervalLength int

	// Alpha is the ridge regularization strength.
	Alpha float64

	// RandomState seeds the interval draw, making Fit deterministic.
	RandomState int

	intervals [][2]int
	weights   *mat.VecDense
	trainMeta datatypes.PanelMetadata
}

// NewRandomIntervalRegressor creates an interval regressor with nIntervals
// intervals, minimum length 3, ridge strength 1 and seed 42.
func NewRandomIntervalRegressor(nIntervals int) *RandomIntervalRegressor {
	return &RandomIntervalRegressor{
		NIntervals:        nIntervals,
		MinIntervalLength: 3,
		Alpha:             1.0,
		RandomState:       42,
	}
}

// Fit draws the intervals from RandomState and solves the ridge system on
// the interval features.
func (r *RandomIntervalRegressor) Fit(X datatypes.Panel, y []float64) error {
	start := time.Now()

	X, meta, err := validateFit("RandomIntervalRegressor", X, y, r.Capabilities(), r.IsComposite(), 0)
	if err != nil {
		return err
	}
	if r.NIntervals < 1 {
		return errors.NewValidationError("n_intervals", "must be a positive integer", r.NIntervals)
	}
	if r.MinIntervalLength < 2 {
		return errors.NewValidationError("min_interval_length", "must be at least 2", r.MinIntervalLength)
	}
	if meta.NTimepoints < r.MinIntervalLength {
		return errors.NewValueError("RandomIntervalRegressor.Fit",
			"series shorter than min_interval_length")
	}

	r.intervals = drawIntervals(int64(r.RandomState), meta.NTimepoints, r.NIntervals, r.MinIntervalLength)

	F := r.designMatrix(X, meta)
	w, err := solveRidge("RandomIntervalRegressor.Fit", F, y, r.Alpha)
	if err != nil {
		return err
	}

	r.weights = w
	r.trainMeta = meta
	r.SetFitted()

	log.GetLoggerWithName("regression").Debug("fit complete",
		log.ModelNameKey, "RandomIntervalRegressor",
		log.OperationKey, "fit",
		log.InstancesKey, meta.NInstances,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict applies the ridge weights to the interval features of X.
func (r *RandomIntervalRegressor) Predict(X datatypes.Panel) ([]float64, error) {
	X, meta, err := validatePredict("RandomIntervalRegressor", X, r.IsFitted(), r.trainMeta, -1)
	if err != nil {
		return nil, err
	}
	return predictLinear(r.designMatrix(X, meta), r.weights), nil
}

// drawIntervals samples half-open intervals [start, end) of a series of
// the given length. The draw is a pure function of the seed, so refitting
// with the same RandomState reproduces the same intervals.
func drawIntervals(seed int64, length, nIntervals, minLen int) [][2]int {
	rng := rand.New(rand.NewSource(seed))
	intervals := make([][2]int, nIntervals)
	for j := range intervals {
		start := rng.Intn(length - minLen + 1)
		maxLen := length - start
		ln := minLen + rng.Intn(maxLen-minLen+1)
		intervals[j] = [2]int{start, start + ln}
	}
	return intervals
}

func (r *RandomIntervalRegressor) designMatrix(X datatypes.Panel, meta datatypes.PanelMetadata) *mat.Dense {
	p := 1 + 2*len(r.intervals)
	F := mat.NewDense(meta.NInstances, p, nil)
	for i, inst := range X {
		xs := inst[0]
		F.Set(i, 0, 1)
		for j, iv := range r.intervals {
			seg := xs[iv[0]:iv[1]]
			F.Set(i, 1+2*j, stat.Mean(seg, nil))
			F.Set(i, 2+2*j, math.Sqrt(stat.Variance(seg, nil)))
		}
	}
	return F
}

// Capabilities implements model.TimeSeriesRegressor.
func (r *RandomIntervalRegressor) Capabilities() model.Capabilities {
	return model.Capabilities{}
}

// IsComposite implements model.TimeSeriesRegressor.
func (r *RandomIntervalRegressor) IsComposite() bool { return false }

// GetParams implements model.ParameterGetter.
func (r *RandomIntervalRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_intervals":         r.NIntervals,
		"min_interval_length": r.MinIntervalLength,
		"alpha":               r.Alpha,
		"random_state":        r.RandomState,
	}
}

// SetParams implements model.ParameterSetter.
func (r *RandomIntervalRegressor) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "n_intervals":
			n, ok := toInt(value)
			if !ok || n < 1 {
				return errors.NewValidationError(key, "must be a positive integer", value)
			}
			r.NIntervals = n
		case "min_interval_length":
			n, ok := toInt(value)
			if !ok || n < 2 {
				return errors.NewValidationError(key, "must be an integer >= 2", value)
			}
			r.MinIntervalLength = n
		case "alpha":
			f, ok := toFloat(value)
			if !ok || f < 0 {
				return errors.NewValidationError(key, "must be a non-negative number", value)
			}
			r.Alpha = f
		case "random_state":
			n, ok := toInt(value)
			if !ok {
				return errors.NewValidationError(key, "must be an integer", value)
			}
			r.RandomState = n
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	r.Reset()
	return nil
}
