package regression

import (
	"sort"

	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
)

// Strategies accepted by DummyRegressor.
const (
	StrategyMean     = "mean"
	StrategyMedian   = "median"
	StrategyConstant = "constant"
)

// DummyRegressor predicts a constant derived from the training targets,
// ignoring the input series entirely. It serves as a baseline and as the
// simplest conforming estimator.
type DummyRegressor struct {
	model.BaseEstimator

	// Strategy is one of "mean", "median" or "constant".
	Strategy string

	// Constant is the value predicted under the "constant" strategy.
	Constant float64

	value     float64
	trainMeta datatypes.PanelMetadata
}

// NewDummyRegressor creates a DummyRegressor with the "mean" strategy.
func NewDummyRegressor() *DummyRegressor {
	return &DummyRegressor{Strategy: StrategyMean}
}

// Fit learns the constant to predict from y.
func (d *DummyRegressor) Fit(X datatypes.Panel, y []float64) error {
	_, meta, err := validateFit("DummyRegressor", X, y, d.Capabilities(), d.IsComposite(), 0)
	if err != nil {
		return err
	}

	switch d.Strategy {
	case StrategyMean:
		var sum float64
		for _, v := range y {
			sum += v
		}
		d.value = sum / float64(len(y))
	case StrategyMedian:
		vals := append([]float64(nil), y...)
		sort.Float64s(vals)
		mid := len(vals) / 2
		if len(vals)%2 == 1 {
			d.value = vals[mid]
		} else {
			d.value = (vals[mid-1] + vals[mid]) / 2
		}
	case StrategyConstant:
		d.value = d.Constant
	default:
		return errors.NewValidationError("strategy", "must be one of mean, median, constant", d.Strategy)
	}

	d.trainMeta = meta
	d.SetFitted()
	return nil
}

// Predict returns the learned constant for every instance of X.
func (d *DummyRegressor) Predict(X datatypes.Panel) ([]float64, error) {
	_, meta, err := validatePredict("DummyRegressor", X, d.IsFitted(), d.trainMeta, -1)
	if err != nil {
		return nil, err
	}

	out := make([]float64, meta.NInstances)
	for i := range out {
		out[i] = d.value
	}
	return out, nil
}

// Capabilities implements model.TimeSeriesRegressor. The dummy ignores the
// series values, so any channel count is acceptable.
func (d *DummyRegressor) Capabilities() model.Capabilities {
	return model.Capabilities{Multivariate: true, MissingValues: true}
}

// IsComposite implements model.TimeSeriesRegressor.
func (d *DummyRegressor) IsComposite() bool { return false }

// GetParams implements model.ParameterGetter.
func (d *DummyRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"strategy": d.Strategy,
		"constant": d.Constant,
	}
}

// SetParams implements model.ParameterSetter.
func (d *DummyRegressor) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "strategy":
			s, ok := value.(string)
			if !ok {
				return errors.NewValidationError(key, "must be a string", value)
			}
			switch s {
			case StrategyMean, StrategyMedian, StrategyConstant:
				d.Strategy = s
			default:
				return errors.NewValidationError(key, "must be one of mean, median, constant", value)
			}
		case "constant":
			f, ok := toFloat(value)
			if !ok {
				return errors.NewValidationError(key, "must be a number", value)
			}
			d.Constant = f
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	d.Reset()
	return nil
}
