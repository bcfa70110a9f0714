package regression

import (
	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
)

// WeightedEnsembleRegressor averages the predictions of several inner
// regressors with fixed weights. It is a composite: when the input is
// multivariate and any inner estimator only handles univariate series,
// the ensemble warns and trains every member on channel 0.
type WeightedEnsembleRegressor struct {
	model.BaseEstimator

	// Regressors are the ensemble members, fit independently.
	Regressors []model.TimeSeriesRegressor

	// Weights holds one non-negative weight per member. Predictions are
	// the weight-normalized mean.
	Weights []float64

	selectedChannel int
	trainMeta       datatypes.PanelMetadata
}

// NewWeightedEnsembleRegressor creates an ensemble over the given members
// with uniform weights.
func NewWeightedEnsembleRegressor(members ...model.TimeSeriesRegressor) *WeightedEnsembleRegressor {
	weights := make([]float64, len(members))
	for i := range weights {
		weights[i] = 1
	}
	return &WeightedEnsembleRegressor{
		Regressors:      members,
		Weights:         weights,
		selectedChannel: -1,
	}
}

// Fit trains every member on the (possibly channel-reduced) panel.
func (e *WeightedEnsembleRegressor) Fit(X datatypes.Panel, y []float64) error {
	if len(e.Regressors) == 0 {
		return errors.NewValueError("WeightedEnsembleRegressor.Fit", "no ensemble members configured")
	}
	if len(e.Weights) != len(e.Regressors) {
		return errors.NewValidationError("weights", "must have one entry per member", e.Weights)
	}
	var wsum float64
	for _, w := range e.Weights {
		if w < 0 {
			return errors.NewValidationError("weights", "must be non-negative", e.Weights)
		}
		wsum += w
	}
	if wsum == 0 {
		return errors.NewValidationError("weights", "must not all be zero", e.Weights)
	}

	e.selectedChannel = -1
	if inMeta, err := datatypes.CheckPanel(X); err == nil {
		if !inMeta.Univariate && !e.Capabilities().Multivariate {
			e.selectedChannel = 0
		}
	}

	X, meta, err := validateFit("WeightedEnsembleRegressor", X, y, e.Capabilities(), e.IsComposite(), 0)
	if err != nil {
		return err
	}

	for _, member := range e.Regressors {
		if err := member.Fit(X, y); err != nil {
			return errors.Wrap(err, "WeightedEnsembleRegressor.Fit")
		}
	}

	e.trainMeta = meta
	e.SetFitted()
	return nil
}

// Predict returns the weight-normalized mean of the member predictions.
func (e *WeightedEnsembleRegressor) Predict(X datatypes.Panel) ([]float64, error) {
	X, meta, err := validatePredict("WeightedEnsembleRegressor", X, e.IsFitted(), e.trainMeta, e.selectedChannel)
	if err != nil {
		return nil, err
	}

	var wsum float64
	for _, w := range e.Weights {
		wsum += w
	}

	out := make([]float64, meta.NInstances)
	for m, member := range e.Regressors {
		preds, err := member.Predict(X)
		if err != nil {
			return nil, errors.Wrap(err, "WeightedEnsembleRegressor.Predict")
		}
		w := e.Weights[m] / wsum
		for i, p := range preds {
			out[i] += w * p
		}
	}
	return out, nil
}

// Capabilities implements model.TimeSeriesRegressor; the ensemble only
// claims what every member can handle.
func (e *WeightedEnsembleRegressor) Capabilities() model.Capabilities {
	caps := model.Capabilities{Multivariate: true, MissingValues: true, UnequalLength: true}
	for _, member := range e.Regressors {
		mc := member.Capabilities()
		caps.Multivariate = caps.Multivariate && mc.Multivariate
		caps.MissingValues = caps.MissingValues && mc.MissingValues
		caps.UnequalLength = caps.UnequalLength && mc.UnequalLength
	}
	return caps
}

// IsComposite implements model.TimeSeriesRegressor.
func (e *WeightedEnsembleRegressor) IsComposite() bool { return true }

// GetParams implements model.ParameterGetter.
func (e *WeightedEnsembleRegressor) GetParams() map[string]interface{} {
	weights := append([]float64(nil), e.Weights...)
	return map[string]interface{}{
		"weights": weights,
	}
}

// SetParams implements model.ParameterSetter.
func (e *WeightedEnsembleRegressor) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "weights":
			w, ok := value.([]float64)
			if !ok {
				return errors.NewValidationError(key, "must be a []float64", value)
			}
			if len(w) != len(e.Regressors) {
				return errors.NewValidationError(key, "must have one entry per member", value)
			}
			e.Weights = append([]float64(nil), w...)
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	e.Reset()
	return nil
}
