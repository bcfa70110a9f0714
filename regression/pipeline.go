package regression

import (
	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
	"github.com/vedpawar2254/aeon/preprocessing"
)

// RegressorPipeline chains an optional per-channel scaler and an inner
// regressor. As a composite it degrades on input its inner estimator
// cannot handle: a multivariate panel fed to a univariate-only inner
// estimator raises a warning and continues on channel 0.
type RegressorPipeline struct {
	model.BaseEstimator

	// Scale controls whether a SeriesScaler runs ahead of the inner
	// regressor.
	Scale bool

	// Regressor is the wrapped estimator.
	Regressor model.TimeSeriesRegressor

	scaler          *preprocessing.SeriesScaler
	selectedChannel int
	trainMeta       datatypes.PanelMetadata
}

// NewRegressorPipeline wraps inner with a per-channel scaler.
func NewRegressorPipeline(inner model.TimeSeriesRegressor) *RegressorPipeline {
	return &RegressorPipeline{Scale: true, Regressor: inner, selectedChannel: -1}
}

// Fit scales X and trains the inner regressor, degrading to channel 0
// with a warning when the input is multivariate but the inner estimator
// is not.
func (p *RegressorPipeline) Fit(X datatypes.Panel, y []float64) error {
	if p.Regressor == nil {
		return errors.NewValueError("RegressorPipeline.Fit", "no inner regressor configured")
	}

	// remember whether Fit degrades to a single channel so Predict can
	// apply the same selection
	p.selectedChannel = -1
	if inMeta, err := datatypes.CheckPanel(X); err == nil {
		if !inMeta.Univariate && !p.Capabilities().Multivariate {
			p.selectedChannel = 0
		}
	}

	X, meta, err := validateFit("RegressorPipeline", X, y, p.Capabilities(), p.IsComposite(), 0)
	if err != nil {
		return err
	}

	if p.Scale {
		p.scaler = preprocessing.NewSeriesScaler()
		X, err = p.scaler.FitTransform(X)
		if err != nil {
			return errors.Wrap(err, "RegressorPipeline.Fit")
		}
	} else {
		p.scaler = nil
	}

	if err := p.Regressor.Fit(X, y); err != nil {
		return errors.Wrap(err, "RegressorPipeline.Fit")
	}

	p.trainMeta = meta
	p.SetFitted()
	return nil
}

// Predict runs the predict-time panel through the same channel selection
// and scaling as Fit, then delegates to the inner regressor.
func (p *RegressorPipeline) Predict(X datatypes.Panel) ([]float64, error) {
	X, _, err := validatePredict("RegressorPipeline", X, p.IsFitted(), p.trainMeta, p.selectedChannel)
	if err != nil {
		return nil, err
	}

	if p.scaler != nil {
		X, err = p.scaler.Transform(X)
		if err != nil {
			return nil, errors.Wrap(err, "RegressorPipeline.Predict")
		}
	}

	preds, err := p.Regressor.Predict(X)
	if err != nil {
		return nil, errors.Wrap(err, "RegressorPipeline.Predict")
	}
	return preds, nil
}

// Capabilities implements model.TimeSeriesRegressor; the pipeline is as
// capable as its inner estimator.
func (p *RegressorPipeline) Capabilities() model.Capabilities {
	if p.Regressor == nil {
		return model.Capabilities{}
	}
	return p.Regressor.Capabilities()
}

// IsComposite implements model.TimeSeriesRegressor.
func (p *RegressorPipeline) IsComposite() bool { return true }

// GetParams implements model.ParameterGetter.
func (p *RegressorPipeline) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"scale": p.Scale,
	}
}

// SetParams implements model.ParameterSetter.
func (p *RegressorPipeline) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "scale":
			b, ok := value.(bool)
			if !ok {
				return errors.NewValidationError(key, "must be a bool", value)
			}
			p.Scale = b
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	p.Reset()
	return nil
}
