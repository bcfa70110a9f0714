package regression

import (
	"fmt"

	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
)

// validateFit checks a panel and target vector ahead of training and
// enforces the capability policy on multivariate input. Atomic estimators
// lacking multivariate support get a ValueError; composites get a warning
// and the panel reduced to fallbackChannel. The returned panel is the one
// the estimator should train on, with its metadata.
func validateFit(name string, X datatypes.Panel, y []float64, caps model.Capabilities, composite bool, fallbackChannel int) (datatypes.Panel, datatypes.PanelMetadata, error) {
	op := name + ".Fit"

	meta, err := datatypes.CheckPanel(X)
	if err != nil {
		return nil, meta, errors.Wrap(err, op)
	}
	if len(y) != meta.NInstances {
		return nil, meta, errors.NewDimensionError(op, meta.NInstances, len(y), 0)
	}

	if !meta.Univariate && !caps.Multivariate {
		if !composite {
			return nil, meta, errors.NewValueError(op,
				fmt.Sprintf("cannot handle multivariate series (%d channels)", meta.NChannels))
		}
		errors.Warn(errors.NewMultivariateDataWarning(name, meta.NChannels, fallbackChannel))
		X, err = X.SelectChannel(fallbackChannel)
		if err != nil {
			return nil, meta, errors.Wrap(err, op)
		}
		meta, err = datatypes.CheckPanel(X)
		if err != nil {
			return nil, meta, errors.Wrap(err, op)
		}
	}

	return X, meta, nil
}

// validatePredict checks a predict-time panel against the shape seen in
// Fit. Degraded composites pass the channel they fell back to so the same
// reduction is applied at inference time.
func validatePredict(name string, X datatypes.Panel, fitted bool, trainMeta datatypes.PanelMetadata, selectedChannel int) (datatypes.Panel, datatypes.PanelMetadata, error) {
	op := name + ".Predict"

	if !fitted {
		return nil, datatypes.PanelMetadata{}, errors.NewNotFittedError(name, "Predict")
	}
	meta, err := datatypes.CheckPanel(X)
	if err != nil {
		return nil, meta, errors.Wrap(err, op)
	}

	if selectedChannel >= 0 && meta.NChannels > 1 {
		X, err = X.SelectChannel(selectedChannel)
		if err != nil {
			return nil, meta, errors.Wrap(err, op)
		}
		meta, err = datatypes.CheckPanel(X)
		if err != nil {
			return nil, meta, errors.Wrap(err, op)
		}
	}

	if meta.NChannels != trainMeta.NChannels {
		return nil, meta, errors.NewDimensionError(op, trainMeta.NChannels, meta.NChannels, 1)
	}
	if meta.NTimepoints != trainMeta.NTimepoints {
		return nil, meta, errors.NewDimensionError(op, trainMeta.NTimepoints, meta.NTimepoints, 1)
	}

	return X, meta, nil
}
