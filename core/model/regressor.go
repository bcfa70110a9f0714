// Package model defines the estimator contract shared by the toolkit:
// the fit/predict lifecycle, the hyperparameter map convention, and the
// explicit capability declaration estimators use instead of runtime
// feature probing.
package model

import (
	"github.com/vedpawar2254/aeon/datatypes"
)

// Capabilities declares what kinds of input an estimator can handle
// natively. Callers query it before dispatch; estimators that receive
// input outside their declared capabilities reject it during Fit.
type Capabilities struct {
	// Multivariate is true when the estimator handles panels with more
	// than one channel natively.
	Multivariate bool
	// MissingValues is true when the estimator tolerates NaN entries.
	MissingValues bool
	// UnequalLength is true when the estimator accepts instances of
	// differing series length.
	UnequalLength bool
}

// ParameterGetter exposes an estimator's hyperparameters as a string-keyed
// map, scikit-learn style. Keys use snake_case.
type ParameterGetter interface {
	GetParams() map[string]interface{}
}

// ParameterSetter mutates hyperparameters in place. Unknown keys and
// values of the wrong type yield a validation error; setting parameters
// on a fitted estimator resets it to the unfitted state.
type ParameterSetter interface {
	SetParams(params map[string]interface{}) error
}

// TimeSeriesRegressor is the interface implemented by every regressor in
// the toolkit. A fitted regressor predicts one float64 per instance of the
// predict-time panel, in panel order.
type TimeSeriesRegressor interface {
	ParameterGetter
	ParameterSetter

	// Fit trains the regressor on a panel X and an aligned target vector y.
	Fit(X datatypes.Panel, y []float64) error

	// Predict returns one prediction per instance of X. The returned slice
	// has length X.NumInstances().
	Predict(X datatypes.Panel) ([]float64, error)

	// Capabilities reports the input kinds the regressor handles natively.
	Capabilities() Capabilities

	// IsComposite reports whether the regressor wraps other estimators
	// (pipelines, ensembles). Composites degrade gracefully on unsupported
	// input where atomic estimators refuse outright.
	IsComposite() bool
}
