// Package regression provides time-series regressors: estimators that
// predict one continuous value per instance of a Panel.
//
// All regressors implement model.TimeSeriesRegressor. Atomic estimators
// that cannot handle an input kind reject it during Fit with a ValueError;
// composite estimators (pipelines, ensembles) degrade instead, raising a
// warning and continuing on a selected channel. The package also exposes a
// static Registry enumerating every implementation, which drives the
// estimator conformance suite.
package regression
