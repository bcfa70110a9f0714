// Package aeon provides a machine learning toolkit for time series in Go,
// focused on panel regression: predicting a continuous target value per
// time-series instance.
//
// The toolkit follows a scikit-learn-like estimator design. Every regressor
// implements Fit and Predict over a Panel of time-series instances, exposes
// its hyperparameters through GetParams/SetParams, and declares its input
// capabilities (for example multivariate support) so callers can dispatch
// without trial and error.
//
// # Packages
//
//   - regression: time-series regressors and the estimator registry
//   - datatypes: the Panel data model and structural metadata inspection
//   - datasets: embedded benchmark datasets with deterministic loaders
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - preprocessing: panel transformers such as per-channel scaling
//   - testutil: scenarios, deterministic subsampling and assertion helpers
//     used by the estimator conformance suite
//   - visualization: prediction plots built on gonum/plot
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/vedpawar2254/aeon/datasets"
//	    "github.com/vedpawar2254/aeon/regression"
//	)
//
//	func main() {
//	    XTrain, yTrain, err := datasets.LoadCovid3Month(datasets.TrainSplit)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    XTest, _, err := datasets.LoadCovid3Month(datasets.TestSplit)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    reg := regression.NewKNeighborsTimeSeriesRegressor(3)
//	    if err := reg.Fit(XTrain, yTrain); err != nil {
//	        log.Fatal(err)
//	    }
//	    preds, err := reg.Predict(XTest)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(preds[:5])
//	}
package aeon
