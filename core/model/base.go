package model

// EstimatorState tracks the fit lifecycle of an estimator.
type EstimatorState int

const (
	// NotFitted marks an estimator that has not seen training data yet.
	NotFitted EstimatorState = iota
	// Fitted marks an estimator whose Fit completed successfully.
	Fitted
)

// BaseEstimator is the embedded base for every estimator in the toolkit.
// It carries the fitted state; concrete estimators call SetFitted at the
// end of a successful Fit and guard Predict with IsFitted.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the estimator has been fit.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fit.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
