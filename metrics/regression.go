// Package metrics provides evaluation metrics for time-series regression.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vedpawar2254/aeon/pkg/errors"
)

func validate(op string, yTrue, yPred []float64) error {
	if len(yTrue) == 0 {
		return errors.NewValueError(op, "empty vector")
	}
	if len(yPred) != len(yTrue) {
		return errors.NewDimensionError(op, len(yTrue), len(yPred), 0)
	}
	return nil
}

// MSE returns the mean squared error between yTrue and yPred.
func MSE(yTrue, yPred []float64) (float64, error) {
	if err := validate("MSE", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}
	return sum / float64(len(yTrue)), nil
}

// RMSE returns the root mean squared error between yTrue and yPred.
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE returns the mean absolute error between yTrue and yPred.
func MAE(yTrue, yPred []float64) (float64, error) {
	if err := validate("MAE", yTrue, yPred); err != nil {
		return 0, err
	}
	var sum float64
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}
	return sum / float64(len(yTrue)), nil
}

// R2 returns the coefficient of determination. A model predicting the mean
// of yTrue scores 0; a perfect model scores 1. R2 is undefined when yTrue
// is constant, which yields a ValueError.
func R2(yTrue, yPred []float64) (float64, error) {
	if err := validate("R2", yTrue, yPred); err != nil {
		return 0, err
	}
	mean := stat.Mean(yTrue, nil)

	var ssRes, ssTot float64
	for i := range yTrue {
		r := yTrue[i] - yPred[i]
		ssRes += r * r
		d := yTrue[i] - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		return 0, errors.NewValueError("R2", "constant target vector, R2 is undefined")
	}
	return 1 - ssRes/ssTot, nil
}
