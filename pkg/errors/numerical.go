package errors

import (
	"fmt"
	"math"
)

// CheckNumericalStability returns a ValueError if values contain NaN or Inf.
func CheckNumericalStability(operation string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValueError(operation, fmt.Sprintf("non-finite value at index %d", i))
		}
	}
	return nil
}

// CheckScalar returns a ValueError if value is NaN or Inf.
func CheckScalar(operation string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewValueError(operation, "non-finite value")
	}
	return nil
}
