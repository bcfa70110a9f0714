package testutil

import (
	"github.com/vedpawar2254/aeon/pkg/errors"
)

// CaptureWarnings runs fn with the global warning handler swapped for a
// collector, restores the previous handler, and returns every warning fn
// raised in order.
func CaptureWarnings(fn func()) []error {
	var captured []error
	prev := errors.SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer errors.SetWarningHandler(prev)

	fn()
	return captured
}
