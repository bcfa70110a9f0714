package regression

import (
	"gonum.org/v1/gonum/mat"

	"github.com/vedpawar2254/aeon/pkg/errors"
)

// solveRidge solves the regularized normal equations
// (FᵀF + αI) w = Fᵀy for the weight vector w. The intercept column is
// regularized along with the features; with the small α values used here
// that keeps the system well conditioned without biasing predictions
// noticeably.
func solveRidge(op string, F *mat.Dense, y []float64, alpha float64) (*mat.VecDense, error) {
	n, p := F.Dims()
	if n == 0 || p == 0 {
		return nil, errors.NewModelError(op, "empty design matrix", errors.ErrEmptyData)
	}
	if len(y) != n {
		return nil, errors.NewDimensionError(op, n, len(y), 0)
	}

	var ftf mat.Dense
	ftf.Mul(F.T(), F)
	for i := 0; i < p; i++ {
		ftf.Set(i, i, ftf.At(i, i)+alpha)
	}

	var fty mat.VecDense
	fty.MulVec(F.T(), mat.NewVecDense(n, y))

	var w mat.VecDense
	if err := w.SolveVec(&ftf, &fty); err != nil {
		return nil, errors.NewModelError(op, "ridge solve failed", errors.ErrSingularMatrix)
	}
	return &w, nil
}

// predictLinear applies a weight vector to each row of the design matrix.
func predictLinear(F *mat.Dense, w *mat.VecDense) []float64 {
	n, _ := F.Dims()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = mat.Dot(F.RowView(i), w)
	}
	return out
}
