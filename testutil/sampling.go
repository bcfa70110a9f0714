package testutil

import (
	"math/rand"

	"github.com/vedpawar2254/aeon/datatypes"
)

// SampleIndices returns the first k entries of a seeded permutation of
// [0, n). The same seed always yields the same indices, which is what
// pins the golden regression values to a fixed data subset.
func SampleIndices(seed int64, n, k int) []int {
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return perm[:k]
}

// Subsample returns the panel rows and targets at the given indices, in
// index order.
func Subsample(X datatypes.Panel, y []float64, indices []int) (datatypes.Panel, []float64, error) {
	sub, err := X.Subset(indices)
	if err != nil {
		return nil, nil, err
	}
	ySub := make([]float64, len(indices))
	for i, idx := range indices {
		ySub[i] = y[idx]
	}
	return sub, ySub, nil
}
