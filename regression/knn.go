package regression

import (
	"sort"
	"time"

	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/core/parallel"
	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
	"github.com/vedpawar2254/aeon/pkg/log"
)

// KNeighborsTimeSeriesRegressor predicts the uniform mean target of the k
// training instances closest in squared Euclidean distance over all
// channels and timepoints. Ties on distance break on the lower training
// index so predictions are fully deterministic.
type KNeighborsTimeSeriesRegressor struct {
	model.BaseEstimator

	// NNeighbors is the number of neighbours averaged per prediction.
	NNeighbors int

	trainX    datatypes.Panel
	trainY    []float64
	trainMeta datatypes.PanelMetadata
}

// NewKNeighborsTimeSeriesRegressor creates a k-NN regressor with the given
// neighbour count.
func NewKNeighborsTimeSeriesRegressor(k int) *KNeighborsTimeSeriesRegressor {
	return &KNeighborsTimeSeriesRegressor{NNeighbors: k}
}

// Fit stores the training panel and targets.
func (k *KNeighborsTimeSeriesRegressor) Fit(X datatypes.Panel, y []float64) error {
	start := time.Now()

	X, meta, err := validateFit("KNeighborsTimeSeriesRegressor", X, y, k.Capabilities(), k.IsComposite(), 0)
	if err != nil {
		return err
	}
	if k.NNeighbors < 1 {
		return errors.NewValidationError("n_neighbors", "must be a positive integer", k.NNeighbors)
	}
	if k.NNeighbors > meta.NInstances {
		return errors.NewValueError("KNeighborsTimeSeriesRegressor.Fit",
			"n_neighbors exceeds the number of training instances")
	}

	k.trainX = X
	k.trainY = y
	k.trainMeta = meta
	k.SetFitted()

	log.GetLoggerWithName("regression").Debug("fit complete",
		log.ModelNameKey, "KNeighborsTimeSeriesRegressor",
		log.OperationKey, "fit",
		log.InstancesKey, meta.NInstances,
		log.ChannelsKey, meta.NChannels,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns the mean target of the k nearest training instances for
// each instance of X. Queries are processed in parallel chunks.
func (k *KNeighborsTimeSeriesRegressor) Predict(X datatypes.Panel) ([]float64, error) {
	X, meta, err := validatePredict("KNeighborsTimeSeriesRegressor", X, k.IsFitted(), k.trainMeta, -1)
	if err != nil {
		return nil, err
	}

	out := make([]float64, meta.NInstances)
	parallel.ParallelizeWithThreshold(meta.NInstances, 16, func(lo, hi int) {
		for q := lo; q < hi; q++ {
			out[q] = k.predictOne(X[q])
		}
	})
	return out, nil
}

func (k *KNeighborsTimeSeriesRegressor) predictOne(query datatypes.Instance) float64 {
	nTrain := len(k.trainX)
	dists := make([]float64, nTrain)
	for i, inst := range k.trainX {
		dists[i] = squaredDistance(query, inst)
	}

	idx := make([]int, nTrain)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if dists[idx[a]] != dists[idx[b]] {
			return dists[idx[a]] < dists[idx[b]]
		}
		return idx[a] < idx[b]
	})

	var sum float64
	for _, ni := range idx[:k.NNeighbors] {
		sum += k.trainY[ni]
	}
	return sum / float64(k.NNeighbors)
}

// squaredDistance accumulates the squared Euclidean distance channel by
// channel, timepoint by timepoint.
func squaredDistance(a, b datatypes.Instance) float64 {
	var sum float64
	for c := range a {
		ac, bc := a[c], b[c]
		for t := range ac {
			d := ac[t] - bc[t]
			sum += d * d
		}
	}
	return sum
}

// Capabilities implements model.TimeSeriesRegressor.
func (k *KNeighborsTimeSeriesRegressor) Capabilities() model.Capabilities {
	return model.Capabilities{Multivariate: true}
}

// IsComposite implements model.TimeSeriesRegressor.
func (k *KNeighborsTimeSeriesRegressor) IsComposite() bool { return false }

// GetParams implements model.ParameterGetter.
func (k *KNeighborsTimeSeriesRegressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_neighbors": k.NNeighbors,
	}
}

// SetParams implements model.ParameterSetter.
func (k *KNeighborsTimeSeriesRegressor) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "n_neighbors":
			n, ok := toInt(value)
			if !ok || n < 1 {
				return errors.NewValidationError(key, "must be a positive integer", value)
			}
			k.NNeighbors = n
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	k.Reset()
	return nil
}
