// Package preprocessing provides panel transformers applied ahead of
// regression, such as per-channel standardization.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vedpawar2254/aeon/core/model"
	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
)

// SeriesScaler standardizes each channel of a panel to zero mean and unit
// variance. Statistics are pooled over every instance and timepoint of the
// training panel, per channel, so transform-time panels are scaled with the
// training distribution.
type SeriesScaler struct {
	model.BaseEstimator

	// Mean holds the per-channel training mean.
	Mean []float64

	// Scale holds the per-channel training standard deviation. Channels
	// with zero variance get scale 1 so transform is a no-op for them.
	Scale []float64

	// WithMean controls whether the mean is subtracted.
	WithMean bool

	// WithStd controls whether values are divided by the deviation.
	WithStd bool
}

// NewSeriesScaler creates a scaler with both centering and scaling enabled.
func NewSeriesScaler() *SeriesScaler {
	return &SeriesScaler{WithMean: true, WithStd: true}
}

// Fit computes per-channel statistics from the training panel.
func (s *SeriesScaler) Fit(X datatypes.Panel) error {
	meta, err := datatypes.CheckPanel(X)
	if err != nil {
		return errors.Wrap(err, "SeriesScaler.Fit")
	}

	s.Mean = make([]float64, meta.NChannels)
	s.Scale = make([]float64, meta.NChannels)

	pooled := make([]float64, 0, meta.NInstances*meta.NTimepoints)
	for c := 0; c < meta.NChannels; c++ {
		pooled = pooled[:0]
		for _, inst := range X {
			pooled = append(pooled, inst[c]...)
		}
		s.Mean[c] = stat.Mean(pooled, nil)
		sd := math.Sqrt(stat.PopVariance(pooled, nil))
		if sd == 0 {
			sd = 1
		}
		s.Scale[c] = sd
	}

	s.SetFitted()
	return nil
}

// Transform returns a new panel scaled with the training statistics.
func (s *SeriesScaler) Transform(X datatypes.Panel) (datatypes.Panel, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SeriesScaler", "Transform")
	}
	meta, err := datatypes.CheckPanel(X)
	if err != nil {
		return nil, errors.Wrap(err, "SeriesScaler.Transform")
	}
	if meta.NChannels != len(s.Mean) {
		return nil, errors.NewDimensionError("SeriesScaler.Transform", len(s.Mean), meta.NChannels, 1)
	}

	out := make(datatypes.Panel, len(X))
	for i, inst := range X {
		scaled := make(datatypes.Instance, len(inst))
		for c, ch := range inst {
			vals := make([]float64, len(ch))
			for t, v := range ch {
				if s.WithMean {
					v -= s.Mean[c]
				}
				if s.WithStd {
					v /= s.Scale[c]
				}
				vals[t] = v
			}
			scaled[c] = vals
		}
		out[i] = scaled
	}
	return out, nil
}

// FitTransform fits the scaler on X and returns the transformed panel.
func (s *SeriesScaler) FitTransform(X datatypes.Panel) (datatypes.Panel, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
