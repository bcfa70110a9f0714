// Package datatypes defines the in-memory data model for collections of
// time series and the structural metadata inspection used across the
// toolkit. Estimators and tests query panel structure through CheckPanel
// rather than reaching into the concrete representation.
package datatypes

import (
	"github.com/vedpawar2254/aeon/pkg/errors"
)

// Instance is a single time series, stored channel-major: Instance[c][t] is
// the value of channel c at timepoint t. A univariate series has one channel.
type Instance [][]float64

// Panel is a collection of time-series instances. All instances in a valid
// panel share the same channel count and series length.
type Panel []Instance

// NumChannels returns the channel count of the instance.
func (inst Instance) NumChannels() int {
	return len(inst)
}

// Length returns the number of timepoints, 0 for an empty instance.
func (inst Instance) Length() int {
	if len(inst) == 0 {
		return 0
	}
	return len(inst[0])
}

// Flatten concatenates the channels into a single slice, channel 0 first.
func (inst Instance) Flatten() []float64 {
	out := make([]float64, 0, inst.NumChannels()*inst.Length())
	for _, ch := range inst {
		out = append(out, ch...)
	}
	return out
}

// NumInstances returns the number of instances in the panel.
func (p Panel) NumInstances() int {
	return len(p)
}

// Subset returns a new panel containing the instances at the given indices,
// in the given order. The underlying series data is shared, not copied.
func (p Panel) Subset(indices []int) (Panel, error) {
	out := make(Panel, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(p) {
			return nil, errors.NewValueError("Panel.Subset", "index out of range")
		}
		out = append(out, p[i])
	}
	return out, nil
}

// SelectChannel returns a univariate view of the panel containing only the
// given channel of every instance.
func (p Panel) SelectChannel(c int) (Panel, error) {
	out := make(Panel, len(p))
	for i, inst := range p {
		if c < 0 || c >= len(inst) {
			return nil, errors.NewValueError("Panel.SelectChannel", "channel out of range")
		}
		out[i] = Instance{inst[c]}
	}
	return out, nil
}

// PanelMetadata describes the structure of a panel independent of its
// concrete representation.
type PanelMetadata struct {
	NInstances  int
	NChannels   int
	NTimepoints int
	Univariate  bool
}

// CheckPanel validates that p is a well-formed panel (non-empty,
// rectangular, equal-length) and returns its structural metadata.
func CheckPanel(p Panel) (PanelMetadata, error) {
	if len(p) == 0 {
		return PanelMetadata{}, errors.NewValueError("CheckPanel", "empty panel")
	}
	nc := p[0].NumChannels()
	nt := p[0].Length()
	if nc == 0 || nt == 0 {
		return PanelMetadata{}, errors.NewValueError("CheckPanel", "empty instance in panel")
	}
	for _, inst := range p {
		if inst.NumChannels() != nc {
			return PanelMetadata{}, errors.NewDimensionError("CheckPanel", nc, inst.NumChannels(), 1)
		}
		for _, ch := range inst {
			if len(ch) != nt {
				return PanelMetadata{}, errors.NewDimensionError("CheckPanel", nt, len(ch), 1)
			}
		}
	}
	return PanelMetadata{
		NInstances:  len(p),
		NChannels:   nc,
		NTimepoints: nt,
		Univariate:  nc == 1,
	}, nil
}
