// Package visualization renders diagnostic plots for fitted regressors:
// predicted-versus-actual scatter plots and raw series overlays.
package visualization

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vedpawar2254/aeon/datatypes"
	"github.com/vedpawar2254/aeon/pkg/errors"
)

// PredictedVsActual writes a scatter plot of predictions against true
// targets to path, with the identity line for reference. The output
// format follows the file extension (.png, .svg, .pdf).
func PredictedVsActual(yTrue, yPred []float64, title, path string) error {
	if len(yTrue) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "visualization.PredictedVsActual")
	}
	if len(yTrue) != len(yPred) {
		return errors.NewDimensionError("visualization.PredictedVsActual", len(yTrue), len(yPred), 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "actual"
	p.Y.Label.Text = "predicted"

	pts := make(plotter.XYs, len(yTrue))
	lo, hi := yTrue[0], yTrue[0]
	for i := range yTrue {
		pts[i].X = yTrue[i]
		pts[i].Y = yPred[i]
		for _, v := range []float64{yTrue[i], yPred[i]} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "visualization.PredictedVsActual")
	}
	p.Add(scatter)

	identity, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return errors.Wrap(err, "visualization.PredictedVsActual")
	}
	p.Add(identity)
	p.Add(plotter.NewGrid())

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, "visualization.PredictedVsActual")
	}
	return nil
}

// SeriesOverlay writes a line plot of every channel of one panel
// instance to path, one line per channel.
func SeriesOverlay(inst datatypes.Instance, title, path string) error {
	if len(inst) == 0 || len(inst[0]) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "visualization.SeriesOverlay")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "timepoint"
	p.Y.Label.Text = "value"

	for _, series := range inst {
		pts := make(plotter.XYs, len(series))
		for t, v := range series {
			pts[t].X = float64(t)
			pts[t].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrap(err, "visualization.SeriesOverlay")
		}
		p.Add(line)
	}
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "visualization.SeriesOverlay")
	}
	return nil
}
