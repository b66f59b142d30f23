package plot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"guesslab/domain/core"
	"guesslab/domain/dataset"
)

// HistogramPlotter renders the distribution of a numeric column as a PNG
// histogram, one bin per distinct guess value.
type HistogramPlotter struct {
	Bins int
}

// NewHistogramPlotter creates a plotter with the given bin count
func NewHistogramPlotter(bins int) *HistogramPlotter {
	if bins <= 0 {
		bins = 10
	}
	return &HistogramPlotter{Bins: bins}
}

// RenderHistogram writes a histogram of the column to path
func (h *HistogramPlotter) RenderHistogram(ds *dataset.Dataset, column string, path string) error {
	col, err := ds.Column(column)
	if err != nil {
		return err
	}
	values, ok := col.Float64s()
	if !ok {
		return core.NewInvalidArgumentError("column "+column, "is not numeric")
	}
	if len(values) == 0 {
		return core.NewEmptyColumnError(column)
	}

	p := plot.New()
	p.Title.Text = "Response Distribution"
	p.X.Label.Text = "Response"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(values), h.Bins)
	if err != nil {
		return err
	}
	p.Add(hist)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
