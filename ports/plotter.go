package ports

import (
	"guesslab/domain/dataset"
)

// Plotter renders the distribution of one numeric column to an image file.
// Kept behind an interface so the pipeline stays testable without a display
// or font stack.
type Plotter interface {
	RenderHistogram(ds *dataset.Dataset, column string, path string) error
}
