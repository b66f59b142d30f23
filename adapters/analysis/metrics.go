package analysis

import (
	"guesslab/domain/core"
	"guesslab/domain/dataset"
	"guesslab/domain/stats"
)

// MetricsCalculator computes uniqueness and modal-frequency statistics for
// one column of a dataset
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// Compute counts distinct values, the proportion unique, and the modal value
// with its frequency. Ties for the mode break toward the value that sorts
// first in the column's natural order, so results are reproducible.
func (c *MetricsCalculator) Compute(ds *dataset.Dataset, column string) (stats.Metrics, error) {
	col, err := ds.Column(column)
	if err != nil {
		return stats.Metrics{}, err
	}
	total := col.Len()
	if total == 0 {
		return stats.Metrics{}, core.NewEmptyColumnError(column)
	}

	counts := valueCounts(col)

	var mode dataset.Value
	modeCount := 0
	for v, n := range counts {
		if n > modeCount || (n == modeCount && v.Less(mode)) {
			mode, modeCount = v, n
		}
	}

	return stats.Metrics{
		NumUnique:        len(counts),
		NumTotal:         total,
		ProportionUnique: float64(len(counts)) / float64(total),
		MostCommon:       mode,
		CountMostCommon:  modeCount,
	}, nil
}

// valueCounts builds the observed-frequency map for a column
func valueCounts(col *dataset.Column) map[dataset.Value]int {
	counts := make(map[dataset.Value]int)
	for i := 0; i < col.Len(); i++ {
		counts[col.Value(i)]++
	}
	return counts
}
