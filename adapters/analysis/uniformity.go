package analysis

import (
	"gonum.org/v1/gonum/stat/distuv"

	"guesslab/domain/core"
	"guesslab/domain/dataset"
	"guesslab/domain/stats"
)

// UniformityTester runs a chi-square goodness-of-fit test of one column's
// observed frequencies against a uniform expectation.
//
// CAVEAT: the expected frequency is total/distinct over the categories that
// actually occur. A category of the domain that never appears contributes to
// neither vector, which shrinks the degrees of freedom. This matches the
// reference pipeline's numbers and is kept intentionally.
type UniformityTester struct{}

// NewUniformityTester creates a new uniformity tester
func NewUniformityTester() *UniformityTester {
	return &UniformityTester{}
}

// Test computes the chi-square statistic and its p-value under chi-square
// with (distinct - 1) degrees of freedom
func (t *UniformityTester) Test(ds *dataset.Dataset, column string) (stats.UniformityResult, error) {
	col, err := ds.Column(column)
	if err != nil {
		return stats.UniformityResult{}, err
	}
	total := col.Len()
	if total == 0 {
		return stats.UniformityResult{}, core.NewDegenerateInputError("no rows to test")
	}

	counts := valueCounts(col)
	distinct := len(counts)
	if distinct < 2 {
		return stats.UniformityResult{}, core.NewDegenerateInputError("need at least 2 distinct values")
	}

	expected := float64(total) / float64(distinct)
	statistic := 0.0
	for _, observed := range counts {
		diff := float64(observed) - expected
		statistic += diff * diff / expected
	}

	df := distinct - 1
	dist := distuv.ChiSquared{K: float64(df)}
	pValue := 1 - dist.CDF(statistic)
	if pValue < 0 {
		pValue = 0
	}
	if pValue > 1 {
		pValue = 1
	}

	return stats.UniformityResult{
		Statistic:        statistic,
		PValue:           pValue,
		DegreesOfFreedom: df,
	}, nil
}
