package stats

import (
	"guesslab/domain/dataset"
)

// Metrics summarizes how "random" one column looks: cardinality and the
// modal value with its frequency. Created fresh per call, never mutated.
//
// INVARIANTS:
// - 0 <= NumUnique <= NumTotal, NumTotal > 0
// - ProportionUnique = NumUnique / NumTotal, in [0,1]
// - 1 <= CountMostCommon <= NumTotal
type Metrics struct {
	NumUnique        int           `json:"num_unique"`
	NumTotal         int           `json:"num_total"`
	ProportionUnique float64       `json:"proportion_unique"`
	MostCommon       dataset.Value `json:"most_common"`
	CountMostCommon  int           `json:"count_most_common"`
}

// UniformityResult is the outcome of a chi-square goodness-of-fit test
// against a uniform expectation over the observed categories.
//
// Statistic grows with deviation from uniform frequency; PValue is the
// significance under chi-square with DegreesOfFreedom = distinct - 1.
type UniformityResult struct {
	Statistic        float64 `json:"statistic"`
	PValue           float64 `json:"p_value"`
	DegreesOfFreedom int     `json:"degrees_of_freedom"`
}

// IsSignificant reports whether the deviation from uniformity is significant
// at the given alpha (conventionally 0.05)
func (r UniformityResult) IsSignificant(alpha float64) bool {
	return r.PValue < alpha
}
