package generator

import (
	"math"
	"math/rand"
	"time"

	"guesslab/domain/core"
	"guesslab/domain/dataset"
)

const weightTolerance = 1e-6

// Config drives the synthetic guess generator. Responses are drawn from
// {1..len(Weights)} with the given probabilities, categories uniformly from
// Categories, and timestamps advance one minute per row from Epoch.
type Config struct {
	Rows       int
	Seed       int64
	Epoch      time.Time
	Weights    []float64
	Categories []string
}

// DefaultConfig mirrors the reference guess experiment: 300 rows, seed 42,
// a deliberately biased response distribution favoring 5 and 2, and four
// uniform session categories.
func DefaultConfig() Config {
	return Config{
		Rows:       300,
		Seed:       42,
		Epoch:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Weights:    []float64{0.10, 0.15, 0.05, 0.10, 0.20, 0.10, 0.10, 0.10, 0.05, 0.05},
		Categories: []string{"A", "B", "C", "D"},
	}
}

// Validate checks the configuration preconditions without generating anything
func Validate(cfg Config) error {
	if cfg.Rows <= 0 {
		return core.NewInvalidArgumentError("rows", "must be > 0")
	}
	if len(cfg.Weights) == 0 {
		return core.NewInvalidArgumentError("weights", "must not be empty")
	}
	sum := 0.0
	for _, w := range cfg.Weights {
		if w < 0 {
			return core.NewInvalidArgumentError("weights", "must be non-negative")
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return core.NewInvalidArgumentError("weights", "must sum to 1.0")
	}
	if len(cfg.Categories) == 0 {
		return core.NewInvalidArgumentError("categories", "must not be empty")
	}
	return nil
}

// Generate produces the synthetic guess dataset. The three columns are drawn
// independently; identical configs yield identical datasets across runs.
func Generate(cfg Config) (*dataset.Dataset, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	responses := make([]int64, cfg.Rows)
	for i := 0; i < cfg.Rows; i++ {
		responses[i] = drawWeighted(rng, cfg.Weights)
	}

	categories := make([]string, cfg.Rows)
	for i := 0; i < cfg.Rows; i++ {
		categories[i] = cfg.Categories[rng.Intn(len(cfg.Categories))]
	}

	timestamps := make([]time.Time, cfg.Rows)
	for i := 0; i < cfg.Rows; i++ {
		timestamps[i] = cfg.Epoch.Add(time.Duration(i) * time.Minute)
	}

	return dataset.New(
		dataset.IntColumn(dataset.ColResponse, responses),
		dataset.StringColumn(dataset.ColCategory, categories),
		dataset.TimeColumn(dataset.ColTimestamp, timestamps),
	)
}

// drawWeighted samples from {1..len(weights)} by cumulative-weight inversion
func drawWeighted(rng *rand.Rand, weights []float64) int64 {
	r := rng.Float64()
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			return int64(i + 1)
		}
	}
	// r landed in the tolerance gap past the last cumulative weight
	return int64(len(weights))
}
