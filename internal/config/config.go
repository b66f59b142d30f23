package config

import (
	"os"
	"strconv"
)

// Config represents the application configuration, read from environment
// variables with reference-experiment defaults
type Config struct {
	Rows          int
	Seed          int64
	Clusters      int
	ClusterSeed   int64
	OutputDir     string
	HistogramBins int
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Rows:          getInt("GUESSLAB_ROWS", 300),
		Seed:          getInt64("GUESSLAB_SEED", 42),
		Clusters:      getInt("GUESSLAB_CLUSTERS", 3),
		ClusterSeed:   getInt64("GUESSLAB_CLUSTER_SEED", 0),
		OutputDir:     getString("GUESSLAB_OUTPUT_DIR", "."),
		HistogramBins: getInt("GUESSLAB_HISTOGRAM_BINS", 10),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
