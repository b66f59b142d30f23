package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"GUESSLAB_ROWS", "GUESSLAB_SEED", "GUESSLAB_CLUSTERS",
		"GUESSLAB_CLUSTER_SEED", "GUESSLAB_OUTPUT_DIR", "GUESSLAB_HISTOGRAM_BINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, 300, cfg.Rows)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.Clusters)
	assert.Equal(t, int64(0), cfg.ClusterSeed)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 10, cfg.HistogramBins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GUESSLAB_ROWS", "50")
	t.Setenv("GUESSLAB_SEED", "7")
	t.Setenv("GUESSLAB_OUTPUT_DIR", "/tmp/out")

	cfg := Load()
	assert.Equal(t, 50, cfg.Rows)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("GUESSLAB_ROWS", "many")

	cfg := Load()
	assert.Equal(t, 300, cfg.Rows)
}
