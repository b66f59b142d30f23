package csvstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesslab/domain/dataset"
)

func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ds, err := dataset.New(
		dataset.IntColumn(dataset.ColResponse, []int64{5, 2, 5}),
		dataset.StringColumn(dataset.ColCategory, []string{"A", "B", "A"}),
		dataset.TimeColumn(dataset.ColTimestamp, []time.Time{
			epoch, epoch.Add(time.Minute), epoch.Add(2 * time.Minute),
		}),
	)
	require.NoError(t, err)
	return ds
}

func TestSaveWritesHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guesses.csv")
	require.NoError(t, NewStore().Save(sampleDataset(t), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "response,category,timestamp", lines[0])
	assert.Equal(t, "5,A,2024-01-01T00:00", lines[1])
	assert.Equal(t, "2,B,2024-01-01T00:01", lines[2])
}

func TestRoundTripPreservesSchema(t *testing.T) {
	store := NewStore()
	path := filepath.Join(t.TempDir(), "guesses.csv")

	ds := sampleDataset(t)
	require.NoError(t, ds.SetColumn(dataset.IntColumn(dataset.ColCluster, []int64{0, 1, 0})))
	require.NoError(t, store.Save(ds, path))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	require.Equal(t, ds.Len(), loaded.Len())
	assert.Equal(t, ds.ColumnNames(), loaded.ColumnNames())

	responses, err := loaded.Column(dataset.ColResponse)
	require.NoError(t, err)
	assert.Equal(t, dataset.KindInt, responses.Kind)
	assert.Equal(t, []int64{5, 2, 5}, responses.Ints)

	timestamps, err := loaded.Column(dataset.ColTimestamp)
	require.NoError(t, err)
	assert.Equal(t, dataset.KindTime, timestamps.Kind)
	assert.True(t, timestamps.Times[1].Equal(time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC)))

	clusters, err := loaded.Column(dataset.ColCluster)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 0}, clusters.Ints)
}

func TestLoadRejectsMalformedCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "response,category,timestamp\nnope,A,2024-01-01T00:00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := NewStore().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "response"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewStore().Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
