package xlsx

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"guesslab/domain/dataset"
)

func TestExportWritesFlatSheet(t *testing.T) {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ds, err := dataset.New(
		dataset.IntColumn(dataset.ColResponse, []int64{5, 2}),
		dataset.StringColumn(dataset.ColCategory, []string{"A", "B"}),
		dataset.TimeColumn(dataset.ColTimestamp, []time.Time{epoch, epoch.Add(time.Minute)}),
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "guesses.xlsx")
	require.NoError(t, NewExporter().Export(ds, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"response", "category", "timestamp"}, rows[0])
	assert.Equal(t, []string{"5", "A", "2024-01-01T00:00"}, rows[1])
	assert.Equal(t, []string{"2", "B", "2024-01-01T00:01"}, rows[2])
}
