package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesslab/adapters/csvstore"
	"guesslab/domain/dataset"
)

// stubPlotter records the plot request instead of rendering an image
type stubPlotter struct {
	column string
	path   string
}

func (p *stubPlotter) RenderHistogram(ds *dataset.Dataset, column string, path string) error {
	p.column = column
	p.path = path
	return os.WriteFile(path, []byte("png"), 0o644)
}

func TestRunProducesCompleteReport(t *testing.T) {
	dir := t.TempDir()
	plotter := &stubPlotter{}
	svc := NewEvaluationService(csvstore.NewStore(), plotter, nil)

	req := DefaultRequest(dir)
	req.Generator.Rows = 120

	report, err := svc.Run(req)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID.String())
	assert.Equal(t, 120, report.Rows)
	assert.Equal(t, dataset.ColResponse, report.Column)

	assert.Equal(t, 120, report.Metrics.NumTotal)
	assert.GreaterOrEqual(t, report.Metrics.NumUnique, 2)
	assert.GreaterOrEqual(t, report.Uniformity.Statistic, 0.0)
	assert.GreaterOrEqual(t, report.Uniformity.PValue, 0.0)
	assert.LessOrEqual(t, report.Uniformity.PValue, 1.0)

	total := 0
	for _, n := range report.ClusterSizes {
		total += n
	}
	assert.Equal(t, 120, total)

	// artifacts exist on disk
	assert.FileExists(t, report.DatasetPath)
	assert.FileExists(t, report.PlotPath)
	assert.Equal(t, dataset.ColResponse, plotter.column)

	// persisted dataset carries the cluster column
	loaded, err := csvstore.NewStore().Load(report.DatasetPath)
	require.NoError(t, err)
	assert.True(t, loaded.HasColumn(dataset.ColCluster))
	assert.Equal(t, 120, loaded.Len())
}

func TestRunIsDeterministicAcrossRuns(t *testing.T) {
	store := csvstore.NewStore()

	run := func(dir string) *RunReport {
		svc := NewEvaluationService(store, nil, nil)
		req := DefaultRequest(dir)
		req.Generator.Rows = 150
		report, err := svc.Run(req)
		require.NoError(t, err)
		return report
	}

	a := run(t.TempDir())
	b := run(t.TempDir())

	assert.Equal(t, a.Metrics, b.Metrics)
	assert.Equal(t, a.Uniformity, b.Uniformity)
	assert.Equal(t, a.ClusterSizes, b.ClusterSizes)
	assert.NotEqual(t, a.RunID, b.RunID)

	rawA, err := os.ReadFile(a.DatasetPath)
	require.NoError(t, err)
	rawB, err := os.ReadFile(b.DatasetPath)
	require.NoError(t, err)
	assert.Equal(t, rawA, rawB)
}

func TestRunWithoutPlotterSkipsPlot(t *testing.T) {
	svc := NewEvaluationService(csvstore.NewStore(), nil, nil)
	report, err := svc.Run(DefaultRequest(t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, report.PlotPath)
}

func TestRunRejectsBadGeneratorConfig(t *testing.T) {
	svc := NewEvaluationService(csvstore.NewStore(), nil, nil)

	req := DefaultRequest(t.TempDir())
	req.Generator.Rows = -1
	_, err := svc.Run(req)
	assert.Error(t, err)
}

func TestReportMarkdown(t *testing.T) {
	svc := NewEvaluationService(csvstore.NewStore(), nil, nil)
	report, err := svc.Run(DefaultRequest(t.TempDir()))
	require.NoError(t, err)

	md := string(report.Markdown())
	assert.Contains(t, md, "# Randomness Evaluation Report")
	assert.Contains(t, md, "## Metrics")
	assert.Contains(t, md, "## Uniformity")
	assert.Contains(t, md, "## Clusters (k = 3)")
	assert.Contains(t, md, filepath.Base(report.DatasetPath))
}
