package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"guesslab/adapters/analysis"
	"guesslab/adapters/cluster"
	"guesslab/domain/core"
	"guesslab/domain/dataset"
	"guesslab/domain/stats"
	"guesslab/internal/generator"
	"guesslab/internal/logging"
	"guesslab/ports"
)

// EvaluationService runs the full randomness-evaluation pipeline:
// generate, persist, summarize, test for uniformity, cluster, plot.
// Stages run strictly in order; the first failing stage aborts the run.
type EvaluationService struct {
	metrics    *analysis.MetricsCalculator
	uniformity *analysis.UniformityTester
	labeler    *cluster.Labeler
	store      ports.DatasetStore
	plotter    ports.Plotter
	log        *logging.Logger
}

// EvaluationRequest defines one pipeline run
type EvaluationRequest struct {
	Generator   generator.Config
	Column      string // column under analysis, usually "response"
	Clusters    int
	ClusterSeed int64
	OutputDir   string
}

// DefaultRequest mirrors the reference experiment parameters
func DefaultRequest(outputDir string) EvaluationRequest {
	return EvaluationRequest{
		Generator:   generator.DefaultConfig(),
		Column:      dataset.ColResponse,
		Clusters:    3,
		ClusterSeed: 0,
		OutputDir:   outputDir,
	}
}

// RunReport is the immutable record of a completed run
type RunReport struct {
	RunID        core.RunID             `json:"run_id"`
	StartedAt    time.Time              `json:"started_at"`
	RuntimeMs    int64                  `json:"runtime_ms"`
	Rows         int                    `json:"rows"`
	Seed         int64                  `json:"seed"`
	Column       string                 `json:"column"`
	Metrics      stats.Metrics          `json:"metrics"`
	Uniformity   stats.UniformityResult `json:"uniformity"`
	Clusters     int                    `json:"clusters"`
	ClusterSizes map[int64]int          `json:"cluster_sizes"`
	DatasetPath  string                 `json:"dataset_path"`
	PlotPath     string                 `json:"plot_path,omitempty"`
}

// NewEvaluationService wires the pipeline components
func NewEvaluationService(store ports.DatasetStore, plotter ports.Plotter, log *logging.Logger) *EvaluationService {
	if log == nil {
		log = logging.Default
	}
	return &EvaluationService{
		metrics:    analysis.NewMetricsCalculator(),
		uniformity: analysis.NewUniformityTester(),
		labeler:    cluster.NewLabeler(log),
		store:      store,
		plotter:    plotter,
		log:        log,
	}
}

// Run executes the pipeline end to end and returns the run report
func (s *EvaluationService) Run(req EvaluationRequest) (*RunReport, error) {
	start := time.Now()
	report := &RunReport{
		RunID:     core.NewRunID(),
		StartedAt: start,
		Rows:      req.Generator.Rows,
		Seed:      req.Generator.Seed,
		Column:    req.Column,
		Clusters:  req.Clusters,
	}

	ds, err := generator.Generate(req.Generator)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	s.log.Info("generated %d rows (seed %d)", ds.Len(), req.Generator.Seed)

	metrics, err := s.metrics.Compute(ds, req.Column)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	report.Metrics = metrics

	uniformity, err := s.uniformity.Test(ds, req.Column)
	if err != nil {
		return nil, fmt.Errorf("uniformity test: %w", err)
	}
	report.Uniformity = uniformity

	if err := s.labeler.ClusterColumn(ds, req.Column, req.Clusters, req.ClusterSeed); err != nil {
		return nil, fmt.Errorf("clustering: %w", err)
	}
	report.ClusterSizes, err = countClusterSizes(ds)
	if err != nil {
		return nil, fmt.Errorf("clustering: %w", err)
	}

	report.DatasetPath = filepath.Join(req.OutputDir, "guesses.csv")
	if err := s.store.Save(ds, report.DatasetPath); err != nil {
		return nil, fmt.Errorf("save dataset: %w", err)
	}
	s.log.Info("dataset saved to %s", report.DatasetPath)

	if s.plotter != nil {
		report.PlotPath = filepath.Join(req.OutputDir, "response_distribution.png")
		if err := s.plotter.RenderHistogram(ds, req.Column, report.PlotPath); err != nil {
			return nil, fmt.Errorf("plot: %w", err)
		}
	}

	report.RuntimeMs = time.Since(start).Milliseconds()
	return report, nil
}

// Markdown renders the report as a human-readable markdown summary
func (r *RunReport) Markdown() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# Randomness Evaluation Report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", r.RunID)
	fmt.Fprintf(&b, "- Started: %s\n", r.StartedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "- Rows: %d (seed %d)\n", r.Rows, r.Seed)
	fmt.Fprintf(&b, "- Column: `%s`\n\n", r.Column)

	fmt.Fprintf(&b, "## Metrics\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Unique values | %d |\n", r.Metrics.NumUnique)
	fmt.Fprintf(&b, "| Total rows | %d |\n", r.Metrics.NumTotal)
	fmt.Fprintf(&b, "| Proportion unique | %.4f |\n", r.Metrics.ProportionUnique)
	fmt.Fprintf(&b, "| Most common | %s (%d times) |\n\n", r.Metrics.MostCommon.String(), r.Metrics.CountMostCommon)

	fmt.Fprintf(&b, "## Uniformity\n\n")
	verdict := "consistent with uniform guessing"
	if r.Uniformity.IsSignificant(0.05) {
		verdict = "significantly non-uniform (p < 0.05)"
	}
	fmt.Fprintf(&b, "Chi-square = %.4f, df = %d, p = %.4g — %s.\n\n",
		r.Uniformity.Statistic, r.Uniformity.DegreesOfFreedom, r.Uniformity.PValue, verdict)

	fmt.Fprintf(&b, "## Clusters (k = %d)\n\n", r.Clusters)
	labels := make([]int64, 0, len(r.ClusterSizes))
	for label := range r.ClusterSizes {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	for _, label := range labels {
		fmt.Fprintf(&b, "- cluster %d: %d rows\n", label, r.ClusterSizes[label])
	}

	fmt.Fprintf(&b, "\nDataset: `%s`\n", r.DatasetPath)
	if r.PlotPath != "" {
		fmt.Fprintf(&b, "Histogram: `%s`\n", r.PlotPath)
	}
	return []byte(b.String())
}

func countClusterSizes(ds *dataset.Dataset) (map[int64]int, error) {
	col, err := ds.Column(dataset.ColCluster)
	if err != nil {
		return nil, err
	}
	sizes := make(map[int64]int)
	for _, label := range col.Ints {
		sizes[label]++
	}
	return sizes, nil
}
