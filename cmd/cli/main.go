package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"guesslab/adapters/analysis"
	"guesslab/adapters/cluster"
	"guesslab/adapters/csvstore"
	"guesslab/adapters/plot"
	"guesslab/adapters/report"
	"guesslab/adapters/xlsx"
	"guesslab/app"
	"guesslab/domain/dataset"
	"guesslab/internal/config"
	"guesslab/internal/generator"
	"guesslab/internal/logging"
	"guesslab/ports"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "guesslab",
		Short: "Evaluate how random simulated human number guesses really are",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newAnalyzeCmd(),
		newClusterCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var rows int
	var seed int64
	var out string
	var xlsxOut string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the synthetic guess dataset and save it as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := generator.DefaultConfig()
			cfg.Rows = rows
			cfg.Seed = seed

			ds, err := generator.Generate(cfg)
			if err != nil {
				return err
			}
			if err := csvstore.NewStore().Save(ds, out); err != nil {
				return err
			}
			logging.Default.Info("dataset saved to %s", out)

			if xlsxOut != "" {
				if err := xlsx.NewExporter().Export(ds, xlsxOut); err != nil {
					return err
				}
				logging.Default.Info("workbook saved to %s", xlsxOut)
			}
			return nil
		},
	}

	defaults := config.Load()
	cmd.Flags().IntVar(&rows, "rows", defaults.Rows, "number of rows to generate")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "random seed")
	cmd.Flags().StringVar(&out, "out", "guesses.csv", "CSV output path")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "also export an XLSX workbook to this path")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "analyze [dataset.csv]",
		Short: "Compute randomness metrics and the uniformity test for a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := csvstore.NewStore().Load(args[0])
			if err != nil {
				return err
			}

			metrics, err := analysis.NewMetricsCalculator().Compute(ds, column)
			if err != nil {
				return err
			}
			fmt.Printf("unique values:      %d\n", metrics.NumUnique)
			fmt.Printf("total rows:         %d\n", metrics.NumTotal)
			fmt.Printf("proportion unique:  %.4f\n", metrics.ProportionUnique)
			fmt.Printf("most common:        %s (%d times)\n", metrics.MostCommon.String(), metrics.CountMostCommon)

			result, err := analysis.NewUniformityTester().Test(ds, column)
			if err != nil {
				return err
			}
			fmt.Printf("chi-square:         %.4f (df=%d)\n", result.Statistic, result.DegreesOfFreedom)
			fmt.Printf("p-value:            %.4g\n", result.PValue)
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", dataset.ColResponse, "column to analyze")
	return cmd
}

func newClusterCmd() *cobra.Command {
	var column string
	var k int
	var seed int64
	var out string

	cmd := &cobra.Command{
		Use:   "cluster [dataset.csv]",
		Short: "Cluster a numeric column with k-means and save the labeled dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := csvstore.NewStore()
			ds, err := store.Load(args[0])
			if err != nil {
				return err
			}

			labeler := cluster.NewLabeler(logging.Default)
			if err := labeler.ClusterColumn(ds, column, k, seed); err != nil {
				return err
			}

			if out == "" {
				out = args[0]
			}
			return store.Save(ds, out)
		},
	}

	defaults := config.Load()
	cmd.Flags().StringVar(&column, "column", dataset.ColResponse, "numeric column to cluster")
	cmd.Flags().IntVar(&k, "k", defaults.Clusters, "number of clusters")
	cmd.Flags().Int64Var(&seed, "seed", defaults.ClusterSeed, "clustering seed")
	cmd.Flags().StringVar(&out, "out", "", "output path (defaults to the input path)")
	return cmd
}

func newRunCmd() *cobra.Command {
	var outDir string
	var noPlot bool
	var htmlReport bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: generate, analyze, cluster, plot, report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			req := app.DefaultRequest(outDir)
			req.Generator.Rows = cfg.Rows
			req.Generator.Seed = cfg.Seed
			req.Clusters = cfg.Clusters
			req.ClusterSeed = cfg.ClusterSeed

			var plotter *plot.HistogramPlotter
			if !noPlot {
				plotter = plot.NewHistogramPlotter(cfg.HistogramBins)
			}

			svc := app.NewEvaluationService(csvstore.NewStore(), plotterOrNil(plotter), logging.Default)
			runReport, err := svc.Run(req)
			if err != nil {
				return err
			}

			md := runReport.Markdown()
			mdPath := filepath.Join(outDir, "report.md")
			if err := os.WriteFile(mdPath, md, 0o644); err != nil {
				return err
			}
			logging.Default.Info("report saved to %s", mdPath)

			if htmlReport {
				htmlPath := filepath.Join(outDir, "report.html")
				page := report.NewHTMLRenderer().RenderHTML(md)
				if err := os.WriteFile(htmlPath, page, 0o644); err != nil {
					return err
				}
				logging.Default.Info("report saved to %s", htmlPath)
			}

			fmt.Print(string(md))
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (defaults to GUESSLAB_OUTPUT_DIR)")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the histogram")
	cmd.Flags().BoolVar(&htmlReport, "html", false, "also render the report as HTML")
	return cmd
}

// plotterOrNil keeps the service's ports.Plotter nil when plotting is off,
// instead of a typed-nil interface value
func plotterOrNil(p *plot.HistogramPlotter) ports.Plotter {
	if p == nil {
		return nil
	}
	return p
}
