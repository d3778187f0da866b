package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kfujino/elastilens/internal/cli"
	"github.com/kfujino/elastilens/internal/common"
	"github.com/kfujino/elastilens/internal/config"
	"github.com/kfujino/elastilens/internal/engine"
	"github.com/kfujino/elastilens/internal/export"
	"github.com/kfujino/elastilens/internal/model"
)

const (
	reportFileName = "elasticity_recommendation.csv"
	chartFileName  = "price_elasticity_analysis.html"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify products and write the recommendation exports",
		Long: `Classify every product in an elasticity CSV, print the recommendation
table, and write the CSV and interactive HTML chart exports.

Examples:
  elastilens analyze -i elasticity.csv
  elastilens analyze -i elasticity.csv -n names.txt -o ./out
  elastilens analyze -i elasticity.csv --threshold-high 15`,
		RunE: runAnalyze,
	}

	// Flags
	cmd.Flags().StringP("input", "i", "", "elasticity CSV exported from the retail report (required)")
	cmd.Flags().StringP("names", "n", "", "optional product-name mapping file (tab or comma separated)")
	cmd.Flags().StringP("out-dir", "o", ".", "directory for the CSV and HTML exports")
	cmd.Flags().Bool("no-export", false, "print the table only, write no files")
	cmd.Flags().Float64("threshold-high", 10.0, "elasticity above which a product responds strongly")
	cmd.Flags().Float64("threshold-low", 0.0, "elasticity below which discounting is counterproductive")
	cmd.Flags().Float64("light-max", 10.0, "upper bound of the light discount band (%)")
	cmd.Flags().Float64("deep-min", 20.0, "lower bound of the deep discount band (%)")
	_ = cmd.MarkFlagRequired("input")

	// Bind to viper (errors are rare and can be ignored in practice)
	_ = viper.BindPFlag("thresholds.high", cmd.Flags().Lookup("threshold-high"))
	_ = viper.BindPFlag("thresholds.low", cmd.Flags().Lookup("threshold-low"))
	_ = viper.BindPFlag("thresholds.light_max", cmd.Flags().Lookup("light-max"))
	_ = viper.BindPFlag("thresholds.deep_min", cmd.Flags().Lookup("deep-min"))

	return cmd
}

func thresholdsFromConfig() model.ThresholdConfig {
	return model.ThresholdConfig{
		High:             viper.GetFloat64("thresholds.high"),
		Low:              viper.GetFloat64("thresholds.low"),
		LightDiscountMax: viper.GetFloat64("thresholds.light_max"),
		DeepDiscountMin:  viper.GetFloat64("thresholds.deep_min"),
	}
}

func readInputs(cmd *cobra.Command) (data []byte, names string, err error) {
	inputPath, _ := cmd.Flags().GetString("input")
	inputPath = config.ExpandPath(inputPath)
	data, err = os.ReadFile(inputPath)
	if err != nil {
		return nil, "", common.NewUserError(fmt.Sprintf("failed to read input file %s", inputPath), err)
	}

	namesPath, _ := cmd.Flags().GetString("names")
	if namesPath != "" {
		namesPath = config.ExpandPath(namesPath)
		raw, readErr := os.ReadFile(namesPath)
		if readErr != nil {
			return nil, "", common.NewUserError(fmt.Sprintf("failed to read names file %s", namesPath), readErr)
		}
		names = string(raw)
	}

	return data, names, nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	data, names, err := readInputs(cmd)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Classifying products..."),
	)

	eng := engine.New(engine.WithProgress(func(string) {
		_ = bar.Add(1)
	}))

	result, err := eng.Run(ctx, engine.Input{
		Data:       data,
		Names:      names,
		Thresholds: thresholdsFromConfig(),
	})
	_ = bar.Finish()
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		if common.IsInputError(err) {
			return common.NewUserError("input data is not in the expected format", err)
		}
		return common.NewUserError("analysis failed", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.SuccessStyle.Render(fmt.Sprintf("Analyzed %d products", len(result.Report.Rows))))
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderReport(result.Report.Rows))
	fmt.Fprintln(out, cli.RenderLegend())

	if noExport, _ := cmd.Flags().GetBool("no-export"); noExport {
		return nil
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	summary, err := saveExports(outDir, &result)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, cli.SubtleStyle.Render(summary))

	return nil
}

// saveExports writes both export artifacts and reports where they went.
func saveExports(outDir string, result *engine.Result) (string, error) {
	outDir = config.ExpandPath(outDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", common.NewUserError(fmt.Sprintf("failed to create output directory %s", outDir), err)
	}

	csvPath := filepath.Join(outDir, reportFileName)
	if err := writeFile(csvPath, func(f *os.File) error {
		return export.WriteReportCSV(f, result.Report.Rows)
	}); err != nil {
		return "", err
	}

	htmlPath := filepath.Join(outDir, chartFileName)
	if err := writeFile(htmlPath, func(f *os.File) error {
		return export.WriteChartHTML(f, result.Chart)
	}); err != nil {
		return "", err
	}

	slog.Info("Exports written", "csv", csvPath, "html", htmlPath)
	return fmt.Sprintf("Wrote %s and %s", csvPath, htmlPath), nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("Failed to close export file", "path", path, "error", closeErr)
		}
	}()

	if err := write(f); err != nil {
		return common.NewUserError(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
