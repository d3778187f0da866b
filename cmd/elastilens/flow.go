package main

import (
	"github.com/spf13/cobra"

	"github.com/kfujino/elastilens/internal/engine"
	"github.com/kfujino/elastilens/internal/tui"
)

func flowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Tune thresholds interactively",
		Long: `Open an interactive session on an elasticity CSV: adjust the judgement
thresholds, re-run classification, and save the exports when the result
looks right. A failed re-run keeps the previous result on screen.

Examples:
  elastilens flow -i elasticity.csv
  elastilens flow -i elasticity.csv -n names.txt -o ./out`,
		RunE: runFlow,
	}

	cmd.Flags().StringP("input", "i", "", "elasticity CSV exported from the retail report (required)")
	cmd.Flags().StringP("names", "n", "", "optional product-name mapping file (tab or comma separated)")
	cmd.Flags().StringP("out-dir", "o", ".", "directory for the CSV and HTML exports")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runFlow(cmd *cobra.Command, _ []string) error {
	data, names, err := readInputs(cmd)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out-dir")

	return tui.Run(tui.Config{
		Data:       data,
		Names:      names,
		Thresholds: thresholdsFromConfig(),
		Saver: func(result *engine.Result) (string, error) {
			return saveExports(outDir, result)
		},
	})
}
