// Package export renders classification results into downloadable
// artifacts: a recommendation CSV and an interactive HTML chart snapshot.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kfujino/elastilens/internal/report"
)

var csvHeader = []string{"product_id", "product_name", "pattern", "recommendation", "list_price"}

// WriteReportCSV writes the recommendation table as CSV. The output is
// prefixed with a UTF-8 BOM so spreadsheet tools pick the right encoding.
func WriteReportCSV(w io.Writer, rows []report.Row) error {
	if _, err := w.Write([]byte("\ufeff")); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.ProductID,
			row.DisplayName,
			row.Pattern,
			row.Recommendation,
			row.ListPrice.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", row.ProductID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
