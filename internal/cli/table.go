package cli

import (
	"fmt"
	"strings"

	"github.com/kfujino/elastilens/internal/model"
	"github.com/kfujino/elastilens/internal/report"
)

var tableHeaders = []string{"Product", "Name", "Pattern", "Recommendation", "List Price"}

// RenderReport renders the recommendation table for the terminal, with
// each pattern cell colored by its category.
func RenderReport(rows []report.Row) string {
	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cell := []string{
			row.ProductID,
			row.DisplayName,
			row.Pattern,
			row.Recommendation,
			row.ListPrice.String(),
		}
		for i, c := range cell {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
		cells = append(cells, cell)
	}

	var b strings.Builder

	var header strings.Builder
	for i, h := range tableHeaders {
		header.WriteString(TableCellStyle.Render(pad(h, widths[i])))
	}
	b.WriteString(TableHeaderStyle.Render(header.String()))
	b.WriteString("\n")

	for r, cell := range cells {
		for i, c := range cell {
			text := pad(c, widths[i])
			if i == 2 {
				text = CategoryStyle(rows[r].Category.Color()).Render(text)
			}
			b.WriteString(TableCellStyle.Render(text))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderLegend renders the category reference shown under the table.
func RenderLegend() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Patterns"))
	b.WriteString("\n")
	for _, c := range model.Categories {
		line := fmt.Sprintf("%s. %-26s %s", c, c.Label(), c.Recommendation())
		b.WriteString(CategoryStyle(c.Color()).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
