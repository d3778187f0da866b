package cli

import (
	"testing"

	"github.com/kfujino/elastilens/internal/model"
	"github.com/kfujino/elastilens/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	rows := []report.Row{
		{
			ProductID:      "B0SAMPLE01",
			DisplayName:    "Widget A",
			Pattern:        "A. Threshold breakthrough",
			Recommendation: "Enter at 20% off",
			ListPrice:      decimal.NewFromInt(1500),
			Category:       model.CategoryA,
		},
	}

	out := RenderReport(rows)

	assert.Contains(t, out, "Product")
	assert.Contains(t, out, "B0SAMPLE01")
	assert.Contains(t, out, "Widget A")
	assert.Contains(t, out, "A. Threshold breakthrough")
	assert.Contains(t, out, "1500")
}

func TestRenderReport_Empty(t *testing.T) {
	out := RenderReport(nil)
	assert.Contains(t, out, "Recommendation")
}

func TestRenderLegend(t *testing.T) {
	out := RenderLegend()
	for _, c := range model.Categories {
		assert.Contains(t, out, c.Label())
	}
}
