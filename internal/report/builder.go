// Package report builds the per-product recommendation table from raw
// observations, running one classification pass that also feeds the chart.
package report

import (
	"github.com/kfujino/elastilens/internal/classify"
	"github.com/kfujino/elastilens/internal/model"
	"github.com/shopspring/decimal"
)

// The classifier is invoked with these fixed band boundaries, not the
// configurable light/deep bounds. Switching to the configured 10/20
// defaults would reclassify observations in the 10-12% and 15-20% ranges.
const (
	classifyLightMax = 12.0
	classifyDeepMin  = 15.0
)

// Row is one line of the recommendation table.
type Row struct {
	ProductID      string
	DisplayName    string // empty when unmapped or the mapping repeats the ID
	Pattern        string // "<letter>. <label>"
	Recommendation string
	ListPrice      decimal.Decimal
	Category       model.Category
}

// ClassifiedSeries pairs a product's sorted observations with its
// classification, for chart composition.
type ClassifiedSeries struct {
	Series      model.ProductSeries
	Result      model.ClassificationResult
	DisplayName string // raw ID when unmapped
}

// Report is the outcome of one full classification pass.
type Report struct {
	Rows   []Row
	Series []ClassifiedSeries
}

// ProgressFunc is invoked once per classified product.
type ProgressFunc func(productID string)

// Build classifies every product in the input and assembles the report.
// Products appear in first-seen input order; products without observations
// are skipped. progress may be nil.
func Build(observations []model.Observation, names model.NameMapping, cfg model.ThresholdConfig, progress ProgressFunc) Report {
	var rep Report

	for _, series := range model.GroupByProduct(observations) {
		if len(series.Observations) == 0 {
			continue
		}
		series.SortByDiscount()

		result := classify.Classify(series, cfg.High, classifyLightMax, classifyDeepMin)
		displayName := names.DisplayName(series.ProductID)

		rowName := displayName
		if rowName == series.ProductID {
			rowName = ""
		}

		rep.Rows = append(rep.Rows, Row{
			ProductID:      series.ProductID,
			DisplayName:    rowName,
			Pattern:        result.Pattern(),
			Recommendation: result.Recommendation,
			ListPrice:      series.Observations[0].ListPrice,
			Category:       result.Category,
		})
		rep.Series = append(rep.Series, ClassifiedSeries{
			Series:      series,
			Result:      result,
			DisplayName: displayName,
		})

		if progress != nil {
			progress(series.ProductID)
		}
	}

	return rep
}
