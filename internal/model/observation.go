// Package model defines the core domain models used throughout the application.
package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Observation represents a single discount-depth measurement for a product.
type Observation struct {
	ProductID    string
	ListPrice    decimal.Decimal
	DiscountPct  float64 // magnitude of the discount on a 0-100 scale
	DemandChange float64 // raw input field, not used in classification
	Elasticity   float64 // signed; positive means discounting increased demand
}

// ProductSeries holds every observation sharing a product ID.
type ProductSeries struct {
	ProductID    string
	Observations []Observation
}

// SortByDiscount orders the observations by ascending discount percentage.
func (s *ProductSeries) SortByDiscount() {
	sort.SliceStable(s.Observations, func(i, j int) bool {
		return s.Observations[i].DiscountPct < s.Observations[j].DiscountPct
	})
}

// GroupByProduct splits observations into one series per product, preserving
// the order in which each product first appears in the input.
func GroupByProduct(observations []Observation) []ProductSeries {
	indexByID := make(map[string]int)
	var series []ProductSeries

	for _, obs := range observations {
		idx, seen := indexByID[obs.ProductID]
		if !seen {
			idx = len(series)
			indexByID[obs.ProductID] = idx
			series = append(series, ProductSeries{ProductID: obs.ProductID})
		}
		series[idx].Observations = append(series[idx].Observations, obs)
	}

	return series
}
