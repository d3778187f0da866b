// Package chart composes a declarative chart specification from classified
// product series. Rendering is left to an export collaborator; this package
// only decides what to draw.
package chart

import (
	"fmt"

	"github.com/kfujino/elastilens/internal/model"
	"github.com/kfujino/elastilens/internal/report"
)

// Fixed visual extents of the elasticity axis zones.
const (
	recommendedZoneCeiling     = 50.0
	counterproductiveZoneFloor = -30.0
)

// palette cycles per product index. Line color is cosmetic and deliberately
// independent of the category color, which only appears in the legend text.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Axis describes one chart axis.
type Axis struct {
	Title string
	Min   float64
	Max   float64
	Ticks []float64
}

// Band is a horizontal shaded zone between two y values.
type Band struct {
	From    float64
	To      float64
	Color   string
	Opacity float64
}

// Line is a horizontal reference line.
type Line struct {
	Y          float64
	Dash       string // "solid" or "dash"
	Color      string
	Width      float64
	Annotation string
}

// Series is one product's line-plus-markers trace.
type Series struct {
	Name     string
	Color    string
	Category model.Category
	X        []float64
	Y        []float64
}

// Spec is the full declarative chart description.
type Spec struct {
	Title  string
	XAxis  Axis
	YAxis  Axis
	Bands  []Band
	Lines  []Line
	Series []Series
}

// Compose builds the chart spec for one classification pass.
func Compose(classified []report.ClassifiedSeries, cfg model.ThresholdConfig) Spec {
	spec := Spec{
		Title: "Discount depth vs price elasticity by product",
		XAxis: Axis{
			Title: "Discount (%)",
			Min:   3,
			Max:   25,
			Ticks: []float64{5, 10, 15, 20, 25},
		},
		YAxis: Axis{
			Title: "Price elasticity",
			Min:   -25,
			Max:   50,
		},
		Bands: []Band{
			{From: cfg.High, To: recommendedZoneCeiling, Color: "green", Opacity: 0.1},
			{From: counterproductiveZoneFloor, To: cfg.Low, Color: "red", Opacity: 0.1},
		},
		Lines: []Line{
			{Y: cfg.Low, Dash: "solid", Color: "gray", Width: 1.5},
			{
				Y:          cfg.High,
				Dash:       "dash",
				Color:      "green",
				Width:      2,
				Annotation: fmt.Sprintf("Recommended zone (elasticity > %g)", cfg.High),
			},
		},
	}

	for i, cs := range classified {
		series := Series{
			Name:     fmt.Sprintf("%s (%s)", cs.DisplayName, cs.Result.Category),
			Color:    palette[i%len(palette)],
			Category: cs.Result.Category,
		}
		for _, obs := range cs.Series.Observations {
			series.X = append(series.X, obs.DiscountPct)
			series.Y = append(series.Y, obs.Elasticity)
		}
		spec.Series = append(spec.Series, series)
	}

	return spec
}
