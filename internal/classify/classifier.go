// Package classify implements the elasticity classification rules that map a
// product's discount observations to a category.
package classify

import (
	"github.com/kfujino/elastilens/internal/model"
)

// LightBandFloor is the lower edge (percent) of the light discount band.
// It is fixed, not configurable.
const LightBandFloor = 5.0

// bandAggregates summarizes elasticity within one discount band. ok is
// false when the band contains no observations, in which case the values
// are meaningless and any rule depending on them must not match.
type bandAggregates struct {
	max float64
	avg float64
	ok  bool
}

func aggregate(observations []model.Observation, in func(model.Observation) bool) bandAggregates {
	var agg bandAggregates
	var sum float64
	var n int

	for _, obs := range observations {
		if !in(obs) {
			continue
		}
		if n == 0 || obs.Elasticity > agg.max {
			agg.max = obs.Elasticity
		}
		sum += obs.Elasticity
		n++
	}

	if n == 0 {
		return bandAggregates{}
	}
	return bandAggregates{max: agg.max, avg: sum / float64(n), ok: true}
}

// Classify assigns exactly one category to a product series. high is the
// strong-response elasticity threshold; lightMax and deepMin are the band
// boundaries (percent) for the light and deep discount bands. The rules are
// evaluated in order and the first match wins:
//
//	A: the deep band's best elasticity clears the threshold
//	B: the light band's best elasticity clears half the threshold
//	C: the light band averages negative and the deep band never clears
//	D: everything else (insufficient data)
func Classify(series model.ProductSeries, high, lightMax, deepMin float64) model.ClassificationResult {
	deep := aggregate(series.Observations, func(o model.Observation) bool {
		return o.DiscountPct >= deepMin
	})
	light := aggregate(series.Observations, func(o model.Observation) bool {
		return o.DiscountPct >= LightBandFloor && o.DiscountPct <= lightMax
	})

	switch {
	case deep.ok && deep.max > high:
		return model.NewClassificationResult(model.CategoryA)
	case light.ok && light.max > high/2:
		return model.NewClassificationResult(model.CategoryB)
	case light.ok && light.avg < 0 && (!deep.ok || deep.max < high):
		return model.NewClassificationResult(model.CategoryC)
	}
	return model.NewClassificationResult(model.CategoryD)
}
