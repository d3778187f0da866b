package classify

import (
	"testing"

	"github.com/kfujino/elastilens/internal/model"
	"github.com/stretchr/testify/assert"
)

func series(id string, points ...[2]float64) model.ProductSeries {
	s := model.ProductSeries{ProductID: id}
	for _, p := range points {
		s.Observations = append(s.Observations, model.Observation{
			ProductID:   id,
			DiscountPct: p[0],
			Elasticity:  p[1],
		})
	}
	return s
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		series   model.ProductSeries
		high     float64
		lightMax float64
		deepMin  float64
		want     model.Category
	}{
		{
			name:     "deep discount breakthrough",
			series:   series("P1", [2]float64{6, -13.95}, [2]float64{5, -9.83}, [2]float64{9, -17.99}, [2]float64{20, 17.76}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryA,
		},
		{
			name:     "single deep observation",
			series:   series("P2", [2]float64{20, 40.53}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryA,
		},
		{
			name:     "light discount already responsive",
			series:   series("P3", [2]float64{6, 16.80}, [2]float64{7, 11.05}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryB,
		},
		{
			name:     "counterproductive at every depth",
			series:   series("P4", [2]float64{12, -5.78}, [2]float64{5, -15.46}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryC,
		},
		{
			name:     "single point below every band",
			series:   series("P5", [2]float64{3, 8.0}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryD,
		},
		{
			name:     "deep band present but below threshold with positive light average",
			series:   series("P6", [2]float64{8, 2.0}, [2]float64{20, 4.0}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryD,
		},
		{
			name:     "negative light average but deep band at threshold exactly",
			series:   series("P7", [2]float64{6, -3.0}, [2]float64{20, 10.0}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryD,
		},
		{
			name:     "deep elasticity equal to threshold does not break through",
			series:   series("P8", [2]float64{20, 10.0}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryD,
		},
		{
			name:     "light max exactly half threshold stays unresponsive",
			series:   series("P9", [2]float64{7, 5.0}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryD,
		},
		{
			name:     "observation at light band floor counts",
			series:   series("P10", [2]float64{5, 9.0}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryB,
		},
		{
			name:     "observation just below light band floor ignored",
			series:   series("P11", [2]float64{4.9, 99.0}),
			high:     10,
			lightMax: 12,
			deepMin:  15,
			want:     model.CategoryD,
		},
		{
			name:     "custom band boundaries",
			series:   series("P12", [2]float64{11, 16.0}),
			high:     10,
			lightMax: 10,
			deepMin:  20,
			want:     model.CategoryD,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.series, tt.high, tt.lightMax, tt.deepMin)
			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, tt.want.Label(), got.Label)
			assert.Equal(t, tt.want.Recommendation(), got.Recommendation)
			assert.Equal(t, tt.want.Color(), got.Color)
		})
	}
}

func TestClassify_RulePrecedence(t *testing.T) {
	// Satisfies both the deep-breakthrough and light-responsive conditions;
	// the deep rule is evaluated first and must win.
	s := series("P", [2]float64{6, 16.0}, [2]float64{20, 25.0})
	got := Classify(s, 10, 12, 15)
	assert.Equal(t, model.CategoryA, got.Category)
}

func TestClassify_Idempotent(t *testing.T) {
	s := series("P", [2]float64{6, -13.95}, [2]float64{20, 17.76})
	first := Classify(s, 10, 12, 15)
	second := Classify(s, 10, 12, 15)
	assert.Equal(t, first, second)
}

func TestClassify_TotalOverSweep(t *testing.T) {
	// Every combination of discount depth and elasticity sign must resolve
	// to one of the four categories without panicking.
	valid := map[model.Category]bool{
		model.CategoryA: true,
		model.CategoryB: true,
		model.CategoryC: true,
		model.CategoryD: true,
	}
	for pct := 0.0; pct <= 30; pct += 1.5 {
		for el := -30.0; el <= 50; el += 7.3 {
			got := Classify(series("P", [2]float64{pct, el}), 10, 12, 15)
			assert.True(t, valid[got.Category], "pct=%v el=%v -> %v", pct, el, got.Category)
		}
	}
}

func TestClassify_SingleObservationRunsFullSequence(t *testing.T) {
	got := Classify(series("P", [2]float64{7, 6.0}), 10, 12, 15)
	assert.Equal(t, model.CategoryB, got.Category)
}
