package model

// Category classifies a product's discount-response shape.
type Category string

const (
	// CategoryA marks products whose demand jumps once a deep discount is reached.
	CategoryA Category = "A"
	// CategoryB marks products that already respond to a light discount.
	CategoryB Category = "B"
	// CategoryC marks products where discounting stays flat or counterproductive.
	CategoryC Category = "C"
	// CategoryD marks products with too little data to judge.
	CategoryD Category = "D"
)

// Categories lists every category in report order.
var Categories = []Category{CategoryA, CategoryB, CategoryC, CategoryD}

// Label returns the human-readable name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryA:
		return "Threshold breakthrough"
	case CategoryB:
		return "Light-discount responsive"
	case CategoryC:
		return "Low response"
	case CategoryD:
		return "Needs verification"
	}
	return "Unknown"
}

// Recommendation returns the promotional action bound to the category.
func (c Category) Recommendation() string {
	switch c {
	case CategoryA:
		return "Enter at 20% off"
	case CategoryB:
		return "5-10% off is sufficient"
	case CategoryC:
		return "Skip promotion"
	case CategoryD:
		return "Insufficient data; run a small-scale test"
	}
	return ""
}

// Color returns the chart color token bound to the category.
func (c Category) Color() string {
	switch c {
	case CategoryA:
		return "#2ca02c" // green
	case CategoryB:
		return "#1f77b4" // blue
	case CategoryC:
		return "#d62728" // red
	case CategoryD:
		return "#7f7f7f" // gray
	}
	return "#7f7f7f"
}
