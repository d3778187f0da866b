package model

// ThresholdConfig holds the numeric parameters that govern classification
// and the chart's visual zones. No relationship between the values is
// enforced; the caller is responsible for sane inputs.
type ThresholdConfig struct {
	// High is the elasticity above which a product is considered to
	// respond strongly to discounting.
	High float64
	// Low is the elasticity below which discounting is considered
	// counterproductive.
	Low float64
	// LightDiscountMax is the upper bound (percent) of the light
	// discount band shown in configuration.
	LightDiscountMax float64
	// DeepDiscountMin is the lower bound (percent) of the deep
	// discount band shown in configuration.
	DeepDiscountMin float64
}

// DefaultThresholds returns the default configuration.
func DefaultThresholds() ThresholdConfig {
	return ThresholdConfig{
		High:             10.0,
		Low:              0.0,
		LightDiscountMax: 10,
		DeepDiscountMin:  20,
	}
}

// NameMapping maps a product ID to a display name. Products absent from
// the mapping display their raw ID.
type NameMapping map[string]string

// DisplayName resolves the display name for a product, falling back to
// the raw ID when no mapping entry exists.
func (m NameMapping) DisplayName(productID string) string {
	if name, ok := m[productID]; ok && name != "" {
		return name
	}
	return productID
}
