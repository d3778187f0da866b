package model

import "fmt"

// ClassificationResult is the outcome of classifying one product series.
// It is computed fresh per classification call and never mutated.
type ClassificationResult struct {
	Category       Category
	Label          string
	Recommendation string
	Color          string
}

// NewClassificationResult builds the result tuple for a category.
func NewClassificationResult(c Category) ClassificationResult {
	return ClassificationResult{
		Category:       c,
		Label:          c.Label(),
		Recommendation: c.Recommendation(),
		Color:          c.Color(),
	}
}

// Pattern renders the category and label as a single report string,
// e.g. "A. Threshold breakthrough".
func (r ClassificationResult) Pattern() string {
	return fmt.Sprintf("%s. %s", r.Category, r.Label)
}
