package ingest

import (
	"strings"

	"github.com/kfujino/elastilens/internal/model"
)

// ParseNameMapping parses pasted "product_id<TAB>name" lines into a name
// mapping. Comma-separated lines are accepted too; the first separator on
// each line splits it into exactly two parts. Lines without a separator
// are skipped. Malformed input never fails, it just maps fewer products.
func ParseNameMapping(input string) model.NameMapping {
	mapping := make(model.NameMapping)

	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var parts []string
		switch {
		case strings.Contains(line, "\t"):
			parts = strings.SplitN(line, "\t", 2)
		case strings.Contains(line, ","):
			parts = strings.SplitN(line, ",", 2)
		default:
			continue
		}

		id := strings.TrimSpace(parts[0])
		name := strings.TrimSpace(parts[1])
		if id != "" {
			mapping[id] = name
		}
	}

	return mapping
}
