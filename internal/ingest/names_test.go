package ingest

import (
	"testing"

	"github.com/kfujino/elastilens/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParseNameMapping(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.NameMapping
	}{
		{
			name:  "tab separated",
			input: "B0XXXXXXXX\tWidget A\nB0YYYYYYYY\tWidget B",
			want:  model.NameMapping{"B0XXXXXXXX": "Widget A", "B0YYYYYYYY": "Widget B"},
		},
		{
			name:  "comma separated",
			input: "B0XXXXXXXX,Widget A",
			want:  model.NameMapping{"B0XXXXXXXX": "Widget A"},
		},
		{
			name:  "first separator wins, rest stays in the name",
			input: "B0XXXXXXXX,Widget, Deluxe Edition",
			want:  model.NameMapping{"B0XXXXXXXX": "Widget, Deluxe Edition"},
		},
		{
			name:  "tab preferred over comma",
			input: "B0XXXXXXXX\tWidget, Deluxe",
			want:  model.NameMapping{"B0XXXXXXXX": "Widget, Deluxe"},
		},
		{
			name:  "malformed lines skipped",
			input: "no separator here\nB0XXXXXXXX\tWidget A",
			want:  model.NameMapping{"B0XXXXXXXX": "Widget A"},
		},
		{
			name:  "whitespace trimmed",
			input: "  B0XXXXXXXX \t  Widget A  ",
			want:  model.NameMapping{"B0XXXXXXXX": "Widget A"},
		},
		{
			name:  "empty input",
			input: "",
			want:  model.NameMapping{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNameMapping(tt.input))
		})
	}
}

func TestNameMapping_DisplayName(t *testing.T) {
	m := model.NameMapping{"B0A": "Widget"}

	assert.Equal(t, "Widget", m.DisplayName("B0A"))
	assert.Equal(t, "B0B", m.DisplayName("B0B"))
}
