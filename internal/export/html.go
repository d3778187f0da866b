package export

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/kfujino/elastilens/internal/chart"
)

const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

var chartTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}"></script>
</head>
<body>
<div id="chart" style="height:600px;"></div>
<script>
Plotly.newPlot("chart", {{.Traces}}, {{.Layout}}, {responsive: true});
</script>
</body>
</html>
`))

type templateData struct {
	Title     string
	PlotlyURL string
	Traces    template.JS
	Layout    template.JS
}

// WriteChartHTML renders the chart spec as a self-contained interactive
// HTML page.
func WriteChartHTML(w io.Writer, spec chart.Spec) error {
	traces, err := json.Marshal(tracesFor(spec))
	if err != nil {
		return fmt.Errorf("failed to encode chart traces: %w", err)
	}
	layout, err := json.Marshal(layoutFor(spec))
	if err != nil {
		return fmt.Errorf("failed to encode chart layout: %w", err)
	}

	data := templateData{
		Title:     spec.Title,
		PlotlyURL: plotlyCDN,
		Traces:    template.JS(traces),
		Layout:    template.JS(layout),
	}
	if err := chartTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render chart HTML: %w", err)
	}
	return nil
}

func tracesFor(spec chart.Spec) []map[string]any {
	traces := make([]map[string]any, 0, len(spec.Series))
	for _, s := range spec.Series {
		traces = append(traces, map[string]any{
			"x":    s.X,
			"y":    s.Y,
			"mode": "lines+markers",
			"name": s.Name,
			"line": map[string]any{
				"color": s.Color,
				"width": 2.5,
			},
			"marker":        map[string]any{"size": 8},
			"hovertemplate": "<b>" + s.Name + "</b><br>Discount: %{x:.0f}%<br>Elasticity: %{y:.1f}<extra></extra>",
		})
	}
	return traces
}

func layoutFor(spec chart.Spec) map[string]any {
	shapes := make([]map[string]any, 0, len(spec.Bands)+len(spec.Lines))
	var annotations []map[string]any

	for _, band := range spec.Bands {
		shapes = append(shapes, map[string]any{
			"type":      "rect",
			"xref":      "paper",
			"x0":        0,
			"x1":        1,
			"yref":      "y",
			"y0":        band.From,
			"y1":        band.To,
			"fillcolor": band.Color,
			"opacity":   band.Opacity,
			"layer":     "below",
			"line":      map[string]any{"width": 0},
		})
	}

	for _, line := range spec.Lines {
		shapes = append(shapes, map[string]any{
			"type": "line",
			"xref": "paper",
			"x0":   0,
			"x1":   1,
			"yref": "y",
			"y0":   line.Y,
			"y1":   line.Y,
			"line": map[string]any{
				"color": line.Color,
				"width": line.Width,
				"dash":  line.Dash,
			},
		})
		if line.Annotation != "" {
			annotations = append(annotations, map[string]any{
				"text":      line.Annotation,
				"xref":      "paper",
				"x":         1,
				"xanchor":   "right",
				"y":         line.Y,
				"yanchor":   "bottom",
				"showarrow": false,
			})
		}
	}

	return map[string]any{
		"title": map[string]any{"text": spec.Title},
		"xaxis": map[string]any{
			"title":    map[string]any{"text": spec.XAxis.Title},
			"range":    []float64{spec.XAxis.Min, spec.XAxis.Max},
			"tickvals": spec.XAxis.Ticks,
		},
		"yaxis": map[string]any{
			"title": map[string]any{"text": spec.YAxis.Title},
			"range": []float64{spec.YAxis.Min, spec.YAxis.Max},
		},
		"hovermode":   "closest",
		"shapes":      shapes,
		"annotations": annotations,
		"template":    "plotly_white",
	}
}
