// Package engine orchestrates one full analysis pass: ingest the raw
// input, classify every product, and compose the report and chart.
package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/kfujino/elastilens/internal/chart"
	"github.com/kfujino/elastilens/internal/ingest"
	"github.com/kfujino/elastilens/internal/model"
	"github.com/kfujino/elastilens/internal/report"
)

// Input is everything one analysis pass consumes. Data holds the raw
// observation CSV so a session can re-run the pass with new thresholds.
type Input struct {
	Data       []byte
	Names      string
	Thresholds model.ThresholdConfig
}

// Result is the output of one successful analysis pass.
type Result struct {
	Report report.Report
	Chart  chart.Spec
}

// Engine runs analysis passes. It holds no state between runs; every pass
// recomputes everything from the input.
type Engine struct {
	progress report.ProgressFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithProgress installs a per-product progress callback.
func WithProgress(fn report.ProgressFunc) Option {
	return func(e *Engine) { e.progress = fn }
}

// New creates an analysis engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes one pass over the input. Any failure, whether in parsing
// or generation, surfaces as a single wrapped error; partial results are
// never returned.
func (e *Engine) Run(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	observations, err := ingest.ParseObservations(bytes.NewReader(in.Data))
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse observations: %w", err)
	}

	names := ingest.ParseNameMapping(in.Names)

	rep := report.Build(observations, names, in.Thresholds, e.progress)
	spec := chart.Compose(rep.Series, in.Thresholds)

	slog.Info("Analysis pass complete",
		"observations", len(observations),
		"products", len(rep.Rows))

	return Result{Report: rep, Chart: spec}, nil
}
