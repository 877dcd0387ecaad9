// pkg/pipeline/pipeline.go

// Package pipeline composes the preparation stages into a single callable
// unit: a raw housing table goes in, a cleaned and feature-augmented table
// comes out. The pipeline itself performs no transformation logic and holds
// no state between runs, so concurrent runs on different tables are safe.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kcdata/housing-prep/pkg/cleaner"
	"github.com/kcdata/housing-prep/pkg/features"
	"github.com/kcdata/housing-prep/pkg/frame"
)

// Transform is a mutation applied to a table. Each stage receives a table and
// returns an independent table, leaving its input unmodified.
type Transform interface {
	Name() string
	Apply(ctx context.Context, f *frame.Frame) (*frame.Frame, error)
}

// Pipeline runs an ordered sequence of Transforms
type Pipeline struct {
	logger *zap.Logger
	steps  []Transform
}

// New creates an empty pipeline
func New(logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Pipeline{logger: logger}, nil
}

// Add appends a step to the pipeline and returns the pipeline for chaining
func (p *Pipeline) Add(t Transform) *Pipeline {
	p.steps = append(p.steps, t)
	return p
}

// Run routes the table through every step in order. A step failure aborts the
// run; there is no partial output. The context is checked between steps only,
// since each stage is a synchronous pure function.
func (p *Pipeline) Run(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, errors.New("input frame cannot be nil")
	}

	runID := uuid.New().String()
	logger := p.logger.With(zap.String("runID", runID))
	logger.Info("Starting pipeline run",
		zap.Int("rows", f.NumRows()),
		zap.Int("steps", len(p.steps)))

	cur := f
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline canceled before step %s: %w", step.Name(), err)
		}

		start := time.Now()
		next, err := step.Apply(ctx, cur)
		if err != nil {
			logger.Error("Pipeline step failed",
				zap.String("step", step.Name()),
				zap.Error(err))
			return nil, fmt.Errorf("step %s: %w", step.Name(), err)
		}

		logger.Info("Pipeline step completed",
			zap.String("step", step.Name()),
			zap.Int("rows", next.NumRows()),
			zap.Duration("elapsed", time.Since(start)))
		cur = next
	}

	return cur, nil
}

// Build assembles the standard preparation pipeline: cleaning followed by
// feature engineering, in fixed order.
func Build(logger *zap.Logger, cfg features.Config) (*Pipeline, error) {
	p, err := New(logger)
	if err != nil {
		return nil, err
	}

	clean, err := cleaner.New(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build cleaning stage: %w", err)
	}

	augment, err := features.NewWithConfig(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build feature stage: %w", err)
	}

	return p.Add(clean).Add(augment), nil
}
