// pkg/features/augmenter.go

// Package features derives new columns from a cleaned housing table and
// rescales every numeric column to zero mean and unit variance. It is the
// second stage of the preparation pipeline and expects missing values to
// already be normalized, though each step is independently gated on its
// input columns.
package features

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kcdata/housing-prep/pkg/frame"
	"github.com/kcdata/housing-prep/pkg/model"
)

// Config provides configuration options for feature augmentation
type Config struct {
	// Reference year used for house age when the table has no yr_sold column
	ReferenceYear int
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		ReferenceYear: 2025,
	}
}

// Augmenter derives features and standardizes numeric columns
type Augmenter struct {
	logger *zap.Logger
	config Config
}

// New creates an Augmenter with default configuration
func New(logger *zap.Logger) (*Augmenter, error) {
	return NewWithConfig(logger, DefaultConfig())
}

// NewWithConfig creates an Augmenter with custom configuration
func NewWithConfig(logger *zap.Logger, config Config) (*Augmenter, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if config.ReferenceYear <= 0 {
		return nil, errors.New("reference year must be positive")
	}
	return &Augmenter{logger: logger, config: config}, nil
}

// Name identifies the augmentation stage inside a pipeline
func (a *Augmenter) Name() string { return "feature_engineering" }

// Apply runs the augmentation stage as a pipeline transform
func (a *Augmenter) Apply(_ context.Context, f *frame.Frame) (*frame.Frame, error) {
	return a.Augment(f)
}

// Augment returns an augmented copy of the input table. The input is never
// mutated. Steps run in fixed order:
//
//  1. Overwrite sqft_basement with sqft_living - sqft_above when both exist.
//  2. Add house_age: yr_sold - yr_built, falling back to the configured
//     reference year minus yr_built when the table has no yr_sold column.
//  3. Add was_renovated: 1 where yr_renovated > 0, else 0.
//  4. Standardize every numeric column in place (z-score). The fitted
//     parameters are not retained; each call refits from its input rows.
//
// Steps with absent or non-numeric input columns are skipped, not failed.
func (a *Augmenter) Augment(f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, errors.New("input frame cannot be nil")
	}

	out := f.Copy()

	if err := deriveBasement(out); err != nil {
		return nil, err
	}
	if err := a.deriveHouseAge(out); err != nil {
		return nil, err
	}
	if err := deriveRenovationFlag(out); err != nil {
		return nil, err
	}
	scaled, err := standardizeNumeric(out)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Augmented table",
		zap.Int("rows", out.NumRows()),
		zap.Int("columns", out.NumColumns()),
		zap.Int("standardizedColumns", scaled))

	return out, nil
}

// deriveBasement recomputes sqft_basement as sqft_living - sqft_above,
// superseding any prior basement values.
func deriveBasement(f *frame.Frame) error {
	living, okLiving := f.Column(model.ColSqftLiving)
	above, okAbove := f.Column(model.ColSqftAbove)
	if !okLiving || !okAbove || !living.IsNumeric() || !above.IsNumeric() {
		return nil
	}
	return f.SetColumn(model.ColSqftBasement, subtractColumns(living, above))
}

// deriveHouseAge computes house_age from the sale and build years, falling
// back to the configured reference year when the sale year column is absent.
// The table is left untouched when it has no yr_built column.
func (a *Augmenter) deriveHouseAge(f *frame.Frame) error {
	built, okBuilt := f.Column(model.ColYrBuilt)
	if !okBuilt || !built.IsNumeric() {
		return nil
	}

	if sold, okSold := f.Column(model.ColYrSold); okSold && sold.IsNumeric() {
		return f.SetColumn(model.ColHouseAge, subtractColumns(sold, built))
	}

	n := built.Len()
	ages := make([]int64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if v, ok := built.Float(i); ok {
			ages[i] = int64(a.config.ReferenceYear) - int64(v)
			valid[i] = true
		}
	}
	return f.SetColumn(model.ColHouseAge, frame.NullableInts(ages, valid))
}

// deriveRenovationFlag encodes yr_renovated as a binary was_renovated
// indicator. A missing renovation year counts as not renovated, matching the
// dataset's zero sentinel for "never renovated".
func deriveRenovationFlag(f *frame.Frame) error {
	renovated, ok := f.Column(model.ColYrRenovated)
	if !ok || !renovated.IsNumeric() {
		return nil
	}

	n := renovated.Len()
	flags := make([]int64, n)
	for i := 0; i < n; i++ {
		if v, present := renovated.Float(i); present && v > 0 {
			flags[i] = 1
		}
	}
	return f.SetColumn(model.ColWasRenovated, frame.Ints(flags))
}

// subtractColumns computes a-b per row. The result is an int series when both
// inputs are int series, a float series otherwise; rows where either input is
// missing stay missing.
func subtractColumns(a, b *frame.Series) *frame.Series {
	n := a.Len()
	valid := make([]bool, n)

	if a.Kind() == frame.KindInt && b.Kind() == frame.KindInt {
		vals := make([]int64, n)
		for i := 0; i < n; i++ {
			av, okA := a.Int(i)
			bv, okB := b.Int(i)
			if okA && okB {
				vals[i] = av - bv
				valid[i] = true
			}
		}
		return frame.NullableInts(vals, valid)
	}

	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		av, okA := a.Float(i)
		bv, okB := b.Float(i)
		if okA && okB {
			vals[i] = av - bv
			valid[i] = true
		}
	}
	return frame.NullableFloats(vals, valid)
}
