// pkg/cleaner/cleaner.go

// Package cleaner removes invalid rows from a housing table and normalizes
// its missing-value representation and types. It is the first stage of the
// preparation pipeline and depends on nothing but the table itself.
package cleaner

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kcdata/housing-prep/pkg/frame"
	"github.com/kcdata/housing-prep/pkg/model"
)

// Cleaner handles row filtering and missing-value normalization
type Cleaner struct {
	logger *zap.Logger
}

// New creates a new Cleaner instance
func New(logger *zap.Logger) (*Cleaner, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Cleaner{logger: logger}, nil
}

// Name identifies the cleaning stage inside a pipeline
func (c *Cleaner) Name() string { return "cleaning" }

// Apply runs the cleaning stage as a pipeline transform
func (c *Cleaner) Apply(_ context.Context, f *frame.Frame) (*frame.Frame, error) {
	return c.Clean(f)
}

// Clean returns a cleaned copy of the input table. The input is never
// mutated. Steps run in fixed order, each gated on its column(s) existing:
//
//  1. Drop rows where bedrooms equals the known data-entry outlier (33).
//  2. Replace the "?" placeholder anywhere in the table with the missing
//     marker.
//  3. Coerce sqft_basement to float (after step 2, so only genuinely
//     non-numeric values fail).
//  4. Drop rows with a missing price or sqft_living.
//  5. Renumber the row index contiguously from zero.
func (c *Cleaner) Clean(f *frame.Frame) (*frame.Frame, error) {
	cleaned, _, err := c.CleanReport(f)
	return cleaned, err
}

// CleanReport is Clean plus the audit trail: one CleaningOperation per row
// dropped, placeholder replaced, or cell coerced.
func (c *Cleaner) CleanReport(f *frame.Frame) (*frame.Frame, []model.CleaningOperation, error) {
	if f == nil {
		return nil, nil, errors.New("input frame cannot be nil")
	}

	out := f.Copy()
	rowsIn := out.NumRows()
	var operations []model.CleaningOperation

	out, operations = dropBedroomOutliers(out, operations)
	operations = normalizePlaceholders(out, operations)

	var err error
	operations, err = coerceBasement(out, operations)
	if err != nil {
		return nil, nil, err
	}

	out, operations = dropMissingCritical(out, operations)
	out.ResetIndex()

	c.logger.Info("Cleaned table",
		zap.Int("rowsIn", rowsIn),
		zap.Int("rowsOut", out.NumRows()),
		zap.Int("operations", len(operations)))

	return out, operations, nil
}
