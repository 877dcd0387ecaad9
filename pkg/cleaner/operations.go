// pkg/cleaner/operations.go
package cleaner

import (
	"fmt"

	"github.com/kcdata/housing-prep/pkg/frame"
	"github.com/kcdata/housing-prep/pkg/model"
)

// dropBedroomOutliers removes every row whose bedrooms value equals the known
// data-entry outlier. This is an exact-value rule, not a range filter: the
// dataset contains a single listing mis-keyed as 33 bedrooms. Rows with a
// missing bedrooms value are kept.
func dropBedroomOutliers(f *frame.Frame, ops []model.CleaningOperation) (*frame.Frame, []model.CleaningOperation) {
	bedrooms, ok := f.Column(model.ColBedrooms)
	if !ok {
		return f, ops
	}

	index := f.Index()
	filtered := f.Filter(func(row int) bool {
		v, present := bedrooms.Float(row)
		drop := present && v == model.BedroomsOutlier
		if drop {
			ops = append(ops, model.CleaningOperation{
				Column:        model.ColBedrooms,
				RowIndex:      index[row],
				OriginalValue: bedrooms.Value(row),
				Operation:     model.OpRowDrop,
				Reason:        model.ReasonBedroomsOutlier,
			})
		}
		return !drop
	})
	return filtered, ops
}

// normalizePlaceholders replaces every occurrence of the "?" placeholder with
// the missing-value marker, regardless of column. Only string columns can
// carry the literal.
func normalizePlaceholders(f *frame.Frame, ops []model.CleaningOperation) []model.CleaningOperation {
	index := f.Index()
	for _, name := range f.ColumnNames() {
		col, _ := f.Column(name)
		for _, row := range col.ReplaceWithMissing(model.Placeholder) {
			ops = append(ops, model.CleaningOperation{
				Column:        name,
				RowIndex:      index[row],
				OriginalValue: model.Placeholder,
				NewValue:      nil,
				Operation:     model.OpPlaceholderReplacement,
				Reason:        model.ReasonUnknownSentinel,
			})
		}
	}
	return ops
}

// coerceBasement converts the sqft_basement column to float in place. Must
// run after placeholder normalization: a lingering "?" would be a parse
// failure, and any other non-numeric value is surfaced as a hard error.
func coerceBasement(f *frame.Frame, ops []model.CleaningOperation) ([]model.CleaningOperation, error) {
	col, ok := f.Column(model.ColSqftBasement)
	if !ok || col.Kind() == frame.KindFloat {
		return ops, nil
	}

	coerced, err := col.AsFloat()
	if err != nil {
		return nil, fmt.Errorf("failed to coerce %s to float: %w", model.ColSqftBasement, err)
	}

	index := f.Index()
	for row := 0; row < col.Len(); row++ {
		if col.IsMissing(row) {
			continue
		}
		newValue, _ := coerced.Float(row)
		ops = append(ops, model.CleaningOperation{
			Column:        model.ColSqftBasement,
			RowIndex:      index[row],
			OriginalValue: col.Value(row),
			NewValue:      newValue,
			Operation:     model.OpTypeStandardization,
			Reason:        model.ReasonConvertedToFloat,
		})
	}

	if err := f.SetColumn(model.ColSqftBasement, coerced); err != nil {
		return nil, err
	}
	return ops, nil
}

// dropMissingCritical removes rows missing a price or sqft_living value.
// Each check applies only when its column exists.
func dropMissingCritical(f *frame.Frame, ops []model.CleaningOperation) (*frame.Frame, []model.CleaningOperation) {
	critical := make([]string, 0, 2)
	for _, name := range []string{model.ColPrice, model.ColSqftLiving} {
		if f.HasColumn(name) {
			critical = append(critical, name)
		}
	}
	if len(critical) == 0 {
		return f, ops
	}

	index := f.Index()
	filtered := f.Filter(func(row int) bool {
		for _, name := range critical {
			col, _ := f.Column(name)
			if col.IsMissing(row) {
				ops = append(ops, model.CleaningOperation{
					Column:    name,
					RowIndex:  index[row],
					Operation: model.OpRowDrop,
					Reason:    model.ReasonMissingCritical,
				})
				return false
			}
		}
		return true
	})
	return filtered, ops
}
