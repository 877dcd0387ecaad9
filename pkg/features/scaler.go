// pkg/features/scaler.go
package features

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kcdata/housing-prep/pkg/frame"
)

// standardScaler rescales one column to zero mean and unit variance. The
// scale is the population (biased) standard deviation; a zero scale is
// treated as one, so a constant column standardizes to all zeros instead of
// dividing by zero.
type standardScaler struct {
	mean  float64
	scale float64
}

// fitScaler computes the column mean and population standard deviation over
// the present cells. Missing cells are ignored during fitting.
func fitScaler(col *frame.Series) standardScaler {
	vals := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if v, ok := col.Float(i); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return standardScaler{scale: 1}
	}

	scale := stat.PopStdDev(vals, nil)
	if scale == 0 {
		scale = 1
	}
	return standardScaler{
		mean:  stat.Mean(vals, nil),
		scale: scale,
	}
}

// transform returns the standardized column as a float series. Missing cells
// propagate unchanged.
func (s standardScaler) transform(col *frame.Series) *frame.Series {
	n := col.Len()
	vals := make([]float64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		if v, ok := col.Float(i); ok {
			vals[i] = (v - s.mean) / s.scale
			valid[i] = true
		}
	}
	return frame.NullableFloats(vals, valid)
}

// standardizeNumeric overwrites every numeric column with its standardized
// values and reports how many columns were rescaled. Non-numeric columns
// pass through unchanged. Parameters are refit from scratch on every call.
func standardizeNumeric(f *frame.Frame) (int, error) {
	scaled := 0
	for _, name := range f.ColumnNames() {
		col, _ := f.Column(name)
		if !col.IsNumeric() {
			continue
		}
		scaler := fitScaler(col)
		if err := f.SetColumn(name, scaler.transform(col)); err != nil {
			return scaled, err
		}
		scaled++
	}
	return scaled, nil
}
