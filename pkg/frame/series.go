// pkg/frame/series.go
package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the value type held by a Series
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
)

// String returns a human-readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Series is a single column: a typed value sequence plus a per-cell validity
// mask. An invalid cell is the missing-value marker; the backing value at that
// position is meaningless.
type Series struct {
	kind   Kind
	ints   []int64
	floats []float64
	strs   []string
	bools  []bool
	valid  []bool
}

// Ints builds an int64 series with every cell present.
func Ints(vals []int64) *Series {
	return NullableInts(vals, nil)
}

// NullableInts builds an int64 series with the given validity mask.
// A nil mask means every cell is present.
func NullableInts(vals []int64, valid []bool) *Series {
	return &Series{
		kind:  KindInt,
		ints:  append([]int64(nil), vals...),
		valid: buildMask(len(vals), valid),
	}
}

// Floats builds a float64 series with every cell present.
func Floats(vals []float64) *Series {
	return NullableFloats(vals, nil)
}

// NullableFloats builds a float64 series with the given validity mask.
func NullableFloats(vals []float64, valid []bool) *Series {
	return &Series{
		kind:   KindFloat,
		floats: append([]float64(nil), vals...),
		valid:  buildMask(len(vals), valid),
	}
}

// Strings builds a string series with every cell present.
func Strings(vals []string) *Series {
	return NullableStrings(vals, nil)
}

// NullableStrings builds a string series with the given validity mask.
func NullableStrings(vals []string, valid []bool) *Series {
	return &Series{
		kind:  KindString,
		strs:  append([]string(nil), vals...),
		valid: buildMask(len(vals), valid),
	}
}

// Bools builds a bool series with every cell present.
func Bools(vals []bool) *Series {
	return &Series{
		kind:  KindBool,
		bools: append([]bool(nil), vals...),
		valid: buildMask(len(vals), nil),
	}
}

// buildMask copies the provided validity mask or allocates an all-valid one
func buildMask(n int, valid []bool) []bool {
	if valid == nil {
		mask := make([]bool, n)
		for i := range mask {
			mask[i] = true
		}
		return mask
	}
	if len(valid) != n {
		panic(fmt.Sprintf("frame: validity mask length %d does not match value length %d", len(valid), n))
	}
	return append([]bool(nil), valid...)
}

// Kind returns the value type of the series
func (s *Series) Kind() Kind { return s.kind }

// Len returns the number of cells
func (s *Series) Len() int { return len(s.valid) }

// IsMissing reports whether the cell at i holds the missing-value marker
func (s *Series) IsMissing(i int) bool { return !s.valid[i] }

// IsNumeric reports whether the series holds integral or floating-point values
func (s *Series) IsNumeric() bool {
	return s.kind == KindInt || s.kind == KindFloat
}

// Int returns the int64 value at i. The second return is false when the cell
// is missing or the series is not an int series.
func (s *Series) Int(i int) (int64, bool) {
	if s.kind != KindInt || !s.valid[i] {
		return 0, false
	}
	return s.ints[i], true
}

// Float returns a float64 view of the cell at i. Int cells are widened.
// The second return is false when the cell is missing or the series is
// non-numeric.
func (s *Series) Float(i int) (float64, bool) {
	if !s.valid[i] {
		return 0, false
	}
	switch s.kind {
	case KindFloat:
		return s.floats[i], true
	case KindInt:
		return float64(s.ints[i]), true
	default:
		return 0, false
	}
}

// String returns the string value at i. The second return is false when the
// cell is missing or the series is not a string series.
func (s *Series) String(i int) (string, bool) {
	if s.kind != KindString || !s.valid[i] {
		return "", false
	}
	return s.strs[i], true
}

// Bool returns the bool value at i
func (s *Series) Bool(i int) (bool, bool) {
	if s.kind != KindBool || !s.valid[i] {
		return false, false
	}
	return s.bools[i], true
}

// Value returns the cell at i as an untyped value, or nil when missing
func (s *Series) Value(i int) interface{} {
	if !s.valid[i] {
		return nil
	}
	switch s.kind {
	case KindInt:
		return s.ints[i]
	case KindFloat:
		return s.floats[i]
	case KindString:
		return s.strs[i]
	case KindBool:
		return s.bools[i]
	default:
		return nil
	}
}

// Copy returns an independent deep copy of the series
func (s *Series) Copy() *Series {
	return &Series{
		kind:   s.kind,
		ints:   append([]int64(nil), s.ints...),
		floats: append([]float64(nil), s.floats...),
		strs:   append([]string(nil), s.strs...),
		bools:  append([]bool(nil), s.bools...),
		valid:  append([]bool(nil), s.valid...),
	}
}

// take builds a new series containing only the listed rows, in order
func (s *Series) take(rows []int) *Series {
	out := &Series{kind: s.kind, valid: make([]bool, len(rows))}
	switch s.kind {
	case KindInt:
		out.ints = make([]int64, len(rows))
	case KindFloat:
		out.floats = make([]float64, len(rows))
	case KindString:
		out.strs = make([]string, len(rows))
	case KindBool:
		out.bools = make([]bool, len(rows))
	}
	for j, i := range rows {
		out.valid[j] = s.valid[i]
		switch s.kind {
		case KindInt:
			out.ints[j] = s.ints[i]
		case KindFloat:
			out.floats[j] = s.floats[i]
		case KindString:
			out.strs[j] = s.strs[i]
		case KindBool:
			out.bools[j] = s.bools[i]
		}
	}
	return out
}

// ReplaceWithMissing marks every cell equal to the given literal as missing.
// Only string series can hold the literal; other kinds are left untouched.
// Returns the positions of the cells replaced.
func (s *Series) ReplaceWithMissing(literal string) []int {
	if s.kind != KindString {
		return nil
	}
	var replaced []int
	for i, v := range s.strs {
		if s.valid[i] && v == literal {
			s.valid[i] = false
			s.strs[i] = ""
			replaced = append(replaced, i)
		}
	}
	return replaced
}

// AsFloat coerces the series to a float64 series. Int values widen, string
// values are parsed, and missing cells stay missing. A non-missing string that
// does not parse as a number is a hard error.
func (s *Series) AsFloat() (*Series, error) {
	switch s.kind {
	case KindFloat:
		return s.Copy(), nil
	case KindInt:
		floats := make([]float64, len(s.ints))
		for i, v := range s.ints {
			floats[i] = float64(v)
		}
		return NullableFloats(floats, s.valid), nil
	case KindString:
		floats := make([]float64, len(s.strs))
		for i, v := range s.strs {
			if !s.valid[i] {
				continue
			}
			parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: cannot convert %q to float: %w", i, v, err)
			}
			floats[i] = parsed
		}
		return NullableFloats(floats, s.valid), nil
	default:
		return nil, fmt.Errorf("cannot convert %s series to float", s.kind)
	}
}
