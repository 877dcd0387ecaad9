package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcdata/housing-prep/pkg/frame"
)

func TestSetColumnEstablishesIndex(t *testing.T) {
	t.Parallel()

	f := frame.New()
	require.NoError(t, f.SetColumn("price", frame.Floats([]float64{100, 200, 300})))

	assert.Equal(t, 3, f.NumRows())
	assert.Equal(t, []int{0, 1, 2}, f.Index())
}

func TestSetColumnLengthMismatch(t *testing.T) {
	t.Parallel()

	f := frame.New()
	require.NoError(t, f.SetColumn("price", frame.Floats([]float64{100, 200})))

	err := f.SetColumn("bedrooms", frame.Ints([]int64{3}))
	assert.Error(t, err)
}

func TestSetColumnRejectsBadArguments(t *testing.T) {
	t.Parallel()

	f := frame.New()
	assert.Error(t, f.SetColumn("", frame.Ints([]int64{1})))
	assert.Error(t, f.SetColumn("price", nil))
}

func TestSetColumnOverwriteKeepsOrder(t *testing.T) {
	t.Parallel()

	f := frame.New()
	require.NoError(t, f.SetColumn("a", frame.Ints([]int64{1, 2})))
	require.NoError(t, f.SetColumn("b", frame.Ints([]int64{3, 4})))
	require.NoError(t, f.SetColumn("a", frame.Floats([]float64{1.5, 2.5})))

	assert.Equal(t, []string{"a", "b"}, f.ColumnNames())
	col, ok := f.Column("a")
	require.True(t, ok)
	assert.Equal(t, frame.KindFloat, col.Kind())
}

func TestCopyIsIndependent(t *testing.T) {
	t.Parallel()

	f := frame.New()
	require.NoError(t, f.SetColumn("note", frame.Strings([]string{"?", "ok"})))

	clone := f.Copy()
	col, _ := clone.Column("note")
	col.ReplaceWithMissing("?")

	original, _ := f.Column("note")
	v, ok := original.String(0)
	require.True(t, ok)
	assert.Equal(t, "?", v)
}

func TestFilterPreservesIndexLabels(t *testing.T) {
	t.Parallel()

	f := frame.New()
	require.NoError(t, f.SetColumn("price", frame.Floats([]float64{100, 200, 300, 400})))

	kept := f.Filter(func(row int) bool { return row%2 == 1 })
	assert.Equal(t, 2, kept.NumRows())
	assert.Equal(t, []int{1, 3}, kept.Index())

	kept.ResetIndex()
	assert.Equal(t, []int{0, 1}, kept.Index())
}

func TestSeriesFloatView(t *testing.T) {
	t.Parallel()

	ints := frame.NullableInts([]int64{10, 20}, []bool{true, false})
	v, ok := ints.Float(0)
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	_, ok = ints.Float(1)
	assert.False(t, ok, "missing cell must not produce a value")

	strs := frame.Strings([]string{"x"})
	_, ok = strs.Float(0)
	assert.False(t, ok, "string series has no numeric view")
}

func TestReplaceWithMissing(t *testing.T) {
	t.Parallel()

	s := frame.Strings([]string{"?", "400", "?"})
	assert.Equal(t, []int{0, 2}, s.ReplaceWithMissing("?"))
	assert.True(t, s.IsMissing(0))
	assert.False(t, s.IsMissing(1))
	assert.True(t, s.IsMissing(2))

	// Non-string series cannot hold the literal
	assert.Nil(t, frame.Ints([]int64{1}).ReplaceWithMissing("?"))
}

func TestAsFloatParsesStrings(t *testing.T) {
	t.Parallel()

	s := frame.NullableStrings([]string{"120.5", " 80 ", ""}, []bool{true, true, false})
	coerced, err := s.AsFloat()
	require.NoError(t, err)

	assert.Equal(t, frame.KindFloat, coerced.Kind())
	v, ok := coerced.Float(0)
	require.True(t, ok)
	assert.Equal(t, 120.5, v)
	v, ok = coerced.Float(1)
	require.True(t, ok)
	assert.Equal(t, 80.0, v)
	assert.True(t, coerced.IsMissing(2))
}

func TestAsFloatFailsOnNonNumeric(t *testing.T) {
	t.Parallel()

	s := frame.Strings([]string{"120", "unknown"})
	_, err := s.AsFloat()
	assert.Error(t, err)
}

func TestAsFloatWidensInts(t *testing.T) {
	t.Parallel()

	coerced, err := frame.Ints([]int64{7}).AsFloat()
	require.NoError(t, err)
	v, ok := coerced.Float(0)
	require.True(t, ok)
	assert.Equal(t, 7.0, v)
}

func TestValueReturnsNilForMissing(t *testing.T) {
	t.Parallel()

	s := frame.NullableFloats([]float64{1.5, 0}, []bool{true, false})
	assert.Equal(t, 1.5, s.Value(0))
	assert.Nil(t, s.Value(1))
}
