// pkg/frame/frame.go

// Package frame provides the in-memory table the preparation pipeline
// operates on: ordered, named columns over a shared row count, plus an
// integer row index. Columns are typed series with per-cell missing-value
// markers, so numeric-column selection is a filter over the series kind
// rather than a schema declaration.
package frame

import (
	"errors"
	"fmt"
)

// Frame is a column-labeled, row-indexed table. The zero value is not usable;
// construct with New.
type Frame struct {
	names []string
	cols  map[string]*Series
	index []int
}

// New creates an empty frame with no columns and no rows
func New() *Frame {
	return &Frame{
		cols: make(map[string]*Series),
	}
}

// NumRows returns the number of rows
func (f *Frame) NumRows() int { return len(f.index) }

// NumColumns returns the number of columns
func (f *Frame) NumColumns() int { return len(f.names) }

// SetColumn adds or overwrites the named column. The first column added to an
// empty frame establishes the row count and a contiguous zero-based index;
// every later column must match that row count.
func (f *Frame) SetColumn(name string, s *Series) error {
	if name == "" {
		return errors.New("column name cannot be empty")
	}
	if s == nil {
		return errors.New("series cannot be nil")
	}
	if len(f.names) == 0 {
		f.index = make([]int, s.Len())
		for i := range f.index {
			f.index[i] = i
		}
	} else if s.Len() != f.NumRows() {
		return fmt.Errorf("column %s has %d rows, frame has %d", name, s.Len(), f.NumRows())
	}
	if _, exists := f.cols[name]; !exists {
		f.names = append(f.names, name)
	}
	f.cols[name] = s
	return nil
}

// Column returns the named series and whether it exists. The returned series
// is the frame's own storage; callers that need an independent copy must Copy
// the frame or the series first.
func (f *Frame) Column(name string) (*Series, bool) {
	s, ok := f.cols[name]
	return s, ok
}

// HasColumn reports whether the named column exists
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// ColumnNames returns the column names in insertion order
func (f *Frame) ColumnNames() []string {
	return append([]string(nil), f.names...)
}

// Index returns a copy of the row index
func (f *Frame) Index() []int {
	return append([]int(nil), f.index...)
}

// Copy returns an independent deep copy of the frame
func (f *Frame) Copy() *Frame {
	out := New()
	out.names = append([]string(nil), f.names...)
	out.index = append([]int(nil), f.index...)
	for name, s := range f.cols {
		out.cols[name] = s.Copy()
	}
	return out
}

// Filter returns a new frame containing only the rows for which keep returns
// true. Row order and index values are preserved; surviving rows keep their
// prior index labels until ResetIndex is called.
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	rows := make([]int, 0, f.NumRows())
	for i := 0; i < f.NumRows(); i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	out := New()
	out.names = append([]string(nil), f.names...)
	out.index = make([]int, len(rows))
	for j, i := range rows {
		out.index[j] = f.index[i]
	}
	for name, s := range f.cols {
		out.cols[name] = s.take(rows)
	}
	return out
}

// ResetIndex renumbers the row index to a contiguous zero-based sequence,
// discarding the prior labels.
func (f *Frame) ResetIndex() {
	for i := range f.index {
		f.index[i] = i
	}
}
