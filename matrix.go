// Package elmat: storage core.
// The grid is an owned arena of column slices indexed by x; row views
// are derived on demand. Rectangularity (all columns share one length)
// and the no-half-empty rule (cols == 0 iff rows == 0) hold after every
// exported operation.

package elmat

import "slices"

// Matrix is an elastic two-dimensional container of Cell[T] values.
// It grows and shrinks through the row/column mutators; reads never
// resize it. The zero value is ready to use and empty, as is New.
//
// The matrix is single-writer: no internal synchronization exists, and
// concurrent mutation is undefined behavior by contract.
type Matrix[T comparable] struct {
	cols [][]Cell[T] // column-major arena; invariant: equal column lengths
}

// New returns an empty matrix of size (0,0).
func New[T comparable]() *Matrix[T] {
	return &Matrix[T]{}
}

// NewSized returns a matrix of x columns and y rows, every cell absent.
// A dimension may be zero only together with the other one; negative
// dimensions and half-empty sizes return ErrOutOfRange.
// Complexity: O(x*y).
func NewSized[T comparable](x, y int) (*Matrix[T], error) {
	if x < 0 || y < 0 || (x == 0) != (y == 0) {
		return nil, coordErrorf(ctxNewSized, x, y)
	}
	m := New[T]()
	for i := 0; i < x; i++ {
		m.cols = append(m.cols, make([]Cell[T], y))
	}

	return m, nil
}

// FromRows returns a matrix holding the given rows in order. A
// zero-length row returns ErrOutOfRange; rows shorter than the widest
// one are padded with absent cells, longer ones stretch the matrix,
// exactly as successive AddRow calls would.
// Complexity: O(x*y).
func FromRows[T comparable](rows [][]T) (*Matrix[T], error) {
	m := New[T]()
	for i, row := range rows {
		if len(row) == 0 {
			return nil, indexErrorf(ctxFromRows, i, len(rows))
		}
		m.AddRow(row...)
	}

	return m, nil
}

// rows returns the shared column length; 0 for the empty matrix.
func (m *Matrix[T]) rows() int {
	if len(m.cols) == 0 {
		return 0
	}

	return len(m.cols[0])
}

// IsEmpty reports whether the matrix size is (0,0).
// Complexity: O(1).
func (m *Matrix[T]) IsEmpty() bool { return len(m.cols) == 0 }

// Cols returns the column count. Absent cells, including whole columns
// of absent cells, are counted.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return len(m.cols) }

// Rows returns the row count. A zero value always means the column
// count is also zero.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows() }

// Size returns the matrix size, where X is the column count and Y the
// row count.
// Complexity: O(1).
func (m *Matrix[T]) Size() Coordinates {
	return Coordinates{X: len(m.cols), Y: m.rows()}
}

// At returns the cell at (x,y), or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(x, y int) (Cell[T], error) {
	if err := m.checkCell(ctxAt, x, y); err != nil {
		return Cell[T]{}, err
	}

	return m.cols[x][y], nil
}

// Set stores a present value at (x,y) and returns the replaced cell,
// or ErrOutOfRange. Writes never grow the matrix; growth happens only
// through the row/column mutators.
// Complexity: O(1).
func (m *Matrix[T]) Set(x, y int, v T) (Cell[T], error) {
	return m.put(ctxSet, x, y, Some(v))
}

// Unset makes the cell at (x,y) absent and returns the replaced cell,
// or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Unset(x, y int) (Cell[T], error) {
	return m.put(ctxUnset, x, y, None[T]())
}

// put is the single write path behind Set and Unset.
func (m *Matrix[T]) put(op string, x, y int, c Cell[T]) (Cell[T], error) {
	if err := m.checkCell(op, x, y); err != nil {
		return Cell[T]{}, err
	}
	prev := m.cols[x][y]
	m.cols[x][y] = c

	return prev, nil
}

// Clear discards all cells and shrinks the matrix to (0,0).
// Complexity: O(1).
func (m *Matrix[T]) Clear() { m.cols = nil }

// Clone returns a deep copy; mutating the copy never affects the
// original.
// Complexity: O(x*y).
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := &Matrix[T]{cols: make([][]Cell[T], len(m.cols))}
	for x, col := range m.cols {
		cp.cols[x] = slices.Clone(col)
	}

	return cp
}

// Equals reports structural equality: equal size and, cell for cell,
// equal content (absent equals absent). A nil other is never equal.
// Complexity: O(x*y).
func (m *Matrix[T]) Equals(other *Matrix[T]) bool {
	if m == other {
		return true
	}
	if other == nil {
		return false
	}
	if len(m.cols) != len(other.cols) || m.rows() != other.rows() {
		return false
	}
	for x := range m.cols {
		if !slices.Equal(m.cols[x], other.cols[x]) {
			return false
		}
	}

	return true
}

// Do visits every cell in column-major order (column 0 top to bottom,
// then column 1, ...) and calls fn; visiting stops early when fn
// returns false. Read-only with respect to the callback.
// Complexity: O(x*y), no allocations.
func (m *Matrix[T]) Do(fn func(x, y int, c Cell[T]) bool) {
	var x, y int
	for x = 0; x < len(m.cols); x++ {
		for y = 0; y < len(m.cols[x]); y++ {
			if !fn(x, y, m.cols[x][y]) {
				return
			}
		}
	}
}
