// Package elmat: read-side views and search.
// Every slice returned here is an independent copy; callers may mutate
// it freely without disturbing the matrix.

package elmat

import "slices"

// Row returns a copy of the row at index y, or ErrOutOfRange.
// Complexity: O(x).
func (m *Matrix[T]) Row(y int) ([]Cell[T], error) {
	if err := checkIndex(ctxRow, y, m.rows()); err != nil {
		return nil, err
	}
	row := make([]Cell[T], len(m.cols))
	for x := range m.cols {
		row[x] = m.cols[x][y]
	}

	return row, nil
}

// FirstRow returns a copy of row 0; ErrOutOfRange on an empty matrix.
func (m *Matrix[T]) FirstRow() ([]Cell[T], error) {
	return m.Row(0)
}

// LastRow returns a copy of the bottom row; ErrOutOfRange on an empty
// matrix.
func (m *Matrix[T]) LastRow() ([]Cell[T], error) {
	return m.Row(m.rows() - 1)
}

// Column returns a copy of the column at index x, or ErrOutOfRange.
// Complexity: O(y).
func (m *Matrix[T]) Column(x int) ([]Cell[T], error) {
	if err := checkIndex(ctxColumn, x, len(m.cols)); err != nil {
		return nil, err
	}

	return slices.Clone(m.cols[x]), nil
}

// FirstColumn returns a copy of column 0; ErrOutOfRange on an empty
// matrix.
func (m *Matrix[T]) FirstColumn() ([]Cell[T], error) {
	return m.Column(0)
}

// LastColumn returns a copy of the rightmost column; ErrOutOfRange on
// an empty matrix.
func (m *Matrix[T]) LastColumn() ([]Cell[T], error) {
	return m.Column(len(m.cols) - 1)
}

// AsRows returns the whole matrix as a row-major slice of rows. The
// result is empty (nil) for the empty matrix.
// Complexity: O(x*y).
func (m *Matrix[T]) AsRows() [][]Cell[T] {
	if len(m.cols) == 0 {
		return nil
	}
	rows := make([][]Cell[T], m.rows())
	for y := range rows {
		rows[y] = make([]Cell[T], len(m.cols))
		for x := range m.cols {
			rows[y][x] = m.cols[x][y]
		}
	}

	return rows
}

// AsColumns returns the whole matrix as a column-major slice of
// columns. The result is empty (nil) for the empty matrix.
// Complexity: O(x*y).
func (m *Matrix[T]) AsColumns() [][]Cell[T] {
	if len(m.cols) == 0 {
		return nil
	}
	cols := make([][]Cell[T], len(m.cols))
	for x := range m.cols {
		cols[x] = slices.Clone(m.cols[x])
	}

	return cols
}

// IndexOf returns the coordinates of the first present cell holding v,
// scanning column-major (column 0 top to bottom, then column 1, ...),
// and whether such a cell exists.
// Complexity: O(x*y).
func (m *Matrix[T]) IndexOf(v T) (Coordinates, bool) {
	want := Some(v)
	for x := range m.cols {
		for y := range m.cols[x] {
			if m.cols[x][y] == want {
				return Coordinates{X: x, Y: y}, true
			}
		}
	}

	return Coordinates{}, false
}

// LastIndexOf returns the coordinates of the last present cell holding
// v in column-major order, and whether such a cell exists.
// Complexity: O(x*y).
func (m *Matrix[T]) LastIndexOf(v T) (Coordinates, bool) {
	want := Some(v)
	for x := len(m.cols) - 1; x >= 0; x-- {
		for y := len(m.cols[x]) - 1; y >= 0; y-- {
			if m.cols[x][y] == want {
				return Coordinates{X: x, Y: y}, true
			}
		}
	}

	return Coordinates{}, false
}

// Contains reports whether any present cell holds v.
// Complexity: O(x*y).
func (m *Matrix[T]) Contains(v T) bool {
	_, ok := m.IndexOf(v)

	return ok
}

// ColsRange returns the valid column index range [0, Cols()).
func (m *Matrix[T]) ColsRange() Range {
	return Range{From: 0, To: len(m.cols)}
}

// RowsRange returns the valid row index range [0, Rows()).
func (m *Matrix[T]) RowsRange() Range {
	return Range{From: 0, To: m.rows()}
}

// Bounds returns the whole matrix extent as a Block from (0,0) to
// (Cols(),Rows()), exclusive.
func (m *Matrix[T]) Bounds() Block {
	return Block{To: Coordinates{X: len(m.cols), Y: m.rows()}}
}
