package elmat

// Cell is a single matrix slot: either a present value or the absent
// marker. The zero Cell is absent, so freshly grown regions of the grid
// need no initialization. Cells are plain values; two cells compare
// equal when both are absent or both hold the same value.
type Cell[T comparable] struct {
	value   T
	present bool
}

// Some returns a present cell holding v.
func Some[T comparable](v T) Cell[T] {
	return Cell[T]{value: v, present: true}
}

// None returns an absent cell.
func None[T comparable]() Cell[T] {
	return Cell[T]{}
}

// Present reports whether the cell holds a value.
// Complexity: O(1).
func (c Cell[T]) Present() bool { return c.present }

// Get returns the contained value and whether it is present.
// Complexity: O(1).
func (c Cell[T]) Get() (T, bool) { return c.value, c.present }

// Or returns the contained value, or fallback when the cell is absent.
// Complexity: O(1).
func (c Cell[T]) Or(fallback T) T {
	if c.present {
		return c.value
	}

	return fallback
}
