// Package elmat_test contains unit tests for text rendering:
// default alignment, custom delimiters, absent markers and
// trailing-whitespace trimming.
package elmat_test

import (
	"testing"

	"github.com/katalvlaran/elmat"
	"github.com/stretchr/testify/require"
)

// TestStringDefaults renders with the default space/newline/padded
// configuration.
func TestStringDefaults(t *testing.T) {
	m, err := elmat.FromRows([][]string{{"a", "bb"}, {"ccc", "d"}})
	require.NoError(t, err)

	require.Equal(t, "a   bb\nccc d", m.String()) // column 0 padded to width 3
}

// TestStringTrimsTrailingAbsents ensures trailing absent cells vanish
// under the default blank marker.
func TestStringTrimsTrailingAbsents(t *testing.T) {
	m, err := elmat.FromRows([][]string{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)
	m.AddColumn() // trailing absent column
	m.AddRow()    // trailing absent row

	require.Equal(t, "a b\nc d", m.String()) // no trailing spaces, no trailing blank line
}

// TestFormatCompact renders with custom delimiters, an explicit absent
// marker and no padding.
func TestFormatCompact(t *testing.T) {
	m, err := elmat.FromRows([][]string{{"a", "b"}, {"c"}})
	require.NoError(t, err)

	got := m.Format(
		elmat.WithCellDelimiter(","),
		elmat.WithRowDelimiter("|"),
		elmat.WithAbsentMarker("null"),
		elmat.WithoutPadding(),
	)
	require.Equal(t, "a,b|c,null", got) // absent cell spelled out
}

// TestFormatPaddingAlignment verifies per-column width tracking with
// mixed value widths.
func TestFormatPaddingAlignment(t *testing.T) {
	m, err := elmat.FromRows([][]int{{1, 200, 3}, {40, 5, 600}})
	require.NoError(t, err)

	got := m.Format(elmat.WithPadding()) // defaults plus explicit padding
	require.Equal(t, "1  200 3\n40 5   600", got)
}

// TestFormatAbsentMarkerWidth counts the marker itself toward column
// width when padding.
func TestFormatAbsentMarkerWidth(t *testing.T) {
	m, err := elmat.FromRows([][]string{{"a", "b"}})
	require.NoError(t, err)
	m.AddRow("long") // second row pads column 1 with an absent cell

	got := m.Format(elmat.WithAbsentMarker("-"))
	require.Equal(t, "a    b\nlong -", got) // marker participates in alignment
}

// TestFormatEmpty renders the empty matrix as the empty string under
// any options.
func TestFormatEmpty(t *testing.T) {
	m := elmat.New[string]()
	require.Equal(t, "", m.String())
	require.Equal(t, "", m.Format(elmat.WithAbsentMarker("null"), elmat.WithRowDelimiter("|")))
}

// TestFormatNonStringValues renders arbitrary value types through the
// default verb.
func TestFormatNonStringValues(t *testing.T) {
	m, err := elmat.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "1,2|3,4", compact(m)) // integers render like Print would
}
