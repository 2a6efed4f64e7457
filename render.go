// Package elmat: text rendering.
// Rows render top to bottom; values render with fmt's default verb.
// Trailing whitespace is stripped from every row and from the whole
// result, so trailing absent cells vanish under the default options.

package elmat

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// String renders the matrix with the default options: cells separated
// by a single space, rows by newlines, absent cells blank, columns
// padded to equal width. The empty matrix renders as "".
func (m *Matrix[T]) String() string { return m.Format() }

// Format renders the matrix according to the given options.
// Complexity: O(x*y) plus the rendered text size.
func (m *Matrix[T]) Format(opts ...FormatOption) string {
	o := gatherFormatOptions(opts...)
	if len(m.cols) == 0 {
		return ""
	}

	// Render every cell once; track column widths for padding.
	text := make([][]string, len(m.cols))
	widths := make([]int, len(m.cols))
	for x := range m.cols {
		text[x] = make([]string, len(m.cols[x]))
		for y, c := range m.cols[x] {
			s := o.absentMarker
			if v, ok := c.Get(); ok {
				s = fmt.Sprintf("%v", v)
			}
			text[x][y] = s
			if w := utf8.RuneCountInString(s); w > widths[x] {
				widths[x] = w
			}
		}
	}

	var sb strings.Builder
	lines := make([]string, 0, m.rows())
	for y := 0; y < m.rows(); y++ {
		sb.Reset()
		for x := range m.cols {
			if x > 0 {
				sb.WriteString(o.cellDelimiter)
			}
			sb.WriteString(text[x][y])
			if o.padding && x < len(m.cols)-1 {
				sb.WriteString(strings.Repeat(" ", widths[x]-utf8.RuneCountInString(text[x][y])))
			}
		}
		lines = append(lines, strings.TrimRightFunc(sb.String(), unicode.IsSpace))
	}

	return strings.TrimRightFunc(strings.Join(lines, o.rowDelimiter), unicode.IsSpace)
}
