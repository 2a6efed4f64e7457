// Package elmat: rendering options.
// Functional options for Format; String() uses the defaults.

package elmat

const (
	// DefaultCellDelimiter separates cells within a rendered row.
	DefaultCellDelimiter = " "
	// DefaultRowDelimiter separates rendered rows.
	DefaultRowDelimiter = "\n"
	// DefaultAbsentMarker renders an absent cell.
	DefaultAbsentMarker = ""
	// DefaultPadding aligns columns by right-padding cells with spaces.
	DefaultPadding = true
)

// formatOptions is the resolved rendering configuration.
type formatOptions struct {
	cellDelimiter string
	rowDelimiter  string
	absentMarker  string
	padding       bool
}

// FormatOption adjusts one rendering parameter of Format.
type FormatOption func(*formatOptions)

// WithCellDelimiter sets the string placed between cells of a row.
func WithCellDelimiter(d string) FormatOption {
	return func(o *formatOptions) { o.cellDelimiter = d }
}

// WithRowDelimiter sets the string placed between rendered rows.
func WithRowDelimiter(d string) FormatOption {
	return func(o *formatOptions) { o.rowDelimiter = d }
}

// WithAbsentMarker sets the text rendered for an absent cell.
func WithAbsentMarker(s string) FormatOption {
	return func(o *formatOptions) { o.absentMarker = s }
}

// WithPadding right-pads every cell with spaces to its column's widest
// rendering, aligning the output into a table.
func WithPadding() FormatOption {
	return func(o *formatOptions) { o.padding = true }
}

// WithoutPadding renders cells at their natural width.
func WithoutPadding() FormatOption {
	return func(o *formatOptions) { o.padding = false }
}

// gatherFormatOptions applies opts over the defaults.
func gatherFormatOptions(opts ...FormatOption) formatOptions {
	o := formatOptions{
		cellDelimiter: DefaultCellDelimiter,
		rowDelimiter:  DefaultRowDelimiter,
		absentMarker:  DefaultAbsentMarker,
		padding:       DefaultPadding,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
