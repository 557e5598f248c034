package termview

// ViewerBuilderOption is a functional option for configuring a Viewer.
// Use the With* functions to create options.
type ViewerBuilderOption func(v *viewer)

// WithSize overrides the detected cell grid dimensions.
//
// Parameters:
//   - columns: grid width in character cells (minimum 1)
//   - rows: grid height in character cells (minimum 1)
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithSize(columns, rows int) ViewerBuilderOption {
	return func(v *viewer) {
		if columns > 0 {
			v.columns = columns
		}
		if rows > 0 {
			v.rows = rows
		}
	}
}

// WithCursorHome enables or disables the cursor-home sequence emitted before
// each frame. On by default for terminal writers so frames animate in place;
// off for plain writers.
//
// Parameters:
//   - enabled: whether to emit the cursor-home sequence
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithCursorHome(enabled bool) ViewerBuilderOption {
	return func(v *viewer) {
		v.cursorHome = enabled
	}
}
