package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithMaxWidth sets the widest framebuffer the window will report to resize
// callbacks. Larger platform sizes are clamped, capping the pixel count the
// rasterizer has to fill.
//
// Parameters:
//   - maxWidth: maximum reported width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxWidth(maxWidth int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxWidth = maxWidth
	}
}

// WithMaxHeight sets the tallest framebuffer the window will report to resize
// callbacks. Larger platform sizes are clamped, capping the pixel count the
// rasterizer has to fill.
//
// Parameters:
//   - maxHeight: maximum reported height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxHeight(maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxHeight = maxHeight
	}
}

// WithMinWidth sets the narrowest framebuffer the window will report to
// resize callbacks; smaller platform sizes are clamped up.
//
// Parameters:
//   - minWidth: minimum reported width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinWidth(minWidth int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = minWidth
	}
}

// WithMinHeight sets the shortest framebuffer the window will report to
// resize callbacks; smaller platform sizes are clamped up.
//
// Parameters:
//   - minHeight: minimum reported height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinHeight(minHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minHeight = minHeight
	}
}

// WithWidth sets the requested window width. The platform may hand back a
// different framebuffer size (high-DPI scaling); the stored width is the
// framebuffer's, clamped to the min/max bounds.
//
// Parameters:
//   - width: requested width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the requested window height. The platform may hand back a
// different framebuffer size (high-DPI scaling); the stored height is the
// framebuffer's, clamped to the min/max bounds.
//
// Parameters:
//   - height: requested height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithResizable controls whether the user can resize the window. Resizing a
// window resizes the renderer's framebuffer with it, which re-allocates the
// color and depth planes; fixed-size windows avoid that entirely.
// Defaults to true.
//
// Parameters:
//   - resizable: whether the window may be resized by the user
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithResizable(resizable bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.resizable = resizable
	}
}
