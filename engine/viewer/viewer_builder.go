package viewer

// runConfig collects the Run settings.
type runConfig struct {
	title string
	scale int
	tps   int
}

// RunOption is a functional option for a Run call.
type RunOption func(*runConfig)

// WithTitle sets the window title. Default is the scene's name.
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - RunOption: option function to apply
func WithTitle(title string) RunOption {
	return func(c *runConfig) {
		c.title = title
	}
}

// WithWindowScale multiplies the window size relative to the framebuffer.
// The logical resolution stays at the framebuffer size. Default is 1.
//
// Parameters:
//   - scale: the integer window scale (minimum 1)
//
// Returns:
//   - RunOption: option function to apply
func WithWindowScale(scale int) RunOption {
	return func(c *runConfig) {
		if scale > 0 {
			c.scale = scale
		}
	}
}

// WithTPS sets the simulation rate in ticks per second. Default is 60.
//
// Parameters:
//   - tps: ticks per second (minimum 1)
//
// Returns:
//   - RunOption: option function to apply
func WithTPS(tps int) RunOption {
	return func(c *runConfig) {
		if tps > 0 {
			c.tps = tps
		}
	}
}
