package rasterizer

// RasterizerBuilderOption is a function that modifies the rasterizerImpl
// struct, the options are used to set fields in the rasterizerImpl struct
// when creating a new Rasterizer.
type RasterizerBuilderOption func(*rasterizerImpl)

// WithWorkers sets the number of pool workers used for parallel fragment
// fill. Values below one are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - RasterizerBuilderOption: the option function
func WithWorkers(n int) RasterizerBuilderOption {
	return func(r *rasterizerImpl) {
		if n < 1 {
			return
		}
		r.workers = n
	}
}
