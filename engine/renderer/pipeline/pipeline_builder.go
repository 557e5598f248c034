package pipeline

import (
	"github.com/Carmen-Shannon/gloam/engine/shader"
)

// PipelineBuilderOption is a functional option applied to a pipeline during
// construction via NewPipeline, after the program defaults are set.
type PipelineBuilderOption func(*pipelineImpl)

// WithVertexFunc overrides the vertex stage program.
//
// Parameters:
//   - fn: the vertex program to run
//
// Returns:
//   - PipelineBuilderOption: a function that applies the vertex program option
func WithVertexFunc(fn shader.VertexFunc) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.vertexFunc = fn
	}
}

// WithFragmentFunc overrides the fragment stage program. Pass nil to make
// the pipeline depth-only.
//
// Parameters:
//   - fn: the fragment program to run, or nil
//
// Returns:
//   - PipelineBuilderOption: a function that applies the fragment program option
func WithFragmentFunc(fn shader.FragmentFunc) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.fragmentFunc = fn
	}
}

// WithDepthTest enables or disables the less-than depth compare.
//
// Parameters:
//   - enabled: true to test fragments against the depth buffer
//
// Returns:
//   - PipelineBuilderOption: a function that applies the depth test option
func WithDepthTest(enabled bool) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWrite enables or disables depth buffer writes for surviving
// fragments.
//
// Parameters:
//   - enabled: true to write fragment depth
//
// Returns:
//   - PipelineBuilderOption: a function that applies the depth write option
func WithDepthWrite(enabled bool) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.depthWriteEnabled = enabled
	}
}

// WithBlend enables or disables source-over alpha blending.
//
// Parameters:
//   - enabled: true to blend fragment colors with the framebuffer
//
// Returns:
//   - PipelineBuilderOption: a function that applies the blend option
func WithBlend(enabled bool) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.blendEnabled = enabled
	}
}

// WithCullMode sets which triangle winding is discarded.
//
// Parameters:
//   - mode: the cull mode to apply
//
// Returns:
//   - PipelineBuilderOption: a function that applies the cull mode option
func WithCullMode(mode CullMode) PipelineBuilderOption {
	return func(p *pipelineImpl) {
		p.cullMode = mode
	}
}
