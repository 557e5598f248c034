package pipeline

import (
	"github.com/Carmen-Shannon/gloam/engine/shader"
)

// Program identifies which stock shader program pair a pipeline runs.
type Program int

const (
	// ProgramLit is the 3D toon path: full transform, shadow visibility,
	// stylized lighting and tone mapping.
	ProgramLit Program = iota

	// ProgramDepth is the depth-only shadow pass program. It runs the 3D
	// vertex transform and no fragment program at all.
	ProgramDepth

	// ProgramSprite is the flattened 2D path with opacity-modulated alpha.
	ProgramSprite

	// ProgramSheet is the flattened 2D path sampling one spritesheet tile.
	ProgramSheet

	// ProgramAtlas is the flattened 2D path sampling an atlas region with
	// alpha forced opaque.
	ProgramAtlas
)

// CullMode selects which triangle winding is discarded before rasterization.
type CullMode int

const (
	// CullNone rasterizes every triangle regardless of winding.
	CullNone CullMode = iota

	// CullBack discards clockwise (back-facing) triangles. The default for
	// closed 3D geometry.
	CullBack

	// CullFront discards counter-clockwise (front-facing) triangles. Used by
	// the shadow pass so occluder back faces carry the stored depth, which
	// keeps the bias-free depth compare from shadow-acne artifacts.
	CullFront
)

// pipelineImpl is the implementation of the Pipeline interface.
type pipelineImpl struct {
	key     string
	program Program

	vertexFunc   shader.VertexFunc
	fragmentFunc shader.FragmentFunc

	depthTestEnabled  bool
	depthWriteEnabled bool
	blendEnabled      bool
	cullMode          CullMode
}

// Pipeline is an immutable draw-state record: which vertex and fragment
// programs run, and the fixed-function state (depth, blend, cull) the
// rasterizer applies around them. Pipelines are cheap value holders shared
// freely between draws; all fields are fixed at construction.
type Pipeline interface {
	// PipelineKey returns the unique identifier for this pipeline, used for
	// caching and lookups.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Program returns which stock program pair this pipeline runs.
	//
	// Returns:
	//   - Program: the program identifier
	Program() Program

	// VertexFunc returns the vertex stage program.
	//
	// Returns:
	//   - shader.VertexFunc: the vertex program, never nil
	VertexFunc() shader.VertexFunc

	// FragmentFunc returns the fragment stage program. Depth-only pipelines
	// return nil: the rasterizer writes depth without shading fragments.
	//
	// Returns:
	//   - shader.FragmentFunc: the fragment program, or nil for depth-only
	FragmentFunc() shader.FragmentFunc

	// DepthTestEnabled returns whether fragments are tested against the
	// depth buffer with a less-than compare.
	//
	// Returns:
	//   - bool: true if depth testing is enabled
	DepthTestEnabled() bool

	// DepthWriteEnabled returns whether surviving fragments store their
	// depth back to the depth buffer.
	//
	// Returns:
	//   - bool: true if depth writing is enabled
	DepthWriteEnabled() bool

	// BlendEnabled returns whether fragment colors are source-over blended
	// with the framebuffer instead of overwriting it.
	//
	// Returns:
	//   - bool: true if alpha blending is enabled
	BlendEnabled() bool

	// CullMode returns which triangle winding is discarded.
	//
	// Returns:
	//   - CullMode: the cull mode
	CullMode() CullMode
}

var _ Pipeline = &pipelineImpl{}

// NewPipeline creates a Pipeline for the given stock program with that
// program's default fixed-function state, then applies any options.
//
// Defaults per program:
//   - ProgramLit: depth test+write, no blend, back-face culling
//   - ProgramDepth: depth test+write, front-face culling, nil fragment program
//   - ProgramSprite/ProgramSheet/ProgramAtlas: no depth, blend on, no culling
//
// Parameters:
//   - key: the unique pipeline identifier
//   - program: the stock program to run
//   - options: overrides applied after the program defaults
//
// Returns:
//   - Pipeline: the constructed pipeline
func NewPipeline(key string, program Program, options ...PipelineBuilderOption) Pipeline {
	p := &pipelineImpl{
		key:     key,
		program: program,
	}

	switch program {
	case ProgramLit:
		p.vertexFunc = shader.TransformVertex
		p.fragmentFunc = shader.FragmentLit
		p.depthTestEnabled = true
		p.depthWriteEnabled = true
		p.cullMode = CullBack
	case ProgramDepth:
		p.vertexFunc = shader.TransformVertex
		p.fragmentFunc = nil
		p.depthTestEnabled = true
		p.depthWriteEnabled = true
		p.cullMode = CullFront
	case ProgramSprite:
		p.vertexFunc = shader.TransformFlat
		p.fragmentFunc = shader.FragmentSprite
		p.blendEnabled = true
	case ProgramSheet:
		p.vertexFunc = shader.TransformFlat
		p.fragmentFunc = shader.FragmentSheet
		p.blendEnabled = true
	case ProgramAtlas:
		p.vertexFunc = shader.TransformFlat
		p.fragmentFunc = shader.FragmentAtlas
		p.blendEnabled = true
	default:
		panic("pipeline: unknown program")
	}

	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *pipelineImpl) PipelineKey() string {
	return p.key
}

func (p *pipelineImpl) Program() Program {
	return p.program
}

func (p *pipelineImpl) VertexFunc() shader.VertexFunc {
	return p.vertexFunc
}

func (p *pipelineImpl) FragmentFunc() shader.FragmentFunc {
	return p.fragmentFunc
}

func (p *pipelineImpl) DepthTestEnabled() bool {
	return p.depthTestEnabled
}

func (p *pipelineImpl) DepthWriteEnabled() bool {
	return p.depthWriteEnabled
}

func (p *pipelineImpl) BlendEnabled() bool {
	return p.blendEnabled
}

func (p *pipelineImpl) CullMode() CullMode {
	return p.cullMode
}
