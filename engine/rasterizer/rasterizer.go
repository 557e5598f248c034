// package rasterizer drives the shading pipeline: it runs the vertex program
// over a mesh, assembles and culls triangles, and fills covered pixels with
// the fragment program, testing and writing depth along the way. Fragment
// work for large triangles is spread across a reusable worker pool; workers
// own disjoint row bands so no pixel is written twice concurrently.
package rasterizer

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/gloam/engine/mesh"
	"github.com/Carmen-Shannon/gloam/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/gloam/engine/shader"
	"github.com/Carmen-Shannon/gloam/engine/texture"
)

// bandRows is the number of framebuffer rows one worker task fills.
const bandRows = 16

// minParallelRows is the bounding-box height below which a triangle is
// filled inline instead of being split across the pool; tiny triangles are
// cheaper than the task handoff.
const minParallelRows = 32

// rasterizerImpl is the implementation of the Rasterizer interface.
type rasterizerImpl struct {
	mu *sync.Mutex

	fb    Framebuffer
	depth texture.DepthTexture

	workers int
	pool    worker.DynamicWorkerPool
	taskID  int

	// varyings is a per-draw scratch buffer reused between meshes to avoid
	// reallocating the transformed vertex stream every call.
	varyings []shader.Varyings
}

// Rasterizer owns a framebuffer and depth buffer and executes draw calls
// against them. Draw calls are serialized by an internal mutex; within a
// draw call, fragment rows are processed in parallel.
type Rasterizer interface {
	// Framebuffer returns the color target draws render into.
	//
	// Returns:
	//   - Framebuffer: the current framebuffer
	Framebuffer() Framebuffer

	// Resize replaces the framebuffer and depth buffer with new ones of the
	// given size. Previous contents are discarded.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// Clear fills the framebuffer with a color and resets the depth buffer
	// to the far plane.
	//
	// Parameters:
	//   - c: the RGBA clear color
	Clear(c [4]float32)

	// DrawMesh rasterizes a mesh into the framebuffer using the pipeline's
	// programs and fixed-function state. The DrawConfig is read-only for the
	// duration of the call.
	//
	// Parameters:
	//   - cfg: the per-draw uniform block
	//   - m: the mesh to draw
	//   - p: the draw state to apply
	DrawMesh(cfg *shader.DrawConfig, m mesh.Mesh, p pipeline.Pipeline)

	// DrawDepth rasterizes a mesh into a standalone depth texture without
	// shading any fragments. Used by the shadow pass; the target must not be
	// sampled concurrently.
	//
	// Parameters:
	//   - cfg: the per-draw uniform block
	//   - m: the mesh to draw
	//   - p: the draw state to apply (FragmentFunc is ignored)
	//   - target: the depth texture to render into
	DrawDepth(cfg *shader.DrawConfig, m mesh.Mesh, p pipeline.Pipeline, target texture.DepthTexture)
}

var _ Rasterizer = &rasterizerImpl{}

// NewRasterizer creates a Rasterizer with a framebuffer and depth buffer of
// the given size.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//   - options: functional options for rasterizer configuration
//
// Returns:
//   - Rasterizer: the constructed rasterizer
func NewRasterizer(width, height int, options ...RasterizerBuilderOption) Rasterizer {
	r := &rasterizerImpl{
		mu:      &sync.Mutex{},
		fb:      NewFramebuffer(width, height),
		depth:   texture.NewDepthTexture(width, height),
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(r)
	}

	// Initialize the pool after options so WithWorkers can override the
	// default. Queue size of 256 covers the row bands of several large
	// triangles in flight.
	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)
	return r
}

func (r *rasterizerImpl) Framebuffer() Framebuffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fb
}

func (r *rasterizerImpl) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fb = NewFramebuffer(width, height)
	r.depth = texture.NewDepthTexture(width, height)
}

func (r *rasterizerImpl) Clear(c [4]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fb.Clear(c)
	r.depth.Clear(1.0)
}

func (r *rasterizerImpl) DrawMesh(cfg *shader.DrawConfig, m mesh.Mesh, p pipeline.Pipeline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draw(cfg, m, p, target{
		width:  r.fb.Width(),
		height: r.fb.Height(),
		fb:     r.fb,
		depth:  r.depth,
	})
}

func (r *rasterizerImpl) DrawDepth(cfg *shader.DrawConfig, m mesh.Mesh, p pipeline.Pipeline, depthTarget texture.DepthTexture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draw(cfg, m, p, target{
		width:  depthTarget.Width(),
		height: depthTarget.Height(),
		depth:  depthTarget,
	})
}

// target bundles the surfaces one draw call writes. fb is nil for
// depth-only passes.
type target struct {
	width  int
	height int
	fb     Framebuffer
	depth  texture.DepthTexture
}

// screenVertex is a triangle corner after viewport transform.
type screenVertex struct {
	x, y float32 // pixel coordinates
	z    float32 // NDC depth in [0,1]
	vy   shader.Varyings
}

// draw transforms every vertex once, then assembles, culls, and fills each
// triangle. Caller must hold the mutex.
func (r *rasterizerImpl) draw(cfg *shader.DrawConfig, m mesh.Mesh, p pipeline.Pipeline, t target) {
	vertexFunc := p.VertexFunc()
	vertices := m.Vertices()

	if cap(r.varyings) < len(vertices) {
		r.varyings = make([]shader.Varyings, len(vertices))
	}
	varyings := r.varyings[:len(vertices)]
	for i, v := range vertices {
		varyings[i] = vertexFunc(cfg, v)
	}

	indices := m.Indices()
	for i := 0; i+2 < len(indices); i += 3 {
		r.rasterizeTriangle(cfg, p, t,
			varyings[indices[i]],
			varyings[indices[i+1]],
			varyings[indices[i+2]],
		)
	}
}

// rasterizeTriangle culls, projects, and fills one triangle.
//
// Triangles with any corner at w <= 0 cross or sit behind the eye plane and
// are dropped whole rather than clipped; the near plane keeps normal scene
// geometry clear of this case.
func (r *rasterizerImpl) rasterizeTriangle(cfg *shader.DrawConfig, p pipeline.Pipeline, t target, a, b, c shader.Varyings) {
	if a.ClipPos[3] <= 0 || b.ClipPos[3] <= 0 || c.ClipPos[3] <= 0 {
		return
	}

	sa := toScreen(a, t.width, t.height)
	sb := toScreen(b, t.width, t.height)
	sc := toScreen(c, t.width, t.height)

	// Twice the signed area in screen space. The viewport transform flips y,
	// so triangles counter-clockwise in NDC come out negative here.
	area := (sb.x-sa.x)*(sc.y-sa.y) - (sb.y-sa.y)*(sc.x-sa.x)
	if area == 0 {
		return
	}
	backFacing := area > 0
	switch p.CullMode() {
	case pipeline.CullBack:
		if backFacing {
			return
		}
	case pipeline.CullFront:
		if !backFacing {
			return
		}
	}

	minX := int(floorMin3(sa.x, sb.x, sc.x))
	maxX := int(ceilMax3(sa.x, sb.x, sc.x))
	minY := int(floorMin3(sa.y, sb.y, sc.y))
	maxY := int(ceilMax3(sa.y, sb.y, sc.y))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > t.width-1 {
		maxX = t.width - 1
	}
	if maxY > t.height-1 {
		maxY = t.height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	tri := triangle{a: sa, b: sb, c: sc, invArea: 1.0 / area}

	rows := maxY - minY + 1
	if rows < minParallelRows {
		fillRows(cfg, p, t, tri, minX, maxX, minY, maxY)
		return
	}

	// Split the bounding box into disjoint row bands and fan them out to the
	// pool. Workers persist across frames; the WaitGroup is the per-triangle
	// barrier since pool.Wait blocks until workers idle-exit, which is
	// unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	for y := minY; y <= maxY; y += bandRows {
		bandMin := y
		bandMax := min(y+bandRows-1, maxY)
		wg.Add(1)
		r.taskID++
		r.pool.SubmitTask(worker.Task{
			ID: r.taskID,
			Do: func() (any, error) {
				defer wg.Done()
				fillRows(cfg, p, t, tri, minX, maxX, bandMin, bandMax)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// triangle carries the projected corners and the reciprocal signed area used
// to normalize barycentric weights.
type triangle struct {
	a, b, c screenVertex
	invArea float32
}

// fillRows shades the covered pixels of the rows [minY, maxY] inside the
// triangle. Each invocation owns its rows exclusively.
func fillRows(cfg *shader.DrawConfig, p pipeline.Pipeline, t target, tri triangle, minX, maxX, minY, maxY int) {
	fragmentFunc := p.FragmentFunc()
	depthTest := p.DepthTestEnabled()
	depthWrite := p.DepthWriteEnabled()
	blend := p.BlendEnabled()

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			// Normalized barycentric weights; all three share the sign of
			// the triangle area, so after normalization coverage is simply
			// all weights non-negative regardless of winding.
			wa := ((tri.b.x-px)*(tri.c.y-py) - (tri.b.y-py)*(tri.c.x-px)) * tri.invArea
			wb := ((tri.c.x-px)*(tri.a.y-py) - (tri.c.y-py)*(tri.a.x-px)) * tri.invArea
			wc := 1 - wa - wb
			if wa < 0 || wb < 0 || wc < 0 {
				continue
			}

			z := tri.a.z*wa + tri.b.z*wb + tri.c.z*wc
			if depthTest && z >= t.depth.At(x, y) {
				continue
			}
			if depthWrite {
				t.depth.Set(x, y, z)
			}
			if fragmentFunc == nil || t.fb == nil {
				continue
			}

			vy := shader.LerpVaryings(tri.a.vy, tri.b.vy, tri.c.vy, wa, wb, wc)
			color := fragmentFunc(cfg, vy)
			if blend {
				t.fb.Blend(x, y, color)
			} else {
				t.fb.Set(x, y, color)
			}
		}
	}
}

// toScreen perspective-divides a clip position and maps it to pixel
// coordinates, flipping y so row zero is the top of the image.
func toScreen(vy shader.Varyings, width, height int) screenVertex {
	invW := 1.0 / vy.ClipPos[3]
	ndcX := vy.ClipPos[0] * invW
	ndcY := vy.ClipPos[1] * invW
	ndcZ := vy.ClipPos[2] * invW
	return screenVertex{
		x:  (ndcX*0.5 + 0.5) * float32(width),
		y:  (1 - (ndcY*0.5 + 0.5)) * float32(height),
		z:  ndcZ,
		vy: vy,
	}
}

func floorMin3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func ceilMax3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
