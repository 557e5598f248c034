// package viewer shows scenes interactively through an ebiten window:
// frames come from the image backend and land on screen via WritePixels,
// with orbit and zoom input mapped onto the scene's camera controller.
package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Carmen-Shannon/gloam/engine/scene"
)

type game struct {
	scene scene.Scene

	width  int
	height int

	orbitKeys bool
	zoomStep  float32
}

var _ ebiten.Game = &game{}

// Run opens an ebiten window on the scene and blocks until it closes or
// escape is pressed. The scene's renderer must use the image backend; its
// framebuffer size fixes the logical screen size. Arrow keys orbit and the
// mouse wheel zooms the scene camera when it carries a controller.
//
// Parameters:
//   - s: the scene to show (must not be nil)
//   - options: functional options to further configure the viewer
//
// Returns:
//   - error: error if the scene cannot be shown or the window fails
func Run(s scene.Scene, options ...RunOption) error {
	if s == nil {
		return fmt.Errorf("viewer: nil scene")
	}

	fb := s.Renderer().Framebuffer()
	g := &game{
		scene:     s,
		width:     fb.Width(),
		height:    fb.Height(),
		orbitKeys: true,
		zoomStep:  1.0,
	}

	cfg := runConfig{
		title: s.Name(),
		scale: 1,
		tps:   60,
	}
	for _, option := range options {
		option(&cfg)
	}
	if cfg.title == "" {
		cfg.title = "gloam"
	}

	ebiten.SetWindowTitle(cfg.title)
	ebiten.SetWindowSize(g.width*cfg.scale, g.height*cfg.scale)
	ebiten.SetTPS(cfg.tps)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollInput()
	return g.step(1.0 / float32(ebiten.TPS()))
}

// pollInput maps held keys and wheel motion onto the camera controller.
func (g *game) pollInput() {
	cam := g.scene.Camera()
	if cam == nil {
		return
	}
	ctrl := cam.Controller()
	if ctrl == nil {
		return
	}

	if g.orbitKeys {
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			ctrl.OrbitLeft()
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			ctrl.OrbitRight()
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			ctrl.OrbitUp()
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			ctrl.OrbitDown()
		}
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		ctrl.Zoom(float32(wheelY) * g.zoomStep)
	}
}

// step advances and renders the scene for one tick.
func (g *game) step(dt float32) error {
	g.scene.Update(dt)
	if err := g.scene.RenderFrame(); err != nil {
		return fmt.Errorf("viewer: render failed: %w", err)
	}
	if err := g.scene.Renderer().Present(); err != nil {
		return fmt.Errorf("viewer: present failed: %w", err)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.scene.Renderer().LastFrame()
	if frame == nil {
		return
	}
	screen.WritePixels(frame.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
