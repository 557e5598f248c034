// package export renders scenes offline: a turntable sweep of the orbit
// camera written out as a numbered PNG sequence through the image backend.
package export

import (
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/Carmen-Shannon/gloam/engine/renderer"
	"github.com/Carmen-Shannon/gloam/engine/scene"
)

// sequenceOptions collects the per-call Sequence settings.
type sequenceOptions struct {
	prefix       string
	startAzimuth float32
	sweep        float32
	progress     io.Writer
	description  string
}

// SequenceOption is a functional option for a Sequence call.
type SequenceOption func(*sequenceOptions)

// WithPrefix sets the output file name prefix. Default is "frame", which
// produces frame_0000.png, frame_0001.png, and so on.
//
// Parameters:
//   - prefix: the file name prefix
//
// Returns:
//   - SequenceOption: option function to apply
func WithPrefix(prefix string) SequenceOption {
	return func(o *sequenceOptions) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}

// WithSweep sets the azimuth range covered by the turntable, starting at
// start radians and sweeping sweep radians across the sequence. Default is
// a full revolution from the camera's current azimuth.
//
// Parameters:
//   - start: the first frame's azimuth in radians
//   - sweep: the total azimuth range in radians
//
// Returns:
//   - SequenceOption: option function to apply
func WithSweep(start, sweep float32) SequenceOption {
	return func(o *sequenceOptions) {
		o.startAzimuth = start
		o.sweep = sweep
	}
}

// WithProgressWriter redirects the progress bar. Default is os.Stderr; pass
// io.Discard to silence it.
//
// Parameters:
//   - w: the writer the progress bar renders to
//
// Returns:
//   - SequenceOption: option function to apply
func WithProgressWriter(w io.Writer) SequenceOption {
	return func(o *sequenceOptions) {
		if w != nil {
			o.progress = w
		}
	}
}

// WithDescription sets the progress bar label. Default is "rendering".
//
// Parameters:
//   - description: the progress bar label
//
// Returns:
//   - SequenceOption: option function to apply
func WithDescription(description string) SequenceOption {
	return func(o *sequenceOptions) {
		o.description = description
	}
}

// Sequence renders a turntable of the scene: frames frames with the orbit
// camera's azimuth swept across the configured range, each presented through
// the image backend and written to dir as a numbered PNG. The scene's
// renderer must use the image backend and its camera must carry a
// controller. The output directory is created if missing.
//
// Parameters:
//   - s: the scene to render
//   - frames: the number of frames to write (must be positive)
//   - dir: the output directory
//   - options: functional options for this call
//
// Returns:
//   - error: error if rendering or writing any frame fails
func Sequence(s scene.Scene, frames int, dir string, options ...SequenceOption) error {
	if s == nil {
		return fmt.Errorf("export: nil scene")
	}
	if frames <= 0 {
		return fmt.Errorf("export: frame count must be positive, got %d", frames)
	}

	opts := sequenceOptions{
		prefix:      "frame",
		sweep:       2 * math.Pi,
		progress:    os.Stderr,
		description: "rendering",
	}
	for _, option := range options {
		option(&opts)
	}

	r := s.Renderer()
	cam := s.Camera()
	ctrl := cam.Controller()
	if ctrl == nil {
		return fmt.Errorf("export: camera has no controller to orbit")
	}
	if opts.startAzimuth == 0 && opts.sweep == 2*math.Pi {
		opts.startAzimuth = ctrl.Azimuth()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: failed to create %s: %w", dir, err)
	}

	bar := progressbar.NewOptions(frames,
		progressbar.OptionSetWriter(opts.progress),
		progressbar.OptionSetDescription(opts.description),
		progressbar.OptionShowCount(),
	)

	for i := 0; i < frames; i++ {
		ctrl.SetAzimuth(opts.startAzimuth + opts.sweep*float32(i)/float32(frames))
		cam.Update()

		if err := s.RenderFrame(); err != nil {
			return fmt.Errorf("export: frame %d render failed: %w", i, err)
		}
		if err := r.Present(); err != nil {
			return fmt.Errorf("export: frame %d present failed: %w", i, err)
		}

		path := filepath.Join(dir, fmt.Sprintf("%s_%04d.png", opts.prefix, i))
		if err := writePNG(path, r); err != nil {
			return fmt.Errorf("export: frame %d: %w", i, err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return nil
}

// writePNG encodes the renderer's last presented frame. A renderer that is
// not on the image backend never reports a frame, which surfaces here.
func writePNG(path string, r renderer.Renderer) error {
	img := r.LastFrame()
	if img == nil {
		return fmt.Errorf("renderer does not use the image backend")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
