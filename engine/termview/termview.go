// package termview previews framebuffers in a terminal: each character cell
// carries two vertically stacked pixels through the upper-half-block glyph,
// with 24-bit foreground and background colors.
package termview

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/Carmen-Shannon/gloam/engine/rasterizer"
)

// Viewer streams framebuffer frames to a terminal-like writer.
type Viewer interface {
	// Render writes one frame. The framebuffer is downsampled to the
	// viewer's cell grid with nearest sampling; each cell shows two
	// vertically stacked pixels.
	//
	// Parameters:
	//   - fb: the framebuffer to display
	//
	// Returns:
	//   - error: error if writing fails
	Render(fb rasterizer.Framebuffer) error

	// Size returns the viewer's cell grid dimensions.
	//
	// Returns:
	//   - int: columns
	//   - int: rows
	Size() (columns, rows int)
}

type viewer struct {
	w          io.Writer
	columns    int
	rows       int
	cursorHome bool

	buf strings.Builder
}

var _ Viewer = &viewer{}

// NewViewer creates a Viewer on the given writer. When the writer is a
// terminal the cell grid is sized to it (reserving one row for the prompt);
// otherwise it defaults to 80x24. Cursor-home repositioning between frames
// is enabled on terminals so successive frames animate in place.
//
// Parameters:
//   - w: the writer frames render to
//   - options: functional options to further configure the viewer
//
// Returns:
//   - Viewer: the created viewer
func NewViewer(w io.Writer, options ...ViewerBuilderOption) Viewer {
	v := &viewer{
		w:       w,
		columns: 80,
		rows:    24,
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, rows, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && rows > 1 {
			v.columns = cols
			v.rows = rows - 1
		}
		v.cursorHome = true
	}

	for _, option := range options {
		option(v)
	}

	return v
}

func (v *viewer) Size() (columns, rows int) {
	return v.columns, v.rows
}

func (v *viewer) Render(fb rasterizer.Framebuffer) error {
	if fb == nil {
		return fmt.Errorf("termview: nil framebuffer")
	}

	fbW, fbH := fb.Width(), fb.Height()
	if fbW < 1 || fbH < 1 {
		return fmt.Errorf("termview: empty framebuffer")
	}

	v.buf.Reset()
	if v.cursorHome {
		v.buf.WriteString(ansi.CursorHomePosition)
	}

	// Two framebuffer samples per cell row: the top pixel drives the glyph
	// foreground, the bottom one its background.
	pixelRows := v.rows * 2
	var lastTop, lastBottom uint32
	for cy := 0; cy < v.rows; cy++ {
		styled := false
		for cx := 0; cx < v.columns; cx++ {
			x := (cx*2 + 1) * fbW / (v.columns * 2)
			top := sampleRGB(fb, x, (cy*4+1)*fbH/(pixelRows*2))
			bottom := sampleRGB(fb, x, (cy*4+3)*fbH/(pixelRows*2))

			if !styled || top != lastTop || bottom != lastBottom {
				v.buf.WriteString(ansi.Style{}.
					ForegroundColor(ansi.TrueColor(top)).
					BackgroundColor(ansi.TrueColor(bottom)).
					String())
				lastTop, lastBottom = top, bottom
				styled = true
			}
			v.buf.WriteRune('▀')
		}
		v.buf.WriteString(ansi.ResetStyle)
		v.buf.WriteByte('\n')
	}

	if _, err := io.WriteString(v.w, v.buf.String()); err != nil {
		return fmt.Errorf("termview: write failed: %w", err)
	}
	return nil
}

// sampleRGB reads one framebuffer pixel as a packed 0xRRGGBB value.
func sampleRGB(fb rasterizer.Framebuffer, x, y int) uint32 {
	c := fb.At(x, y)
	return uint32(channelByte(c[0]))<<16 | uint32(channelByte(c[1]))<<8 | uint32(channelByte(c[2]))
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
