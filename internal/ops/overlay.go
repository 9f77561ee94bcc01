package ops

import (
	"fmt"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

// Overlay composites an image over the main video. Position is either one
// of the nine predefined anchors (with optional padding) or explicit
// pixel coordinates, never both. An optional visibility window limits the
// overlay to part of the timeline.
type Overlay struct {
	imagePath string
	pos       positionSpec
	win       window
}

// OverlayOptions configures an overlay operation.
type OverlayOptions struct {
	// Position is a predefined anchor, mutually exclusive with X/Y.
	Position Anchor
	// X, Y are explicit pixel coordinates.
	X, Y *int
	// Padding offsets anchored positions from the edges.
	Padding int
	// Start, End bound the visibility window; any timefmt representation.
	Start, End any
}

// NewOverlay creates an overlay operation for the given image file.
func NewOverlay(imagePath string, opts OverlayOptions) (*Overlay, error) {
	op := &Overlay{
		imagePath: imagePath,
		pos: positionSpec{
			anchor:  opts.Position,
			x:       opts.X,
			y:       opts.Y,
			padding: opts.Padding,
		},
		win: window{start: opts.Start, end: opts.End},
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks the image path, position exclusivity, and window bounds.
func (o *Overlay) Validate() error {
	if o.imagePath == "" {
		return errors.NewInvalidParameter("overlay image path is required")
	}
	if err := o.pos.validate(); err != nil {
		return err
	}
	return o.win.validate()
}

// Apply registers the overlay image as an additional input and adds a
// complex filter consuming it alongside the main stream.
func (o *Overlay) Apply(b *ffmpeg.Builder) error {
	ordinal := b.AddInput(o.imagePath)

	x, y := o.pos.exprs("main_w", "overlay_w", "main_h", "overlay_h")
	text := fmt.Sprintf("[%d:v]overlay=%s:%s", ordinal, x, y)
	if o.win.isSet() {
		enable, err := o.win.enableExpr()
		if err != nil {
			return err
		}
		text += ":" + enable
	}
	b.AddComplexFilter(text, nil, nil)
	return nil
}

// Describe returns a log summary.
func (o *Overlay) Describe() string {
	return fmt.Sprintf("overlay %s", o.imagePath)
}
