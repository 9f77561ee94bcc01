package ops

import (
	"fmt"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

// Resize scales the video. A zero dimension keeps the aspect ratio.
type Resize struct {
	width  int
	height int
}

// NewResize creates a resize operation. One of width or height may be
// zero to preserve the aspect ratio.
func NewResize(width, height int) (*Resize, error) {
	op := &Resize{width: width, height: height}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks the target dimensions.
func (r *Resize) Validate() error {
	if r.width < 0 || r.height < 0 {
		return errors.NewInvalidParameter("resize dimensions must be non-negative")
	}
	if r.width == 0 && r.height == 0 {
		return errors.NewInvalidParameter("resize requires at least one of width or height")
	}
	return nil
}

// Apply registers a scale filter.
func (r *Resize) Apply(b *ffmpeg.Builder) error {
	b.AddResizeFilter(r.width, r.height)
	return nil
}

// Describe returns a log summary.
func (r *Resize) Describe() string {
	return fmt.Sprintf("resize to %dx%d", r.width, r.height)
}
