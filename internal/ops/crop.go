package ops

import (
	"fmt"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

// Crop extracts a rectangular region from the video.
type Crop struct {
	width  int
	height int
	x      int
	y      int
}

// NewCrop creates a crop operation. x and y are the top-left corner of
// the region.
func NewCrop(width, height, x, y int) (*Crop, error) {
	op := &Crop{width: width, height: height, x: x, y: y}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks the region parameters.
func (c *Crop) Validate() error {
	if c.width <= 0 || c.height <= 0 {
		return errors.NewInvalidParameter("crop dimensions must be positive")
	}
	if c.x < 0 || c.y < 0 {
		return errors.NewInvalidParameter("crop offsets must be non-negative")
	}
	return nil
}

// Apply registers a crop filter.
func (c *Crop) Apply(b *ffmpeg.Builder) error {
	b.AddCropFilter(c.width, c.height, c.x, c.y)
	return nil
}

// Describe returns a log summary.
func (c *Crop) Describe() string {
	return fmt.Sprintf("crop %dx%d at %d,%d", c.width, c.height, c.x, c.y)
}
