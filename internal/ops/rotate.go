package ops

import (
	"fmt"
	"math"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

// Transpose direction constants for quarter-turn rotations.
const (
	transposeClockwise        = 1
	transposeCounterClockwise = 2
)

// Rotate turns the video by an angle in degrees. Quarter turns use the
// lossless-geometry transpose filter; any other angle goes through the
// free-angle rotate filter.
type Rotate struct {
	degrees float64
}

// NewRotate creates a rotate operation. Positive angles turn clockwise.
func NewRotate(degrees float64) (*Rotate, error) {
	op := &Rotate{degrees: degrees}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks the angle.
func (r *Rotate) Validate() error {
	if math.IsNaN(r.degrees) || math.IsInf(r.degrees, 0) {
		return errors.NewInvalidParameter("rotation angle must be finite")
	}
	if r.degrees == 0 {
		return errors.NewInvalidParameter("rotation angle must be non-zero")
	}
	return nil
}

// Apply registers the transpose or rotate filter.
func (r *Rotate) Apply(b *ffmpeg.Builder) error {
	deg := math.Mod(r.degrees, 360)
	if deg < 0 {
		deg += 360
	}
	switch deg {
	case 90:
		b.AddTransposeFilter(transposeClockwise)
	case 180:
		b.AddTransposeFilter(transposeClockwise)
		b.AddTransposeFilter(transposeClockwise)
	case 270:
		b.AddTransposeFilter(transposeCounterClockwise)
	default:
		b.AddRotateFilter(deg * math.Pi / 180)
	}
	return nil
}

// Describe returns a log summary.
func (r *Rotate) Describe() string {
	return fmt.Sprintf("rotate %g degrees", r.degrees)
}
