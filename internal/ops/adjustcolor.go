package ops

import (
	"strings"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

// Documented ranges of the eq filter's sub-parameters.
const (
	brightnessMin = -1.0
	brightnessMax = 1.0
	contrastMin   = -2.0
	contrastMax   = 2.0
	saturationMin = 0.0
	saturationMax = 3.0
)

// AdjustColor changes brightness, contrast and/or saturation. Unset
// fields are omitted from the emitted filter; supplying none at all is an
// error, not a no-op.
type AdjustColor struct {
	brightness *float64
	contrast   *float64
	saturation *float64
}

// ColorOptions carries the optional color adjustments.
type ColorOptions struct {
	Brightness *float64
	Contrast   *float64
	Saturation *float64
}

// NewAdjustColor creates a color adjustment operation.
func NewAdjustColor(opts ColorOptions) (*AdjustColor, error) {
	op := &AdjustColor{
		brightness: opts.Brightness,
		contrast:   opts.Contrast,
		saturation: opts.Saturation,
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks every supplied field against its documented range and
// rejects an empty adjustment.
func (a *AdjustColor) Validate() error {
	if a.brightness == nil && a.contrast == nil && a.saturation == nil {
		return errors.NewInvalidParameter("color adjustment requires at least one of brightness, contrast, saturation")
	}
	if a.brightness != nil && (*a.brightness < brightnessMin || *a.brightness > brightnessMax) {
		return errors.NewInvalidParameter("brightness %g out of range [%g, %g]", *a.brightness, brightnessMin, brightnessMax)
	}
	if a.contrast != nil && (*a.contrast < contrastMin || *a.contrast > contrastMax) {
		return errors.NewInvalidParameter("contrast %g out of range [%g, %g]", *a.contrast, contrastMin, contrastMax)
	}
	if a.saturation != nil && (*a.saturation < saturationMin || *a.saturation > saturationMax) {
		return errors.NewInvalidParameter("saturation %g out of range [%g, %g]", *a.saturation, saturationMin, saturationMax)
	}
	return nil
}

// Apply emits one combined eq filter, sub-parameters in brightness,
// contrast, saturation order.
func (a *AdjustColor) Apply(b *ffmpeg.Builder) error {
	var parts []string
	if a.brightness != nil {
		parts = append(parts, "brightness="+formatFloat(*a.brightness))
	}
	if a.contrast != nil {
		parts = append(parts, "contrast="+formatFloat(*a.contrast))
	}
	if a.saturation != nil {
		parts = append(parts, "saturation="+formatFloat(*a.saturation))
	}
	b.Command().AddFilter("eq", strings.Join(parts, ":"))
	return nil
}

// Describe returns a log summary.
func (a *AdjustColor) Describe() string {
	var parts []string
	if a.brightness != nil {
		parts = append(parts, "brightness "+formatFloat(*a.brightness))
	}
	if a.contrast != nil {
		parts = append(parts, "contrast "+formatFloat(*a.contrast))
	}
	if a.saturation != nil {
		parts = append(parts, "saturation "+formatFloat(*a.saturation))
	}
	return "adjust " + strings.Join(parts, ", ")
}
