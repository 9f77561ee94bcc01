// Package ops contains the concrete edit operations the compiler accepts:
// trim, resize, crop, rotate, speed, color adjustment, overlay, text,
// encoding parameters, and concatenation.
//
// Each operation is pure data plus validation and apply logic. Validation
// happens at construction and raises a typed error, never a silent
// default. Apply compiles the operation into a Builder's command or
// filter chain; each operation is consumed exactly once.
package ops

import (
	"strconv"

	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

// Compile-time interface checks.
var (
	_ ffmpeg.Operation        = (*Trim)(nil)
	_ ffmpeg.Operation        = (*Resize)(nil)
	_ ffmpeg.Operation        = (*Crop)(nil)
	_ ffmpeg.Operation        = (*Rotate)(nil)
	_ ffmpeg.Operation        = (*Speed)(nil)
	_ ffmpeg.Operation        = (*AdjustColor)(nil)
	_ ffmpeg.Operation        = (*Overlay)(nil)
	_ ffmpeg.Operation        = (*Text)(nil)
	_ ffmpeg.Operation        = (*Encoding)(nil)
	_ ffmpeg.CleanupOperation = (*Concat)(nil)
)

// formatFloat renders a float with the shortest exact representation,
// e.g. 2 -> "2", 1.75 -> "1.75".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
