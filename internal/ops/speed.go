package ops

import (
	"fmt"
	"math"
	"strings"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

// The atempo filter only accepts ratios in [0.5, 2.0]; larger changes are
// decomposed into a chain of single-stage adjustments.
const (
	atempoMin = 0.5
	atempoMax = 2.0
)

// Speed changes playback rate by a multiplicative factor. Video
// timestamps are scaled by 1/factor and audio tempo is adjusted to match.
type Speed struct {
	factor float64
}

// NewSpeed creates a speed operation. factor 2 doubles the playback rate,
// 0.5 halves it.
func NewSpeed(factor float64) (*Speed, error) {
	op := &Speed{factor: factor}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks the factor.
func (s *Speed) Validate() error {
	if math.IsNaN(s.factor) || s.factor <= 0 {
		return errors.NewInvalidParameter("speed factor must be positive, got %g", s.factor)
	}
	return nil
}

// AtempoStages decomposes a positive factor into a chain of atempo stages
// whose product equals the factor. The greedy halving/doubling is exact
// for any positive real ratio and terminates in O(log2 f) stages. A
// factor of exactly 1 yields no stages.
func AtempoStages(factor float64) []float64 {
	var stages []float64
	f := factor
	for f > atempoMax {
		stages = append(stages, atempoMax)
		f /= atempoMax
	}
	for f < atempoMin {
		stages = append(stages, atempoMin)
		f /= atempoMin
	}
	if f != 1.0 {
		stages = append(stages, f)
	}
	return stages
}

// Apply emits the video timestamp filter and the decomposed audio tempo
// chain.
func (s *Speed) Apply(b *ffmpeg.Builder) error {
	cmd := b.Command()
	cmd.AddFilter("setpts", fmt.Sprintf("PTS/%s", formatFloat(s.factor)))

	stages := AtempoStages(s.factor)
	if len(stages) == 0 {
		return nil
	}
	parts := make([]string, len(stages))
	for i, stage := range stages {
		parts[i] = "atempo=" + formatFloat(stage)
	}
	cmd.AddArgument("-filter:a", strings.Join(parts, ","))
	return nil
}

// Describe returns a log summary.
func (s *Speed) Describe() string {
	return fmt.Sprintf("speed x%s", formatFloat(s.factor))
}
