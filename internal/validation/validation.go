// Package validation checks build outputs after the engine has run.
package validation

import (
	"fmt"
	"math"
	"os"

	"github.com/cutlass-video/cutlass/internal/errors"
)

// durationToleranceSecs is the maximum allowed difference between the
// output duration and its expected value.
const durationToleranceSecs = 1.0

// CheckOutput verifies that the engine actually produced a usable file:
// it must exist, be a regular file, and be non-empty. A zero-byte file
// means the engine exited before writing anything useful.
func CheckOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.NewPathError(fmt.Sprintf("output file was not created: %s", path))
	}
	if info.IsDir() {
		return errors.NewPathError(fmt.Sprintf("output path is a directory: %s", path))
	}
	if info.Size() == 0 {
		return errors.NewIOError(fmt.Sprintf("output file is empty: %s", path), nil)
	}
	return nil
}

// CheckDuration verifies the output duration against an expected value,
// within a fixed tolerance that absorbs container rounding.
func CheckDuration(actualSecs, expectedSecs float64) error {
	diff := math.Abs(actualSecs - expectedSecs)
	if diff > durationToleranceSecs {
		return errors.NewIOError(fmt.Sprintf(
			"output duration %.1fs differs from expected %.1fs by %.1fs", actualSecs, expectedSecs, diff), nil)
	}
	return nil
}
