// Package timefmt converts heterogeneous time representations into the
// textual forms FFmpeg accepts.
//
// FFmpeg takes time values in two shapes: the canonical clock token
// (HH:MM:SS.mmm) used by options like -ss and -to, and a bare decimal
// second count used inside filter expressions such as
// enable='between(t,5,10)'. Callers pick the shape with a Style.
package timefmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cutlass-video/cutlass/internal/errors"
)

// Style selects the output form of a formatted time value.
type Style int

const (
	// StyleClock renders HH:MM:SS.mmm, e.g. "00:01:30.500".
	StyleClock Style = iota
	// StyleSeconds renders a bare decimal second count, e.g. "90.5",
	// suitable for inline filter expressions.
	StyleSeconds
)

// DefaultFPS is the frame rate assumed when a Timecode carries none.
const DefaultFPS = 25.0

// Timecode is a structured time value with an optional frame component.
type Timecode struct {
	Hours   int
	Minutes int
	Seconds int
	Frames  int
	// FPS converts the frame component to fractional seconds.
	// Zero means DefaultFPS.
	FPS float64
}

// Time is a validated time value, stored as seconds.
type Time struct {
	secs float64
}

// FromSeconds creates a Time from a plain second count.
func FromSeconds(secs float64) Time {
	return Time{secs: secs}
}

// FromTimecode converts a structured timecode into a Time.
func FromTimecode(tc Timecode) (Time, error) {
	if tc.Hours < 0 || tc.Minutes < 0 || tc.Seconds < 0 || tc.Frames < 0 {
		return Time{}, errors.NewInvalidParameter("timecode fields must be non-negative")
	}
	fps := tc.FPS
	if fps == 0 {
		fps = DefaultFPS
	}
	if fps < 0 {
		return Time{}, errors.NewInvalidParameter("timecode fps must be positive")
	}
	secs := float64(tc.Hours)*3600 + float64(tc.Minutes)*60 + float64(tc.Seconds) + float64(tc.Frames)/fps
	return Time{secs: secs}, nil
}

// Parse parses a colon-delimited time string of the form [[HH:]MM:]SS[.mmm].
func Parse(s string) (Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Time{}, errors.NewInvalidParameter("time %q does not match [[HH:]MM:]SS[.mmm]", s)
	}

	var secs float64
	for i, part := range parts {
		if part == "" {
			return Time{}, errors.NewInvalidParameter("time %q does not match [[HH:]MM:]SS[.mmm]", s)
		}
		// Only the final (seconds) component may carry a fraction.
		if i != len(parts)-1 && strings.Contains(part, ".") {
			return Time{}, errors.NewInvalidParameter("time %q does not match [[HH:]MM:]SS[.mmm]", s)
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 {
			return Time{}, errors.NewInvalidParameter("time %q does not match [[HH:]MM:]SS[.mmm]", s)
		}
		secs = secs*60 + v
	}
	return Time{secs: secs}, nil
}

// Seconds returns the value as a second count.
func (t Time) Seconds() float64 {
	return t.secs
}

// Format renders the time in the requested style.
func (t Time) Format(style Style) string {
	if style == StyleSeconds {
		return strconv.FormatFloat(t.secs, 'f', -1, 64)
	}
	hours := int(t.secs) / 3600
	minutes := (int(t.secs) % 3600) / 60
	secs := t.secs - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}

// Format converts any supported time representation into FFmpeg text.
// Accepted values: float64/int second counts, [[HH:]MM:]SS[.mmm] strings,
// Timecode records, and Time values.
func Format(v any, style Style) (string, error) {
	t, err := Convert(v)
	if err != nil {
		return "", err
	}
	return t.Format(style), nil
}

// Convert normalizes any supported time representation into a Time.
func Convert(v any) (Time, error) {
	switch val := v.(type) {
	case Time:
		return val, nil
	case float64:
		return FromSeconds(val), nil
	case float32:
		return FromSeconds(float64(val)), nil
	case int:
		return FromSeconds(float64(val)), nil
	case int64:
		return FromSeconds(float64(val)), nil
	case string:
		return Parse(val)
	case Timecode:
		return FromTimecode(val)
	default:
		return Time{}, errors.NewInvalidParameter("unsupported time value %T", v)
	}
}
