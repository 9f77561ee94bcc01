package ops

import (
	"fmt"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
	"github.com/cutlass-video/cutlass/internal/timefmt"
)

// Trim cuts the input to a time window. Bounds accept any time
// representation timefmt understands: second counts, colon-delimited
// strings, or Timecode records.
type Trim struct {
	start timefmt.Time
	end   *timefmt.Time
}

// NewTrim creates a trim operation. end may be nil to keep everything
// from start to the end of the input.
func NewTrim(start, end any) (*Trim, error) {
	s, err := timefmt.Convert(start)
	if err != nil {
		return nil, err
	}
	op := &Trim{start: s}
	if end != nil {
		e, err := timefmt.Convert(end)
		if err != nil {
			return nil, err
		}
		op.end = &e
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks the window bounds.
func (t *Trim) Validate() error {
	if t.start.Seconds() < 0 {
		return errors.NewInvalidParameter("trim start must be non-negative")
	}
	if t.end != nil && t.end.Seconds() <= t.start.Seconds() {
		return errors.NewInvalidParameter("trim end %s must be after start %s",
			t.end.Format(timefmt.StyleClock), t.start.Format(timefmt.StyleClock))
	}
	return nil
}

// Apply emits -ss and, when an end is set, -to as clock tokens.
func (t *Trim) Apply(b *ffmpeg.Builder) error {
	cmd := b.Command()
	cmd.AddArgument("-ss", t.start.Format(timefmt.StyleClock))
	if t.end != nil {
		cmd.AddArgument("-to", t.end.Format(timefmt.StyleClock))
	}
	return nil
}

// Describe returns a log summary.
func (t *Trim) Describe() string {
	if t.end != nil {
		return fmt.Sprintf("trim %s to %s", t.start.Format(timefmt.StyleClock), t.end.Format(timefmt.StyleClock))
	}
	return fmt.Sprintf("trim from %s", t.start.Format(timefmt.StyleClock))
}
