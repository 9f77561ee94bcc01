package ops

import (
	"fmt"

	"github.com/cutlass-video/cutlass/internal/config"
	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

// Encoding applies output encoding parameters (container format, codecs,
// bitrates, CRF, encoder preset) as primitive arguments.
type Encoding struct {
	opts config.OutputOptions
}

// NewEncoding creates an encoding operation.
func NewEncoding(opts config.OutputOptions) (*Encoding, error) {
	op := &Encoding{opts: opts}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate rejects an empty parameter set and delegates range checks to
// the options themselves.
func (e *Encoding) Validate() error {
	if e.opts == (config.OutputOptions{}) {
		return errors.NewInvalidParameter("encoding operation requires at least one parameter")
	}
	return e.opts.Validate()
}

// Apply emits the set fields as immediate arguments.
func (e *Encoding) Apply(b *ffmpeg.Builder) error {
	cmd := b.Command()
	if e.opts.Format != "" {
		cmd.AddArgument("-f", e.opts.Format)
	}
	if e.opts.VideoCodec != "" {
		cmd.AddArgument("-c:v", e.opts.VideoCodec)
	}
	if e.opts.AudioCodec != "" {
		cmd.AddArgument("-c:a", e.opts.AudioCodec)
	}
	if e.opts.VideoBitrate != "" {
		cmd.AddArgument("-b:v", e.opts.VideoBitrate)
	}
	if e.opts.AudioBitrate != "" {
		cmd.AddArgument("-b:a", e.opts.AudioBitrate)
	}
	if e.opts.CRF != nil {
		cmd.AddArgument("-crf", fmt.Sprintf("%d", *e.opts.CRF))
	}
	if e.opts.Preset != "" {
		cmd.AddArgument("-preset", e.opts.Preset)
	}
	return nil
}

// Describe returns a log summary.
func (e *Encoding) Describe() string {
	return "encoding parameters"
}
