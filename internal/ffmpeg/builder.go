package ffmpeg

import (
	"fmt"

	"github.com/cutlass-video/cutlass/internal/config"
	"github.com/cutlass-video/cutlass/internal/logging"
)

// Operation is a self-contained, validated unit of work. Operations are
// created by the caller-facing front end and consumed exactly once by a
// Builder.
type Operation interface {
	// Validate checks the operation's parameters. It runs before Apply
	// and never mutates builder state.
	Validate() error
	// Apply compiles the operation into the builder's command or filter
	// chain.
	Apply(b *Builder) error
	// Describe returns a short human-readable summary for logging.
	Describe() string
}

// CleanupOperation is implemented by operations that hold temporary
// external resources, such as a concat list file. Cleanup must be called
// after the external process has finished.
type CleanupOperation interface {
	Operation
	Cleanup() error
}

// Builder accumulates operations against one command and one filter
// chain. It is the unit of compilation for exactly one output and must
// not be shared across goroutines or reused after Build.
type Builder struct {
	cmd           *Command
	chain         *FilterChain
	extraInputs   []string
	simpleFilters []string
	log           *logging.Logger
}

// NewBuilder creates a builder around a fresh command.
func NewBuilder(log *logging.Logger) *Builder {
	if log == nil {
		log = logging.Nop()
	}
	return &Builder{
		cmd:   NewCommand(),
		chain: NewFilterChain(),
		log:   log,
	}
}

// WithInput sets the primary input file.
func (b *Builder) WithInput(path string) *Builder {
	b.cmd.SetInput(path)
	return b
}

// AddInput appends an additional input file, such as an overlay source or
// an extra concat source, and returns its input ordinal. The primary
// input is ordinal 0.
func (b *Builder) AddInput(path string) int {
	b.extraInputs = append(b.extraInputs, path)
	b.cmd.AddArgument("-i", path)
	return len(b.extraInputs)
}

// ExtraInputs returns the additional input paths in registration order.
func (b *Builder) ExtraInputs() []string {
	return b.extraInputs
}

// WithOutput declares the output path and applies any encoding options as
// immediate arguments. The path itself is only placed at Build time.
func (b *Builder) WithOutput(path string, opts *config.OutputOptions) *Builder {
	b.cmd.SetOutput(path)
	if opts == nil {
		return b
	}
	if opts.Format != "" {
		b.cmd.AddArgument("-f", opts.Format)
	}
	if opts.VideoCodec != "" {
		b.cmd.AddArgument("-c:v", opts.VideoCodec)
	}
	if opts.AudioCodec != "" {
		b.cmd.AddArgument("-c:a", opts.AudioCodec)
	}
	if opts.VideoBitrate != "" {
		b.cmd.AddArgument("-b:v", opts.VideoBitrate)
	}
	if opts.AudioBitrate != "" {
		b.cmd.AddArgument("-b:a", opts.AudioBitrate)
	}
	if opts.CRF != nil {
		b.cmd.AddArgument("-crf", fmt.Sprintf("%d", *opts.CRF))
	}
	if opts.Preset != "" {
		b.cmd.AddArgument("-preset", opts.Preset)
	}
	return b
}

// AddOperation validates an operation and applies it. A failed validation
// leaves the builder untouched.
func (b *Builder) AddOperation(op Operation) error {
	if err := op.Validate(); err != nil {
		return err
	}
	b.log.Debug("applying operation", "op", op.Describe())
	return op.Apply(b)
}

// Command exposes the underlying command for operations that only need
// primitive arguments.
func (b *Builder) Command() *Command {
	return b.cmd
}

// AddSimpleFilter registers a chainable per-stream filter.
func (b *Builder) AddSimpleFilter(text string) {
	b.simpleFilters = append(b.simpleFilters, text)
	b.chain.AddSimple(text)
}

// AddComplexFilter registers a labeled filter node without requiring the
// caller to construct FilterNode values. It returns the node's output
// label.
func (b *Builder) AddComplexFilter(text string, inputs, outputs []string) string {
	return b.chain.AddComplex(text, inputs, outputs)
}

// AddResizeFilter synthesizes a scale filter. A zero width or height
// becomes -2, which keeps the aspect ratio and even dimensions.
func (b *Builder) AddResizeFilter(width, height int) {
	if width == 0 {
		width = -2
	}
	if height == 0 {
		height = -2
	}
	b.AddSimpleFilter(fmt.Sprintf("scale=%d:%d", width, height))
}

// AddCropFilter synthesizes a crop filter.
func (b *Builder) AddCropFilter(width, height, x, y int) {
	b.AddSimpleFilter(fmt.Sprintf("crop=%d:%d:%d:%d", width, height, x, y))
}

// AddTransposeFilter synthesizes a transpose filter for quarter-turn
// rotations. dir is the transpose direction constant.
func (b *Builder) AddTransposeFilter(dir int) {
	b.AddSimpleFilter(fmt.Sprintf("transpose=%d", dir))
}

// AddRotateFilter synthesizes a free-angle rotate filter.
func (b *Builder) AddRotateFilter(radians float64) {
	b.AddSimpleFilter(fmt.Sprintf("rotate=%g", radians))
}

// Build renders the filter chain into the command, finalizes argument
// order, and returns the command ready for execution.
//
// Complex filters take precedence: when any complex node exists the whole
// graph goes out via -filter_complex plus a -map of the final output
// label, and simple filters queued earlier are superseded in rendering.
// Operations must not mix the two styles for the same output stream
// without awareness of this policy.
func (b *Builder) Build() (*Command, error) {
	if complexGraph, ok := b.chain.RenderComplex(); ok {
		b.cmd.AddArgument("-filter_complex", complexGraph)
		b.cmd.AddArgument("-map", b.chain.FinalOutputLabel())
		if simple, hasSimple := b.chain.RenderSimple(); hasSimple {
			b.log.Warn("simple filters superseded by complex graph", "filters", simple)
		}
	} else if len(b.simpleFilters) > 0 {
		b.cmd.AddFilters(b.simpleFilters)
	}

	if err := b.cmd.Validate(); err != nil {
		return nil, err
	}
	b.log.Debug("compiled command", "command", b.cmd.String())
	return b.cmd, nil
}

// Reset discards all accumulated state so the builder can start over with
// a fresh command and chain.
func (b *Builder) Reset() {
	b.cmd = NewCommand()
	b.chain.Reset()
	b.extraInputs = nil
	b.simpleFilters = nil
}
