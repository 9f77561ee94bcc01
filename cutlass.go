// Package cutlass provides a declarative Go library for editing video
// with FFmpeg.
//
// Cutlass translates a sequence of high-level operations (trim, resize,
// crop, rotate, speed change, color adjustment, overlays, text,
// concatenation) into a single well-formed FFmpeg invocation. Operations
// can be queued in any order; the command is compiled and executed when
// Save is called.
//
// Basic usage:
//
//	clip, err := cutlass.Open("input.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := clip.
//	    Trim(10, 30).
//	    Resize(1280, 0).
//	    Text("Hello", cutlass.TextOptions{Position: cutlass.AnchorBottomCenter}).
//	    Save(ctx, "output.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("wrote", result.OutputFile)
package cutlass

import (
	"context"
	"fmt"
	"time"

	"github.com/cutlass-video/cutlass/internal/config"
	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
	"github.com/cutlass-video/cutlass/internal/logging"
	"github.com/cutlass-video/cutlass/internal/ops"
	"github.com/cutlass-video/cutlass/internal/reporter"
	"github.com/cutlass-video/cutlass/internal/timefmt"
	"github.com/cutlass-video/cutlass/internal/util"
)

// Re-exported types so callers never import internal packages.
type (
	// OutputOptions are the encoding parameters for the output file.
	OutputOptions = config.OutputOptions
	// ColorOptions carries optional brightness/contrast/saturation values.
	ColorOptions = ops.ColorOptions
	// OverlayOptions configures an image overlay.
	OverlayOptions = ops.OverlayOptions
	// TextOptions configures a text overlay.
	TextOptions = ops.TextOptions
	// ConcatOptions configures concatenation.
	ConcatOptions = ops.ConcatOptions
	// Anchor names one of the nine predefined overlay positions.
	Anchor = ops.Anchor
	// Timecode is a structured time value with an optional frame component.
	Timecode = timefmt.Timecode
	// Command is a compiled engine invocation.
	Command = ffmpeg.Command
	// Executor runs compiled commands; replace it in tests.
	Executor = ffmpeg.Executor
	// ExecResult is the captured output of one engine invocation.
	ExecResult = ffmpeg.ExecResult
	// Reporter receives human-readable progress updates.
	Reporter = reporter.Reporter
	// Logger is the structured logger used throughout cutlass.
	Logger = logging.Logger
)

// Re-exported anchors.
const (
	AnchorTopLeft      = ops.AnchorTopLeft
	AnchorTopCenter    = ops.AnchorTopCenter
	AnchorTopRight     = ops.AnchorTopRight
	AnchorMiddleLeft   = ops.AnchorMiddleLeft
	AnchorCenter       = ops.AnchorCenter
	AnchorMiddleRight  = ops.AnchorMiddleRight
	AnchorBottomLeft   = ops.AnchorBottomLeft
	AnchorBottomCenter = ops.AnchorBottomCenter
	AnchorBottomRight  = ops.AnchorBottomRight
)

// Re-exported concat strategies.
const (
	StrategyFilter  = config.StrategyFilter
	StrategyDemuxer = config.StrategyDemuxer
)

// Result contains the outcome of a finished build.
type Result struct {
	OutputFile string
	Command    string
	Duration   time.Duration
	Stdout     string
	Stderr     string
}

// Clip is the fluent front end: it sequences operations against one
// input file and compiles them into a single engine invocation on Save.
// A Clip is not safe for concurrent use.
type Clip struct {
	input   string
	queue   []ffmpeg.Operation
	outOpts *config.OutputOptions

	log  *logging.Logger
	rep  reporter.Reporter
	exec ffmpeg.Executor

	err error
}

// Option configures a Clip.
type Option func(*Clip)

// WithLogger sets the structured logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Clip) { c.log = l }
}

// WithReporter sets the progress reporter.
func WithReporter(r reporter.Reporter) Option {
	return func(c *Clip) { c.rep = r }
}

// WithExecutor replaces the process executor, mainly for tests.
func WithExecutor(e ffmpeg.Executor) Option {
	return func(c *Clip) { c.exec = e }
}

// WithOutputOptions sets the encoding parameters for the output file.
func WithOutputOptions(o OutputOptions) Option {
	return func(c *Clip) {
		if err := o.Validate(); err != nil {
			c.fail(err)
			return
		}
		c.outOpts = &o
	}
}

// WithPreset applies a named output preset, checking any preset file in
// the standard locations before the built-in presets.
func WithPreset(name string) Option {
	return func(c *Clip) {
		var pf *config.PresetFile
		if path := config.FindPresetFile(); path != "" {
			loaded, err := config.LoadPresetFile(path)
			if err != nil {
				c.fail(err)
				return
			}
			pf = loaded
		}
		opts, err := pf.Resolve(name)
		if err != nil {
			c.fail(err)
			return
		}
		c.outOpts = &opts
	}
}

// Open creates a Clip for an existing input file.
func Open(path string, opts ...Option) (*Clip, error) {
	if !util.FileExists(path) {
		return nil, errors.NewPathError(fmt.Sprintf("input file does not exist: %s", path))
	}

	c := &Clip{input: path}
	for _, opt := range opts {
		opt(c)
	}
	if c.err != nil {
		return nil, c.err
	}
	if c.log == nil {
		c.log = logging.Nop()
	}
	if c.rep == nil {
		c.rep = reporter.NullReporter{}
	}
	if c.exec == nil {
		exec := ffmpeg.NewLocalExecutor(c.log)
		exec.Progress = c.onProgress
		c.exec = exec
	}

	c.log.Info("input set", "path", path)
	c.rep.InputSet(path)
	return c, nil
}

func (c *Clip) onProgress(elapsedSecs float64) {
	c.rep.ExecutionProgress(elapsedSecs)
}

// fail records the first error; later calls keep the original.
func (c *Clip) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// enqueue appends a constructed operation, or records its construction
// error to be surfaced at Save.
func (c *Clip) enqueue(op ffmpeg.Operation, err error) *Clip {
	if err != nil {
		c.fail(err)
		return c
	}
	c.queue = append(c.queue, op)
	c.log.Info("operation queued", "op", op.Describe())
	c.rep.OperationQueued(op.Describe())
	return c
}

// Trim cuts the clip to a time window. Bounds accept second counts,
// [[HH:]MM:]SS[.mmm] strings, or Timecode records; end may be nil.
func (c *Clip) Trim(start, end any) *Clip {
	op, err := ops.NewTrim(start, end)
	return c.enqueue(op, err)
}

// Resize scales the video. A zero dimension keeps the aspect ratio.
func (c *Clip) Resize(width, height int) *Clip {
	op, err := ops.NewResize(width, height)
	return c.enqueue(op, err)
}

// Crop extracts a rectangular region.
func (c *Clip) Crop(width, height, x, y int) *Clip {
	op, err := ops.NewCrop(width, height, x, y)
	return c.enqueue(op, err)
}

// Rotate turns the video by an angle in degrees.
func (c *Clip) Rotate(degrees float64) *Clip {
	op, err := ops.NewRotate(degrees)
	return c.enqueue(op, err)
}

// Speed changes the playback rate by a positive factor.
func (c *Clip) Speed(factor float64) *Clip {
	op, err := ops.NewSpeed(factor)
	return c.enqueue(op, err)
}

// AdjustColor changes brightness, contrast and/or saturation.
func (c *Clip) AdjustColor(opts ColorOptions) *Clip {
	op, err := ops.NewAdjustColor(opts)
	return c.enqueue(op, err)
}

// Overlay composites an image over the video.
func (c *Clip) Overlay(imagePath string, opts OverlayOptions) *Clip {
	if !util.FileExists(imagePath) {
		c.fail(errors.NewPathError(fmt.Sprintf("overlay image does not exist: %s", imagePath)))
		return c
	}
	op, err := ops.NewOverlay(imagePath, opts)
	return c.enqueue(op, err)
}

// Text draws a string over the video.
func (c *Clip) Text(text string, opts TextOptions) *Clip {
	op, err := ops.NewText(text, opts)
	return c.enqueue(op, err)
}

// Encode applies explicit encoding parameters.
func (c *Clip) Encode(opts OutputOptions) *Clip {
	op, err := ops.NewEncoding(opts)
	return c.enqueue(op, err)
}

// Err returns the first error recorded while queueing operations.
func (c *Clip) Err() error {
	return c.err
}

// Save compiles the queued operations into one command and runs it.
// An empty output synthesizes a path next to the input. Configuration
// errors surface before the engine is invoked; execution errors carry
// the attempted command text and the engine's stderr.
func (c *Clip) Save(ctx context.Context, output string) (*Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	if output == "" {
		output = util.DerivedOutputPath(c.input, config.DefaultOutputSuffix)
	}

	b := ffmpeg.NewBuilder(c.log)
	b.WithInput(c.input)
	b.WithOutput(output, c.outOpts)

	return c.run(ctx, b, output)
}

// run applies the queue against the builder, executes the result, and
// cleans up operation-owned resources after the process finishes.
func (c *Clip) run(ctx context.Context, b *ffmpeg.Builder, output string) (*Result, error) {
	defer func() {
		for _, op := range c.queue {
			if cl, ok := op.(ffmpeg.CleanupOperation); ok {
				if err := cl.Cleanup(); err != nil {
					c.log.Warn("cleanup failed", "op", op.Describe(), "error", err)
				}
			}
		}
	}()

	for _, op := range c.queue {
		if err := b.AddOperation(op); err != nil {
			return nil, err
		}
	}

	cmd, err := b.Build()
	if err != nil {
		return nil, err
	}
	c.rep.CommandCompiled(cmd.String())
	c.log.Info("command compiled", "command", cmd.String())

	c.rep.ExecutionStarted()
	res, err := c.exec.Run(ctx, cmd)
	if err != nil {
		c.rep.Error(err.Error())
		return nil, err
	}

	result := &Result{
		OutputFile: output,
		Command:    cmd.String(),
		Duration:   res.Duration,
		Stdout:     res.Stdout,
		Stderr:     res.Stderr,
	}
	c.rep.ExecutionComplete(reporter.Summary{
		OutputFile: output,
		Command:    result.Command,
		Duration:   res.Duration,
	})
	return result, nil
}

// Concat joins multiple input files into one output. The filter strategy
// (default) re-encodes through a concat filter graph; the demuxer
// strategy copies codecs via a transient list file. An empty output
// synthesizes a path next to the first input.
func Concat(ctx context.Context, inputs []string, output string, copts ConcatOptions, opts ...Option) (*Result, error) {
	op, err := ops.NewConcat(inputs, copts)
	if err != nil {
		return nil, err
	}

	c := &Clip{}
	for _, opt := range opts {
		opt(c)
	}
	if c.err != nil {
		return nil, c.err
	}
	if c.log == nil {
		c.log = logging.Nop()
	}
	if c.rep == nil {
		c.rep = reporter.NullReporter{}
	}
	if c.exec == nil {
		exec := ffmpeg.NewLocalExecutor(c.log)
		exec.Progress = c.onProgress
		c.exec = exec
	}
	c.queue = []ffmpeg.Operation{op}

	if output == "" {
		output = util.DerivedOutputPath(inputs[0], "_joined")
	}

	b := ffmpeg.NewBuilder(c.log)
	// The concat operation registers its own inputs; only the output and
	// its options are declared here.
	b.WithOutput(output, c.outOpts)

	return c.run(ctx, b, output)
}
