package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cutlass-video/cutlass/internal/config"
	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
	"github.com/cutlass-video/cutlass/internal/util"
)

// Concat joins multiple inputs into one output using one of two
// strategies: the filter strategy re-encodes through a concat filter
// graph, while the demuxer strategy copies codecs via a transient list
// file. The demuxer list file is an external resource owned by the
// operation and must be removed with Cleanup after the process finishes.
type Concat struct {
	inputs    []string
	strategy  config.ConcatStrategy
	videoOnly bool

	// listPath is set once the demuxer strategy has written its file.
	listPath string
}

// ConcatOptions configures a concat operation.
type ConcatOptions struct {
	// Strategy selects filter (default) or demuxer joining.
	Strategy config.ConcatStrategy
	// VideoOnly drops all audio from the filter-strategy output.
	VideoOnly bool
}

// NewConcat creates a concat operation over the given input files.
func NewConcat(inputs []string, opts ConcatOptions) (*Concat, error) {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = config.StrategyFilter
	}
	op := &Concat{
		inputs:    inputs,
		strategy:  strategy,
		videoOnly: opts.VideoOnly,
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// Validate checks the input list, path existence, and strategy.
func (c *Concat) Validate() error {
	if len(c.inputs) == 0 {
		return errors.NewInvalidParameter("concat requires at least one input")
	}
	for _, path := range c.inputs {
		if !util.FileExists(path) {
			return errors.NewPathError(fmt.Sprintf("concat input does not exist: %s", path))
		}
	}
	if c.strategy != config.StrategyFilter && c.strategy != config.StrategyDemuxer {
		return errors.NewInvalidParameter("unknown concat strategy '%s'", c.strategy)
	}
	return nil
}

// Apply compiles the chosen strategy into the builder.
func (c *Concat) Apply(b *ffmpeg.Builder) error {
	if c.strategy == config.StrategyDemuxer {
		return c.applyDemuxer(b)
	}
	return c.applyFilter(b)
}

// applyFilter adds every input after the first as an additional input and
// emits a concat filter graph referencing each input's streams pairwise.
func (c *Concat) applyFilter(b *ffmpeg.Builder) error {
	cmd := b.Command()
	if cmd.Input() == "" {
		b.WithInput(c.inputs[0])
	}
	for _, path := range c.inputs[1:] {
		b.AddInput(path)
	}

	var graph strings.Builder
	for i := range c.inputs {
		fmt.Fprintf(&graph, "[%d:v]", i)
		if !c.videoOnly {
			fmt.Fprintf(&graph, "[%d:a]", i)
		}
	}

	audio := 1
	outputs := "[vout][aout]"
	if c.videoOnly {
		audio = 0
		outputs = "[vout]"
	}
	fmt.Fprintf(&graph, "concat=n=%d:v=1:a=%d%s", len(c.inputs), audio, outputs)

	cmd.AddArgument("-filter_complex", graph.String())
	cmd.AddArgument("-map", "[vout]")
	if c.videoOnly {
		cmd.AddFlag("-an")
	} else {
		cmd.AddArgument("-map", "[aout]")
	}
	return nil
}

// applyDemuxer writes the transient list file and instructs the engine to
// read it as a concat-format input, copying codecs without re-encoding.
func (c *Concat) applyDemuxer(b *ffmpeg.Builder) error {
	listPath := filepath.Join(os.TempDir(), "cutlass-concat-"+uuid.NewString()+".txt")

	var list strings.Builder
	for _, path := range c.inputs {
		fmt.Fprintf(&list, "file '%s'\n", escapeConcatPath(path))
	}
	if err := os.WriteFile(listPath, []byte(list.String()), 0644); err != nil {
		return errors.NewIOError("failed to write concat list file", err)
	}
	c.listPath = listPath

	cmd := b.Command()
	cmd.AddArgument("-f", "concat")
	cmd.AddArgument("-safe", "0")
	cmd.SetInput(listPath)
	cmd.AddArgument("-c", "copy")
	return nil
}

// escapeConcatPath escapes single quotes for the demuxer list file's
// quoted-path syntax.
func escapeConcatPath(path string) string {
	return strings.ReplaceAll(path, `'`, `'\''`)
}

// ListPath returns the demuxer list file path, empty until Apply has run
// with the demuxer strategy.
func (c *Concat) ListPath() string {
	return c.listPath
}

// Cleanup removes the demuxer list file. It is safe to call for either
// strategy and more than once.
func (c *Concat) Cleanup() error {
	if c.listPath == "" {
		return nil
	}
	err := os.Remove(c.listPath)
	c.listPath = ""
	if err != nil && !os.IsNotExist(err) {
		return errors.NewIOError("failed to remove concat list file", err)
	}
	return nil
}

// Describe returns a log summary.
func (c *Concat) Describe() string {
	return fmt.Sprintf("concat %d inputs (%s)", len(c.inputs), c.strategy)
}
