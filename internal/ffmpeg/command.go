// Package ffmpeg compiles declarative edit operations into a single
// well-formed FFmpeg invocation.
package ffmpeg

import (
	"strings"

	"github.com/cutlass-video/cutlass/internal/errors"
)

// DefaultProgram is the external engine binary.
const DefaultProgram = "ffmpeg"

// Command is an ordered-argument accumulator with two privileged values,
// the input and the output path. Mutators append immediately in call
// order; Validate is the single finalization point that places the
// recorded output path last.
type Command struct {
	program string
	input   string
	output  string
	args    []string
}

// NewCommand creates a command for the default engine binary.
func NewCommand() *Command {
	return &Command{program: DefaultProgram}
}

// NewCommandProgram creates a command for a specific engine binary.
func NewCommandProgram(program string) *Command {
	return &Command{program: program}
}

// SetInput records the primary input and appends -i <path> immediately.
func (c *Command) SetInput(path string) {
	c.input = path
	c.args = append(c.args, "-i", path)
}

// SetOutput records the intended output path. The path is not appended
// here: Validate places it as the final argument, which lets filter and
// mapping arguments computed at build time land before it regardless of
// the order callers ran mutators.
func (c *Command) SetOutput(path string) {
	c.output = path
}

// Input returns the recorded primary input path.
func (c *Command) Input() string {
	return c.input
}

// Output returns the recorded output path.
func (c *Command) Output() string {
	return c.output
}

// AddArgument appends a key/value argument pair.
func (c *Command) AddArgument(key, value string) {
	c.args = append(c.args, key, value)
}

// AddFlag appends a bare flag argument, e.g. -an or -y.
func (c *Command) AddFlag(flag string) {
	c.args = append(c.args, flag)
}

// AddFilter appends a single named video filter as -filter:v name=params.
func (c *Command) AddFilter(name, params string) {
	text := name
	if params != "" {
		text += "=" + params
	}
	c.args = append(c.args, "-filter:v", text)
}

// AddFilters appends a comma-joined simple filter list as -vf a,b,c.
func (c *Command) AddFilters(filters []string) {
	if len(filters) == 0 {
		return
	}
	c.args = append(c.args, "-vf", strings.Join(filters, ","))
}

// Validate finalizes the argument order. It fails when input or output
// was never set, and otherwise appends the output path as the last token
// unless it already is, so repeated calls never duplicate it.
func (c *Command) Validate() error {
	if c.input == "" {
		return errors.NewMissingParameter("input path")
	}
	if c.output == "" {
		return errors.NewMissingParameter("output path")
	}
	if len(c.args) == 0 || c.args[len(c.args)-1] != c.output {
		c.args = append(c.args, c.output)
	}
	return nil
}

// Program returns the engine binary name.
func (c *Command) Program() string {
	return c.program
}

// Args returns a copy of the ordered argument list.
func (c *Command) Args() []string {
	out := make([]string, len(c.args))
	copy(out, c.args)
	return out
}

// String renders the full command line for logging and error reports.
func (c *Command) String() string {
	return c.program + " " + strings.Join(c.args, " ")
}
