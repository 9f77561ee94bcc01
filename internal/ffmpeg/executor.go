package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/logging"
)

// ExecResult contains the captured output of one engine invocation.
type ExecResult struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// ProgressFunc is called with the elapsed media time whenever the engine
// reports progress on stderr.
type ProgressFunc func(elapsedSecs float64)

// Executor runs a compiled command as a single external process. The
// compiler never parses the process output; it only carries it back to
// the caller.
type Executor interface {
	Run(ctx context.Context, cmd *Command) (*ExecResult, error)
}

// LocalExecutor runs the engine binary on the local machine.
type LocalExecutor struct {
	// Progress, when non-nil, receives elapsed media seconds parsed from
	// the engine's stderr stream.
	Progress ProgressFunc

	log *logging.Logger
}

// NewLocalExecutor creates an executor. A nil logger disables logging.
func NewLocalExecutor(log *logging.Logger) *LocalExecutor {
	if log == nil {
		log = logging.Nop()
	}
	return &LocalExecutor{log: log}
}

var timeRegex = regexp.MustCompile(`time=(\d{2}:\d{2}:\d{2}\.?\d*)`)

// Run executes the command, capturing stdout and stderr and measuring
// wall-clock duration. Failures are wrapped in a CommandError carrying
// the attempted command text and the captured error stream. There is no
// retry.
func (e *LocalExecutor) Run(ctx context.Context, cmd *Command) (*ExecResult, error) {
	e.log.Info("executing command", "command", cmd.String())

	proc := exec.CommandContext(ctx, cmd.Program(), cmd.Args()...)

	var stdout bytes.Buffer
	proc.Stdout = &stdout

	stderrPipe, err := proc.StderrPipe()
	if err != nil {
		return nil, errors.NewIOError("failed to get stderr pipe", err)
	}

	start := time.Now()
	if err := proc.Start(); err != nil {
		return nil, errors.NewCommandStartError(cmd.String(), err)
	}

	var stderrBuilder strings.Builder
	e.drainStderr(stderrPipe, &stderrBuilder)

	waitErr := proc.Wait()
	elapsed := time.Since(start)
	stderrStr := stderrBuilder.String()

	if waitErr != nil {
		if ctx.Err() != nil {
			return nil, errors.NewCancelledError(ctx.Err())
		}
		return nil, errors.WrapExecError(cmd.String(), waitErr, stderrStr)
	}

	e.log.Debug("command finished", "duration", elapsed.String())
	return &ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderrStr,
		Duration: elapsed,
	}, nil
}

// drainStderr captures the engine's stderr while feeding progress lines
// to the callback. Progress lines end with \r, regular log lines with \n.
func (e *LocalExecutor) drainStderr(stderr io.Reader, out *strings.Builder) {
	reader := bufio.NewReader(stderr)
	var lineBuf strings.Builder

	for {
		b, err := reader.ReadByte()
		if err != nil {
			if err != io.EOF {
				e.log.Warn("error reading stderr", "error", err)
			}
			break
		}

		out.WriteByte(b)

		if b == '\r' || b == '\n' {
			line := lineBuf.String()
			lineBuf.Reset()

			if e.Progress != nil && strings.Contains(line, "time=") {
				if matches := timeRegex.FindStringSubmatch(line); len(matches) >= 2 {
					if secs, ok := parseClockSeconds(matches[1]); ok {
						e.Progress(secs)
					}
				}
			}
		} else {
			lineBuf.WriteByte(b)
		}
	}
}

// parseClockSeconds parses the engine's HH:MM:SS.mmm progress token.
func parseClockSeconds(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}
	var total float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, false
		}
		total = total*60 + v
	}
	return total, true
}
