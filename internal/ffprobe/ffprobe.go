// Package ffprobe extracts media information using the ffprobe binary.
package ffprobe

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"

	"github.com/cutlass-video/cutlass/internal/errors"
)

// MediaInfo contains the media properties cutlass consumes: stream
// duration for progress reporting and validation, dimensions for
// informational output.
type MediaInfo struct {
	Duration float64
	Width    int64
	Height   int64
}

// probeOutput represents the JSON output from ffprobe.
type probeOutput struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

type probeStream struct {
	CodecType string `json:"codec_type"`
	Width     int64  `json:"width"`
	Height    int64  `json:"height"`
}

// run executes ffprobe and returns its raw JSON output.
func run(ctx context.Context, inputPath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inputPath,
	)

	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		return nil, errors.WrapExecError("ffprobe "+inputPath, err, stderr)
	}

	return output, nil
}

// Probe returns basic media information for a file.
func Probe(ctx context.Context, inputPath string) (*MediaInfo, error) {
	output, err := run(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	return parseInfo(output)
}

// parseInfo extracts the consumed fields from raw ffprobe JSON.
func parseInfo(output []byte) (*MediaInfo, error) {
	var probe probeOutput
	if err := json.Unmarshal(output, &probe); err != nil {
		return nil, errors.NewIOError("failed to parse ffprobe output", err)
	}

	info := &MediaInfo{}
	if probe.Format.Duration != "" {
		if secs, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
			info.Duration = secs
		}
	}
	for _, stream := range probe.Streams {
		if stream.CodecType == "video" {
			info.Width = stream.Width
			info.Height = stream.Height
			break
		}
	}

	return info, nil
}
