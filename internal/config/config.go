// Package config provides output option types and presets for cutlass.
package config

import (
	"fmt"
	"strings"

	"github.com/cutlass-video/cutlass/internal/errors"
)

// Default constants
const (
	// MaxCRF is the maximum valid CRF value.
	MaxCRF = 63

	// DefaultOutputSuffix is appended to the input stem when no output
	// path is given.
	DefaultOutputSuffix = "_edited"
)

// OutputOptions are the encoding parameters applied to the output file.
// The zero value means "let the engine decide"; every set field is
// emitted as an immediate argument when the output is declared.
type OutputOptions struct {
	Format       string `yaml:"format"`
	VideoCodec   string `yaml:"video_codec"`
	AudioCodec   string `yaml:"audio_codec"`
	VideoBitrate string `yaml:"video_bitrate"`
	AudioBitrate string `yaml:"audio_bitrate"`
	CRF          *int   `yaml:"crf"`
	Preset       string `yaml:"preset"`
}

// Validate checks the encoding parameters for obviously bad values.
func (o *OutputOptions) Validate() error {
	if o.CRF != nil && (*o.CRF < 0 || *o.CRF > MaxCRF) {
		return errors.NewInvalidParameter("crf %d out of range [0, %d]", *o.CRF, MaxCRF)
	}
	if o.VideoBitrate != "" && !validBitrate(o.VideoBitrate) {
		return errors.NewInvalidParameter("video bitrate %q is not a valid rate", o.VideoBitrate)
	}
	if o.AudioBitrate != "" && !validBitrate(o.AudioBitrate) {
		return errors.NewInvalidParameter("audio bitrate %q is not a valid rate", o.AudioBitrate)
	}
	return nil
}

// validBitrate accepts plain numbers with an optional k/K/m/M suffix,
// e.g. "2500k" or "2M".
func validBitrate(s string) bool {
	body := s
	switch {
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"),
		strings.HasSuffix(s, "m"), strings.HasSuffix(s, "M"):
		body = s[:len(s)-1]
	}
	if body == "" {
		return false
	}
	for _, r := range body {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Preset represents a named bundle of output options.
type Preset string

const (
	// PresetWeb targets streaming-friendly H.264 output.
	PresetWeb Preset = "web"
	// PresetArchive targets high-quality storage.
	PresetArchive Preset = "archive"
	// PresetSocial targets small files for upload limits.
	PresetSocial Preset = "social"
)

// ParsePreset parses a string into a Preset.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(s) {
	case "web":
		return PresetWeb, nil
	case "archive":
		return PresetArchive, nil
	case "social":
		return PresetSocial, nil
	default:
		return "", errors.NewInvalidParameter("unknown preset '%s', valid options: web, archive, social", s)
	}
}

// String returns the string representation of the preset.
func (p Preset) String() string {
	return string(p)
}

func intPtr(v int) *int { return &v }

// GetPresetOptions returns the bundled output options for a preset.
func GetPresetOptions(p Preset) OutputOptions {
	switch p {
	case PresetArchive:
		return OutputOptions{
			VideoCodec: "libx265",
			AudioCodec: "flac",
			CRF:        intPtr(18),
			Preset:     "slow",
		}
	case PresetSocial:
		return OutputOptions{
			Format:       "mp4",
			VideoCodec:   "libx264",
			AudioCodec:   "aac",
			VideoBitrate: "2500k",
			AudioBitrate: "128k",
			Preset:       "fast",
		}
	default: // PresetWeb
		return OutputOptions{
			Format:     "mp4",
			VideoCodec: "libx264",
			AudioCodec: "aac",
			CRF:        intPtr(23),
			Preset:     "medium",
		}
	}
}

// ConcatStrategy selects how multiple inputs are joined.
type ConcatStrategy string

const (
	// StrategyFilter re-encodes through a concat filter graph.
	StrategyFilter ConcatStrategy = "filter"
	// StrategyDemuxer joins via the concat demuxer with codec copy.
	StrategyDemuxer ConcatStrategy = "demuxer"
)

// ParseConcatStrategy parses a string into a ConcatStrategy.
func ParseConcatStrategy(s string) (ConcatStrategy, error) {
	switch strings.ToLower(s) {
	case "filter":
		return StrategyFilter, nil
	case "demuxer":
		return StrategyDemuxer, nil
	default:
		return "", errors.NewInvalidParameter("unknown concat strategy '%s', valid options: %s", s,
			fmt.Sprintf("%s, %s", StrategyFilter, StrategyDemuxer))
	}
}
