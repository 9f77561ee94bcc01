// Package main provides the CLI entry point for cutlass.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cutlass-video/cutlass"
	"github.com/cutlass-video/cutlass/internal/config"
	"github.com/cutlass-video/cutlass/internal/discovery"
	"github.com/cutlass-video/cutlass/internal/ffprobe"
	"github.com/cutlass-video/cutlass/internal/logging"
	"github.com/cutlass-video/cutlass/internal/reporter"
	"github.com/cutlass-video/cutlass/internal/validation"
)

const (
	appName    = "cutlass"
	appVersion = "0.1.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Declarative video editing with FFmpeg",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Structured logs only clutter the reporter output unless the
			// user asked for them.
			logging.SetGlobal(logging.New(logging.Config{
				Level:   logging.LevelDebug,
				Output:  os.Stderr,
				Enabled: verbose,
			}))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEditCmd())
	root.AddCommand(newConcatCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	})
	return root
}

// editFlags holds every flag of the edit command. Operations are applied
// in a fixed order: trim, crop, resize, rotate, speed, color, overlay,
// text.
type editFlags struct {
	output string
	preset string

	trimStart string
	trimEnd   string
	resize    string
	crop      string
	rotate    float64
	speed     float64

	brightness float64
	contrast   float64
	saturation float64

	overlay         string
	overlayPosition string
	overlayPadding  int
	overlayStart    string
	overlayEnd      string

	text         string
	textPosition string
	textPadding  int
	fontSize     int
	fontColor    string
	fontFile     string

	videoCodec   string
	audioCodec   string
	videoBitrate string
	audioBitrate string
	crf          int
}

func newEditCmd() *cobra.Command {
	var ef editFlags

	cmd := &cobra.Command{
		Use:   "edit <input>",
		Short: "Apply edit operations to a video file",
		Long: `Apply edit operations to a video file.

All requested operations are compiled into a single FFmpeg invocation,
applied in this order: trim, crop, resize, rotate, speed, color
adjustment, overlay, text. Omitting --output writes next to the input
with an ` + config.DefaultOutputSuffix + ` suffix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], &ef)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&ef.output, "output", "o", "", "output file path")
	f.StringVar(&ef.preset, "preset", "", "output preset (web, archive, social, or from a preset file)")

	f.StringVar(&ef.trimStart, "start", "", "trim start ([[HH:]MM:]SS[.mmm] or seconds)")
	f.StringVar(&ef.trimEnd, "end", "", "trim end ([[HH:]MM:]SS[.mmm] or seconds)")
	f.StringVar(&ef.resize, "resize", "", "resize to WxH; 0 for either keeps aspect ratio")
	f.StringVar(&ef.crop, "crop", "", "crop region as W:H:X:Y")
	f.Float64Var(&ef.rotate, "rotate", 0, "rotate by degrees")
	f.Float64Var(&ef.speed, "speed", 0, "playback speed factor")

	f.Float64Var(&ef.brightness, "brightness", 0, "brightness adjustment (-1.0 to 1.0)")
	f.Float64Var(&ef.contrast, "contrast", 0, "contrast multiplier (-2.0 to 2.0)")
	f.Float64Var(&ef.saturation, "saturation", 0, "saturation multiplier (0.0 to 3.0)")

	f.StringVar(&ef.overlay, "overlay", "", "overlay image file")
	f.StringVar(&ef.overlayPosition, "overlay-position", "", "overlay anchor (e.g. top-left, center, bottom-right)")
	f.IntVar(&ef.overlayPadding, "overlay-padding", 0, "overlay padding from the anchored edges in pixels")
	f.StringVar(&ef.overlayStart, "overlay-start", "", "overlay visibility start time")
	f.StringVar(&ef.overlayEnd, "overlay-end", "", "overlay visibility end time")

	f.StringVar(&ef.text, "text", "", "text to draw over the video")
	f.StringVar(&ef.textPosition, "text-position", "", "text anchor (e.g. top-left, center, bottom-right)")
	f.IntVar(&ef.textPadding, "text-padding", 0, "text padding from the anchored edges in pixels")
	f.IntVar(&ef.fontSize, "font-size", 0, "font size in points")
	f.StringVar(&ef.fontColor, "font-color", "", "font color")
	f.StringVar(&ef.fontFile, "font-file", "", "font file path")

	f.StringVar(&ef.videoCodec, "vcodec", "", "video codec")
	f.StringVar(&ef.audioCodec, "acodec", "", "audio codec")
	f.StringVar(&ef.videoBitrate, "vbitrate", "", "video bitrate (e.g. 2M)")
	f.StringVar(&ef.audioBitrate, "abitrate", "", "audio bitrate (e.g. 128k)")
	f.IntVar(&ef.crf, "crf", -1, "constant rate factor (0-63)")

	return cmd
}

func runEdit(cmd *cobra.Command, input string, ef *editFlags) error {
	ctx, cancel := signalContext()
	defer cancel()

	rep := reporter.NewTerminalReporter()
	if info, err := ffprobe.Probe(ctx, input); err == nil && info.Duration > 0 {
		rep.SetTotalDuration(info.Duration)
	}

	opts := []cutlass.Option{
		cutlass.WithLogger(logging.Global()),
		cutlass.WithReporter(rep),
	}
	if ef.preset != "" {
		opts = append(opts, cutlass.WithPreset(ef.preset))
	}
	if out := explicitOutputOptions(cmd, ef); out != nil {
		opts = append(opts, cutlass.WithOutputOptions(*out))
	}

	clip, err := cutlass.Open(input, opts...)
	if err != nil {
		return err
	}

	if ef.trimStart != "" || ef.trimEnd != "" {
		start := any(0)
		if ef.trimStart != "" {
			start = ef.trimStart
		}
		var end any
		if ef.trimEnd != "" {
			end = ef.trimEnd
		}
		clip.Trim(start, end)
	}
	if ef.crop != "" {
		w, h, x, y, err := parseCrop(ef.crop)
		if err != nil {
			return err
		}
		clip.Crop(w, h, x, y)
	}
	if ef.resize != "" {
		w, h, err := parseResize(ef.resize)
		if err != nil {
			return err
		}
		clip.Resize(w, h)
	}
	if cmd.Flags().Changed("rotate") {
		clip.Rotate(ef.rotate)
	}
	if cmd.Flags().Changed("speed") {
		clip.Speed(ef.speed)
	}

	var colors cutlass.ColorOptions
	if cmd.Flags().Changed("brightness") {
		colors.Brightness = &ef.brightness
	}
	if cmd.Flags().Changed("contrast") {
		colors.Contrast = &ef.contrast
	}
	if cmd.Flags().Changed("saturation") {
		colors.Saturation = &ef.saturation
	}
	if colors.Brightness != nil || colors.Contrast != nil || colors.Saturation != nil {
		clip.AdjustColor(colors)
	}

	if ef.overlay != "" {
		clip.Overlay(ef.overlay, cutlass.OverlayOptions{
			Position: cutlass.Anchor(ef.overlayPosition),
			Padding:  ef.overlayPadding,
			Start:    timeArg(ef.overlayStart),
			End:      timeArg(ef.overlayEnd),
		})
	}
	if ef.text != "" {
		clip.Text(ef.text, cutlass.TextOptions{
			FontSize: ef.fontSize,
			Color:    ef.fontColor,
			FontFile: ef.fontFile,
			Position: cutlass.Anchor(ef.textPosition),
			Padding:  ef.textPadding,
		})
	}

	result, err := clip.Save(ctx, ef.output)
	if err != nil {
		return err
	}
	return validation.CheckOutput(result.OutputFile)
}

func newConcatCmd() *cobra.Command {
	var (
		output    string
		strategy  string
		videoOnly bool
	)

	cmd := &cobra.Command{
		Use:   "concat <input>... | <directory>",
		Short: "Join multiple video files into one",
		Long: `Join multiple video files into one.

Inputs are joined in argument order. A single directory argument joins
every video file inside it, sorted by filename.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			st, err := config.ParseConcatStrategy(strategy)
			if err != nil {
				return err
			}

			inputs := args
			if len(args) == 1 {
				if info, statErr := os.Stat(args[0]); statErr == nil && info.IsDir() {
					inputs, err = discovery.FindVideoFiles(args[0])
					if err != nil {
						return err
					}
				}
			}
			if len(inputs) < 2 {
				return fmt.Errorf("concat requires at least two inputs, got %d", len(inputs))
			}

			rep := reporter.NewTerminalReporter()
			var expectedSecs float64
			for _, in := range inputs {
				info, probeErr := ffprobe.Probe(ctx, in)
				if probeErr != nil {
					expectedSecs = 0
					break
				}
				expectedSecs += info.Duration
			}
			if expectedSecs > 0 {
				rep.SetTotalDuration(expectedSecs)
			}

			result, err := cutlass.Concat(ctx, inputs, output,
				cutlass.ConcatOptions{Strategy: st, VideoOnly: videoOnly},
				cutlass.WithLogger(logging.Global()),
				cutlass.WithReporter(rep))
			if err != nil {
				return err
			}
			if err := validation.CheckOutput(result.OutputFile); err != nil {
				return err
			}
			if expectedSecs > 0 {
				if info, probeErr := ffprobe.Probe(ctx, result.OutputFile); probeErr == nil && info.Duration > 0 {
					if err := validation.CheckDuration(info.Duration, expectedSecs); err != nil {
						rep.Warning(err.Error())
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&strategy, "strategy", string(config.StrategyFilter),
		"concat strategy: filter (re-encode) or demuxer (stream copy)")
	cmd.Flags().BoolVar(&videoOnly, "video-only", false, "drop audio (filter strategy only)")

	return cmd
}

// explicitOutputOptions collects the encoding flags into options, or nil
// when none was given so preset values are not clobbered.
func explicitOutputOptions(cmd *cobra.Command, ef *editFlags) *cutlass.OutputOptions {
	out := cutlass.OutputOptions{
		VideoCodec:   ef.videoCodec,
		AudioCodec:   ef.audioCodec,
		VideoBitrate: ef.videoBitrate,
		AudioBitrate: ef.audioBitrate,
	}
	changed := out != (cutlass.OutputOptions{})
	if cmd.Flags().Changed("crf") {
		out.CRF = &ef.crf
		changed = true
	}
	if !changed {
		return nil
	}
	return &out
}

// timeArg passes a time flag through as an any, keeping absent flags nil.
func timeArg(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func parseResize(s string) (w, h int, err error) {
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid resize %q: expected WxH", s)
	}
	return w, h, nil
}

func parseCrop(s string) (w, h, x, y int, err error) {
	if _, err := fmt.Sscanf(s, "%d:%d:%d:%d", &w, &h, &x, &y); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid crop %q: expected W:H:X:Y", s)
	}
	return w, h, x, y, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
