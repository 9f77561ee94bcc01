package ops

import (
	"strings"
	"testing"

	"github.com/cutlass-video/cutlass/internal/config"
	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
	"github.com/cutlass-video/cutlass/internal/timefmt"
)

func TestTrim(t *testing.T) {
	op, err := NewTrim(10, 30)
	if err != nil {
		t.Fatal(err)
	}
	args := buildWith(t, op)
	if !strings.Contains(args, "-ss 00:00:10.000") || !strings.Contains(args, "-to 00:00:30.000") {
		t.Errorf("args %q should carry clock-format window bounds", args)
	}

	op, err = NewTrim("1:30", nil)
	if err != nil {
		t.Fatal(err)
	}
	args = buildWith(t, op)
	if !strings.Contains(args, "-ss 00:01:30.000") {
		t.Errorf("args %q should carry the start bound", args)
	}
	if strings.Contains(args, "-to") {
		t.Errorf("args %q should omit -to when no end is given", args)
	}
}

func TestTrimValidation(t *testing.T) {
	if _, err := NewTrim("bogus", nil); !errors.IsInvalidParameter(err) {
		t.Errorf("malformed start: error = %v, want invalid parameter", err)
	}
	if _, err := NewTrim(30, 10); !errors.IsInvalidParameter(err) {
		t.Errorf("end before start: error = %v, want invalid parameter", err)
	}
	if _, err := NewTrim(timefmt.Timecode{Minutes: 1}, timefmt.Timecode{Minutes: 2}); err != nil {
		t.Errorf("timecode bounds: unexpected error %v", err)
	}
}

func TestResize(t *testing.T) {
	op, err := NewResize(1280, 720)
	if err != nil {
		t.Fatal(err)
	}
	if args := buildWith(t, op); !strings.Contains(args, "-vf scale=1280:720") {
		t.Errorf("args %q should contain the scale filter", args)
	}

	// Zero height keeps the aspect ratio with even dimensions.
	op, err = NewResize(1280, 0)
	if err != nil {
		t.Fatal(err)
	}
	if args := buildWith(t, op); !strings.Contains(args, "scale=1280:-2") {
		t.Errorf("args should keep aspect via -2")
	}

	if _, err := NewResize(0, 0); !errors.IsInvalidParameter(err) {
		t.Errorf("both dimensions zero: error = %v, want invalid parameter", err)
	}
	if _, err := NewResize(-1, 720); !errors.IsInvalidParameter(err) {
		t.Errorf("negative width: error = %v, want invalid parameter", err)
	}
}

func TestCrop(t *testing.T) {
	op, err := NewCrop(640, 480, 10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if args := buildWith(t, op); !strings.Contains(args, "crop=640:480:10:20") {
		t.Errorf("args %q should contain the crop filter", args)
	}

	if _, err := NewCrop(0, 480, 0, 0); !errors.IsInvalidParameter(err) {
		t.Error("zero width should be rejected")
	}
	if _, err := NewCrop(640, 480, -1, 0); !errors.IsInvalidParameter(err) {
		t.Error("negative offset should be rejected")
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{90, "-vf transpose=1"},
		{180, "-vf transpose=1,transpose=1"},
		{270, "-vf transpose=2"},
		{-90, "-vf transpose=2"},
		{450, "-vf transpose=1"},
	}

	for _, tt := range tests {
		op, err := NewRotate(tt.degrees)
		if err != nil {
			t.Fatal(err)
		}
		if args := buildWith(t, op); !strings.Contains(args, tt.want) {
			t.Errorf("rotate %g: args %q should contain %q", tt.degrees, args, tt.want)
		}
	}

	// Arbitrary angles go through the rotate filter in radians.
	op, err := NewRotate(45)
	if err != nil {
		t.Fatal(err)
	}
	if args := buildWith(t, op); !strings.Contains(args, "rotate=0.7853981633974483") {
		t.Errorf("args %q should contain the radian rotate filter", args)
	}

	if _, err := NewRotate(0); !errors.IsInvalidParameter(err) {
		t.Error("zero angle should be rejected")
	}
}

func TestEncoding(t *testing.T) {
	crf := 21
	op, err := NewEncoding(config.OutputOptions{
		VideoCodec: "libx265",
		CRF:        &crf,
	})
	if err != nil {
		t.Fatal(err)
	}

	args := buildWith(t, op)
	if !strings.Contains(args, "-c:v libx265") || !strings.Contains(args, "-crf 21") {
		t.Errorf("args %q should carry the encoding parameters", args)
	}

	if _, err := NewEncoding(config.OutputOptions{}); !errors.IsInvalidParameter(err) {
		t.Error("empty encoding options should be rejected")
	}

	bad := 99
	if _, err := NewEncoding(config.OutputOptions{CRF: &bad}); !errors.IsInvalidParameter(err) {
		t.Error("out-of-range CRF should be rejected")
	}
}

// Operations applied against a shared builder keep call order within the
// simple filter chain.
func TestOperationOrderPreserved(t *testing.T) {
	b := ffmpeg.NewBuilder(nil)
	b.WithInput("in.mp4").WithOutput("out.mp4", nil)

	resize, _ := NewResize(1280, 720)
	crop, _ := NewCrop(640, 480, 0, 0)
	if err := b.AddOperation(resize); err != nil {
		t.Fatal(err)
	}
	if err := b.AddOperation(crop); err != nil {
		t.Fatal(err)
	}

	cmd, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	args := strings.Join(cmd.Args(), " ")
	if !strings.Contains(args, "-vf scale=1280:720,crop=640:480:0:0") {
		t.Errorf("args %q should preserve insertion order", args)
	}
}
