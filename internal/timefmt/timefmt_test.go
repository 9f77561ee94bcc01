package timefmt

import (
	"math"
	"testing"

	"github.com/cutlass-video/cutlass/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"30", 30, false},
		{"30.5", 30.5, false},
		{"01:30", 90, false},
		{"1:30", 90, false},
		{"00:01:30", 90, false},
		{"01:01:01", 3661, false},
		{"00:00:30.535", 30.535, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1:2:3:4", 0, true},
		{"1::3", 0, true},
		{"-5", 0, true},
		{"1.5:30", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got.Seconds())
				}
				if !errors.IsInvalidParameter(err) {
					t.Errorf("Parse(%q) error kind = %v, want invalid parameter", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if math.Abs(got.Seconds()-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got.Seconds(), tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "00:00:00.000"},
		{90, "00:01:30.000"},
		{3661, "01:01:01.000"},
		{30.5, "00:00:30.500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FromSeconds(tt.secs).Format(StyleClock); got != tt.want {
				t.Errorf("Format(StyleClock) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0"},
		{90, "90"},
		{30.5, "30.5"},
		{1.25, "1.25"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FromSeconds(tt.secs).Format(StyleSeconds); got != tt.want {
				t.Errorf("Format(StyleSeconds) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromTimecode(t *testing.T) {
	tc := Timecode{Hours: 1, Minutes: 2, Seconds: 3, Frames: 12, FPS: 24}
	got, err := FromTimecode(tc)
	if err != nil {
		t.Fatalf("FromTimecode unexpected error: %v", err)
	}
	want := 3600.0 + 120 + 3 + 0.5
	if math.Abs(got.Seconds()-want) > 1e-9 {
		t.Errorf("FromTimecode = %v, want %v", got.Seconds(), want)
	}

	// Frames fall back to DefaultFPS when no rate is given.
	got, err = FromTimecode(Timecode{Seconds: 1, Frames: 25})
	if err != nil {
		t.Fatalf("FromTimecode unexpected error: %v", err)
	}
	if math.Abs(got.Seconds()-2.0) > 1e-9 {
		t.Errorf("FromTimecode with default fps = %v, want 2", got.Seconds())
	}

	if _, err := FromTimecode(Timecode{Hours: -1}); err == nil {
		t.Error("negative timecode fields should be rejected")
	}
}

func TestFormatHeterogeneous(t *testing.T) {
	tests := []struct {
		name  string
		value any
		style Style
		want  string
	}{
		{"float seconds clock", 90.0, StyleClock, "00:01:30.000"},
		{"int seconds expr", 5, StyleSeconds, "5"},
		{"string clock", "1:30", StyleClock, "00:01:30.000"},
		{"timecode expr", Timecode{Minutes: 1, Seconds: 30}, StyleSeconds, "90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.value, tt.style)
			if err != nil {
				t.Fatalf("Format unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := Format(struct{}{}, StyleClock); err == nil {
		t.Error("unsupported type should be rejected")
	}
	if _, err := Format("not-a-time", StyleClock); err == nil {
		t.Error("malformed string should be rejected")
	}
}
