package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    OutputOptions
		wantErr bool
	}{
		{"zero value", OutputOptions{}, false},
		{"valid crf", OutputOptions{CRF: intPtr(23)}, false},
		{"crf too high", OutputOptions{CRF: intPtr(99)}, true},
		{"negative crf", OutputOptions{CRF: intPtr(-1)}, true},
		{"valid bitrate k", OutputOptions{VideoBitrate: "2500k"}, false},
		{"valid bitrate M", OutputOptions{VideoBitrate: "2M"}, false},
		{"bad bitrate", OutputOptions{VideoBitrate: "fast"}, true},
		{"bare suffix", OutputOptions{AudioBitrate: "k"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"web", "Archive", "SOCIAL"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParsePreset("vhs"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestParseConcatStrategy(t *testing.T) {
	if s, err := ParseConcatStrategy("filter"); err != nil || s != StrategyFilter {
		t.Errorf("ParseConcatStrategy(filter) = %v, %v", s, err)
	}
	if s, err := ParseConcatStrategy("Demuxer"); err != nil || s != StrategyDemuxer {
		t.Errorf("ParseConcatStrategy(Demuxer) = %v, %v", s, err)
	}
	if _, err := ParseConcatStrategy("protocol"); err == nil {
		t.Error("ParseConcatStrategy should reject unknown strategies")
	}
}

func TestLoadPresetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	content := `presets:
  podcast:
    format: mp4
    video_codec: libx264
    audio_bitrate: 192k
    crf: 20
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	pf, err := LoadPresetFile(path)
	if err != nil {
		t.Fatalf("LoadPresetFile unexpected error: %v", err)
	}

	opts, err := pf.Resolve("podcast")
	if err != nil {
		t.Fatalf("Resolve unexpected error: %v", err)
	}
	if opts.AudioBitrate != "192k" || opts.CRF == nil || *opts.CRF != 20 {
		t.Errorf("Resolve(podcast) = %+v, want loaded values", opts)
	}

	// Unknown names fall back to built-in presets.
	opts, err = pf.Resolve("web")
	if err != nil {
		t.Fatalf("Resolve(web) unexpected error: %v", err)
	}
	if opts.VideoCodec != "libx264" {
		t.Errorf("Resolve(web) = %+v, want built-in web preset", opts)
	}

	if _, err := pf.Resolve("nope"); err == nil {
		t.Error("Resolve should reject names with no file or built-in match")
	}
}

func TestLoadPresetFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	content := `presets:
  broken:
    crf: 999
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPresetFile(path); err == nil {
		t.Error("LoadPresetFile should reject out-of-range preset values")
	}

	if _, err := LoadPresetFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadPresetFile should fail for missing files")
	}
}
