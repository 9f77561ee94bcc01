package ffprobe

import "testing"

func TestParseInfo(t *testing.T) {
	raw := []byte(`{
		"format": {"duration": "125.480000"},
		"streams": [
			{"codec_type": "audio", "codec_name": "aac"},
			{"codec_type": "video", "width": 1920, "height": 1080}
		]
	}`)

	info, err := parseInfo(raw)
	if err != nil {
		t.Fatalf("parseInfo failed: %v", err)
	}
	if info.Duration != 125.48 {
		t.Errorf("Duration = %v, want 125.48", info.Duration)
	}
	if info.Width != 1920 || info.Height != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", info.Width, info.Height)
	}
}

func TestParseInfoMissingFields(t *testing.T) {
	info, err := parseInfo([]byte(`{"format": {}, "streams": []}`))
	if err != nil {
		t.Fatalf("parseInfo failed: %v", err)
	}
	if info.Duration != 0 || info.Width != 0 || info.Height != 0 {
		t.Errorf("expected zero values, got %+v", info)
	}
}

func TestParseInfoInvalidJSON(t *testing.T) {
	if _, err := parseInfo([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
