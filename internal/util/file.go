// Package util provides file and formatting helpers.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// VideoExtensions is the list of supported video file extensions.
var VideoExtensions = map[string]bool{
	".mkv":  true,
	".wmv":  true,
	".ts":   true,
	".avi":  true,
	".mp4":  true,
	".m4v":  true,
	".mpg":  true,
	".mpeg": true,
	".mov":  true,
	".webm": true,
	".flv":  true,
	".m2ts": true,
	".ogv":  true,
	".vob":  true,
}

// FileExists checks if the given path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsVideoFile checks if the given path is an existing video file.
func IsVideoFile(path string) bool {
	if !FileExists(path) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	return VideoExtensions[ext]
}

// GetFileStem returns the filename without extension.
func GetFileStem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// DerivedOutputPath synthesizes an output path next to the input by
// appending a suffix to the file stem, e.g. in.mp4 -> in_edited.mp4.
func DerivedOutputPath(input, suffix string) string {
	dir := filepath.Dir(input)
	ext := filepath.Ext(input)
	return filepath.Join(dir, GetFileStem(input)+suffix+ext)
}
