// Package discovery finds video files for batch operations.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/util"
)

// FindVideoFiles returns the video files directly inside dir, sorted
// case-insensitively by filename so concatenation order is stable across
// platforms. Hidden files and subdirectories are skipped.
func FindVideoFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.NewPathError(fmt.Sprintf("directory does not exist: %s", dir))
	}
	if !info.IsDir() {
		return nil, errors.NewPathError(fmt.Sprintf("%s is not a directory", dir))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("cannot read directory %s", dir), err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		if util.IsVideoFile(path) {
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		return nil, errors.NewPathError(fmt.Sprintf("no video files found in %s", dir))
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})

	return files, nil
}
