package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cutlass-video/cutlass/internal/errors"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindVideoFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "B.mp4")
	touch(t, dir, "a.mkv")
	touch(t, dir, "notes.txt")
	touch(t, dir, ".hidden.mp4")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := FindVideoFiles(dir)
	if err != nil {
		t.Fatalf("FindVideoFiles failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.mkv"),
		filepath.Join(dir, "B.mp4"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d: %v", len(files), len(want), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func TestFindVideoFilesEmpty(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "readme.md")

	_, err := FindVideoFiles(dir)
	if err == nil {
		t.Fatal("expected error for directory without videos")
	}
	if !errors.IsKind(err, errors.KindPath) {
		t.Errorf("expected path error, got %v", err)
	}
}

func TestFindVideoFilesMissingDir(t *testing.T) {
	_, err := FindVideoFiles(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
