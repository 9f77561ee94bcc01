package cutlass

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutlass-video/cutlass/internal/errors"
	"github.com/cutlass-video/cutlass/internal/ffmpeg"
)

// fakeExecutor records every command it is asked to run instead of
// spawning a process.
type fakeExecutor struct {
	ran []*ffmpeg.Command
	err error
}

func (f *fakeExecutor) Run(_ context.Context, cmd *ffmpeg.Command) (*ffmpeg.ExecResult, error) {
	f.ran = append(f.ran, cmd)
	if f.err != nil {
		return nil, f.err
	}
	return &ffmpeg.ExecResult{Duration: time.Second}, nil
}

func writeTempVideo(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0o644))
	return path
}

func TestOpenMissingInput(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindPath))
}

func TestSaveCompilesSingleCommand(t *testing.T) {
	input := writeTempVideo(t, "clip.mp4")
	exec := &fakeExecutor{}

	clip, err := Open(input, WithExecutor(exec))
	require.NoError(t, err)

	result, err := clip.
		Trim(10, 30).
		Resize(1280, 0).
		Save(context.Background(), "out.mp4")
	require.NoError(t, err)
	require.Len(t, exec.ran, 1)

	args := exec.ran[0].Args()
	assert.Equal(t, []string{"-i", input, "-ss", "00:00:10.000", "-to", "00:00:30.000",
		"-vf", "scale=1280:-2", "out.mp4"}, args)
	assert.Equal(t, "out.mp4", result.OutputFile)
	assert.Equal(t, exec.ran[0].String(), result.Command)
}

func TestQueuedErrorSurfacesAtSave(t *testing.T) {
	input := writeTempVideo(t, "clip.mp4")
	exec := &fakeExecutor{}

	clip, err := Open(input, WithExecutor(exec))
	require.NoError(t, err)

	clip.Speed(0).Resize(640, 480)
	require.Error(t, clip.Err())

	_, err = clip.Save(context.Background(), "out.mp4")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))
	assert.Empty(t, exec.ran, "engine must not run on a poisoned queue")
}

func TestSaveDefaultOutputPath(t *testing.T) {
	input := writeTempVideo(t, "clip.mp4")
	exec := &fakeExecutor{}

	clip, err := Open(input, WithExecutor(exec))
	require.NoError(t, err)

	result, err := clip.Resize(640, 480).Save(context.Background(), "")
	require.NoError(t, err)

	want := filepath.Join(filepath.Dir(input), "clip_edited.mp4")
	assert.Equal(t, want, result.OutputFile)
	args := exec.ran[0].Args()
	assert.Equal(t, want, args[len(args)-1], "output path must be the final argument")
}

func TestSaveWithOutputOptions(t *testing.T) {
	input := writeTempVideo(t, "clip.mp4")
	exec := &fakeExecutor{}

	clip, err := Open(input,
		WithExecutor(exec),
		WithOutputOptions(OutputOptions{VideoCodec: "libx264", AudioBitrate: "128k"}))
	require.NoError(t, err)

	_, err = clip.Resize(640, 480).Save(context.Background(), "out.mp4")
	require.NoError(t, err)

	line := exec.ran[0].String()
	assert.Contains(t, line, "-c:v libx264")
	assert.Contains(t, line, "-b:a 128k")
}

func TestOpenRejectsInvalidOutputOptions(t *testing.T) {
	input := writeTempVideo(t, "clip.mp4")

	crf := 200
	_, err := Open(input, WithOutputOptions(OutputOptions{CRF: &crf}))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))
}

func TestOverlayMissingImage(t *testing.T) {
	input := writeTempVideo(t, "clip.mp4")

	clip, err := Open(input, WithExecutor(&fakeExecutor{}))
	require.NoError(t, err)

	clip.Overlay(filepath.Join(t.TempDir(), "missing.png"), OverlayOptions{})
	require.Error(t, clip.Err())
	assert.True(t, errors.IsKind(clip.Err(), errors.KindPath))
}

func TestConcatFilterStrategy(t *testing.T) {
	a := writeTempVideo(t, "a.mp4")
	b := writeTempVideo(t, "b.mp4")
	exec := &fakeExecutor{}

	result, err := Concat(context.Background(), []string{a, b}, "joined.mp4",
		ConcatOptions{}, WithExecutor(exec))
	require.NoError(t, err)
	require.Len(t, exec.ran, 1)

	line := exec.ran[0].String()
	assert.Contains(t, line, "-filter_complex")
	assert.Contains(t, line, "concat=n=2:v=1:a=1")
	assert.True(t, strings.HasSuffix(line, "joined.mp4"))
	assert.Equal(t, "joined.mp4", result.OutputFile)
}

func TestConcatDemuxerCleansUpListFile(t *testing.T) {
	a := writeTempVideo(t, "a.mp4")
	b := writeTempVideo(t, "b.mp4")
	exec := &fakeExecutor{}

	var listPath string
	_, err := Concat(context.Background(), []string{a, b}, "joined.mp4",
		ConcatOptions{Strategy: StrategyDemuxer}, WithExecutor(exec))
	require.NoError(t, err)
	require.Len(t, exec.ran, 1)

	args := exec.ran[0].Args()
	for i, arg := range args {
		if arg == "-i" {
			listPath = args[i+1]
		}
	}
	require.NotEmpty(t, listPath)
	_, statErr := os.Stat(listPath)
	assert.True(t, os.IsNotExist(statErr), "list file must be removed after the run")

	line := exec.ran[0].String()
	assert.Contains(t, line, "-f concat")
	assert.Contains(t, line, "-c copy")
}

func TestConcatDefaultOutputPath(t *testing.T) {
	a := writeTempVideo(t, "first.mp4")
	b := writeTempVideo(t, "second.mp4")
	exec := &fakeExecutor{}

	result, err := Concat(context.Background(), []string{a, b}, "", ConcatOptions{}, WithExecutor(exec))
	require.NoError(t, err)

	want := filepath.Join(filepath.Dir(a), "first_joined.mp4")
	assert.Equal(t, want, result.OutputFile)
}

func TestConcatNoInputs(t *testing.T) {
	_, err := Concat(context.Background(), nil, "out.mp4", ConcatOptions{}, WithExecutor(&fakeExecutor{}))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))
}
