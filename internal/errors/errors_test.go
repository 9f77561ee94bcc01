package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindInvalidParameter, "Invalid parameter"},
		{KindMissingParameter, "Missing parameter"},
		{KindPath, "Path error"},
		{KindIO, "I/O error"},
		{KindCommand, "Command error"},
		{KindCancelled, "Operation cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("ErrorKind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCoreErrorError(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &CoreError{
		Kind:       KindIO,
		Message:    "test message",
		Underlying: underlying,
	}

	got := err.Error()
	expected := "I/O error: test message: underlying error"
	if got != expected {
		t.Errorf("CoreError.Error() = %v, want %v", got, expected)
	}

	err2 := &CoreError{
		Kind:    KindInvalidParameter,
		Message: "speed factor must be positive",
	}

	got2 := err2.Error()
	expected2 := "Invalid parameter: speed factor must be positive"
	if got2 != expected2 {
		t.Errorf("CoreError.Error() = %v, want %v", got2, expected2)
	}
}

func TestCoreErrorIs(t *testing.T) {
	err1 := &CoreError{Kind: KindInvalidParameter, Message: "test1"}
	err2 := &CoreError{Kind: KindInvalidParameter, Message: "test2"}
	err3 := &CoreError{Kind: KindCommand, Message: "test3"}

	if !err1.Is(err2) {
		t.Error("Same kind errors should match")
	}

	if err1.Is(err3) {
		t.Error("Different kind errors should not match")
	}
}

func TestKindHelpers(t *testing.T) {
	invalid := NewInvalidParameter("factor %g out of range", 0.0)
	if !IsInvalidParameter(invalid) {
		t.Error("IsInvalidParameter should match NewInvalidParameter errors")
	}
	if IsMissingParameter(invalid) {
		t.Error("IsMissingParameter should not match an invalid-parameter error")
	}

	missing := NewMissingParameter("output path")
	if !IsMissingParameter(missing) {
		t.Error("IsMissingParameter should match NewMissingParameter errors")
	}

	// Wrapped errors still match by kind.
	wrapped := fmt.Errorf("while applying trim: %w", invalid)
	if !IsKind(wrapped, KindInvalidParameter) {
		t.Error("IsKind should unwrap to find the CoreError")
	}
}

func TestCommandFailedError(t *testing.T) {
	err := NewCommandFailedError("ffmpeg -i in.mp4 out.mp4", 1, "Unknown encoder")

	if !IsKind(err, KindCommand) {
		t.Error("command failure should have kind KindCommand")
	}

	cmdErr, ok := AsCommandError(err)
	if !ok {
		t.Fatal("AsCommandError should extract the CommandError")
	}
	if cmdErr.Command != "ffmpeg -i in.mp4 out.mp4" {
		t.Errorf("Command = %q, want the attempted command text", cmdErr.Command)
	}
	if cmdErr.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", cmdErr.ExitCode)
	}
	if cmdErr.Stderr != "Unknown encoder" {
		t.Errorf("Stderr = %q, want captured stderr", cmdErr.Stderr)
	}
}

func TestCommandStartError(t *testing.T) {
	underlying := errors.New("executable file not found")
	err := NewCommandStartError("ffmpeg", underlying)

	if !IsKind(err, KindCommand) {
		t.Error("start failure should have kind KindCommand")
	}
	if !errors.Is(err, underlying) {
		t.Error("start failure should wrap the underlying error")
	}
}
