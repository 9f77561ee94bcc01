// Package reporter provides progress reporting for cutlass builds.
package reporter

import "time"

// Summary describes a finished build.
type Summary struct {
	OutputFile string
	Command    string
	Duration   time.Duration
}

// Reporter defines the interface for progress reporting. It is purely
// informational and never consulted for control flow.
type Reporter interface {
	InputSet(path string)
	OperationQueued(description string)
	CommandCompiled(command string)
	ExecutionStarted()
	ExecutionProgress(elapsedSecs float64)
	ExecutionComplete(summary Summary)
	Warning(message string)
	Error(message string)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) InputSet(string)           {}
func (NullReporter) OperationQueued(string)    {}
func (NullReporter) CommandCompiled(string)    {}
func (NullReporter) ExecutionStarted()         {}
func (NullReporter) ExecutionProgress(float64) {}
func (NullReporter) ExecutionComplete(Summary) {}
func (NullReporter) Warning(string)            {}
func (NullReporter) Error(string)              {}
