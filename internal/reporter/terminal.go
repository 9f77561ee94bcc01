package reporter

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/cutlass-video/cutlass/internal/util"
)

const summaryRounding = 10 * time.Millisecond

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu        sync.Mutex
	progress  *progressbar.ProgressBar
	totalSecs float64
	cyan      *color.Color
	green    *color.Color
	yellow   *color.Color
	red      *color.Color
	magenta  *color.Color
	bold     *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter() *TerminalReporter {
	return &TerminalReporter{
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
	}
}

// SetTotalDuration supplies the input duration in seconds so progress
// can be shown as a percentage. Zero keeps the plain elapsed display.
func (r *TerminalReporter) SetTotalDuration(secs float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totalSecs = secs
}

// printLabel prints a bold label with fixed width padding followed by a value.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) InputSet(path string) {
	fmt.Println()
	_, _ = r.cyan.Println("INPUT")
	r.printLabel(6, "File:", path)
}

func (r *TerminalReporter) OperationQueued(description string) {
	fmt.Printf("  %s %s\n", r.magenta.Sprint("›"), description)
}

func (r *TerminalReporter) CommandCompiled(command string) {
	fmt.Println()
	_, _ = r.cyan.Println("COMMAND")
	fmt.Printf("  %s\n", command)
}

func (r *TerminalReporter) ExecutionStarted() {
	r.finishProgress()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress = progressbar.NewOptions64(
		-1,
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) ExecutionProgress(elapsedSecs float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress == nil {
		return
	}
	desc := fmt.Sprintf("Processing %s", util.FormatDuration(elapsedSecs))
	if r.totalSecs > 0 {
		pct := elapsedSecs / r.totalSecs * 100
		if pct > 100 {
			pct = 100
		}
		desc = fmt.Sprintf("Processing %s / %s (%.0f%%)",
			util.FormatDuration(elapsedSecs), util.FormatDuration(r.totalSecs), pct)
	}
	r.progress.Describe(desc)
	_ = r.progress.Add(1)
}

func (r *TerminalReporter) ExecutionComplete(summary Summary) {
	r.finishProgress()
	fmt.Println()
	_, _ = r.cyan.Println("COMPLETE")
	r.printLabel(8, "Output:", summary.OutputFile)
	r.printLabel(8, "Took:", summary.Duration.Round(summaryRounding).String())
}

func (r *TerminalReporter) Warning(message string) {
	fmt.Printf("  %s %s\n", r.yellow.Sprint("Warning:"), message)
}

func (r *TerminalReporter) Error(message string) {
	fmt.Printf("  %s %s\n", r.red.Sprint("Error:"), message)
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
}
