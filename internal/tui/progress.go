package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
)

const (
	progressBarWidth = 40
	phaseLabelWidth  = 30
)

// ProgressReporter draws catalog loading progress on one line per phase.
// Interactive terminals get a bar; anything else gets "\rPhase:  50.0%".
type ProgressReporter struct {
	out         io.Writer
	interactive bool
	bar         progress.Model
	phase       string
}

// NewProgressReporter creates a reporter writing to out.
func NewProgressReporter(out io.Writer, interactive bool) *ProgressReporter {
	return &ProgressReporter{
		out:         out,
		interactive: interactive,
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressBarWidth)),
	}
}

// Report redraws the current phase. Starting a new phase ends the previous line.
// It matches fs2dt.ProgressFunc.
func (r *ProgressReporter) Report(phase string, fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if r.phase != "" && phase != r.phase {
		fmt.Fprintln(r.out)
	}
	r.phase = phase

	if r.interactive {
		label := PhaseStyle.Render(fmt.Sprintf("%-*s", phaseLabelWidth, phase+":"))
		fmt.Fprintf(r.out, "\r%s %s", label, r.bar.ViewAs(fraction))
		return
	}
	fmt.Fprintf(r.out, "\r%s: %5.1f%%", phase, fraction*100)
}

// Done terminates the last progress line.
func (r *ProgressReporter) Done() {
	if r.phase != "" {
		fmt.Fprintln(r.out)
		r.phase = ""
	}
}
