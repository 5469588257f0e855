// Package progress reports build stages to the person running orgsite.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Reporter is told about each stage of a site build.
type Reporter interface {
	Start(stages int)
	Update(stage int, name string)
	Finish()
}

// NewReporter picks a progress bar when f is an interactive terminal and
// plain stage lines otherwise (pipes, files, CI logs).
func NewReporter(f *os.File) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{W: f}
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return &LineReporter{W: f}
	}
	return &BarReporter{W: f}
}

// BarReporter draws a single progress bar labelled with the current stage.
type BarReporter struct {
	W   io.Writer
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(stages int) {
	r.bar = progressbar.NewOptions(stages,
		progressbar.OptionSetDescription("Building site"),
		progressbar.OptionSetWriter(r.W),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Update(stage int, name string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(name)
	_ = r.bar.Set(stage)
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter writes one line per stage and the total build time.
type LineReporter struct {
	W io.Writer

	stages  int
	started time.Time
}

func (r *LineReporter) Start(stages int) {
	r.stages = stages
	r.started = time.Now()
}

func (r *LineReporter) Update(stage int, name string) {
	fmt.Fprintf(r.W, "[%d/%d] %s\n", stage, r.stages, name)
}

func (r *LineReporter) Finish() {
	fmt.Fprintf(r.W, "built in %s\n", time.Since(r.started).Round(time.Millisecond))
}

// Discard ignores all progress. Dev-server rebuilds use it.
type Discard struct{}

func (Discard) Start(int)          {}
func (Discard) Update(int, string) {}
func (Discard) Finish()            {}
