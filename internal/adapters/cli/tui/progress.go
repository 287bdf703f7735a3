package tui

import (
	"fmt"
	"sync"
	"time"
)

var spinnerFrames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

// ProgressDisplay prints one line per pipeline step. Finished steps
// stay on screen; only the active step's line is redrawn in place, so
// a failed run leaves a readable trail of what completed.
type ProgressDisplay struct {
	mu       sync.Mutex
	names    []string
	active   int
	frame    int
	current  int64
	total    int64
	quiet    bool
	lastDraw time.Time
}

// NewProgressDisplay creates a display for the named pipeline steps.
func NewProgressDisplay(names []string, quiet bool) *ProgressDisplay {
	return &ProgressDisplay{names: names, active: -1, quiet: quiet}
}

// stepLine renders one step's line, e.g.
// "[2/2] Transcribing and editing... ◠ 41.0% (57 MB / 140 MB)".
func stepLine(index, total int, name, status, detail string) string {
	line := fmt.Sprintf("%s %s... %s",
		dimStyle.Render(fmt.Sprintf("[%d/%d]", index+1, total)), name, status)
	if detail != "" {
		line += " " + dimStyle.Render(detail)
	}
	return line
}

// StartStep begins redrawing the step's line with a spinner.
func (p *ProgressDisplay) StartStep(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= len(p.names) {
		return
	}
	p.active = index
	p.frame = 0
	p.current, p.total = 0, 0
	p.draw()
}

// CompleteStep finalizes the step's line with a check mark.
func (p *ProgressDisplay) CompleteStep(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= len(p.names) {
		return
	}
	p.finish(stepLine(index, len(p.names), p.names[index], successStyle.Render("✓"), ""))
	p.active = -1
}

// FailStep finalizes the step's line with the failure reason.
func (p *ProgressDisplay) FailStep(index int, reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= len(p.names) {
		return
	}
	p.finish(stepLine(index, len(p.names), p.names[index], matchStyle.Render("✗"), reason))
	p.active = -1
}

// UpdateProgress reports download bytes for the active step. Redraws
// are throttled to keep the terminal calm.
func (p *ProgressDisplay) UpdateProgress(index int, current, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index != p.active {
		return
	}
	p.current, p.total = current, total
	if time.Since(p.lastDraw) > 100*time.Millisecond {
		p.draw()
	}
}

// Tick advances the spinner on the active step.
func (p *ProgressDisplay) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active < 0 {
		return
	}
	p.frame = (p.frame + 1) % len(spinnerFrames)
	p.draw()
}

// StartSpinner animates the active step until the returned channel is
// closed.
func (p *ProgressDisplay) StartSpinner() chan struct{} {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p.Tick()
			}
		}
	}()
	return done
}

// draw rewrites the active step's line without a trailing newline.
func (p *ProgressDisplay) draw() {
	if p.quiet || p.active < 0 {
		return
	}

	detail := ""
	if p.total > 0 {
		pct := float64(p.current) / float64(p.total) * 100
		detail = fmt.Sprintf("%.1f%% (%s / %s)", pct, FormatSize(p.current), FormatSize(p.total))
	}

	fmt.Print("\r\033[K" + stepLine(p.active, len(p.names), p.names[p.active], spinnerFrames[p.frame], detail))
	p.lastDraw = time.Now()
}

// finish replaces the active line and moves to the next one.
func (p *ProgressDisplay) finish(line string) {
	if p.quiet {
		return
	}
	fmt.Print("\r\033[K" + line + "\n")
}
