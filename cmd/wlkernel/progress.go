// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// progress renders one bar per kernel operation, advanced by the kernel's
// per-round hook.
type progress struct {
	mu  sync.Mutex
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgress(w io.Writer) *progress {
	return &progress{w: w}
}

// start replaces the current bar with a fresh one of total rounds.
func (p *progress) start(desc string, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("rounds"),
		progressbar.OptionClearOnFinish(),
	)
}

// step is the kernel's OnIteration hook.
func (p *progress) step(_, _ int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// finish completes the current bar.
func (p *progress) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
}
