package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"tidy/internal/organize"
)

// progressPrinter writes an in-place counter to interactive terminals and
// stays silent otherwise, so piped output is not littered with carriage
// returns.
type progressPrinter struct {
	w       io.Writer
	enabled bool
	active  bool
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &progressPrinter{w: w, enabled: enabled}
}

func (p *progressPrinter) update(progress organize.Progress) {
	if !p.enabled {
		return
	}
	p.active = true
	fmt.Fprintf(p.w, "\rMoving %d/%d", progress.Index, progress.Total)
}

func (p *progressPrinter) finish() {
	if p.active {
		fmt.Fprintln(p.w)
		p.active = false
	}
}
