package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
)

// Ensure ProgressPrinter implements the interface.
var _ driven.ProgressSink = (*ProgressPrinter)(nil)

// ProgressPrinter writes completion percentages to a stream. On a terminal
// it rewrites a single line; otherwise it prints one line per value.
type ProgressPrinter struct {
	mu      sync.Mutex
	w       io.Writer
	inPlace bool
	open    bool
}

// NewProgressPrinter creates a printer for w.
func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	p := &ProgressPrinter{w: w}
	if f, ok := w.(*os.File); ok {
		p.inPlace = term.IsTerminal(int(f.Fd()))
	}
	return p
}

// Progress prints percent.
//
//nolint:errcheck // progress output is best effort
func (p *ProgressPrinter) Progress(percent int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.inPlace {
		fmt.Fprintf(p.w, "%d%%\n", percent)
		return
	}
	fmt.Fprintf(p.w, "\rConverting... %3d%%", percent)
	p.open = percent < 100
	if !p.open {
		fmt.Fprintln(p.w)
	}
}

// Finish ends a progress line left open by a run that stopped short of 100%.
//
//nolint:errcheck // progress output is best effort
func (p *ProgressPrinter) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		fmt.Fprintln(p.w)
		p.open = false
	}
}
