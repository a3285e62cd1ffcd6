package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/custodia-labs/wikiplain/internal/core/domain"
	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
)

// maxStderr caps how much of a failing program's stderr is kept.
const maxStderr = 8 << 10

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor runs one process per page. The program receives the raw text
// on stdin and must write the plain text to stdout.
type Extractor struct {
	name string
	args []string
}

// New creates an extractor for argv. The program must be on PATH or be
// given by path.
func New(argv []string) (*Extractor, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, fmt.Errorf("%w: command extractor requires a command", domain.ErrInvalidInput)
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return &Extractor{name: argv[0], args: argv[1:]}, nil
}

// PlainText runs the program on raw. A non-zero exit is an error carrying
// the program's stderr.
func (e *Extractor) PlainText(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	cmd := exec.CommandContext(ctx, e.name, e.args...)
	var out, errb bytes.Buffer
	cmd.Stdin = strings.NewReader(raw)
	cmd.Stdout = &out
	cmd.Stderr = &errb

	if err := cmd.Run(); err != nil {
		if msg := truncate(strings.TrimSpace(errb.String()), maxStderr); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", e.name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", e.name, err)
	}
	return strings.TrimRight(out.String(), "\n"), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
