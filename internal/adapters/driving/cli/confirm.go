package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
)

// Ensure TerminalConfirmer implements the interface.
var _ driven.Confirmer = (*TerminalConfirmer)(nil)

// TerminalConfirmer asks yes/no questions on the terminal.
// Without a terminal every question is declined unless assumeYes is set.
type TerminalConfirmer struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	assumeYes   bool
}

// NewTerminalConfirmer creates a confirmer reading from in.
func NewTerminalConfirmer(in io.Reader, out io.Writer, assumeYes bool) *TerminalConfirmer {
	f, ok := in.(*os.File)
	return &TerminalConfirmer{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: ok && term.IsTerminal(int(f.Fd())),
		assumeYes:   assumeYes,
	}
}

// Confirm prints the question and reads the answer. Only "y" or "yes" confirm.
func (c *TerminalConfirmer) Confirm(title, message string) bool {
	if c.assumeYes {
		return true
	}
	if !c.interactive {
		return false
	}

	fmt.Fprintf(c.out, "%s: %s [y/N]: ", title, message)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
