// Package cli holds the operator commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	ansiGreen = "\x1b[32;1m"
	ansiRed   = "\x1b[31;1m"
	ansiReset = "\x1b[0m"
)

// Console writes operator-facing lines, colored when attached to a terminal.
type Console struct {
	out   io.Writer
	color bool
}

// NewConsole wraps out. Colors are enabled only for terminal file descriptors.
func NewConsole(out io.Writer) *Console {
	color := false
	if f, ok := out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}

	return &Console{out: out, color: color}
}

// Success writes a line styled as a success notice.
func (c *Console) Success(format string, args ...any) {
	c.line(ansiGreen, format, args...)
}

// Error writes a line styled as a failure notice.
func (c *Console) Error(format string, args ...any) {
	c.line(ansiRed, format, args...)
}

func (c *Console) line(style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.color {
		msg = style + msg + ansiReset
	}
	_, _ = fmt.Fprintln(c.out, msg)
}
