package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// terminalConfirmer asks the interactive question the tool has always asked
// before replacing a file during a move. Any answer other than "y" declines.
type terminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalConfirmer(in io.Reader, out io.Writer) *terminalConfirmer {
	return &terminalConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *terminalConfirmer) ConfirmOverwrite(path string) (bool, error) {
	fmt.Fprintf(c.out, "Overwrite %s? (y/n): ", path)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		// EOF mid-prompt declines rather than aborting the whole run.
		return false, nil
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
