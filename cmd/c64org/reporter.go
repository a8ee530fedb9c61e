package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/chris-edwards-pub/c64-dir-organizer/internal/organize"
)

var (
	createdColor   = color.New(color.FgCyan)
	simulatedColor = color.New(color.Faint)
	warnColor      = color.New(color.FgYellow)
	movedColor     = color.New(color.FgGreen)
	copiedColor    = color.New(color.FgGreen)
)

// colorReporter prints the classic per-operation lines, colorized when the
// writer is a terminal (the color package disables itself otherwise).
type colorReporter struct {
	out io.Writer
}

func newColorReporter(out io.Writer) *colorReporter {
	return &colorReporter{out: out}
}

func (r *colorReporter) DirectoryCreated(path string) {
	fmt.Fprintf(r.out, "%s %s\n", createdColor.Sprint("Created directory:"), path)
}

func (r *colorReporter) SimulatedOperation(action organize.Action, source, destDir string) {
	fmt.Fprintf(r.out, "%s %s -> %s\n", simulatedColor.Sprintf("Simulated %s:", action), source, destDir)
}

func (r *colorReporter) FileExists(path string) {
	fmt.Fprintf(r.out, "%s %s\n", warnColor.Sprint("File already exists:"), path)
}

func (r *colorReporter) Skipped(source string) {
	fmt.Fprintf(r.out, "%s %s\n", warnColor.Sprint("Skipped:"), source)
}

func (r *colorReporter) Moved(source, dest string) {
	fmt.Fprintf(r.out, "%s %s -> %s\n", movedColor.Sprint("Moved:"), source, dest)
}

func (r *colorReporter) Copied(source, dest string) {
	fmt.Fprintf(r.out, "%s %s -> %s\n", copiedColor.Sprint("Copied:"), source, dest)
}
