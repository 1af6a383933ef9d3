package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether w writes to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type printer struct {
	w       io.Writer
	success *color.Color
	failure *color.Color
	detail  *color.Color
}

func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:       w,
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		detail:  color.New(color.FgCyan),
	}
	if noColor || !isTerminal(w) {
		p.success.DisableColor()
		p.failure.DisableColor()
		p.detail.DisableColor()
	} else {
		p.success.EnableColor()
		p.failure.EnableColor()
		p.detail.EnableColor()
	}
	return p
}

func (p *printer) Success(format string, args ...any) {
	_, _ = p.success.Fprint(p.w, "✓ ")
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) Failure(err error) {
	_, _ = p.failure.Fprint(p.w, "✗ ")
	_, _ = fmt.Fprintln(p.w, err)
}

func (p *printer) Detail(label, value string) {
	_, _ = fmt.Fprintf(p.w, "  %s ", label)
	_, _ = p.detail.Fprintln(p.w, value)
}
