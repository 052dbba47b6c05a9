// Package output renders CLI output in text or JSON form, with styling
// that adapts to whether stdout is a terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	// ModeAuto picks text with color on a TTY, plain text otherwise.
	ModeAuto Mode = "auto"
	// ModeText forces human-readable text output.
	ModeText Mode = "text"
	// ModeJSON forces machine-readable JSON output.
	ModeJSON Mode = "json"
)

// ValidModes lists the accepted --output values.
var ValidModes = []string{string(ModeAuto), string(ModeText), string(ModeJSON)}

// Renderer writes formatted output to a destination.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
	isTTY  bool
}

// NewRenderer creates a renderer for the given writers and mode.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
	}
	r.styles = newStyles(out, r.colorEnabled())
	return r
}

// EffectiveMode resolves ModeAuto into a concrete mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto || r.mode == "" {
		return ModeText
	}
	return r.mode
}

// colorEnabled reports whether styled output should carry color.
func (r *Renderer) colorEnabled() bool {
	return r.isTTY && r.mode != ModeJSON
}

// Styles returns the style set matching the renderer's color capability.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the destination for primary output.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the destination for diagnostics about the run itself.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the primary output.
func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.out, s)
}

// Printf writes formatted output to the primary output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Errorf writes formatted output to the error stream.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintf(r.errOut, format, args...)
}
