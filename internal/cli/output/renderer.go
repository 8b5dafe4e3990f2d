// Package output renders command results for terminals, scripts, and CI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

// Output modes. Auto picks text on a terminal and markdown otherwise, so
// piped output stays readable in CI logs.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes styled command output.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer writing to the given streams. An empty
// or unknown mode behaves like auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, styles: DefaultStyles()}
}

// EffectiveMode resolves auto to a concrete mode based on whether stdout
// is a terminal.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the lipgloss styles in use.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Println writes a line to the output stream.
func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the output stream.
func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Success prints a success message, styled in text mode.
func (r *Renderer) Success(msg string) {
	if r.EffectiveMode() == ModeText {
		fmt.Fprintln(r.out, r.styles.Success.Render(msg))
		return
	}
	fmt.Fprintln(r.out, msg)
}

// Warning prints a warning message to the error stream.
func (r *Renderer) Warning(msg string) {
	if r.EffectiveMode() == ModeText {
		fmt.Fprintln(r.errOut, r.styles.Warning.Render(msg))
		return
	}
	fmt.Fprintln(r.errOut, msg)
}

// Error prints an error message to the error stream.
func (r *Renderer) Error(msg string) {
	if r.EffectiveMode() == ModeText {
		fmt.Fprintln(r.errOut, r.styles.Error.Render(msg))
		return
	}
	fmt.Fprintln(r.errOut, msg)
}

// JSON writes v to the output stream as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
