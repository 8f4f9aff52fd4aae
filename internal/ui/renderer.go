package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vvka-141/fshell/pkg/fshell"
)

// Renderer turns operation results into console text.
//
// A plain Renderer writes exactly the message, the output lines and an
// "Error: ..." line, followed by a blank separator line. A styled Renderer
// writes the same text with colors and status symbols.
type Renderer struct {
	out    io.Writer
	styled bool
	styles styles
}

// NewRenderer creates a Renderer writing to out.
// Panics if out is nil.
func NewRenderer(out io.Writer, styled bool) *Renderer {
	if out == nil {
		panic("out cannot be nil")
	}

	lr := lipgloss.NewRenderer(out)
	if styled {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{out: out, styled: styled, styles: newStyles(lr)}
}

// Styled reports whether the renderer emits ANSI styling.
func (r *Renderer) Styled() bool {
	return r.styled
}

// Result writes res.
func (r *Renderer) Result(res fshell.Result) {
	var sb strings.Builder

	if res.Message != "" {
		if r.styled && res.Succeeded() {
			sb.WriteString(r.styles.success.Render(SymbolCheck + " " + res.Message))
		} else {
			sb.WriteString(res.Message)
		}
		sb.WriteString("\n")
	}

	for _, line := range res.Output {
		sb.WriteString(r.style(r.styles.output, line))
		sb.WriteString("\n")
	}

	if res.Err != nil {
		sb.WriteString(r.errorLine(res.Err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	fmt.Fprint(r.out, sb.String())
}

// Notice writes a message that is not tied to an operation, such as a
// usage hint or a rejected command, followed by a blank line.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.out, r.style(r.styles.err, msg))
	fmt.Fprintln(r.out)
}

// Line writes msg as is.
func (r *Renderer) Line(msg string) {
	fmt.Fprintln(r.out, msg)
}

// Prompt writes the prompt without a trailing newline.
func (r *Renderer) Prompt(prompt string) {
	fmt.Fprint(r.out, r.style(r.styles.prompt, prompt))
}

// Help writes a titled list of command descriptions.
func (r *Renderer) Help(title string, lines []string) {
	fmt.Fprintln(r.out, r.style(r.styles.title, title))
	for _, line := range lines {
		if r.styled {
			fmt.Fprintln(r.out, r.styles.muted.Render(SymbolBullet)+" "+line)
		} else {
			fmt.Fprintln(r.out, line)
		}
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) errorLine(msg string) string {
	if r.styled {
		return r.styles.err.Render(SymbolCross + " Error: " + msg)
	}
	return "Error: " + msg
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}
