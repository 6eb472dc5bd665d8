// Package help rendering functions.
// This file lays out argument headers and their wrapped help text.

package help

import (
	"io"
	"math"
	"strings"

	"github.com/toejough/argtable/internal/flags"
)

// Renderer writes help for a schema.
type Renderer struct {
	// Width is the terminal width in columns; zero or less disables wrapping.
	Width  int
	Styles Styles
}

// NewRenderer returns a renderer sized from the environment with default styles.
func NewRenderer() *Renderer {
	return &Renderer{Width: TerminalWidth(), Styles: DefaultStyles()}
}

// Render writes the schema description followed by one entry per argument.
//
// Each entry starts on a fresh line after a blank one, with the header
// left-aligned in a column as wide as the widest header and the help text
// wrapped to the remaining width. Continuation lines are indented to the
// text column.
func (r *Renderer) Render(w io.Writer, schema *flags.Schema) error {
	var out strings.Builder

	if schema.Description != "" {
		r.writeBlock(&out, r.columns(0), schema.Description, "", r.Styles.Description.Render)
	}

	headerWidth := schema.HeaderWidth()
	indent := strings.Repeat(" ", headerWidth+1)

	for _, d := range schema.Descriptors() {
		header := r.Styles.Flag.Render(flags.Header(d))

		out.WriteString("\n")
		out.WriteString(header)

		text := flags.HelpText(d)
		if text == "" {
			out.WriteString("\n")
			continue
		}

		out.WriteString(strings.Repeat(" ", max(headerWidth-VisibleWidth(header), 0)+1))
		r.writeBlock(&out, r.columns(headerWidth+1), text, indent, unstyled)
	}

	_, err := io.WriteString(w, out.String())

	return err
}

// columns returns the text width left after reserved columns.
func (r *Renderer) columns(reserved int) int {
	if r.Width <= 0 {
		return math.MaxInt
	}

	return max(r.Width-reserved, 1)
}

// writeBlock writes text wrapped to avail columns, prefixing continuation
// lines with indent. A line that fills avail exactly gets no newline: the
// terminal has already moved to the next row.
func (r *Renderer) writeBlock(out *strings.Builder, avail int, text, indent string, style func(strs ...string) string) {
	for text != "" {
		line := NextLine(text, avail)
		out.WriteString(style(text[:line.End]))

		if line.Columns < avail {
			out.WriteString("\n")
		}

		text = text[line.Next:]
		if text != "" {
			out.WriteString(indent)
		}
	}
}

func unstyled(strs ...string) string {
	return strings.Join(strs, " ")
}
