// Package output provides formatters for console output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	markDone    = "[x]"
	markPending = "[ ]"
)

// UsageLine is a single entry of the usage banner.
type UsageLine struct {
	Usage    string
	Synopsis string
}

// Renderer writes status lines and banners to a console, optionally styled.
type Renderer struct {
	w     io.Writer
	color bool

	done    lipgloss.Style
	pending lipgloss.Style
}

// NewRenderer creates a renderer on w. Styling is applied only when color is
// true and lipgloss detects a color capable terminal behind w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		w:       w,
		color:   color,
		done:    lr.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		pending: lr.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Lines writes status lines as produced by service.Store.List.
// With color enabled the leading checkbox is styled; the rest is written as is.
func (r *Renderer) Lines(lines []string) {
	if !r.color {
		FormatLines(r.w, lines)
		return
	}
	for _, line := range lines {
		fmt.Fprintln(r.w, r.styleMark(line))
	}
}

// Usage writes the usage banner.
func (r *Renderer) Usage(lines []UsageLine) {
	FormatUsage(r.w, lines)
}

func (r *Renderer) styleMark(line string) string {
	switch {
	case strings.HasPrefix(line, markDone):
		return r.done.Render(markDone) + line[len(markDone):]
	case strings.HasPrefix(line, markPending):
		return r.pending.Render(markPending) + line[len(markPending):]
	default:
		return line
	}
}

// FormatLines writes pre-formatted lines, one per row.
func FormatLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// FormatUsage writes the usage banner.
// Format: "Available commands:\n" then "  {USAGE:<16} {SYNOPSIS}\n" per line.
func FormatUsage(w io.Writer, lines []UsageLine) {
	fmt.Fprintln(w, "Available commands:")
	for _, l := range lines {
		fmt.Fprintf(w, "  %-16s %s\n", l.Usage, l.Synopsis)
	}
}
