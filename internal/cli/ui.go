package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette
var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - separators
)

// styles holds the report styles bound to a single output renderer, so that
// ANSI sequences are only emitted when the destination supports them.
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	dim   lipgloss.Style
}

// newStyles creates report styles for the given writer. When noColor is set
// the renderer is forced to plain ASCII regardless of terminal support.
func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorCyan),
		label: r.NewStyle().Foreground(colorGray),
		value: r.NewStyle().Foreground(colorWhite),
		dim:   r.NewStyle().Foreground(colorDim),
	}
}
