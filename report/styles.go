// Package report renders the fund model for the terminal: trees for the
// fund and account hierarchies, a table over all funds, detail views and
// the allocation results of the distribution commands.
package report

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers for the renderers.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{output: termenv.NewOutput(w)}
}

// Fixed returns a styled fixed-end fund name (green).
func (s *Styles) Fixed(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		String()
}

// Open returns a styled open-end fund name (blue).
func (s *Styles) Open(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("4")).
		String()
}

// Manual returns a styled manual fund name (cyan).
func (s *Styles) Manual(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Group returns a styled group name (bold).
func (s *Styles) Group(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Account returns a styled account name (yellow).
func (s *Styles) Account(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// Amount returns a styled amount (magenta).
func (s *Styles) Amount(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Dim returns dimmed text for secondary information.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}
