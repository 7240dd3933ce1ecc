package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	extraStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// renderSection prints a titled name list, or a muted "none" marker.
func renderSection(w io.Writer, title string, style lipgloss.Style, names []string) {
	fmt.Fprintln(w, headingStyle.Render(title))
	if len(names) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  (none)"))
		return
	}
	for _, n := range names {
		fmt.Fprintf(w, "  %s\n", style.Render(n))
	}
}
