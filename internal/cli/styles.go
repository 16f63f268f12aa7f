package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Keddaaa/Aurane/internal/model"
)

// Theme holds the lipgloss styles used for terminal output
type Theme struct {
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
}

// DefaultTheme mirrors the window colors
func DefaultTheme() *Theme {
	return &Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563eb")),
		Subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
		Highlight: lipgloss.NewStyle().Bold(true),
	}
}

// RenderResults renders a finished search the way the window lists it
func (t *Theme) RenderResults(state model.SearchState) string {
	var b strings.Builder

	b.WriteString(t.Title.Render(fmt.Sprintf("« %s »", state.Query)))
	b.WriteString("\n")

	if state.HasError() {
		b.WriteString(t.Error.Render(state.Error))
		b.WriteString("\n")
		return b.String()
	}

	if len(state.Results) == 0 {
		b.WriteString(t.Subtle.Italic(true).Render("Aucune police trouvée. Essayez autre chose."))
		b.WriteString("\n")
		return b.String()
	}

	for _, font := range state.Results {
		fmt.Fprintf(&b, "%s %s\n  %s\n", t.Accent.Render("•"), t.Highlight.Render(font.Name), t.Subtle.Render(font.URL))
	}
	return b.String()
}

// RenderKeyValue renders an aligned "key value" line
func (t *Theme) RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s %s", t.Subtle.Width(10).Render(key), t.Highlight.Render(value))
}
