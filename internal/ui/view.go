package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	lineNumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

func (m *Model) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("chiral"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	case m.searching:
		b.WriteString(m.spin.View())
		b.WriteString(statusStyle.Render(" searching..."))
		b.WriteString("\n")
	case len(m.results) == 0 && m.input.Value() != "":
		b.WriteString(statusStyle.Render("no matches"))
		b.WriteString("\n")
	default:
		m.renderResults(&b)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · enter open · tab scope · esc quit"))
	return b.String()
}

func (m *Model) statusLine() string {
	scope := m.currentDir
	if m.scope == ScopeProject && m.gitRoot != "" {
		scope = m.gitRoot
	}
	if len(m.results) > 0 {
		return fmt.Sprintf("%s scope: %s · %d matches", m.scope, scope, len(m.results))
	}
	return fmt.Sprintf("%s scope: %s", m.scope, scope)
}

func (m *Model) renderResults(b *strings.Builder) {
	visible := m.config.UI.VisibleResults
	end := m.offset + visible
	if end > len(m.results) {
		end = len(m.results)
	}

	for i := m.offset; i < end; i++ {
		r := m.results[i]
		location := fmt.Sprintf("%s:%d", r.Path(), r.LineNumber())
		text := m.truncate(strings.TrimSpace(r.LineText()), len(location)+6)
		row := fmt.Sprintf("%s%s  %s",
			pathStyle.Render(r.Path()),
			lineNumStyle.Render(fmt.Sprintf(":%d", r.LineNumber())),
			text,
		)
		if i == m.selected {
			row = selectedStyle.Render("> ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
}

// truncate trims the match text so the row fits the terminal width.
func (m *Model) truncate(s string, used int) string {
	if m.width == 0 {
		return s
	}
	budget := m.width - used
	if budget < 8 {
		budget = 8
	}
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + "…"
}
