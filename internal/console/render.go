package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/todobot/internal/model"
	"github.com/sandeepkv93/todobot/internal/reply"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(58)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m Model) View() string {
	lines := []string{
		headerStyle.Render("todobot console: " + m.owner),
		panelStyle.Render(renderTasks(m.items)),
	}
	if m.status != "" {
		status := statusStyle.Render(m.status)
		if strings.HasPrefix(m.status, "error") {
			status = errorStyle.Render(m.status)
		}
		lines = append(lines, status)
	}
	lines = append(lines, m.input.View())
	if m.helpVisible {
		lines = append(lines, panelStyle.Render(renderMarkdown(reply.HelpText)))
	}
	lines = append(lines, footerStyle.Render("enter: run command • ctrl+g: help • ctrl+c: quit"))
	return strings.Join(lines, "\n")
}

func renderTasks(items []model.Task) string {
	if len(items) == 0 {
		return "(no open tasks)"
	}
	lines := make([]string, 0, len(items))
	for _, task := range items {
		scope := string(task.Scope)
		if scope == "" {
			scope = "-"
		}
		lines = append(lines, fmt.Sprintf("#%d [%s] %s", task.ID, scope, task.Text))
	}
	return strings.Join(lines, "\n")
}

func renderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
