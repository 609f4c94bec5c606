package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	stepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewLibrary:
		body = a.renderLibrary()
	default:
		body = a.renderWorkspace()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	if a.status != "" {
		body += "\n" + statusStyle.Render(a.status)
	}
	return body
}

func (a *App) renderWorkspace() string {
	title := titleStyle.Render("Workspace")
	out := title + "\n\n" + a.input.View() + "\n"

	steps := a.ws.History().Steps()
	if len(steps) > 0 {
		out += "\nHistory:\n"
		for i, s := range steps {
			out += stepStyle.Render(fmt.Sprintf("%3d. %s  →  %s", i+1, s.From, s.To)) + "\n"
		}
	}

	out += "\n[enter] Reduce  [ctrl+s] Save as name  [ctrl+k] Clear history  [ctrl+e] Export  [tab] Library  [ctrl+c] Quit"
	return out
}

func (a *App) renderLibrary() string {
	title := titleStyle.Render("Library")
	out := title + "\n"

	if a.filtering {
		out += "filter: " + a.modalInput.View() + "\n"
	} else if a.filter != "" {
		out += "filter: " + a.filter + "  (press / to edit)\n"
	}

	entries := a.visibleEntries()
	if len(entries) == 0 {
		if a.ws.Store().Library().Len() == 0 {
			out += "  (no named expressions yet — press n to add one)\n"
		} else {
			out += "  (no matches)\n"
		}
	}
	for i, e := range entries {
		marker := " "
		if i == a.libCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-16s %s\n", marker, e.Name, e.Body)
	}

	out += "\n[enter] Load into workspace  [n] New  [d] Delete  [/] Filter  [tab] Back  [q] Quit"
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalSaveName:
		return modalStyle.Render(titleStyle.Render("Save current expression as") + "\n" + a.modalInput.View() + "\n[enter] Save  [esc] Cancel")
	case modalNewName:
		return modalStyle.Render(titleStyle.Render("New named expression — name") + "\n" + a.modalInput.View() + "\n[enter] Next  [esc] Cancel")
	case modalNewBody:
		header := fmt.Sprintf("New named expression — body for %s", a.pendingName)
		return modalStyle.Render(titleStyle.Render(header) + "\n" + a.modalInput.View() + "\n[enter] Save  [esc] Cancel")
	default:
		return ""
	}
}
