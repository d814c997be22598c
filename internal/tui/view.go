package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateOnboarding, StateAddGoal:
		if m.form != nil {
			return docStyle.Render(m.form.View())
		}
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.todayModel.View())
	case StateGoals:
		content = docStyle.Render(m.goalList.View())
	case StateHistory:
		content = docStyle.Render(m.historyList.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Goals", "History"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this goal?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
