package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Karaytumut20/dailyspark/internal/models"
	"github.com/Karaytumut20/dailyspark/internal/tui/components/goallist"
	"github.com/Karaytumut20/dailyspark/internal/tui/components/today"
)

const tabCount = 3

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.goalList.SetSize(msg.Width-4, msg.Height-6)
		m.historyList.SetSize(msg.Width-4, msg.Height-6)
	}

	switch m.state {
	case StateOnboarding:
		return m.updateOnboarding(msg)
	case StateAddGoal:
		return m.updateAddGoal(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	// Component messages arrive outside key handling.
	switch msg := msg.(type) {
	case today.CompleteMsg:
		if challenge, ok := m.todayModel.Challenge(); ok {
			fresh := m.tracker.AddCompleted(challenge)
			m.todayModel.SetCompleted(fresh)
			m.historyList.SetEntries(m.tracker.Completed())
		}
		return m, nil

	case goallist.AddGoalMsg:
		m.goalForm = &GoalFormModel{}
		m.form = NewGoalForm(m.goalForm)
		m.state = StateAddGoal
		return m, m.form.Init()

	case goallist.ToggleGoalMsg:
		m.tracker.ToggleGoal(msg.ID)
		m.goalList.SetGoals(m.tracker.Goals())
		return m, nil

	case goallist.DeleteGoalMsg:
		m.goalToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.filteringList() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.todayModel, cmd = m.todayModel.Update(msg)
	case StateGoals:
		m.goalList, cmd = m.goalList.Update(msg)
	case StateHistory:
		m.historyList, cmd = m.historyList.Update(msg)
	}
	return m, cmd
}

// filteringList reports whether the active tab's list is capturing
// keystrokes for its filter, in which case global bindings must not
// fire.
func (m Model) filteringList() bool {
	switch m.state {
	case StateGoals:
		return m.goalList.Filtering()
	case StateHistory:
		return m.historyList.Filtering()
	}
	return false
}

func (m Model) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.profile = models.Profile{
			Level: m.onboardForm.Level,
			Focus: m.onboardForm.Focus,
		}
		m.tracker.SaveProfile(m.profile)
		m.hasProfile = true
		m.form = nil
		m.state = StateToday
		m.refreshToday()
		return m, nil
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) updateAddGoal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.form = nil
		m.state = StateGoals
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.tracker.AddGoal(m.goalForm.Title, m.goalForm.Description)
		m.goalList.SetGoals(m.tracker.Goals())
		m.form = nil
		m.state = StateGoals
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.state = StateGoals
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			m.tracker.DeleteGoal(m.goalToDeleteID)
			m.goalList.SetGoals(m.tracker.Goals())
			m.goalToDeleteID = ""
			m.state = StateGoals
		case "n", "esc":
			m.goalToDeleteID = ""
			m.state = StateGoals
		}
	}
	return m, nil
}
