package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Karaytumut20/dailyspark/internal/models"
	"github.com/Karaytumut20/dailyspark/internal/tracker"
	"github.com/Karaytumut20/dailyspark/internal/tui/components/goallist"
	"github.com/Karaytumut20/dailyspark/internal/tui/components/historylist"
	"github.com/Karaytumut20/dailyspark/internal/tui/components/today"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateGoals
	StateHistory
	StateOnboarding
	StateAddGoal
	StateConfirmDelete
)

type Model struct {
	tracker *tracker.Tracker
	state   SessionState
	keys    KeyMap
	help    help.Model

	todayModel  today.Model
	goalList    goallist.Model
	historyList historylist.Model

	form        *huh.Form
	onboardForm *OnboardingFormModel
	goalForm    *GoalFormModel

	profile    models.Profile
	hasProfile bool

	goalToDeleteID string
	quitting       bool
	width          int
	height         int
}

func NewModel(tr *tracker.Tracker) Model {
	m := Model{
		tracker:     tr,
		state:       StateToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		todayModel:  today.New(),
		goalList:    goallist.New(tr.Goals(), 0, 0),
		historyList: historylist.New(tr.Completed(), 0, 0),
	}

	profile, ok := tr.Profile()
	if !ok {
		// First run: collect level and focus before anything else.
		m.onboardForm = &OnboardingFormModel{Level: models.LevelA1, Focus: models.FocusMix}
		m.form = NewOnboardingForm(m.onboardForm)
		m.state = StateOnboarding
		return m
	}

	m.profile = profile
	m.hasProfile = true
	m.refreshToday()
	return m
}

// refreshToday re-runs the selection algorithm and syncs the Today tab.
func (m *Model) refreshToday() {
	challenge, persisted := m.tracker.AssignToday(m.profile)
	m.todayModel.SetChallenge(challenge, !persisted, m.completedToday(challenge))
}

func (m *Model) completedToday(c models.Challenge) bool {
	date := time.Now().UTC().Format(tracker.DateFormat)
	for _, e := range m.tracker.Completed() {
		if e.ID == c.ID && e.CompletedDate == date {
			return true
		}
	}
	return false
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Complete)
	case StateGoals:
		keys = append(keys, m.keys.Add, m.keys.Enter, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		actions = []key.Binding{m.keys.Complete}
	case StateGoals:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}
