package today

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Karaytumut20/dailyspark/internal/models"
)

// CompleteMsg asks the parent model to record today's challenge as done.
type CompleteMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Margin(1, 0)
)

type Model struct {
	challenge     models.Challenge
	hasChallenge  bool
	fallback      bool
	completedNow  bool
	alreadyDone   bool
}

func New() Model {
	return Model{}
}

// SetChallenge installs the current assignment. fallback marks the
// unpersisted default shown when the catalog filter comes up empty.
func (m *Model) SetChallenge(c models.Challenge, fallback, alreadyDone bool) {
	m.challenge = c
	m.hasChallenge = true
	m.fallback = fallback
	m.alreadyDone = alreadyDone
	m.completedNow = false
}

func (m *Model) SetCompleted(fresh bool) {
	m.alreadyDone = true
	m.completedNow = fresh
}

func (m Model) Challenge() (models.Challenge, bool) {
	return m.challenge, m.hasChallenge
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "c" && m.hasChallenge && !m.alreadyDone {
			return m, func() tea.Msg { return CompleteMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.hasChallenge {
		return "\n  No challenge assigned yet."
	}

	body := fmt.Sprintf("%s\n%s\n\n%s",
		titleStyle.Render(m.challenge.Title),
		tagStyle.Render(fmt.Sprintf("level %s · focus %s", m.challenge.Level, m.challenge.Focus)),
		m.challenge.Description,
	)

	var footer string
	switch {
	case m.completedNow:
		footer = doneStyle.Render("Completed — nice work!")
	case m.alreadyDone:
		footer = doneStyle.Render("Already completed today.")
	case m.fallback:
		footer = tagStyle.Render("No catalog entry matches your profile; showing a fallback.")
	default:
		footer = tagStyle.Render("Press 'c' to mark it completed.")
	}

	return cardStyle.Render(body) + "\n" + footer
}
