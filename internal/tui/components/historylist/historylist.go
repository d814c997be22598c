package historylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Karaytumut20/dailyspark/internal/models"
)

type Item struct {
	Entry models.CompletedEntry
}

func (i Item) Title() string { return i.Entry.Title }

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s", i.Entry.CompletedDate, i.Entry.Focus)
}

func (i Item) FilterValue() string { return i.Entry.Title }

type Model struct {
	list list.Model
}

func New(entries []models.CompletedEntry, width, height int) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	return Model{list: l}
}

func (m *Model) SetEntries(entries []models.CompletedEntry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing completed yet."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
