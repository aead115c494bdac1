// Package tui provides an interactive history browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/runx/core/history"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("204")).
			Bold(true)
)

// item adapts a history record to the list widget
type item struct {
	rec history.Record
}

func (i item) Title() string {
	marker := okStyle.Render("✓")
	if !i.rec.Success {
		marker = failStyle.Render("✗")
	}
	return fmt.Sprintf("%s [%s] %s", marker, i.rec.Mode, i.rec.Command)
}

func (i item) Description() string {
	desc := i.rec.When.Format("2006-01-02 15:04:05")
	if i.rec.Message != "" {
		desc += "  " + i.rec.Message
	}
	return desc
}

func (i item) FilterValue() string {
	return i.rec.Command
}

// model is the browser's bubbletea model
type model struct {
	list list.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.list.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Browse opens the history browser, newest records first.
func Browse(records []history.Record) error {
	items := make([]list.Item, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		items = append(items, item{rec: records[i]})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Invocation History"

	program := tea.NewProgram(model{list: l}, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to start history browser: %w", err)
	}
	return nil
}
