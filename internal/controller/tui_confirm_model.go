package controller

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var promptStyle = lipgloss.NewStyle().Bold(true).PaddingLeft(2)

// confirmModel is a single y/N question. Anything but y declines.
type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
}

func newConfirmModel(prompt string) confirmModel {
	return confirmModel{prompt: prompt}
}

func (c confirmModel) Init() tea.Cmd {
	return nil
}

func (c confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "y", "Y":
		c.confirmed = true
		c.done = true

		return c, tea.Quit
	case "n", "N", "esc", "enter", "ctrl+c", "q":
		c.done = true

		return c, tea.Quit
	}

	return c, nil
}

func (c confirmModel) View() string {
	if c.done {
		answer := "no"
		if c.confirmed {
			answer = "yes"
		}

		return promptStyle.Render(c.prompt+" "+answer) + "\n"
	}

	return promptStyle.Render(c.prompt+" [y/N] ") + "\n"
}
