package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// MenuOption is one entry in the interactive menu.
type MenuOption struct {
	Label string
	Desc  string
	Value string
}

// menu is the bubbletea model behind RunMenu.
type menu struct {
	options []MenuOption
	cursor  int
	picked  string
}

func (m menu) Init() tea.Cmd {
	return nil
}

func (m menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.picked = m.options[m.cursor].Value
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	default:
		// A digit picks and confirms in one keypress
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(m.options) {
			m.picked = m.options[n-1].Value
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menu) View() string {
	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("podbleep"))
	b.WriteString(dimStyle.Render("  keep your audio clean"))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		row := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render("▸ " + row))
		} else {
			b.WriteString("  " + row)
		}
		if opt.Desc != "" {
			b.WriteString(dimStyle.Render("  " + opt.Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("up/down move, 1-9 pick, enter confirm, q quit"))
	b.WriteString("\n")
	return b.String()
}

// RunMenu shows the interactive menu and returns the picked value, or
// "" when the user backed out without choosing.
func RunMenu(options []MenuOption) (string, error) {
	final, err := tea.NewProgram(menu{options: options}).Run()
	if err != nil {
		return "", err
	}
	return final.(menu).picked, nil
}
