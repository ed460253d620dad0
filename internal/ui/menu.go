package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuState holds the category cursor.
type menuState struct {
	cursor int
}

// updateMenu handles menu page input.
func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case "down", "j":
		if m.menu.cursor < len(m.bank.Categories)-1 {
			m.menu.cursor++
		}
	case "enter":
		return m.showQuiz(m.bank.Categories[m.menu.cursor]), nil
	case "l":
		// Logout clears the identity and returns to the login page.
		m.identity = nil
		return m.showLogin(), m.login.focusCmd()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// viewMenu renders the category menu with the optional welcome banner.
func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(stylizeBold("Exam Quiz", m.noColor, colorTitle))
	b.WriteString("\n\n")
	if m.identity != nil {
		b.WriteString(stylizeBold(fmt.Sprintf("Welcome, %s!", m.identity.Name), m.noColor, colorSelected))
		b.WriteString("\n")
		b.WriteString(stylize(fmt.Sprintf("ID: %s | Email: %s", m.identity.StudentID, m.identity.Email), m.noColor, colorSubtle))
		b.WriteString("\n\n")
	}
	b.WriteString(stylize("Choose a quiz:", m.noColor, colorFaint))
	b.WriteString("\n")
	for i, category := range m.bank.Categories {
		marker := "  "
		line := fmt.Sprintf("%s (%d questions)", category.Name, category.Total())
		if i == m.menu.cursor {
			marker = "> "
			line = stylizeBold(line, m.noColor, colorSelected)
		} else {
			line = stylize(line, m.noColor, colorSubtle)
		}
		b.WriteString(marker + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(stylize("enter: start • l: logout • q: quit", m.noColor, colorFaint))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
