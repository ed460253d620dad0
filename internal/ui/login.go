package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"examquiz/internal/identity"
)

// loginFields indexes the login form inputs.
const (
	fieldName = iota
	fieldEmail
	fieldStudentID
	loginFieldCount
)

// loginForm collects the identity record shown on the menu.
type loginForm struct {
	inputs [loginFieldCount]textinput.Model
	focus  int
	errMsg string
}

// newLoginForm builds the three-field login form with the first field
// focused.
func newLoginForm() loginForm {
	form := loginForm{}
	labels := [loginFieldCount]string{"Full name", "Email", "Student ID"}
	for i := range form.inputs {
		input := textinput.New()
		input.Placeholder = labels[i]
		input.CharLimit = 128
		input.Width = 40
		form.inputs[i] = input
	}
	form.inputs[fieldName].Focus()
	return form
}

// focusCmd starts the cursor blink for the focused field.
func (f loginForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

// setFocus moves input focus to the given field.
func (f loginForm) setFocus(focus int) loginForm {
	f.focus = focus
	for i := range f.inputs {
		if i == focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return f
}

// updateLogin handles login page input.
func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyDown:
			m.login = m.login.setFocus((m.login.focus + 1) % loginFieldCount)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.login = m.login.setFocus((m.login.focus + loginFieldCount - 1) % loginFieldCount)
			return m, nil
		case tea.KeyEnter:
			if m.login.focus < loginFieldCount-1 {
				m.login = m.login.setFocus(m.login.focus + 1)
				return m, nil
			}
			return m.submitLogin(), nil
		}
	}
	var cmds []tea.Cmd
	for i := range m.login.inputs {
		var cmd tea.Cmd
		m.login.inputs[i], cmd = m.login.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submitLogin validates the fields and, on success, stores the identity and
// shows the menu. On failure the login page stays active with an error line.
func (m Model) submitLogin() Model {
	record, err := identity.Parse(
		m.login.inputs[fieldName].Value(),
		m.login.inputs[fieldEmail].Value(),
		m.login.inputs[fieldStudentID].Value(),
	)
	if err != nil {
		m.login.errMsg = "Please fill in all fields (" + err.Error() + ")."
		return m
	}
	m.login.errMsg = ""
	m.identity = &record
	return m.showMenu()
}

// viewLogin renders the login page.
func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(stylizeBold("Exam Quiz", m.noColor, colorTitle))
	b.WriteString("\n")
	b.WriteString(stylize("Enter your student data below.", m.noColor, colorSubtle))
	b.WriteString("\n\n")
	labels := [loginFieldCount]string{"Enter your full name:", "Enter your email:", "Enter your ID:"}
	for i, input := range m.login.inputs {
		b.WriteString(stylize(labels[i], m.noColor, colorFaint))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if m.login.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(stylize(m.login.errMsg, m.noColor, colorError))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(stylize("tab: next field • enter: login • ctrl+c: quit", m.noColor, colorFaint))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
