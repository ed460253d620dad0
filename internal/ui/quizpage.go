package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"examquiz/internal/quiz"
)

// noSelectionMessage is the retryable error line shown when the user
// submits without choosing an option.
const noSelectionMessage = "Please select an option before continuing."

// quizState holds the quiz page view state around a live session.
type quizState struct {
	session *quiz.Session
	cursor  int
	// selected is the choice marked on screen but not yet committed.
	selected int
	errMsg   string
}

// newQuizState binds the quiz page to a session, pre-selecting any answer
// already committed for the current question.
func newQuizState(session *quiz.Session) quizState {
	state := quizState{session: session, selected: session.Selected()}
	if state.selected != quiz.NoSelection {
		state.cursor = state.selected
	}
	return state
}

// updateQuiz handles quiz page input.
func (m Model) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	session := m.quiz.session
	switch key.String() {
	case "esc", "b":
		return m.leaveQuiz(), nil
	case "r":
		session.Restart()
		m.quiz = newQuizState(session)
		return m, nil
	}
	if session.Completed() {
		// Answer selection is disabled after completion; only Restart and
		// Back to Menu remain active.
		return m, nil
	}
	choices := len(session.CurrentQuestion().Choices)
	switch key.String() {
	case "up", "k":
		if m.quiz.cursor > 0 {
			m.quiz.cursor--
		}
	case "down", "j":
		if m.quiz.cursor < choices-1 {
			m.quiz.cursor++
		}
	case " ":
		m.quiz.selected = m.quiz.cursor
		m.quiz.errMsg = ""
	case "enter":
		return m.submitAnswer(), nil
	default:
		if n := digitKey(key.String()); n >= 1 && n <= choices {
			m.quiz.selected = n - 1
			m.quiz.cursor = n - 1
			m.quiz.errMsg = ""
		}
	}
	return m, nil
}

// submitAnswer commits the marked choice. A rejected submit keeps the same
// question active with a retryable error line.
func (m Model) submitAnswer() Model {
	session := m.quiz.session
	err := session.SubmitAnswer(m.quiz.selected)
	if err != nil {
		var choiceErr *quiz.ChoiceError
		if errors.Is(err, quiz.ErrNoSelection) || errors.As(err, &choiceErr) {
			m.quiz.errMsg = noSelectionMessage
		}
		return m
	}
	m.quiz.errMsg = ""
	if !session.Completed() {
		m.quiz = newQuizState(session)
	}
	return m
}

// digitKey parses a single digit key, returning 0 for anything else.
func digitKey(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0
	}
	return int(s[0] - '0')
}

// viewQuiz renders the quiz page.
func (m Model) viewQuiz() string {
	session := m.quiz.session
	pos, total := session.Progress()
	current := session.CurrentQuestion()

	var b strings.Builder
	b.WriteString(stylizeBold(session.Category().Name, m.noColor, colorTitle))
	b.WriteString(stylize(fmt.Sprintf("   Q %d / %d", pos, total), m.noColor, colorSubtle))
	b.WriteString("\n\n")
	b.WriteString(wrapText(current.Prompt, m.width))
	b.WriteString("\n\n")

	for i, choice := range current.Choices {
		marker := "( )"
		if i == m.quiz.selected {
			marker = "(•)"
		}
		line := fmt.Sprintf("%s %s", marker, choice)
		switch {
		case session.Completed():
			line = stylize(line, m.noColor, colorFaint)
		case i == m.quiz.cursor:
			line = "> " + stylizeBold(line, m.noColor, colorSelected)
		default:
			line = "  " + stylize(line, m.noColor, colorSubtle)
		}
		b.WriteString(line + "\n")
	}

	if m.quiz.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(stylize(m.quiz.errMsg, m.noColor, colorError))
		b.WriteString("\n")
	}
	if session.Completed() {
		b.WriteString("\n")
		b.WriteString(stylizeBold(fmt.Sprintf("Your score: %d / %d", session.Score(), total), m.noColor, colorResult))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	action := "enter: next"
	if pos == total {
		action = "enter: finish"
	}
	if session.Completed() {
		action = ""
	}
	help := "space: select • r: restart • esc: back to menu"
	if action != "" {
		help = action + " • " + help
	}
	b.WriteString(stylize(help, m.noColor, colorFaint))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// wrapText soft-wraps a prompt to the window width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = 76
	}
	return lipgloss.NewStyle().Width(min(width-4, 76)).Render(text)
}
