package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"examquiz/internal/identity"
	"examquiz/internal/question"
	"examquiz/internal/quiz"
)

// page names a visible view.
type page int

const (
	pageLogin page = iota
	pageMenu
	pageQuiz
)

// Options configures the application model.
type Options struct {
	NoColor bool
}

// Model is the application root: it owns the page registry and switches the
// visible page. Quiz logic lives in the quiz package; this layer only
// observes session state and issues navigation.
type Model struct {
	bank     question.Bank
	registry *quiz.Registry
	noColor  bool

	page  page
	login loginForm
	menu  menuState
	quiz  quizState

	// identity is present only after a successful login. The menu renders
	// its welcome banner from this field; nil means no banner.
	identity *identity.Record

	width int
}

// NewModel constructs the application model for a validated bank.
func NewModel(bank question.Bank, opts Options) Model {
	return Model{
		bank:     bank,
		registry: quiz.NewRegistry(),
		noColor:  opts.NoColor,
		page:     pageLogin,
		login:    newLoginForm(),
	}
}

// Init focuses the first login field.
func (m Model) Init() tea.Cmd {
	return m.login.focusCmd()
}

// Update routes messages to the active page.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	switch m.page {
	case pageLogin:
		return m.updateLogin(msg)
	case pageMenu:
		return m.updateMenu(msg)
	case pageQuiz:
		return m.updateQuiz(msg)
	}
	return m, nil
}

// View renders the active page.
func (m Model) View() string {
	switch m.page {
	case pageLogin:
		return m.viewLogin()
	case pageMenu:
		return m.viewMenu()
	case pageQuiz:
		return m.viewQuiz()
	}
	return ""
}

// showMenu switches to the menu page.
func (m Model) showMenu() Model {
	m.page = pageMenu
	return m
}

// showLogin switches to the login page with a fresh form.
func (m Model) showLogin() Model {
	m.login = newLoginForm()
	m.page = pageLogin
	return m
}

// showQuiz opens (or reopens) the session for a category and switches to
// the quiz page.
func (m Model) showQuiz(category question.Category) Model {
	session := m.registry.Open(category)
	m.quiz = newQuizState(session)
	m.page = pageQuiz
	return m
}

// leaveQuiz discards the current attempt and returns to the menu. Leaving
// always restarts; see quiz.Registry.
func (m Model) leaveQuiz() Model {
	m.registry.Leave(m.quiz.session.Category().ID)
	return m.showMenu()
}
