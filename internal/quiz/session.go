package quiz

import (
	"github.com/google/uuid"

	"examquiz/internal/question"
)

// NoSelection marks a question with no committed choice.
const NoSelection = -1

// Session tracks one attempt at a category: the current question, the
// committed answers, and completion. It is not safe for concurrent use.
type Session struct {
	category   question.Category
	current    int
	answers    []int
	completed  bool
	finalScore int
	attemptID  uuid.UUID
}

// NewSession starts an attempt at question 0 of a validated category.
func NewSession(category question.Category) *Session {
	s := &Session{category: category}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.current = 0
	s.answers = make([]int, s.category.Total())
	for i := range s.answers {
		s.answers[i] = NoSelection
	}
	s.completed = false
	s.finalScore = 0
	s.attemptID = uuid.New()
}

// SubmitAnswer commits a choice for the current question. On the last
// question it completes the session and freezes the score; otherwise it
// advances to the next question. A failed submit leaves all state unchanged.
func (s *Session) SubmitAnswer(choice int) error {
	if s.completed {
		return ErrQuizCompleted
	}
	if choice == NoSelection {
		return ErrNoSelection
	}
	choices := len(s.category.Questions[s.current].Choices)
	if choice < 0 || choice >= choices {
		return &ChoiceError{Choice: choice, Choices: choices}
	}
	s.answers[s.current] = choice
	if s.current == s.category.Total()-1 {
		s.completed = true
		s.finalScore = s.countCorrect()
		return nil
	}
	s.current++
	return nil
}

// Restart returns the session to question 0 with every answer cleared.
// Valid in any state, including after completion.
func (s *Session) Restart() {
	s.reset()
}

// CurrentQuestion returns the question at the current index. After
// completion the index stays at the last question.
func (s *Session) CurrentQuestion() question.Question {
	return s.category.Questions[s.current]
}

// Selected returns the committed choice for the current question, or
// NoSelection. Used to pre-select a choice for display.
func (s *Session) Selected() int {
	return s.answers[s.current]
}

// Progress returns the 1-based position and the total question count.
// Display projection only.
func (s *Session) Progress() (int, int) {
	return s.current + 1, s.category.Total()
}

// Score counts committed answers whose chosen text equals the question's
// correct choice. Partial while in progress, frozen once completed.
func (s *Session) Score() int {
	if s.completed {
		return s.finalScore
	}
	return s.countCorrect()
}

func (s *Session) countCorrect() int {
	correct := 0
	for i, q := range s.category.Questions {
		choice := s.answers[i]
		if choice == NoSelection {
			continue
		}
		if q.Choices[choice] == q.Answer {
			correct++
		}
	}
	return correct
}

// Completed reports whether the last question's answer has been committed.
func (s *Session) Completed() bool {
	return s.completed
}

// Total returns the number of questions in the bound category.
func (s *Session) Total() int {
	return s.category.Total()
}

// Category returns the bound category.
func (s *Session) Category() question.Category {
	return s.category
}

// AttemptID identifies the current attempt; it changes on every restart.
func (s *Session) AttemptID() uuid.UUID {
	return s.attemptID
}
