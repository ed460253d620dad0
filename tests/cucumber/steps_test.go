//go:build cucumber

package cucumber

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"examquiz/internal/identity"
	"examquiz/internal/question"
	"examquiz/internal/quiz"
)

// scenarioState carries the session and login outcomes across steps.
type scenarioState struct {
	category  question.Category
	registry  *quiz.Registry
	session   *quiz.Session
	submitErr error
	record    identity.Record
	loginErr  error
}

func (s *scenarioState) reset() {
	*s = scenarioState{registry: quiz.NewRegistry()}
}

// InitializeScenario wires steps for the quiz session feature.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &scenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a category with correct choices ([\d, ]+)$`, state.givenCategory)
	ctx.Step(`^the category is opened from the menu$`, state.openFromMenu)
	ctx.Step(`^I submit choices ([\d, ]+)$`, state.submitChoices)
	ctx.Step(`^I submit choice (\d+)$`, state.submitChoice)
	ctx.Step(`^I submit without selecting$`, state.submitWithoutSelecting)
	ctx.Step(`^I restart the session$`, state.restartSession)
	ctx.Step(`^I go back to the menu$`, state.backToMenu)
	ctx.Step(`^the submit fails with a selection error$`, state.thenSelectionError)
	ctx.Step(`^the session is completed$`, state.thenCompleted)
	ctx.Step(`^the session is on question (\d+)$`, state.thenOnQuestion)
	ctx.Step(`^the score is (\d+) out of (\d+)$`, state.thenScore)
	ctx.Step(`^I log in with name "([^"]*)", email "([^"]*)", and id "([^"]*)"$`, state.login)
	ctx.Step(`^login fails$`, state.thenLoginFails)
	ctx.Step(`^login succeeds for "([^"]+)"$`, state.thenLoginSucceeds)
}

// givenCategory builds a category with one question per listed correct
// choice index; every question has three choices.
func (s *scenarioState) givenCategory(correct string) error {
	s.category = question.Category{ID: "feature", Name: "Feature Quiz"}
	for i, field := range splitIndexes(correct) {
		choices := []string{
			fmt.Sprintf("q%d choice 0", i),
			fmt.Sprintf("q%d choice 1", i),
			fmt.Sprintf("q%d choice 2", i),
		}
		if field < 0 || field >= len(choices) {
			return fmt.Errorf("correct index %d out of range", field)
		}
		s.category.Questions = append(s.category.Questions, question.Question{
			Prompt:  fmt.Sprintf("question %d", i),
			Choices: choices,
			Answer:  choices[field],
		})
	}
	s.session = quiz.NewSession(s.category)
	return nil
}

func (s *scenarioState) openFromMenu() error {
	if s.category.ID == "" {
		return fmt.Errorf("no category defined")
	}
	s.session = s.registry.Open(s.category)
	return nil
}

func (s *scenarioState) submitChoices(choices string) error {
	for _, choice := range splitIndexes(choices) {
		if err := s.session.SubmitAnswer(choice); err != nil {
			return fmt.Errorf("submit %d: %w", choice, err)
		}
	}
	return nil
}

func (s *scenarioState) submitChoice(choice int) error {
	s.submitErr = s.session.SubmitAnswer(choice)
	return nil
}

func (s *scenarioState) submitWithoutSelecting() error {
	s.submitErr = s.session.SubmitAnswer(quiz.NoSelection)
	return nil
}

func (s *scenarioState) restartSession() error {
	s.session.Restart()
	return nil
}

func (s *scenarioState) backToMenu() error {
	s.registry.Leave(s.category.ID)
	return nil
}

func (s *scenarioState) thenSelectionError() error {
	if !errors.Is(s.submitErr, quiz.ErrNoSelection) {
		return fmt.Errorf("expected selection error, got %v", s.submitErr)
	}
	return nil
}

func (s *scenarioState) thenCompleted() error {
	if s.submitErr != nil {
		return fmt.Errorf("submit failed: %w", s.submitErr)
	}
	if !s.session.Completed() {
		return fmt.Errorf("expected completed session")
	}
	return nil
}

func (s *scenarioState) thenOnQuestion(pos int) error {
	got, _ := s.session.Progress()
	if got != pos {
		return fmt.Errorf("expected question %d, got %d", pos, got)
	}
	return nil
}

func (s *scenarioState) thenScore(score, total int) error {
	if got := s.session.Score(); got != score {
		return fmt.Errorf("expected score %d, got %d", score, got)
	}
	if got := s.session.Total(); got != total {
		return fmt.Errorf("expected total %d, got %d", total, got)
	}
	return nil
}

func (s *scenarioState) login(name, email, id string) error {
	s.record, s.loginErr = identity.Parse(name, email, id)
	return nil
}

func (s *scenarioState) thenLoginFails() error {
	var validationErr *identity.ValidationError
	if !errors.As(s.loginErr, &validationErr) {
		return fmt.Errorf("expected login validation error, got %v", s.loginErr)
	}
	return nil
}

func (s *scenarioState) thenLoginSucceeds(name string) error {
	if s.loginErr != nil {
		return fmt.Errorf("login failed: %w", s.loginErr)
	}
	if s.record.Name != name {
		return fmt.Errorf("expected name %q, got %q", name, s.record.Name)
	}
	return nil
}

func splitIndexes(list string) []int {
	var indexes []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		value, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		indexes = append(indexes, value)
	}
	return indexes
}
