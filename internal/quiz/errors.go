package quiz

import (
	"errors"
	"fmt"
)

// ErrNoSelection indicates a submit without a selected choice. The same
// question stays active and the submit may be retried.
var ErrNoSelection = errors.New("select an option before continuing")

// ErrQuizCompleted indicates a submit after the session completed.
var ErrQuizCompleted = errors.New("quiz already completed")

// ChoiceError indicates a choice index outside the current question's range.
type ChoiceError struct {
	Choice  int
	Choices int
}

// Error returns a readable message for an out-of-range choice.
func (err *ChoiceError) Error() string {
	return fmt.Sprintf("choice %d out of range (question has %d choices)", err.Choice, err.Choices)
}
