package identity

import (
	"fmt"
	"strings"
)

// Record is the identity collected at login. It is display-only context and
// is never read by scoring or question logic.
type Record struct {
	Name      string
	Email     string
	StudentID string
}

// Issue captures a single login field problem.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more login field issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for login validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "; ")
}

// Parse trims the login fields and requires each to be non-empty. On
// failure no record is produced and the caller re-prompts.
func Parse(name, email, studentID string) (Record, error) {
	record := Record{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		StudentID: strings.TrimSpace(studentID),
	}
	var issues []Issue
	if record.Name == "" {
		issues = append(issues, Issue{Field: "name", Message: "is required"})
	}
	if record.Email == "" {
		issues = append(issues, Issue{Field: "email", Message: "is required"})
	}
	if record.StudentID == "" {
		issues = append(issues, Issue{Field: "student id", Message: "is required"})
	}
	if len(issues) > 0 {
		return Record{}, &ValidationError{Issues: issues}
	}
	return record, nil
}
