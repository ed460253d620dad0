package identity

import (
	"errors"
	"strings"
	"testing"
)

// TestParseTrims verifies surrounding whitespace is stripped before
// validation.
func TestParseTrims(t *testing.T) {
	record, err := Parse("  Ada Lovelace ", " ada@example.com", "0042 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if record.Name != "Ada Lovelace" || record.Email != "ada@example.com" || record.StudentID != "0042" {
		t.Fatalf("unexpected record: %+v", record)
	}
}

// TestParseEmptyFields verifies each empty field is reported and no record
// is produced.
func TestParseEmptyFields(t *testing.T) {
	_, err := Parse("", "a@b.com", "123")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 1 || validationErr.Issues[0].Field != "name" {
		t.Fatalf("unexpected issues: %+v", validationErr.Issues)
	}

	_, err = Parse("  ", "\t", "")
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", validationErr.Issues)
	}
	message := validationErr.Error()
	for _, want := range []string{"name", "email", "student id"} {
		if !strings.Contains(message, want) {
			t.Fatalf("expected %q in %q", want, message)
		}
	}
}
