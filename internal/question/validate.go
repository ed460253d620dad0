package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeBank trims whitespace and validates a question bank.
func NormalizeBank(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if bank.Version == 0 {
		collector.add("version", "is required")
	} else if bank.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", bank.Version))
	}
	if len(bank.Categories) == 0 {
		collector.add("categories", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, category := range bank.Categories {
		prefix := fmt.Sprintf("categories[%d]", i)
		category.ID = strings.TrimSpace(category.ID)
		if category.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[category.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", category.ID))
		} else {
			seenIDs[category.ID] = struct{}{}
		}

		category.Name = strings.TrimSpace(category.Name)
		if category.Name == "" {
			collector.add(prefix+".name", "is required")
		}

		if len(category.Questions) == 0 {
			collector.add(prefix+".questions", "must include at least one entry")
		}
		for j, q := range category.Questions {
			category.Questions[j] = normalizeQuestion(collector, fmt.Sprintf("%s.questions[%d]", prefix, j), q)
		}
		bank.Categories[i] = category
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}

// normalizeQuestion trims one question and checks its structural rules.
func normalizeQuestion(collector *issueCollector, prefix string, q Question) Question {
	q.Prompt = strings.TrimSpace(q.Prompt)
	if q.Prompt == "" {
		collector.add(prefix+".question", "is required")
	}

	q.Choices = normalizeStringSlice(q.Choices)
	if len(q.Choices) < 2 {
		collector.add(prefix+".choices", "must include at least two entries")
	}
	for choiceIndex, choice := range q.Choices {
		if choice == "" {
			collector.add(fmt.Sprintf("%s.choices[%d]", prefix, choiceIndex), "is required")
		}
	}

	q.Answer = strings.TrimSpace(q.Answer)
	if q.Answer == "" {
		collector.add(prefix+".answer", "is required")
	} else {
		found := false
		for _, choice := range q.Choices {
			if choice == q.Answer {
				found = true
				break
			}
		}
		if !found {
			collector.add(prefix+".answer", fmt.Sprintf("unknown choice %q", q.Answer))
		}
	}
	return q
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
