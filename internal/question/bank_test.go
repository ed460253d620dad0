package question

import "testing"

// TestDefaultBank verifies the built-in bank passes its own validation.
func TestDefaultBank(t *testing.T) {
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("default bank: %v", err)
	}
	if len(bank.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(bank.Categories))
	}
	wantIDs := []string{"software", "logic-design", "algorithms"}
	for i, cat := range bank.Categories {
		if cat.ID != wantIDs[i] {
			t.Fatalf("expected category %d id %q, got %q", i, wantIDs[i], cat.ID)
		}
		if cat.Total() < 2 {
			t.Fatalf("category %q has too few questions: %d", cat.ID, cat.Total())
		}
		for j, q := range cat.Questions {
			if len(q.Choices) < 2 {
				t.Fatalf("question %d in %q has %d choices", j, cat.ID, len(q.Choices))
			}
		}
	}
}
