package question

import (
	"fmt"
	"testing"
)

func TestBatchSize(t *testing.T) {
	g := testGenerator()
	b := g.Batch(Addition, Level1, 10)
	if len(b.Questions) != 10 {
		t.Fatalf("len(Questions) = %d, want 10", len(b.Questions))
	}
}

func TestBatchDefaultsSize(t *testing.T) {
	g := testGenerator()
	b := g.Batch(Addition, Level1, 0)
	if len(b.Questions) != DefaultBatchSize {
		t.Fatalf("len(Questions) = %d, want %d", len(b.Questions), DefaultBatchSize)
	}
}

func TestBatchQuestionsAreValid(t *testing.T) {
	g := testGenerator()
	for _, op := range Operations() {
		b := g.Batch(op, Level2, 10)
		for i, q := range b.Questions {
			if err := q.Check(); err != nil {
				t.Errorf("%s question %d invalid: %v", op, i, err)
			}
		}
	}
}

func TestBatchAvoidsDuplicates(t *testing.T) {
	g := testGenerator()
	// Level 1 multiplication has a 10×10 fact space, plenty for 10
	// unique questions.
	b := g.Batch(Multiplication, Level1, 10)

	seen := make(map[string]bool)
	for _, q := range b.Questions {
		if seen[q.Key()] && b.Duplicates == 0 {
			t.Errorf("unflagged duplicate question %s", q.Key())
		}
		seen[q.Key()] = true
	}
}

func TestBatchAcceptsDuplicatesWhenSpaceExhausted(t *testing.T) {
	g := testGenerator()
	// Level 1 addition has at most 45 distinct pairs with sum <= 10;
	// asking for 60 must exhaust the space and fall back to repeats
	// instead of stalling.
	b := g.Batch(Addition, Level1, 60)
	if len(b.Questions) != 60 {
		t.Fatalf("len(Questions) = %d, want 60", len(b.Questions))
	}
	if b.Duplicates == 0 {
		t.Error("expected duplicate diagnostics when question space is exhausted")
	}
	if b.Fallbacks > len(b.Questions) {
		t.Errorf("Fallbacks = %d, must not exceed %d kept questions", b.Fallbacks, len(b.Questions))
	}
}

func TestUniqueDiscardedRetriesReportNoFallback(t *testing.T) {
	g := testGenerator()

	// Saturate the used set so every retry collides and is discarded.
	used := make(map[string]bool)
	for n1 := 0; n1 <= 10; n1++ {
		for n2 := 0; n2 <= 10; n2++ {
			used[fmt.Sprintf("%d_%s_%d", n1, Addition.Symbol(), n2)] = true
		}
	}

	q, fellBack := g.unique(Addition, Level1, used)
	if q != nil {
		t.Fatalf("unique = %v, want nil when the space is saturated", q)
	}
	if fellBack {
		t.Error("discarded retries must not be reported as a fallback")
	}
}
