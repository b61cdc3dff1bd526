package quizbank

import (
	"testing"

	"github.com/abhisek/vidya/internal/adaptive"
)

func TestSeedIsValid(t *testing.T) {
	if Size() == 0 {
		t.Fatal("bank is empty")
	}
	for _, e := range seedQuestions() {
		for _, q := range e.questions {
			if err := q.Validate(); err != nil {
				t.Errorf("seed question invalid: %v", err)
			}
		}
	}
}

func TestSeedIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range seedQuestions() {
		for _, q := range e.questions {
			if seen[q.ID] {
				t.Errorf("duplicate question id %q", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestGet(t *testing.T) {
	qs := Get("Math", "5th")
	if len(qs) == 0 {
		t.Fatal("no Math 5th questions")
	}
	for _, q := range qs {
		if !q.Difficulty.Valid() {
			t.Errorf("question %s: invalid difficulty", q.ID)
		}
	}
}

func TestSubjectKeyIsCaseInsensitive(t *testing.T) {
	display := Get("Math", "5th")
	key := Get("math", "5th")
	if len(display) == 0 || len(display) != len(key) {
		t.Errorf("Math returned %d questions, math returned %d", len(display), len(key))
	}
	if len(GetSubject("Social Studies")) != len(GetSubject("social")) {
		t.Error("Social Studies and social resolve to different pools")
	}
}

func TestGetUnknownCombination(t *testing.T) {
	if qs := Get("History", "5th"); len(qs) != 0 {
		t.Errorf("unknown subject returned %d questions, want 0", len(qs))
	}
	if qs := Get("Math", "12th"); len(qs) != 0 {
		t.Errorf("unknown grade returned %d questions, want 0", len(qs))
	}
}

func TestGetByDifficulty(t *testing.T) {
	qs := GetByDifficulty("Math", "5th", adaptive.DifficultyEasy)
	if len(qs) == 0 {
		t.Fatal("no easy Math 5th questions")
	}
	for _, q := range qs {
		if q.Difficulty != adaptive.DifficultyEasy {
			t.Errorf("question %s has difficulty %q, want easy", q.ID, q.Difficulty)
		}
	}
}

func TestGetSubjectSpansGrades(t *testing.T) {
	all := GetSubject("Math")
	perGrade := len(Get("Math", "5th")) + len(Get("Math", "6th")) +
		len(Get("Math", "7th")) + len(Get("Math", "8th"))
	if len(all) != perGrade {
		t.Errorf("GetSubject(Math) = %d questions, want %d", len(all), perGrade)
	}
}

func TestTopics(t *testing.T) {
	topics := Topics("Math", "5th")
	if len(topics) < 2 {
		t.Fatalf("expected multiple Math 5th topics, got %v", topics)
	}
	for i := 1; i < len(topics); i++ {
		if topics[i-1] >= topics[i] {
			t.Errorf("topics not sorted: %v", topics)
		}
	}
}

func TestGetReturnsCopy(t *testing.T) {
	first := Get("Math", "5th")
	first[0].Text = "mutated"
	second := Get("Math", "5th")
	if second[0].Text == "mutated" {
		t.Error("Get leaked internal slice")
	}
}
