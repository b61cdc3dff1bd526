package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/vidya/internal/adaptive"
	"github.com/abhisek/vidya/internal/quizbank"
)

func testBuilder() *Builder {
	return NewBuilder(rand.New(rand.NewPCG(1, 2)))
}

func TestGenerateBasic(t *testing.T) {
	b := testBuilder()
	s := b.Generate(Request{
		Grade:        "5th",
		Board:        "CBSE",
		Subject:      "Math",
		Difficulty:   "easy",
		NumQuestions: 3,
	})

	if s.ID == "" {
		t.Error("session id empty")
	}
	if s.Difficulty != adaptive.DifficultyEasy {
		t.Errorf("Difficulty = %q, want easy", s.Difficulty)
	}
	if s.TotalQuestions() != 3 {
		t.Errorf("TotalQuestions = %d, want 3", s.TotalQuestions())
	}
	for _, q := range s.Questions {
		if q.Difficulty != adaptive.DifficultyEasy {
			t.Errorf("question %s: difficulty %q, want easy", q.ID, q.Difficulty)
		}
	}
	if len(s.UserAnswers) != 0 || s.Score != 0 || s.Submitted() {
		t.Error("new session should be open with no answers")
	}
}

func TestGenerateCountCappedByPool(t *testing.T) {
	b := testBuilder()
	pool := quizbank.GetByDifficulty("Math", "5th", adaptive.DifficultyEasy)
	s := b.Generate(Request{
		Grade:        "5th",
		Subject:      "Math",
		Difficulty:   "easy",
		NumQuestions: 50,
	})
	if s.TotalQuestions() != len(pool) {
		t.Errorf("TotalQuestions = %d, want pool size %d", s.TotalQuestions(), len(pool))
	}
}

func TestGenerateAutoResolvesFromHistory(t *testing.T) {
	b := testBuilder()
	s := b.Generate(Request{
		Grade:      "5th",
		Subject:    "Math",
		Difficulty: DifficultyAuto,
	})
	if s.Difficulty != adaptive.DifficultyEasy {
		t.Errorf("no history should resolve to easy, got %q", s.Difficulty)
	}

	s = b.Generate(Request{
		Grade:      "5th",
		Subject:    "Math",
		Difficulty: DifficultyAuto,
		History: adaptive.History{
			QuizCount:     5,
			RecentAverage: 92,
			Current:       adaptive.DifficultyEasy,
		},
	})
	if s.Difficulty != adaptive.DifficultyMedium {
		t.Errorf("strong history should resolve to medium, got %q", s.Difficulty)
	}
}

func TestGenerateTopicFilter(t *testing.T) {
	b := testBuilder()
	s := b.Generate(Request{
		Grade:        "5th",
		Subject:      "Math",
		Difficulty:   "easy",
		NumQuestions: 10,
		Topics:       []string{"Addition"},
	})
	if s.TotalQuestions() == 0 {
		t.Fatal("expected questions for Addition")
	}
	for _, q := range s.Questions {
		if q.Topic != "Addition" {
			t.Errorf("question %s: topic %q, want Addition", q.ID, q.Topic)
		}
	}
}

func TestGenerateFallsBackAcrossGrades(t *testing.T) {
	b := testBuilder()
	// No curated questions for Math "9th"; the builder should fall back to
	// the all-grades Math pool.
	s := b.Generate(Request{
		Grade:        "9th",
		Subject:      "Math",
		Difficulty:   "easy",
		NumQuestions: 3,
	})
	if s.TotalQuestions() == 0 {
		t.Fatal("fallback pool should not be empty")
	}
	for _, q := range s.Questions {
		if q.ID == "placeholder_1" {
			t.Error("should not have reached the placeholder tier")
		}
	}
}

func TestGeneratePlaceholderWhenNoContent(t *testing.T) {
	b := testBuilder()
	s := b.Generate(Request{
		Grade:        "5th",
		Subject:      "Astronomy",
		Difficulty:   "easy",
		NumQuestions: 5,
	})
	if s.TotalQuestions() != 1 {
		t.Fatalf("TotalQuestions = %d, want 1 placeholder", s.TotalQuestions())
	}
	if s.Questions[0].ID != "placeholder_1" {
		t.Errorf("got question %s, want placeholder", s.Questions[0].ID)
	}
	if s.TopicsCovered[0] != "General" {
		t.Errorf("TopicsCovered = %v", s.TopicsCovered)
	}
}

func TestGenerateTopicDiversity(t *testing.T) {
	b := testBuilder()
	s := b.Generate(Request{
		Grade:        "5th",
		Subject:      "Math",
		NumQuestions: 4,
		Difficulty:   "easy",
	})
	// The easy 5th-grade pool spans three topics; each must contribute at
	// least one question when the request is large enough.
	if len(s.TopicsCovered) < 3 {
		t.Errorf("TopicsCovered = %v, want all three easy topics", s.TopicsCovered)
	}
}

func TestGenerateUniqueSelections(t *testing.T) {
	b := testBuilder()
	s := b.Generate(Request{
		Grade:        "5th",
		Subject:      "Math",
		NumQuestions: 6,
		Difficulty:   "easy",
	})
	seen := make(map[string]bool)
	for _, q := range s.Questions {
		if seen[q.ID] {
			t.Errorf("question %s selected twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGenerateFreshIDs(t *testing.T) {
	b := testBuilder()
	a := b.Generate(Request{Grade: "5th", Subject: "Math", Difficulty: "easy"})
	c := b.Generate(Request{Grade: "5th", Subject: "Math", Difficulty: "easy"})
	if a.ID == c.ID {
		t.Errorf("session ids collide: %s", a.ID)
	}
}

func TestSubmitOnce(t *testing.T) {
	b := testBuilder()
	s := b.Generate(Request{Grade: "5th", Subject: "Math", Difficulty: "easy", NumQuestions: 2})

	if err := s.Submit([]int{0, 1}, 30); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if !s.Submitted() {
		t.Error("session should be submitted")
	}
	if err := s.Submit([]int{1, 1}, 10); err != ErrAlreadySubmitted {
		t.Errorf("second submit err = %v, want ErrAlreadySubmitted", err)
	}
	if s.TimeTaken != 30 {
		t.Error("second submit mutated the session")
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	req := Request{Grade: "5th", Subject: "Math", NumQuestions: 4, Difficulty: "easy"}
	a := NewBuilder(rand.New(rand.NewPCG(7, 7))).Generate(req)
	c := NewBuilder(rand.New(rand.NewPCG(7, 7))).Generate(req)

	if len(a.Questions) != len(c.Questions) {
		t.Fatal("seeded builders disagree on count")
	}
	for i := range a.Questions {
		if a.Questions[i].ID != c.Questions[i].ID {
			t.Errorf("position %d: %s vs %s", i, a.Questions[i].ID, c.Questions[i].ID)
		}
	}
}
