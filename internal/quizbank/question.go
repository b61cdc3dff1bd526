package quizbank

import (
	"fmt"

	"github.com/abhisek/vidya/internal/adaptive"
)

// QuestionType tags how a question is answered. Only multiple choice is
// served today; the tag is kept on the record so banks can mix types later.
type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeTrueFalse   QuestionType = "true_false"
	TypeShortAnswer QuestionType = "short_answer"
)

// OptionCount is the fixed arity of answer options per question.
const OptionCount = 4

// Question is an immutable quiz item.
type Question struct {
	ID            string
	Text          string
	Options       [OptionCount]string
	CorrectAnswer int // index into Options
	Explanation   string
	Difficulty    adaptive.Difficulty
	Topic         string
	Type          QuestionType
}

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has empty id")
	}
	if q.Text == "" {
		return fmt.Errorf("question %s has empty text", q.ID)
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionCount {
		return fmt.Errorf("question %s: correct answer index %d out of range [0,%d)", q.ID, q.CorrectAnswer, OptionCount)
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("question %s has unknown difficulty %q", q.ID, q.Difficulty)
	}
	if q.Topic == "" {
		return fmt.Errorf("question %s has empty topic", q.ID)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %s: option %d is empty", q.ID, i)
		}
	}
	return nil
}

// IsCorrect reports whether the given answer index matches the key.
func (q Question) IsCorrect(answer int) bool {
	return answer == q.CorrectAnswer
}
