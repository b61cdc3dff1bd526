package backend

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/vidya/internal/adaptive"
	"github.com/abhisek/vidya/internal/ledger"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/quiz"
	"github.com/abhisek/vidya/internal/quizbank"
	"github.com/abhisek/vidya/internal/store"
)

// CreateQuizRequest selects the quiz to build.
type CreateQuizRequest struct {
	Grade        string   `json:"grade"`
	Board        string   `json:"board"`
	Subject      string   `json:"subject"`
	Difficulty   string   `json:"difficulty"` // tier name or "auto"
	NumQuestions int      `json:"num_questions"`
	Topics       []string `json:"topics,omitempty"`
}

// QuestionView is a question as exposed to the UI: no correct answer.
type QuestionView struct {
	ID         int                        `json:"id"`
	Question   string                     `json:"question"`
	Options    [quizbank.OptionCount]string `json:"options"`
	Topic      string                     `json:"topic"`
	Difficulty adaptive.Difficulty        `json:"difficulty"`
}

// QuizView describes a created quiz for the UI.
type QuizView struct {
	QuizID         string              `json:"quiz_id"`
	Subject        string              `json:"subject"`
	Grade          string              `json:"grade"`
	Difficulty     adaptive.Difficulty `json:"difficulty"`
	TotalQuestions int                 `json:"total_questions"`
	Questions      []QuestionView      `json:"questions"`
	Topics         []string            `json:"topics"`
}

// SubmitResult combines the graded quiz with its gamification effects.
type SubmitResult struct {
	quiz.Result
	Award           ledger.AwardResult `json:"gamification"`
	NewAchievements []ledger.Unlock    `json:"new_achievements"`
	CurrentCoins    int                `json:"current_coins"`
	Level           int                `json:"level"`
	Message         string             `json:"message,omitempty"`
}

// CreateQuiz builds a new quiz session for the student and stores it as
// their active quiz. Difficulty "auto" resolves from the student's
// progress history. An existing unsubmitted quiz is replaced.
func (b *Backend) CreateQuiz(ctx context.Context, studentID string, req CreateQuizRequest) (*QuizView, error) {
	if req.Grade == "" || req.Board == "" || req.Subject == "" {
		return nil, fmt.Errorf("please set up your learning session first")
	}

	st := b.student(studentID)
	st.mu.Lock()
	defer st.mu.Unlock()

	key := progress.Key{Subject: req.Subject, Grade: req.Grade}
	rec := b.loadRecord(ctx, studentID, key)

	session := b.builder.Generate(quiz.Request{
		Grade:        req.Grade,
		Board:        req.Board,
		Subject:      req.Subject,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
		Topics:       req.Topics,
		History:      rec.History(),
	})
	st.activeQuiz = session

	view := &QuizView{
		QuizID:         session.ID,
		Subject:        session.Subject,
		Grade:          session.Grade,
		Difficulty:     session.Difficulty,
		TotalQuestions: session.TotalQuestions(),
		Topics:         session.TopicsCovered,
	}
	for i, q := range session.Questions {
		view.Questions = append(view.Questions, QuestionView{
			ID:         i,
			Question:   q.Text,
			Options:    q.Options,
			Topic:      q.Topic,
			Difficulty: q.Difficulty,
		})
	}
	return view, nil
}

// SubmitQuiz grades the student's active quiz, commits progress and
// gamification effects, and clears the session. With no active quiz the
// result is a zero-score degraded grading, never an error: the student
// sees a friendly message and consistent state.
func (b *Backend) SubmitQuiz(ctx context.Context, studentID string, answers []int, timeTaken float64) (*SubmitResult, error) {
	st := b.student(studentID)
	st.mu.Lock()
	defer st.mu.Unlock()

	session := st.activeQuiz
	if session == nil {
		res := quiz.Grade(nil, answers, timeTaken)
		return &SubmitResult{
			Result:  res,
			Message: "No active quiz found!",
		}, nil
	}

	if err := session.Submit(answers, timeTaken); err != nil {
		res := quiz.Grade(nil, answers, timeTaken)
		return &SubmitResult{
			Result:  res,
			Message: "This quiz was already submitted.",
		}, nil
	}
	result := quiz.Grade(session, answers, timeTaken)
	st.activeQuiz = nil

	// Progress first: the award reads nothing from it, but a failed flush
	// must surface before coins move.
	key := progress.Key{Subject: session.Subject, Grade: session.Grade}
	rec := b.loadRecord(ctx, studentID, key)
	rec.RecordQuiz(result.Percentage, session.Difficulty, result.TopicOutcomes(), b.now())
	if err := b.progress.Save(ctx, studentID, rec); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	profile := b.loadProfile(ctx, studentID)

	multipliers := map[string]float64{}
	if result.Percentage == 100 {
		multipliers["Perfect score"] = 2.0
	}
	award := b.ledger.AwardCoins(ctx, profile, result.CoinsEarned,
		fmt.Sprintf("Quiz completion - %.0f%%", result.Percentage), multipliers)
	activityUnlocks := b.ledger.UpdateActivity(ctx, profile, ledger.ActivityQuiz, ledger.ActivityData{Score: result.Percentage})
	award.NewAchievements = append(award.NewAchievements, activityUnlocks...)
	award.CurrentCoins = profile.CurrentCoins
	award.TotalCoins = profile.TotalCoins
	award.Level = profile.Level

	if err := b.saveProfile(ctx, profile); err != nil {
		return nil, err
	}

	if err := b.events.AppendQuizEvent(ctx, store.QuizEventData{
		StudentID:  studentID,
		SessionID:  session.ID,
		Subject:    session.Subject,
		Grade:      session.Grade,
		Difficulty: string(session.Difficulty),
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		TimeTaken:  result.TimeTaken,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record quiz event: %v\n", err)
	}

	return &SubmitResult{
		Result:          result,
		Award:           award,
		NewAchievements: award.NewAchievements,
		CurrentCoins:    profile.CurrentCoins,
		Level:           profile.Level,
	}, nil
}

// ActiveQuiz reports whether the student has an open quiz session.
func (b *Backend) ActiveQuiz(studentID string) bool {
	st := b.student(studentID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.activeQuiz != nil
}
