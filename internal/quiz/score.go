package quiz

import (
	"math"

	"github.com/abhisek/vidya/internal/adaptive"
	"github.com/abhisek/vidya/internal/progress"
)

// NoAnswer is the sentinel answer index for questions the student skipped.
const NoAnswer = -1

// ConsolationCoins is the degraded-result award when a session cannot be
// graded normally.
const ConsolationCoins = 10

// QuestionResult is the graded outcome for one question.
type QuestionResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	Topic         string `json:"topic"`
}

// TopicPerformance is the per-topic sub-score for one quiz.
type TopicPerformance struct {
	Percentage float64 `json:"percentage"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
}

// Result is the full outcome of grading one session.
type Result struct {
	Score            int                         `json:"score"`
	Total            int                         `json:"total"`
	Percentage       float64                     `json:"percentage"`
	TimeTaken        float64                     `json:"time_taken"`
	Difficulty       adaptive.Difficulty         `json:"difficulty"`
	CoinsEarned      int                         `json:"coins_earned"`
	Feedback         string                      `json:"feedback"`
	QuestionResults  []QuestionResult            `json:"question_results"`
	TopicPerformance map[string]TopicPerformance `json:"topics_performance"`
	NextDifficulty   adaptive.Difficulty         `json:"next_difficulty"`
	Degraded         bool                        `json:"-"`
}

// TopicOutcomes converts the graded questions into progress counter updates.
func (r Result) TopicOutcomes() []progress.TopicOutcome {
	out := make([]progress.TopicOutcome, 0, len(r.QuestionResults))
	for _, qr := range r.QuestionResults {
		out = append(out, progress.TopicOutcome{Topic: qr.Topic, Correct: qr.IsCorrect})
	}
	return out
}

// Grade scores a session against submitted answers. It is pure: grading the
// same session and answers twice yields the identical result. Progress and
// ledger side effects belong to the caller, which must commit them exactly
// once per session.
//
// A session with no questions is graded as a degraded no-op rather than an
// error; this path must never crash the caller.
func Grade(s *Session, answers []int, timeTaken float64) Result {
	if s == nil || s.TotalQuestions() == 0 {
		return Result{
			Feedback:    "Error occurred while scoring quiz.",
			CoinsEarned: ConsolationCoins,
			Degraded:    true,
		}
	}

	correct := 0
	results := make([]QuestionResult, 0, len(s.Questions))
	for i, q := range s.Questions {
		answer := NoAnswer
		if i < len(answers) {
			answer = answers[i]
		}
		isCorrect := q.IsCorrect(answer)
		if isCorrect {
			correct++
		}

		userAnswer := "No answer"
		if answer >= 0 && answer < len(q.Options) {
			userAnswer = q.Options[answer]
		}
		results = append(results, QuestionResult{
			Question:      q.Text,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.Options[q.CorrectAnswer],
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
			Topic:         q.Topic,
		})
	}

	percentage := float64(correct) / float64(len(s.Questions)) * 100

	return Result{
		Score:            correct,
		Total:            len(s.Questions),
		Percentage:       round1(percentage),
		TimeTaken:        round1(timeTaken),
		Difficulty:       s.Difficulty,
		CoinsEarned:      CalculateCoins(percentage, s.Difficulty),
		Feedback:         feedback(percentage, s.Difficulty),
		QuestionResults:  results,
		TopicPerformance: topicPerformance(results),
		NextDifficulty:   adaptive.RecommendNext(percentage, s.Difficulty),
	}
}

// baseCoins is the per-tier base award.
var baseCoins = map[adaptive.Difficulty]int{
	adaptive.DifficultyEasy:   10,
	adaptive.DifficultyMedium: 20,
	adaptive.DifficultyHard:   30,
}

// CalculateCoins maps a percentage and tier to the coin award. The scale is
// monotone in percentage within a tier; scores under 40% still earn a
// consolation floor.
func CalculateCoins(percentage float64, difficulty adaptive.Difficulty) int {
	base, ok := baseCoins[difficulty]
	if !ok {
		base = 10
	}

	switch {
	case percentage >= 90:
		return base * 3
	case percentage >= 80:
		return base * 2
	case percentage >= 60:
		return int(float64(base) * 1.5)
	case percentage >= 40:
		return base
	default:
		consolation := base / 2
		if consolation < 5 {
			consolation = 5
		}
		return consolation
	}
}

// feedback picks the encouragement line for a score, with an extra nudge for
// brave hard-tier attempts and strong easy-tier runs.
func feedback(percentage float64, difficulty adaptive.Difficulty) string {
	var msg string
	switch {
	case percentage >= 90:
		msg = "🌟 Outstanding performance! You're a true scholar! 🌟"
	case percentage >= 80:
		msg = "🎉 Excellent work! You really understand this material! 🎉"
	case percentage >= 70:
		msg = "👏 Great job! You're making good progress! 👏"
	case percentage >= 60:
		msg = "👍 Good effort! Keep practicing and you'll improve! 👍"
	case percentage >= 40:
		msg = "💪 You're on the right track! Review the topics and try again! 💪"
	default:
		msg = "🌱 Every expert was once a beginner! Don't give up! 🌱"
	}

	if difficulty == adaptive.DifficultyHard && percentage >= 60 {
		msg += " Tackling hard questions shows great courage! 🦸"
	} else if difficulty == adaptive.DifficultyEasy && percentage >= 80 {
		msg += " Ready to try medium difficulty next time? 🚀"
	}
	return msg
}

func topicPerformance(results []QuestionResult) map[string]TopicPerformance {
	counts := make(map[string]*TopicPerformance)
	for _, r := range results {
		tp, ok := counts[r.Topic]
		if !ok {
			tp = &TopicPerformance{}
			counts[r.Topic] = tp
		}
		tp.Total++
		if r.IsCorrect {
			tp.Correct++
		}
	}

	out := make(map[string]TopicPerformance, len(counts))
	for topic, tp := range counts {
		tp.Percentage = round1(float64(tp.Correct) / float64(tp.Total) * 100)
		out[topic] = *tp
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
