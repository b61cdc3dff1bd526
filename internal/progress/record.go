package progress

import (
	"time"

	"github.com/abhisek/vidya/internal/adaptive"
)

// RecentWindow is the number of most recent scores kept for the adaptive
// difficulty average.
const RecentWindow = 10

// Key identifies a progress record: one per subject and grade. It is a
// struct key rather than a joined string so subjects containing separators
// can never collide.
type Key struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
}

// TopicStats counts correct answers out of total attempts for one topic.
type TopicStats struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percentage returns the topic accuracy as 0-100, or 0 with no attempts.
func (ts TopicStats) Percentage() float64 {
	if ts.Total == 0 {
		return 0
	}
	return float64(ts.Correct) / float64(ts.Total) * 100
}

// Record is the per subject+grade quiz history for one student.
// Scores is append-only; RecentScores is always a suffix of Scores with
// length at most RecentWindow.
type Record struct {
	Key               Key                   `json:"key"`
	TotalQuizzes      int                   `json:"total_quizzes"`
	Scores            []float64             `json:"scores"`
	RecentScores      []float64             `json:"recent_scores"`
	TopicStats        map[string]TopicStats `json:"topic_performance"`
	CurrentDifficulty adaptive.Difficulty   `json:"current_difficulty"`
	LastQuizAt        time.Time             `json:"last_quiz_date"`
}

// NewRecord returns an empty record for a subject+grade.
func NewRecord(key Key) *Record {
	return &Record{
		Key:               key,
		TopicStats:        make(map[string]TopicStats),
		CurrentDifficulty: adaptive.DifficultyEasy,
	}
}

// TopicOutcome carries one graded question's contribution to topic counters.
type TopicOutcome struct {
	Topic   string
	Correct bool
}

// RecordQuiz appends one quiz result. Committed exactly once per session;
// the caller enforces single submission.
func (r *Record) RecordQuiz(percentage float64, difficulty adaptive.Difficulty, outcomes []TopicOutcome, at time.Time) {
	r.TotalQuizzes++
	r.Scores = append(r.Scores, percentage)
	if len(r.Scores) > RecentWindow {
		r.RecentScores = append(r.RecentScores[:0], r.Scores[len(r.Scores)-RecentWindow:]...)
	} else {
		r.RecentScores = append(r.RecentScores[:0], r.Scores...)
	}
	r.CurrentDifficulty = difficulty
	r.LastQuizAt = at

	if r.TopicStats == nil {
		r.TopicStats = make(map[string]TopicStats)
	}
	for _, o := range outcomes {
		ts := r.TopicStats[o.Topic]
		ts.Total++
		if o.Correct {
			ts.Correct++
		}
		r.TopicStats[o.Topic] = ts
	}
}

// Average returns the mean over all scores, 0 with no history.
func (r *Record) Average() float64 {
	return mean(r.Scores)
}

// RecentAverage returns the mean over the recent-scores window.
func (r *Record) RecentAverage() float64 {
	return mean(r.RecentScores)
}

// History builds the policy input for the adaptive difficulty pick.
func (r *Record) History() adaptive.History {
	return adaptive.History{
		QuizCount:     r.TotalQuizzes,
		RecentAverage: r.RecentAverage(),
		Current:       r.CurrentDifficulty,
	}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
