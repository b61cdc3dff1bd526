package progress

import (
	"fmt"
	"sort"

	"github.com/abhisek/vidya/internal/adaptive"
)

// Trend classifies how a student's recent performance compares to their
// overall average.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendStable           Trend = "stable"
	TrendNeedsAttention   Trend = "needs_attention"
	TrendInsufficientData Trend = "insufficient_data"
)

// Topic accuracy boundaries for the strong/weak split.
const (
	strongTopicThreshold = 80
	weakTopicThreshold   = 60
)

// Report summarizes a record for dashboards and parents.
type Report struct {
	Subject           string              `json:"subject"`
	Grade             string              `json:"grade"`
	TotalQuizzes      int                 `json:"total_quizzes"`
	AverageScore      float64             `json:"average_score"`
	RecentAverage     float64             `json:"recent_average"`
	Trend             Trend               `json:"improvement_trend"`
	StrongTopics      []string            `json:"strong_topics"`
	WeakTopics        []string            `json:"weak_topics"`
	CurrentDifficulty adaptive.Difficulty `json:"current_difficulty"`
	Recommendations   []string            `json:"recommendations"`
}

// Trend computes the improvement trend from the score history.
func (r *Record) Trend() Trend {
	if len(r.Scores) < 2 {
		return TrendInsufficientData
	}
	avg := r.Average()
	recent := r.RecentAverage()
	switch {
	case recent > avg:
		return TrendImproving
	case recent == avg:
		return TrendStable
	default:
		return TrendNeedsAttention
	}
}

// StrongTopics returns topics at or above 80% accuracy, sorted.
func (r *Record) StrongTopics() []string {
	return r.topicsWhere(func(ts TopicStats) bool {
		return ts.Total > 0 && ts.Percentage() >= strongTopicThreshold
	})
}

// WeakTopics returns attempted topics below 60% accuracy, sorted.
func (r *Record) WeakTopics() []string {
	return r.topicsWhere(func(ts TopicStats) bool {
		return ts.Total > 0 && ts.Percentage() < weakTopicThreshold
	})
}

// TopicsBelow returns attempted topics with accuracy under the given
// percentage, sorted. The revision generator uses a 70% cut.
func (r *Record) TopicsBelow(percentage float64) []string {
	return r.topicsWhere(func(ts TopicStats) bool {
		return ts.Total > 0 && ts.Percentage() < percentage
	})
}

func (r *Record) topicsWhere(pred func(TopicStats) bool) []string {
	var out []string
	for topic, ts := range r.TopicStats {
		if pred(ts) {
			out = append(out, topic)
		}
	}
	sort.Strings(out)
	return out
}

// BuildReport assembles the full progress report for a record.
func (r *Record) BuildReport() Report {
	trend := r.Trend()
	weak := r.WeakTopics()
	return Report{
		Subject:           r.Key.Subject,
		Grade:             r.Key.Grade,
		TotalQuizzes:      r.TotalQuizzes,
		AverageScore:      round1(r.Average()),
		RecentAverage:     round1(r.RecentAverage()),
		Trend:             trend,
		StrongTopics:      r.StrongTopics(),
		WeakTopics:        weak,
		CurrentDifficulty: r.CurrentDifficulty,
		Recommendations:   recommendations(trend, weak, r.Average()),
	}
}

func recommendations(trend Trend, weakTopics []string, avg float64) []string {
	var recs []string
	switch trend {
	case TrendImproving:
		recs = append(recs, "Great progress! Keep up the excellent work!")
	case TrendNeedsAttention:
		recs = append(recs, "Focus on consistent practice to improve your scores.")
	}
	if len(weakTopics) > 0 {
		n := len(weakTopics)
		if n > 3 {
			n = 3
		}
		recs = append(recs, fmt.Sprintf("Spend extra time on: %s", joinTopics(weakTopics[:n])))
	}
	if avg >= 80 {
		recs = append(recs, "Ready for more challenging questions!")
	} else if avg < 60 {
		recs = append(recs, "Review basic concepts and practice regularly.")
	}
	recs = append(recs, "Take quizzes regularly to track your progress.")
	return recs
}

func joinTopics(topics []string) string {
	out := ""
	for i, t := range topics {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
