// Package leaderboard ranks student profiles by a chosen metric.
package leaderboard

import (
	"sort"

	"github.com/abhisek/vidya/internal/ledger"
)

// DefaultMetric is used when the caller passes an empty or unknown metric.
const DefaultMetric = "total_coins"

// DefaultLimit bounds the board when the caller passes limit <= 0.
const DefaultLimit = 10

// Entry is one ranked row.
type Entry struct {
	Rank        int    `json:"rank"`
	StudentID   string `json:"student_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
	Metric      string `json:"metric"`
}

// Rank sorts the profiles descending by metric and returns the top
// entries. Ties share a rank and keep their input order, so repeated calls
// over the same profiles produce the same board. The level metric breaks
// ties by experience points before ranking.
func Rank(profiles []*ledger.Profile, metric string, limit int) []Entry {
	if metric == "" {
		metric = DefaultMetric
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	sorted := make([]*ledger.Profile, len(profiles))
	copy(sorted, profiles)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Metric(metric), sorted[j].Metric(metric)
		if metric == "level" && a == b {
			return sorted[i].ExperiencePoints > sorted[j].ExperiencePoints
		}
		return a > b
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]Entry, 0, len(sorted))
	rank := 0
	prevScore := 0
	for i, p := range sorted {
		score := p.Metric(metric)
		if i == 0 || score != prevScore {
			rank++
			prevScore = score
		}
		entries = append(entries, Entry{
			Rank:        rank,
			StudentID:   p.StudentID,
			DisplayName: p.DisplayName(),
			Score:       score,
			Metric:      metric,
		})
	}
	return entries
}
