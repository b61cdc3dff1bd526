package backend

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/vidya/internal/achievements"
	"github.com/abhisek/vidya/internal/leaderboard"
	"github.com/abhisek/vidya/internal/ledger"
	"github.com/abhisek/vidya/internal/perks"
	"github.com/abhisek/vidya/internal/progress"
)

// AchievementProgress summarizes catalog completion.
type AchievementProgress struct {
	Unlocked int     `json:"unlocked"`
	Total    int     `json:"total"`
	Progress float64 `json:"progress"` // percent
}

// StudentStats is the dashboard view of one student's standing.
type StudentStats struct {
	StudentID        string              `json:"student_id"`
	DisplayName      string              `json:"display_name"`
	Level            int                 `json:"level"`
	LevelProgress    float64             `json:"level_progress"` // percent into current level
	ExperiencePoints int                 `json:"experience_points"`
	CurrentCoins     int                 `json:"current_coins"`
	TotalCoins       int                 `json:"total_coins"`
	StreakDays       int                 `json:"streak_days"`
	LongestStreak    int                 `json:"longest_streak"`
	TotalQuizzes     int                 `json:"total_quizzes"`
	TotalVideos      int                 `json:"total_videos"`
	StudyMinutes     int                 `json:"study_minutes"`
	PerfectQuizzes   int                 `json:"perfect_quizzes"`
	Achievements     AchievementProgress `json:"achievements"`
	PerksOwned       int                 `json:"perks_owned"`
}

// GetStudentStats assembles the stats view. Missing or unreadable profiles
// resolve to fresh defaults, never an error.
func (b *Backend) GetStudentStats(ctx context.Context, studentID string) StudentStats {
	p := b.loadProfile(ctx, studentID)

	currentReq := ledger.RequirementFor(p.Level)
	nextReq := ledger.RequirementFor(p.Level + 1)
	levelProgress := 0.0
	if nextReq > currentReq {
		levelProgress = float64(p.ExperiencePoints-currentReq) / float64(nextReq-currentReq) * 100
	}

	summary := achievements.Summarize(p)
	achievementProgress := 0.0
	if summary.Total > 0 {
		achievementProgress = float64(len(summary.Unlocked)) / float64(summary.Total) * 100
	}

	return StudentStats{
		StudentID:        p.StudentID,
		DisplayName:      p.DisplayName(),
		Level:            p.Level,
		LevelProgress:    round1(levelProgress),
		ExperiencePoints: p.ExperiencePoints,
		CurrentCoins:     p.CurrentCoins,
		TotalCoins:       p.TotalCoins,
		StreakDays:       p.StreakDays,
		LongestStreak:    p.LongestStreak,
		TotalQuizzes:     p.TotalQuizzes,
		TotalVideos:      p.TotalVideos,
		StudyMinutes:     p.StudyMinutes,
		PerfectQuizzes:   p.PerfectQuizzes,
		Achievements: AchievementProgress{
			Unlocked: len(summary.Unlocked),
			Total:    summary.Total,
			Progress: round1(achievementProgress),
		},
		PerksOwned: len(p.OwnedPerks),
	}
}

// GetLeaderboard ranks all stored profiles by the metric. Read failures
// degrade to an empty board.
func (b *Backend) GetLeaderboard(ctx context.Context, metric string, limit int) []leaderboard.Entry {
	profiles, err := b.profiles.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: list profiles: %v\n", err)
		return nil
	}
	return leaderboard.Rank(profiles, metric, limit)
}

// PurchasePerk buys a perk for the student and persists the result. A
// failed persistence write is surfaced; the purchase outcome itself is a
// normal result either way.
func (b *Backend) PurchasePerk(ctx context.Context, studentID, perkID string) (perks.PurchaseResult, error) {
	st := b.student(studentID)
	st.mu.Lock()
	defer st.mu.Unlock()

	p := b.loadProfile(ctx, studentID)
	result := b.shop.Purchase(ctx, p, perkID)
	if !result.Success {
		return result, nil
	}
	if err := b.saveProfile(ctx, p); err != nil {
		return result, err
	}
	return result, nil
}

// GetAchievementsSummary splits the catalog by what the student unlocked.
func (b *Backend) GetAchievementsSummary(ctx context.Context, studentID string) achievements.Summary {
	return achievements.Summarize(b.loadProfile(ctx, studentID))
}

// AvailablePerks lists catalog perks the student does not own yet.
func (b *Backend) AvailablePerks(ctx context.Context, studentID string) []perks.Perk {
	p := b.loadProfile(ctx, studentID)
	var out []perks.Perk
	for _, perk := range perks.All() {
		if !p.OwnsPerk(perk.ID) {
			out = append(out, perk)
		}
	}
	return out
}

// GetProgressReport builds the per-subject progress report.
func (b *Backend) GetProgressReport(ctx context.Context, studentID string, key progress.Key) progress.Report {
	return b.loadRecord(ctx, studentID, key).BuildReport()
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
