package ledger

import (
	"time"
)

// StartingCoins is the balance a brand-new student receives.
const StartingCoins = 100

// DefaultStudentID is used when no multi-user auth supplies a real id.
const DefaultStudentID = "default_student"

// Profile is one student's gamification account. CurrentCoins can drop when
// perks are bought; TotalCoins only ever grows. Level and ExperiencePoints
// are monotonic non-decreasing.
type Profile struct {
	StudentID        string    `json:"student_id"`
	TotalCoins       int       `json:"total_coins"`
	CurrentCoins     int       `json:"current_coins"`
	Level            int       `json:"level"`
	ExperiencePoints int       `json:"experience_points"`
	StreakDays       int       `json:"streak_days"`
	LongestStreak    int       `json:"longest_streak"`
	TotalQuizzes     int       `json:"total_quizzes"`
	TotalVideos      int       `json:"total_videos"`
	StudyMinutes     int       `json:"study_minutes"`
	PerfectQuizzes   int       `json:"perfect_quizzes"`
	Achievements     []string  `json:"achievements"`
	OwnedPerks       []string  `json:"owned_perks"`
	LastActivity     time.Time `json:"last_activity"`
	JoinDate         time.Time `json:"join_date"`
}

// NewProfile creates a fresh profile with the starting balance. The join
// date is the wall clock; activity timestamps afterwards come from the
// service clock.
func NewProfile(studentID string) *Profile {
	now := time.Now()
	return &Profile{
		StudentID:    studentID,
		TotalCoins:   StartingCoins,
		CurrentCoins: StartingCoins,
		Level:        1,
		LastActivity: now,
		JoinDate:     now,
	}
}

// HasAchievement reports whether the achievement id is already unlocked.
func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// OwnsPerk reports whether the perk id has been purchased.
func (p *Profile) OwnsPerk(id string) bool {
	for _, perk := range p.OwnedPerks {
		if perk == id {
			return true
		}
	}
	return false
}

// Credit adds coins to both the current balance and the lifetime total.
func (p *Profile) Credit(amount int) {
	p.CurrentCoins += amount
	p.TotalCoins += amount
}

// Metric returns the named leaderboard metric value, defaulting to lifetime
// coins for unrecognized names.
func (p *Profile) Metric(name string) int {
	switch name {
	case "total_coins":
		return p.TotalCoins
	case "current_coins":
		return p.CurrentCoins
	case "level":
		return p.Level
	case "experience_points":
		return p.ExperiencePoints
	case "streak_days":
		return p.StreakDays
	case "longest_streak":
		return p.LongestStreak
	case "quizzes":
		return p.TotalQuizzes
	case "videos":
		return p.TotalVideos
	case "study_minutes":
		return p.StudyMinutes
	default:
		return p.TotalCoins
	}
}

// DisplayName derives the public leaderboard name for a student.
func (p *Profile) DisplayName() string {
	if len(p.StudentID) > 4 {
		return "Student " + p.StudentID[len(p.StudentID)-4:]
	}
	return p.StudentID
}
