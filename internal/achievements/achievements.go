// Package achievements holds the unlockable achievement catalog and the
// evaluator that checks profiles against it.
package achievements

import (
	"github.com/abhisek/vidya/internal/ledger"
)

// RequirementKind enumerates the profile metrics a requirement can test.
type RequirementKind string

const (
	KindQuizzesCompleted RequirementKind = "quizzes_completed"
	KindStreakDays       RequirementKind = "streak_days"
	KindTotalCoins       RequirementKind = "total_coins"
	KindVideosWatched    RequirementKind = "videos_watched"
	KindPerfectQuizzes   RequirementKind = "perfect_quizzes"
	KindStudyMinutes     RequirementKind = "study_minutes"
	KindLevel            RequirementKind = "level"
)

// Requirement is a single threshold an achievement unlocks at.
type Requirement struct {
	Kind      RequirementKind
	Threshold int
}

// Met reports whether the profile satisfies this requirement.
func (r Requirement) Met(p *ledger.Profile) bool {
	var value int
	switch r.Kind {
	case KindQuizzesCompleted:
		value = p.TotalQuizzes
	case KindStreakDays:
		value = p.StreakDays
	case KindTotalCoins:
		value = p.TotalCoins
	case KindVideosWatched:
		value = p.TotalVideos
	case KindPerfectQuizzes:
		value = p.PerfectQuizzes
	case KindStudyMinutes:
		value = p.StudyMinutes
	case KindLevel:
		value = p.Level
	default:
		return false
	}
	return value >= r.Threshold
}

// Rarity buckets achievements for display.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Achievement is one entry in the catalog.
type Achievement struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	RewardCoins int         `json:"reward_coins"`
	Rarity      Rarity      `json:"rarity"`
	Requirement Requirement `json:"-"`
}

var catalog = buildCatalog()

func buildCatalog() []Achievement {
	return []Achievement{
		{
			ID:          "first_quiz",
			Name:        "Quiz Beginner",
			Description: "Complete your first quiz",
			Icon:        "🎯",
			RewardCoins: 50,
			Rarity:      RarityCommon,
			Requirement: Requirement{KindQuizzesCompleted, 1},
		},
		{
			ID:          "quiz_master_10",
			Name:        "Quiz Enthusiast",
			Description: "Complete 10 quizzes",
			Icon:        "📝",
			RewardCoins: 100,
			Rarity:      RarityCommon,
			Requirement: Requirement{KindQuizzesCompleted, 10},
		},
		{
			ID:          "quiz_master_50",
			Name:        "Quiz Master",
			Description: "Complete 50 quizzes",
			Icon:        "🏆",
			RewardCoins: 500,
			Rarity:      RarityRare,
			Requirement: Requirement{KindQuizzesCompleted, 50},
		},
		{
			ID:          "perfect_score",
			Name:        "Perfectionist",
			Description: "Get a perfect score on a quiz",
			Icon:        "⭐",
			RewardCoins: 200,
			Rarity:      RarityUncommon,
			Requirement: Requirement{KindPerfectQuizzes, 1},
		},
		{
			ID:          "streak_3",
			Name:        "Consistent Learner",
			Description: "Maintain a 3-day study streak",
			Icon:        "🔥",
			RewardCoins: 150,
			Rarity:      RarityCommon,
			Requirement: Requirement{KindStreakDays, 3},
		},
		{
			ID:          "streak_7",
			Name:        "Week Warrior",
			Description: "Maintain a 7-day study streak",
			Icon:        "💪",
			RewardCoins: 300,
			Rarity:      RarityUncommon,
			Requirement: Requirement{KindStreakDays, 7},
		},
		{
			ID:          "streak_30",
			Name:        "Study Champion",
			Description: "Maintain a 30-day study streak",
			Icon:        "👑",
			RewardCoins: 1000,
			Rarity:      RarityLegendary,
			Requirement: Requirement{KindStreakDays, 30},
		},
		{
			ID:          "video_learner",
			Name:        "Video Scholar",
			Description: "Watch 20 video lessons",
			Icon:        "📺",
			RewardCoins: 200,
			Rarity:      RarityUncommon,
			Requirement: Requirement{KindVideosWatched, 20},
		},
		{
			ID:          "coin_collector",
			Name:        "Coin Collector",
			Description: "Earn 1000 total coins",
			Icon:        "💰",
			RewardCoins: 100,
			Rarity:      RarityRare,
			Requirement: Requirement{KindTotalCoins, 1000},
		},
		{
			ID:          "study_time_master",
			Name:        "Time Scholar",
			Description: "Study for 10 hours total",
			Icon:        "⏰",
			RewardCoins: 400,
			Rarity:      RarityEpic,
			Requirement: Requirement{KindStudyMinutes, 600},
		},
	}
}

// All returns the full catalog in display order.
func All() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// Get looks up an achievement by id.
func Get(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Summary describes a student's standing against the catalog.
type Summary struct {
	Unlocked []Achievement `json:"unlocked"`
	Locked   []Achievement `json:"locked"`
	Total    int           `json:"total"`
}

// Summarize splits the catalog by what the profile has unlocked.
func Summarize(p *ledger.Profile) Summary {
	s := Summary{Total: len(catalog)}
	for _, a := range catalog {
		if p.HasAchievement(a.ID) {
			s.Unlocked = append(s.Unlocked, a)
		} else {
			s.Locked = append(s.Locked, a)
		}
	}
	return s
}

// Evaluator implements ledger.AchievementChecker against the catalog.
type Evaluator struct{}

// NewEvaluator returns a catalog-backed evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Check unlocks every achievement the profile newly qualifies for,
// crediting reward coins as it goes. Already-unlocked achievements are
// skipped, so repeated calls are safe.
func (e *Evaluator) Check(p *ledger.Profile) []ledger.Unlock {
	var unlocked []ledger.Unlock
	for _, a := range catalog {
		if p.HasAchievement(a.ID) {
			continue
		}
		if !a.Requirement.Met(p) {
			continue
		}
		p.Achievements = append(p.Achievements, a.ID)
		p.Credit(a.RewardCoins)
		unlocked = append(unlocked, ledger.Unlock{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			RewardCoins: a.RewardCoins,
			Rarity:      string(a.Rarity),
		})
	}
	return unlocked
}
