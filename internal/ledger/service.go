package ledger

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"time"
)

// Perk ids whose effects the award path applies directly.
const (
	PerkDoubleCoins = "double_coins"
	PerkLuckyCharm  = "lucky_charm"
)

// Streak bonus parameters: 10% per full week of streak, capped at 50%,
// active once the streak reaches a week.
const (
	streakBonusMinDays = 7
	streakBonusStep    = 0.1
	streakBonusCap     = 0.5
)

// Lucky charm: 10% chance of a flat 10-50 coin bonus.
const (
	luckyChance = 0.1
	luckyMin    = 10
	luckyMax    = 50
)

// Unlock describes an achievement that just unlocked during an award.
type Unlock struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RewardCoins int    `json:"reward_coins"`
	Rarity      string `json:"rarity"`
}

// AchievementChecker evaluates the achievement catalog against a profile,
// unlocking and crediting anything newly earned. Implementations must be
// idempotent: an unlocked achievement never unlocks or credits again.
type AchievementChecker interface {
	Check(p *Profile) []Unlock
}

// CoinEventData is the append-only record of one coin movement.
type CoinEventData struct {
	StudentID string
	Delta     int // negative for spends
	Balance   int // current coins after the movement
	Reason    string
}

// CoinEventAppender records coin movements in the event log.
type CoinEventAppender interface {
	AppendCoinEvent(ctx context.Context, data CoinEventData) error
}

// AwardResult reports everything one award did to the profile.
type AwardResult struct {
	CoinsAwarded    int      `json:"coins_awarded"`
	BaseAmount      int      `json:"base_amount"`
	CurrentCoins    int      `json:"current_coins"`
	TotalCoins      int      `json:"total_coins"`
	Reason          string   `json:"reason"`
	Multipliers     []string `json:"multipliers_applied"`
	NewAchievements []Unlock `json:"new_achievements"`
	Level           int      `json:"level"`
	Experience      int      `json:"experience_points"`
	LeveledUp       bool     `json:"leveled_up"`
}

// ActivityType tags what kind of study activity occurred.
type ActivityType string

const (
	ActivityQuiz  ActivityType = "quiz"
	ActivityVideo ActivityType = "video"
	ActivityStudy ActivityType = "study"
)

// ActivityData carries the per-type payload for an activity update.
type ActivityData struct {
	Minutes int     // study sessions
	Score   float64 // quiz percentage, drives bonus and perfect tracking
}

// Service applies coin, XP, streak and achievement rules to profiles. The
// random source is injected so the lucky-charm roll is deterministic in
// tests; the clock is injectable for streak tests. Events are appended when
// an appender is configured, in the same fire-and-record spirit as the rest
// of the event log.
//
// Service does not serialize access: callers must not interleave operations
// on the same profile from concurrent goroutines.
type Service struct {
	checker AchievementChecker
	events  CoinEventAppender
	rng     *rand.Rand
	now     func() time.Time
}

// NewService creates a ledger Service. checker and events may be nil.
func NewService(checker AchievementChecker, events CoinEventAppender, rng *rand.Rand) *Service {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>3))
	}
	return &Service{
		checker: checker,
		events:  events,
		rng:     rng,
		now:     time.Now,
	}
}

// WithClock overrides the service clock. Test-only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// AwardCoins credits coins and XP for an activity. Multiplier order is
// fixed: streak bonus, then owned-perk effects, then caller-supplied named
// multipliers; the result is floored to an integer before crediting.
func (s *Service) AwardCoins(ctx context.Context, p *Profile, amount int, reason string, multipliers map[string]float64) AwardResult {
	final := float64(amount)
	var applied []string

	if p.StreakDays >= streakBonusMinDays {
		bonus := float64(p.StreakDays) / float64(streakBonusMinDays) * streakBonusStep
		if bonus > streakBonusCap {
			bonus = streakBonusCap
		}
		final *= 1 + bonus
		applied = append(applied, fmt.Sprintf("Streak bonus: +%.0f%%", bonus*100))
	}

	if p.OwnsPerk(PerkDoubleCoins) {
		final *= 2
		applied = append(applied, "Double coins perk: +100%")
	}

	if p.OwnsPerk(PerkLuckyCharm) && s.rng.Float64() < luckyChance {
		lucky := luckyMin + s.rng.IntN(luckyMax-luckyMin+1)
		final += float64(lucky)
		applied = append(applied, fmt.Sprintf("Lucky charm: +%d coins!", lucky))
	}

	for _, name := range sortedKeys(multipliers) {
		value := multipliers[name]
		final *= value
		applied = append(applied, fmt.Sprintf("%s: +%.0f%%", name, (value-1)*100))
	}

	coins := int(final)
	p.Credit(coins)
	p.LastActivity = s.now()
	s.appendCoinEvent(ctx, p, coins, reason)

	// XP is coupled 1:1 with earned coins.
	oldLevel := p.Level
	p.ExperiencePoints += coins
	newLevel := LevelFor(p.ExperiencePoints)
	leveledUp := newLevel > oldLevel
	if leveledUp {
		p.Level = newLevel
		bonus := LevelUpBonus(newLevel)
		p.Credit(bonus)
		s.appendCoinEvent(ctx, p, bonus, fmt.Sprintf("Level up to %d", newLevel))
	}

	var unlocked []Unlock
	if s.checker != nil {
		unlocked = s.checker.Check(p)
		for _, u := range unlocked {
			s.appendCoinEvent(ctx, p, u.RewardCoins, fmt.Sprintf("Achievement: %s", u.Name))
		}
	}

	return AwardResult{
		CoinsAwarded:    coins,
		BaseAmount:      amount,
		CurrentCoins:    p.CurrentCoins,
		TotalCoins:      p.TotalCoins,
		Reason:          reason,
		Multipliers:     applied,
		NewAchievements: unlocked,
		Level:           p.Level,
		Experience:      p.ExperiencePoints,
		LeveledUp:       leveledUp,
	}
}

// SpendCoins deducts from the current balance only. It is the sole gate for
// purchases: with insufficient funds nothing changes and false is returned.
func (s *Service) SpendCoins(ctx context.Context, p *Profile, amount int, reason string) bool {
	if amount < 0 || p.CurrentCoins < amount {
		return false
	}
	p.CurrentCoins -= amount
	p.LastActivity = s.now()
	s.appendCoinEvent(ctx, p, -amount, reason)
	return true
}

// UpdateActivity increments the per-type counters and recomputes the streak.
// The streak update reads the previous LastActivity, so it runs first.
// Quiz scores of 80%+ and watched videos also earn a small activity bonus
// through the normal award path. Returns achievements newly unlocked by
// the updated counters.
func (s *Service) UpdateActivity(ctx context.Context, p *Profile, activity ActivityType, data ActivityData) []Unlock {
	now := s.now()
	updateStreak(p, now)
	p.LastActivity = now

	bonus := 0
	switch activity {
	case ActivityQuiz:
		p.TotalQuizzes++
		if data.Score >= 100 {
			p.PerfectQuizzes++
		}
		if data.Score >= 80 {
			bonus = 10
		}
	case ActivityVideo:
		p.TotalVideos++
		bonus = 5
	case ActivityStudy:
		p.StudyMinutes += data.Minutes
	}

	var unlocked []Unlock
	if bonus > 0 {
		res := s.AwardCoins(ctx, p, bonus, fmt.Sprintf("Daily challenge bonus - %s", activity), nil)
		unlocked = res.NewAchievements
	} else if s.checker != nil {
		unlocked = s.checker.Check(p)
		for _, u := range unlocked {
			s.appendCoinEvent(ctx, p, u.RewardCoins, fmt.Sprintf("Achievement: %s", u.Name))
		}
	}
	return unlocked
}

func (s *Service) appendCoinEvent(ctx context.Context, p *Profile, delta int, reason string) {
	if s.events == nil {
		return
	}
	// The award itself already happened; a lost audit row is worth a
	// warning, not a failed transaction.
	if err := s.events.AppendCoinEvent(ctx, CoinEventData{
		StudentID: p.StudentID,
		Delta:     delta,
		Balance:   p.CurrentCoins,
		Reason:    reason,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record coin event: %v\n", err)
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
