package ledger

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(checker AchievementChecker) *Service {
	return NewService(checker, nil, rand.New(rand.NewPCG(1, 2)))
}

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile("stu_1")
	if p.CurrentCoins != StartingCoins || p.TotalCoins != StartingCoins {
		t.Errorf("starting coins = %d/%d, want %d", p.CurrentCoins, p.TotalCoins, StartingCoins)
	}
	if p.Level != 1 {
		t.Errorf("starting level = %d, want 1", p.Level)
	}
	if len(p.Achievements) != 0 || len(p.OwnedPerks) != 0 {
		t.Error("new profile should own nothing")
	}
	if p.JoinDate.IsZero() || p.LastActivity.IsZero() {
		t.Error("new profile should be stamped with a join date")
	}
}

func TestLevelRequirements(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 50},
		{3, 200},
		{5, 800},
		{10, 4050},
	}
	for _, c := range cases {
		if got := RequirementFor(c.level); got != c.want {
			t.Errorf("RequirementFor(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 10000; xp += 25 {
		lvl := LevelFor(xp)
		if lvl < prev {
			t.Fatalf("level decreased from %d to %d at xp=%d", prev, lvl, xp)
		}
		if req := RequirementFor(lvl); xp < req {
			t.Fatalf("LevelFor(%d) = %d but requirement is %d", xp, lvl, req)
		}
		prev = lvl
	}
}

func TestAwardCoinsBase(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	res := svc.AwardCoins(context.Background(), p, 20, "quiz", nil)

	if res.CoinsAwarded != 20 {
		t.Errorf("coins awarded = %d, want 20", res.CoinsAwarded)
	}
	if p.CurrentCoins != StartingCoins+20 {
		t.Errorf("current coins = %d, want %d", p.CurrentCoins, StartingCoins+20)
	}
	if p.TotalCoins != StartingCoins+20 {
		t.Errorf("total coins = %d, want %d", p.TotalCoins, StartingCoins+20)
	}
	if p.ExperiencePoints != 20 {
		t.Errorf("xp = %d, want 20", p.ExperiencePoints)
	}
}

func TestAwardCoinsStreakBonus(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	p.StreakDays = 7
	res := svc.AwardCoins(context.Background(), p, 100, "quiz", nil)

	// 7 days: 10% bonus.
	if res.CoinsAwarded != 110 {
		t.Errorf("coins awarded = %d, want 110", res.CoinsAwarded)
	}
	if len(res.Multipliers) != 1 {
		t.Fatalf("multipliers = %v, want one entry", res.Multipliers)
	}
}

func TestAwardCoinsStreakBonusCapped(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	p.StreakDays = 365
	res := svc.AwardCoins(context.Background(), p, 100, "quiz", nil)

	if res.CoinsAwarded != 150 {
		t.Errorf("coins awarded = %d, want 150 (capped at +50%%)", res.CoinsAwarded)
	}
}

func TestAwardCoinsDoubleCoinsPerk(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	p.OwnedPerks = []string{PerkDoubleCoins}
	res := svc.AwardCoins(context.Background(), p, 30, "quiz", nil)

	if res.CoinsAwarded != 60 {
		t.Errorf("coins awarded = %d, want 60", res.CoinsAwarded)
	}
}

func TestAwardCoinsCustomMultiplier(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	res := svc.AwardCoins(context.Background(), p, 30, "quiz", map[string]float64{
		"Weekend boost": 1.5,
	})

	if res.CoinsAwarded != 45 {
		t.Errorf("coins awarded = %d, want 45", res.CoinsAwarded)
	}
}

func TestAwardCoinsFloorsResult(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	p.StreakDays = 7
	// 15 * 1.1 = 16.5, floors to 16.
	res := svc.AwardCoins(context.Background(), p, 15, "quiz", nil)
	if res.CoinsAwarded != 16 {
		t.Errorf("coins awarded = %d, want 16", res.CoinsAwarded)
	}
}

func TestAwardCoinsDeterministicWithSeed(t *testing.T) {
	run := func() int {
		svc := NewService(nil, nil, rand.New(rand.NewPCG(7, 11)))
		p := NewProfile("stu_1")
		p.OwnedPerks = []string{PerkLuckyCharm}
		total := 0
		for i := 0; i < 50; i++ {
			total += svc.AwardCoins(context.Background(), p, 10, "quiz", nil).CoinsAwarded
		}
		return total
	}
	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different totals: %d vs %d", a, b)
	}
}

func TestAwardCoinsLevelUp(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	before := p.CurrentCoins
	res := svc.AwardCoins(context.Background(), p, 50, "quiz", nil)

	if !res.LeveledUp || res.Level != 2 {
		t.Fatalf("expected level up to 2, got level %d leveledUp=%v", res.Level, res.LeveledUp)
	}
	// 50 awarded plus 40 level-up bonus, both lifetime and current.
	wantCurrent := before + 50 + LevelUpBonus(2)
	if p.CurrentCoins != wantCurrent {
		t.Errorf("current coins = %d, want %d", p.CurrentCoins, wantCurrent)
	}
	if p.TotalCoins != wantCurrent {
		t.Errorf("total coins = %d, want %d", p.TotalCoins, wantCurrent)
	}
}

func TestSpendCoins(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")

	if !svc.SpendCoins(context.Background(), p, 50, "perk") {
		t.Fatal("spend within balance should succeed")
	}
	if p.CurrentCoins != StartingCoins-50 {
		t.Errorf("current coins = %d, want %d", p.CurrentCoins, StartingCoins-50)
	}
	if p.TotalCoins != StartingCoins {
		t.Errorf("spending must not touch lifetime total, got %d", p.TotalCoins)
	}
}

func TestSpendCoinsInsufficient(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	p.CurrentCoins = 40

	if svc.SpendCoins(context.Background(), p, 50, "perk") {
		t.Fatal("spend beyond balance should fail")
	}
	if p.CurrentCoins != 40 {
		t.Errorf("failed spend changed balance to %d", p.CurrentCoins)
	}
}

func TestSpendCoinsNeverNegative(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	for _, amount := range []int{60, 60, 60} {
		svc.SpendCoins(context.Background(), p, amount, "perk")
		if p.CurrentCoins < 0 {
			t.Fatalf("balance went negative: %d", p.CurrentCoins)
		}
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	day := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		svc.WithClock(fixedClock(day.AddDate(0, 0, i)))
		svc.UpdateActivity(context.Background(), p, ActivityStudy, ActivityData{Minutes: 10})
	}
	if p.StreakDays != 5 {
		t.Errorf("streak = %d, want 5", p.StreakDays)
	}
	if p.LongestStreak != 5 {
		t.Errorf("longest streak = %d, want 5", p.LongestStreak)
	}
}

func TestStreakSameDayUnchanged(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	day := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	svc.WithClock(fixedClock(day))
	svc.UpdateActivity(context.Background(), p, ActivityStudy, ActivityData{Minutes: 10})
	svc.WithClock(fixedClock(day.Add(10 * time.Hour)))
	svc.UpdateActivity(context.Background(), p, ActivityStudy, ActivityData{Minutes: 10})

	if p.StreakDays != 1 {
		t.Errorf("streak = %d, want 1 after two same-day activities", p.StreakDays)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")
	day := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		svc.WithClock(fixedClock(day.AddDate(0, 0, i)))
		svc.UpdateActivity(context.Background(), p, ActivityStudy, ActivityData{Minutes: 10})
	}
	svc.WithClock(fixedClock(day.AddDate(0, 0, 5)))
	svc.UpdateActivity(context.Background(), p, ActivityStudy, ActivityData{Minutes: 10})

	if p.StreakDays != 1 {
		t.Errorf("streak = %d, want 1 after a gap", p.StreakDays)
	}
	if p.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", p.LongestStreak)
	}
}

func TestStreakCrossesMidnight(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")

	svc.WithClock(fixedClock(time.Date(2026, 3, 1, 23, 50, 0, 0, time.UTC)))
	svc.UpdateActivity(context.Background(), p, ActivityStudy, ActivityData{Minutes: 10})
	svc.WithClock(fixedClock(time.Date(2026, 3, 2, 0, 10, 0, 0, time.UTC)))
	svc.UpdateActivity(context.Background(), p, ActivityStudy, ActivityData{Minutes: 10})

	if p.StreakDays != 2 {
		t.Errorf("streak = %d, want 2 across midnight", p.StreakDays)
	}
}

func TestUpdateActivityQuizCounters(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")

	svc.UpdateActivity(context.Background(), p, ActivityQuiz, ActivityData{Score: 100})
	svc.UpdateActivity(context.Background(), p, ActivityQuiz, ActivityData{Score: 60})

	if p.TotalQuizzes != 2 {
		t.Errorf("total quizzes = %d, want 2", p.TotalQuizzes)
	}
	if p.PerfectQuizzes != 1 {
		t.Errorf("perfect quizzes = %d, want 1", p.PerfectQuizzes)
	}
}

func TestUpdateActivityBonuses(t *testing.T) {
	svc := newTestService(nil)
	p := NewProfile("stu_1")

	svc.UpdateActivity(context.Background(), p, ActivityQuiz, ActivityData{Score: 85})
	if p.CurrentCoins != StartingCoins+10 {
		t.Errorf("coins after high-score quiz = %d, want %d", p.CurrentCoins, StartingCoins+10)
	}

	svc.UpdateActivity(context.Background(), p, ActivityVideo, ActivityData{})
	if p.CurrentCoins != StartingCoins+15 {
		t.Errorf("coins after video = %d, want %d", p.CurrentCoins, StartingCoins+15)
	}
	if p.TotalVideos != 1 {
		t.Errorf("total videos = %d, want 1", p.TotalVideos)
	}
}

type stubChecker struct {
	unlocks []Unlock
	calls   int
}

func (s *stubChecker) Check(p *Profile) []Unlock {
	s.calls++
	return s.unlocks
}

func TestAwardCoinsRunsAchievementCheck(t *testing.T) {
	checker := &stubChecker{unlocks: []Unlock{{ID: "first_quiz", Name: "Quiz Beginner", RewardCoins: 50}}}
	svc := newTestService(checker)
	p := NewProfile("stu_1")

	res := svc.AwardCoins(context.Background(), p, 10, "quiz", nil)
	if checker.calls != 1 {
		t.Errorf("checker called %d times, want 1", checker.calls)
	}
	if len(res.NewAchievements) != 1 || res.NewAchievements[0].ID != "first_quiz" {
		t.Errorf("new achievements = %v", res.NewAchievements)
	}
}

func TestProfileMetric(t *testing.T) {
	p := NewProfile("stu_1")
	p.TotalCoins = 500
	p.StreakDays = 9
	p.Level = 4

	cases := []struct {
		metric string
		want   int
	}{
		{"total_coins", 500},
		{"streak_days", 9},
		{"level", 4},
		{"unknown", 500},
	}
	for _, c := range cases {
		if got := p.Metric(c.metric); got != c.want {
			t.Errorf("Metric(%q) = %d, want %d", c.metric, got, c.want)
		}
	}
}

func TestProfileDisplayName(t *testing.T) {
	p := NewProfile("student_abcd")
	if got := p.DisplayName(); got != "Student abcd" {
		t.Errorf("display name = %q", got)
	}
}

type failingAppender struct {
	calls int
}

func (f *failingAppender) AppendCoinEvent(ctx context.Context, data CoinEventData) error {
	f.calls++
	return context.DeadlineExceeded
}

func TestAwardSurvivesEventWriteFailure(t *testing.T) {
	appender := &failingAppender{}
	svc := NewService(nil, appender, rand.New(rand.NewPCG(1, 2)))
	p := NewProfile("stu_1")

	res := svc.AwardCoins(context.Background(), p, 25, "Quiz completed", nil)
	if res.CoinsAwarded != 25 {
		t.Errorf("coins awarded = %d, want 25", res.CoinsAwarded)
	}
	if p.CurrentCoins != StartingCoins+25 {
		t.Errorf("balance = %d, want %d", p.CurrentCoins, StartingCoins+25)
	}
	if appender.calls == 0 {
		t.Error("coin event appender was never called")
	}
}
