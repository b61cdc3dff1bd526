package adaptive

import "testing"

func TestNextDifficultyNoHistory(t *testing.T) {
	got := NextDifficulty(History{})
	if got != DifficultyEasy {
		t.Errorf("NextDifficulty(no history) = %q, want %q", got, DifficultyEasy)
	}
}

func TestNextDifficultyPromotion(t *testing.T) {
	tests := []struct {
		name    string
		history History
		want    Difficulty
	}{
		{"easy promotes at 80", History{QuizCount: 3, RecentAverage: 80, Current: DifficultyEasy}, DifficultyMedium},
		{"easy holds below 80", History{QuizCount: 3, RecentAverage: 79.9, Current: DifficultyEasy}, DifficultyEasy},
		{"medium promotes at 85", History{QuizCount: 5, RecentAverage: 85, Current: DifficultyMedium}, DifficultyHard},
		{"medium holds at 84", History{QuizCount: 5, RecentAverage: 84, Current: DifficultyMedium}, DifficultyMedium},
		{"hard stays at hard", History{QuizCount: 8, RecentAverage: 99, Current: DifficultyHard}, DifficultyHard},
	}
	for _, tt := range tests {
		if got := NextDifficulty(tt.history); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNextDifficultyDemotion(t *testing.T) {
	tests := []struct {
		name    string
		history History
		want    Difficulty
	}{
		{"easy floors at easy", History{QuizCount: 2, RecentAverage: 10, Current: DifficultyEasy}, DifficultyEasy},
		{"medium demotes below 50", History{QuizCount: 4, RecentAverage: 49.9, Current: DifficultyMedium}, DifficultyEasy},
		{"medium holds at 50", History{QuizCount: 4, RecentAverage: 50, Current: DifficultyMedium}, DifficultyMedium},
		{"hard demotes below 60", History{QuizCount: 6, RecentAverage: 59, Current: DifficultyHard}, DifficultyMedium},
	}
	for _, tt := range tests {
		if got := NextDifficulty(tt.history); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRecommendNext(t *testing.T) {
	tests := []struct {
		percentage float64
		current    Difficulty
		want       Difficulty
	}{
		{80, DifficultyEasy, DifficultyMedium},
		{79, DifficultyEasy, DifficultyEasy},
		{39, DifficultyEasy, DifficultyEasy},
		{85, DifficultyMedium, DifficultyHard},
		{60, DifficultyMedium, DifficultyMedium},
		{49, DifficultyMedium, DifficultyEasy},
		{90, DifficultyHard, DifficultyHard},
		{59, DifficultyHard, DifficultyMedium},
		{75, DifficultyHard, DifficultyHard},
	}
	for _, tt := range tests {
		if got := RecommendNext(tt.percentage, tt.current); got != tt.want {
			t.Errorf("RecommendNext(%.0f, %q) = %q, want %q", tt.percentage, tt.current, got, tt.want)
		}
	}
}

func TestRecommendNextInvalidCurrent(t *testing.T) {
	// Unknown tiers are treated as easy.
	if got := RecommendNext(85, Difficulty("bogus")); got != DifficultyMedium {
		t.Errorf("got %q, want %q", got, DifficultyMedium)
	}
}

func TestUpDownBounds(t *testing.T) {
	if DifficultyHard.Up() != DifficultyHard {
		t.Error("hard should cap at hard")
	}
	if DifficultyEasy.Down() != DifficultyEasy {
		t.Error("easy should floor at easy")
	}
	if DifficultyEasy.Up() != DifficultyMedium || DifficultyMedium.Up() != DifficultyHard {
		t.Error("promotion chain broken")
	}
}
