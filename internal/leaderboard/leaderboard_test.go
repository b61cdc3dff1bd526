package leaderboard

import (
	"testing"

	"github.com/abhisek/vidya/internal/ledger"
)

func profileWith(id string, coins, level, xp, streak int) *ledger.Profile {
	p := ledger.NewProfile(id)
	p.TotalCoins = coins
	p.Level = level
	p.ExperiencePoints = xp
	p.StreakDays = streak
	return p
}

func TestRankByTotalCoins(t *testing.T) {
	profiles := []*ledger.Profile{
		profileWith("stu_aaaa", 100, 1, 0, 0),
		profileWith("stu_bbbb", 500, 1, 0, 0),
		profileWith("stu_cccc", 300, 1, 0, 0),
	}

	board := Rank(profiles, "total_coins", 10)
	if len(board) != 3 {
		t.Fatalf("board size = %d, want 3", len(board))
	}
	wantOrder := []string{"stu_bbbb", "stu_cccc", "stu_aaaa"}
	for i, want := range wantOrder {
		if board[i].StudentID != want {
			t.Errorf("rank %d = %s, want %s", i+1, board[i].StudentID, want)
		}
		if board[i].Rank != i+1 {
			t.Errorf("rank field = %d, want %d", board[i].Rank, i+1)
		}
	}
}

func TestRankDefaultsForUnknownMetric(t *testing.T) {
	profiles := []*ledger.Profile{
		profileWith("stu_aaaa", 100, 1, 0, 0),
		profileWith("stu_bbbb", 500, 1, 0, 0),
	}

	board := Rank(profiles, "nonsense", 10)
	if board[0].StudentID != "stu_bbbb" {
		t.Errorf("unknown metric should fall back to total coins, got %s first", board[0].StudentID)
	}
}

func TestRankLimit(t *testing.T) {
	var profiles []*ledger.Profile
	for i := 0; i < 15; i++ {
		profiles = append(profiles, profileWith("stu_aaaa", i*10, 1, 0, 0))
	}
	board := Rank(profiles, "total_coins", 0)
	if len(board) != DefaultLimit {
		t.Errorf("board size = %d, want %d", len(board), DefaultLimit)
	}
}

func TestRankTiesShareRank(t *testing.T) {
	profiles := []*ledger.Profile{
		profileWith("stu_aaaa", 300, 1, 0, 0),
		profileWith("stu_bbbb", 300, 1, 0, 0),
		profileWith("stu_cccc", 100, 1, 0, 0),
	}

	board := Rank(profiles, "total_coins", 10)
	if board[0].Rank != 1 || board[1].Rank != 1 {
		t.Errorf("tied ranks = %d, %d, want 1, 1", board[0].Rank, board[1].Rank)
	}
	if board[2].Rank != 2 {
		t.Errorf("rank after tie = %d, want 2", board[2].Rank)
	}
	// Stable: tied profiles keep input order.
	if board[0].StudentID != "stu_aaaa" || board[1].StudentID != "stu_bbbb" {
		t.Errorf("tie order changed: %s, %s", board[0].StudentID, board[1].StudentID)
	}
}

func TestRankLevelBreaksTiesByExperience(t *testing.T) {
	profiles := []*ledger.Profile{
		profileWith("stu_aaaa", 0, 3, 200, 0),
		profileWith("stu_bbbb", 0, 3, 450, 0),
	}

	board := Rank(profiles, "level", 10)
	if board[0].StudentID != "stu_bbbb" {
		t.Errorf("higher xp should rank first at equal level, got %s", board[0].StudentID)
	}
}

func TestRankStreak(t *testing.T) {
	profiles := []*ledger.Profile{
		profileWith("stu_aaaa", 0, 1, 0, 2),
		profileWith("stu_bbbb", 0, 1, 0, 9),
	}

	board := Rank(profiles, "streak_days", 10)
	if board[0].StudentID != "stu_bbbb" || board[0].Score != 9 {
		t.Errorf("board[0] = %+v", board[0])
	}
}

func TestRankEmpty(t *testing.T) {
	if board := Rank(nil, "total_coins", 10); len(board) != 0 {
		t.Errorf("empty input produced %d entries", len(board))
	}
}
