// Package perks holds the purchasable perk catalog and the shop that
// sells entries from it against a student's coin balance.
package perks

import (
	"context"
	"fmt"

	"github.com/abhisek/vidya/internal/ledger"
)

// Category groups perks by what they change.
type Category string

const (
	CategoryCosmetic   Category = "cosmetic"
	CategoryFunctional Category = "functional"
	CategoryBoost      Category = "boost"
)

// Effect describes what owning a perk does. Only the fields matching the
// perk's category are set.
type Effect struct {
	Badge            string  `json:"display_badge,omitempty"`
	Avatar           string  `json:"avatar,omitempty"`
	Theme            string  `json:"theme,omitempty"`
	QuizTimeBonus    int     `json:"quiz_time_bonus,omitempty"` // seconds
	QuizHints        int     `json:"quiz_hints,omitempty"`
	QuizSkips        int     `json:"quiz_skips,omitempty"`
	BackgroundMusic  bool    `json:"background_music,omitempty"`
	CoinMultiplier   float64 `json:"coin_multiplier,omitempty"`
	DurationHours    int     `json:"duration,omitempty"`
	LuckBonus        float64 `json:"luck_bonus,omitempty"`
	StreakProtection int     `json:"streak_protection,omitempty"`
}

// Perk is one shop entry.
type Perk struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cost        int      `json:"cost"`
	Icon        string   `json:"icon"`
	Category    Category `json:"category"`
	Effect      Effect   `json:"effect"`
}

var catalog = buildCatalog()

func buildCatalog() []Perk {
	return []Perk{
		{
			ID:          "golden_star",
			Name:        "Golden Star Badge ⭐",
			Description: "Show everyone you're a star student!",
			Cost:        50,
			Icon:        "⭐",
			Category:    CategoryCosmetic,
			Effect:      Effect{Badge: "golden_star"},
		},
		{
			ID:          "superhero_avatar",
			Name:        "Super Learner Avatar 🦸",
			Description: "Unlock a cool superhero avatar!",
			Cost:        100,
			Icon:        "🦸",
			Category:    CategoryCosmetic,
			Effect:      Effect{Avatar: "superhero"},
		},
		{
			ID:          "speed_boost",
			Name:        "Speed Boost ⚡",
			Description: "Get extra time for quizzes!",
			Cost:        75,
			Icon:        "⚡",
			Category:    CategoryFunctional,
			Effect:      Effect{QuizTimeBonus: 30},
		},
		{
			ID:          "hint_helper",
			Name:        "Hint Helper 💡",
			Description: "Get one free hint per quiz!",
			Cost:        30,
			Icon:        "💡",
			Category:    CategoryFunctional,
			Effect:      Effect{QuizHints: 1},
		},
		{
			ID:          "rainbow_theme",
			Name:        "Rainbow Theme 🌈",
			Description: "Make your app colorful!",
			Cost:        80,
			Icon:        "🌈",
			Category:    CategoryCosmetic,
			Effect:      Effect{Theme: "rainbow"},
		},
		{
			ID:          "music_mode",
			Name:        "Study Music 🎵",
			Description: "Study with background music!",
			Cost:        60,
			Icon:        "🎵",
			Category:    CategoryFunctional,
			Effect:      Effect{BackgroundMusic: true},
		},
		{
			ID:          ledger.PerkDoubleCoins,
			Name:        "Double Coins 💎",
			Description: "Earn 2x coins for 24 hours!",
			Cost:        200,
			Icon:        "💎",
			Category:    CategoryBoost,
			Effect:      Effect{CoinMultiplier: 2.0, DurationHours: 24},
		},
		{
			ID:          "skip_question",
			Name:        "Question Skip 🔄",
			Description: "Skip one question per quiz!",
			Cost:        40,
			Icon:        "🔄",
			Category:    CategoryFunctional,
			Effect:      Effect{QuizSkips: 1},
		},
		{
			ID:          ledger.PerkLuckyCharm,
			Name:        "Lucky Charm 🍀",
			Description: "10% chance of bonus coins!",
			Cost:        90,
			Icon:        "🍀",
			Category:    CategoryBoost,
			Effect:      Effect{LuckBonus: 0.1},
		},
		{
			ID:          "study_streak_shield",
			Name:        "Streak Shield 🛡️",
			Description: "Protect your streak for one missed day!",
			Cost:        150,
			Icon:        "🛡️",
			Category:    CategoryFunctional,
			Effect:      Effect{StreakProtection: 1},
		},
	}
}

// All returns the catalog in display order.
func All() []Perk {
	out := make([]Perk, len(catalog))
	copy(out, catalog)
	return out
}

// Get looks up a perk by id.
func Get(id string) (Perk, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Perk{}, false
}

// PurchaseResult reports the outcome of a shop purchase. Failure is a
// normal outcome, not an error: Success is false and Message explains why,
// with the profile untouched.
type PurchaseResult struct {
	Success        bool   `json:"success"`
	Perk           *Perk  `json:"perk,omitempty"`
	RemainingCoins int    `json:"remaining_coins"`
	Message        string `json:"message"`
}

// Shop sells perks, delegating coin deduction to the ledger.
type Shop struct {
	ledger *ledger.Service
}

// NewShop creates a shop over the given ledger service.
func NewShop(svc *ledger.Service) *Shop {
	return &Shop{ledger: svc}
}

// Purchase buys a perk for the profile. Unknown ids, already-owned perks
// and insufficient balances all fail without mutating the profile.
func (s *Shop) Purchase(ctx context.Context, p *ledger.Profile, perkID string) PurchaseResult {
	perk, ok := Get(perkID)
	if !ok {
		return PurchaseResult{
			Success:        false,
			RemainingCoins: p.CurrentCoins,
			Message:        "Perk not found",
		}
	}
	if p.OwnsPerk(perkID) {
		return PurchaseResult{
			Success:        false,
			RemainingCoins: p.CurrentCoins,
			Message:        "Perk already owned",
		}
	}
	if !s.ledger.SpendCoins(ctx, p, perk.Cost, fmt.Sprintf("Purchased %s", perk.Name)) {
		return PurchaseResult{
			Success:        false,
			RemainingCoins: p.CurrentCoins,
			Message:        fmt.Sprintf("Insufficient coins. Need %d, have %d", perk.Cost, p.CurrentCoins),
		}
	}
	p.OwnedPerks = append(p.OwnedPerks, perkID)
	return PurchaseResult{
		Success:        true,
		Perk:           &perk,
		RemainingCoins: p.CurrentCoins,
		Message:        fmt.Sprintf("Successfully purchased %s!", perk.Name),
	}
}
