package perks

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/vidya/internal/ledger"
)

func newShop() *Shop {
	return NewShop(ledger.NewService(nil, nil, rand.New(rand.NewPCG(1, 2))))
}

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range All() {
		if p.ID == "" || p.Name == "" || p.Cost <= 0 {
			t.Errorf("perk %q malformed: %+v", p.ID, p)
		}
		if seen[p.ID] {
			t.Errorf("duplicate perk id %q", p.ID)
		}
		seen[p.ID] = true
		switch p.Category {
		case CategoryCosmetic, CategoryFunctional, CategoryBoost:
		default:
			t.Errorf("perk %q has unknown category %q", p.ID, p.Category)
		}
	}
	if len(seen) != 10 {
		t.Errorf("catalog has %d perks, want 10", len(seen))
	}
}

func TestPurchase(t *testing.T) {
	shop := newShop()
	p := ledger.NewProfile("stu_1")

	res := shop.Purchase(context.Background(), p, "hint_helper")
	if !res.Success {
		t.Fatalf("purchase failed: %s", res.Message)
	}
	if res.RemainingCoins != ledger.StartingCoins-30 {
		t.Errorf("remaining = %d, want %d", res.RemainingCoins, ledger.StartingCoins-30)
	}
	if !p.OwnsPerk("hint_helper") {
		t.Error("profile does not own purchased perk")
	}
}

func TestPurchaseInsufficientCoins(t *testing.T) {
	shop := newShop()
	p := ledger.NewProfile("stu_1")
	p.CurrentCoins = 40

	res := shop.Purchase(context.Background(), p, "golden_star")
	if res.Success {
		t.Fatal("purchase should fail with 40 coins against cost 50")
	}
	if !strings.Contains(res.Message, "Insufficient coins") {
		t.Errorf("message = %q", res.Message)
	}
	if p.CurrentCoins != 40 {
		t.Errorf("failed purchase changed balance to %d", p.CurrentCoins)
	}
	if p.OwnsPerk("golden_star") {
		t.Error("failed purchase granted the perk")
	}
}

func TestPurchaseAlreadyOwned(t *testing.T) {
	shop := newShop()
	p := ledger.NewProfile("stu_1")
	p.CurrentCoins = 500

	shop.Purchase(context.Background(), p, "hint_helper")
	before := p.CurrentCoins
	res := shop.Purchase(context.Background(), p, "hint_helper")

	if res.Success {
		t.Fatal("repeat purchase should fail")
	}
	if p.CurrentCoins != before {
		t.Errorf("repeat purchase charged coins: %d -> %d", before, p.CurrentCoins)
	}
}

func TestPurchaseUnknownPerk(t *testing.T) {
	shop := newShop()
	p := ledger.NewProfile("stu_1")

	res := shop.Purchase(context.Background(), p, "jetpack")
	if res.Success {
		t.Fatal("unknown perk should fail")
	}
	if res.Message != "Perk not found" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestBoostPerksWiredToLedger(t *testing.T) {
	if _, ok := Get(ledger.PerkDoubleCoins); !ok {
		t.Error("double coins perk missing from catalog")
	}
	if _, ok := Get(ledger.PerkLuckyCharm); !ok {
		t.Error("lucky charm perk missing from catalog")
	}
}
