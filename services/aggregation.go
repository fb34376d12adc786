package services

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"nft-card-system/models"
)

// SynergyScorer produces a deck cohesion score in [50.0, 95.0]. The default
// implementation is a random placeholder; the interface exists so a real
// card-aware algorithm (or a fixed value in tests) can be swapped in without
// touching the deck service.
type SynergyScorer interface {
	Score(cards []models.Card) decimal.Decimal
}

// RandomSynergy draws min(95, U*40+50) with U uniform in [0,1), rounded to
// one decimal place. Safe for concurrent use.
type RandomSynergy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSynergy() *RandomSynergy {
	return &RandomSynergy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *RandomSynergy) Score(_ []models.Card) decimal.Decimal {
	r.mu.Lock()
	u := r.rng.Float64()
	r.mu.Unlock()
	return decimal.NewFromFloat(math.Min(95, u*40+50)).Round(1)
}

// FixedSynergy always returns Value. Used by tests.
type FixedSynergy struct {
	Value decimal.Decimal
}

func (f FixedSynergy) Score(_ []models.Card) decimal.Decimal { return f.Value }

// DeckStats holds the derived fields of a deck.
type DeckStats struct {
	TotalPower int
	AvgMana    decimal.Decimal
	Synergy    decimal.Decimal
}

// ComputeDeckStats reduces a resolved card list to its derived stats.
// Average mana is rounded to one decimal place and defined as 0 for an
// empty list.
func ComputeDeckStats(cards []models.Card, scorer SynergyScorer) DeckStats {
	totalPower := 0
	totalMana := 0
	for _, c := range cards {
		totalPower += c.Power
		totalMana += c.Mana
	}
	avgMana := decimal.Zero
	if len(cards) > 0 {
		avgMana = decimal.NewFromInt(int64(totalMana)).
			Div(decimal.NewFromInt(int64(len(cards)))).
			Round(1)
	}
	return DeckStats{
		TotalPower: totalPower,
		AvgMana:    avgMana,
		Synergy:    scorer.Score(cards),
	}
}

// UserAnalytics is the GET /analytics/:userId response.
type UserAnalytics struct {
	PowerScore         int                  `json:"powerScore"`
	WinRate            float64              `json:"winRate"`
	RarityIndex        decimal.Decimal      `json:"rarityIndex"`
	SynergyLevel       string               `json:"synergyLevel"`
	TotalValue         decimal.Decimal      `json:"totalValue"`
	CardCount          int                  `json:"cardCount"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
}

// SynergyLevelFor classifies a power score into a tier. Thresholds are
// exclusive lower bounds: exactly 10000 is Expert, exactly 5000 is
// Apprentice.
func SynergyLevelFor(powerScore int) string {
	switch {
	case powerScore > 10000:
		return "Master"
	case powerScore > 5000:
		return "Expert"
	default:
		return "Apprentice"
	}
}

// ComputeAnalytics derives wallet analytics from a user, their cards and
// their newest-first transaction history. Pure over its inputs.
func ComputeAnalytics(user models.User, cards []models.Card, txs []models.Transaction) UserAnalytics {
	totalPower := 0
	rarityWeight := 0
	for _, c := range cards {
		totalPower += c.Power
		rarityWeight += c.Rarity.Weight()
	}

	// Each point of card power is valued at 0.01 TON on top of the liquid
	// balance.
	totalValue := user.TonBalance.
		Add(decimal.NewFromInt(int64(totalPower)).Div(decimal.NewFromInt(100))).
		Round(2)

	rarityIndex := decimal.Zero
	if len(cards) > 0 {
		rarityIndex = decimal.NewFromInt(int64(rarityWeight)).
			Div(decimal.NewFromInt(int64(len(cards)))).
			Round(1)
	}

	recent := txs
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return UserAnalytics{
		PowerScore:         user.PowerScore,
		WinRate:            user.WinRate.InexactFloat64(),
		RarityIndex:        rarityIndex,
		SynergyLevel:       SynergyLevelFor(user.PowerScore),
		TotalValue:         totalValue,
		CardCount:          len(cards),
		RecentTransactions: recent,
	}
}
