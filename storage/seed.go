package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"nft-card-system/models"
)

func s2p(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// Seed loads the demo data set: one collector, three cards, an active
// tournament and a weekly leaderboard row. Meant for local runs — tests
// build their own fixtures on an empty store.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	user := models.User{
		ID:            "user-1",
		Username:      "MoonlitCollector",
		WalletAddress: s2p("0:abc123..."),
		TonBalance:    decimal.RequireFromString("127.45"),
		PowerScore:    8542,
		WinRate:       decimal.RequireFromString("73.5"),
		CreatedAt:     now,
	}
	s.users.insert(user.ID, user)

	cards := []models.Card{
		{
			ID:          "nft-1",
			OwnerID:     s2p("user-1"),
			Name:        "Moonlit Fortress",
			Description: "An ancient castle shrouded in eternal moonlight, home to ethereal guardians.",
			ImageURL:    "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?w=400",
			Rarity:      models.RarityLegendary,
			Faction:     "Moonlight Court",
			Power:       850,
			Mana:        7,
			Abilities:   []string{"Moonbeam Shield", "Ethereal Defense"},
			Metadata:    map[string]any{"element": "Light", "type": "Structure"},
			CreatedAt:   now,
		},
		{
			ID:          "nft-2",
			OwnerID:     s2p("user-1"),
			Name:        "Ethereal Enchantress",
			Description: "A mystical being who weaves moonbeams into powerful spells.",
			ImageURL:    "https://images.unsplash.com/photo-1494256997604-768d1f608cac?w=400",
			Rarity:      models.RarityEpic,
			Faction:     "Ethereal Spirits",
			Power:       620,
			Mana:        5,
			Abilities:   []string{"Moonweave", "Spirit Call"},
			Metadata:    map[string]any{"element": "Spirit", "type": "Creature"},
			CreatedAt:   now,
		},
		{
			ID:          "nft-3",
			OwnerID:     s2p("user-1"),
			Name:        "Twilight Guardian",
			Description: "Ancient protector of the mystic forest, shrouded in eternal mist.",
			ImageURL:    "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400",
			Rarity:      models.RarityRare,
			Faction:     "Shadow Realm",
			Power:       420,
			Mana:        3,
			Abilities:   []string{"Forest Veil", "Nature's Wrath"},
			Metadata:    map[string]any{"element": "Nature", "type": "Guardian"},
			CreatedAt:   now,
		},
	}
	for _, c := range cards {
		s.cards.insert(c.ID, c)
	}

	start := now.Add(-24 * time.Hour)
	end := now.Add(2 * 24 * time.Hour)
	event := models.Event{
		ID:                  "event-1",
		Name:                "Moonlight Tournament",
		Description:         "Battle under the full moon for legendary rewards and eternal glory in the Haunted Realm.",
		ImageURL:            "https://images.unsplash.com/photo-1519904981063-b0cf448d479e?w=800",
		Type:                models.EventTournament,
		Status:              models.EventActive,
		PrizePool:           decimal.NewFromInt(500),
		MaxParticipants:     intPtr(1000),
		CurrentParticipants: 847,
		StartDate:           &start,
		EndDate:             &end,
		Requirements:        map[string]any{"minPowerScore": 1000},
		CreatedAt:           now,
	}
	s.events.insert(event.ID, event)

	entry := models.LeaderboardEntry{
		ID:         "lb-1",
		UserID:     "user-1",
		Rank:       15,
		PowerScore: 8542,
		Wins:       34,
		Title:      "Rising Collector",
		Period:     models.PeriodWeekly,
		UpdatedAt:  now,
	}
	s.leaderboard.insert(entry.ID, entry)
}
