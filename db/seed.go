package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/jwillison/gbupool/models"
)

// nflRoster is the fixed 32-team roster with this season's tier ranking.
// Tiers are pool seed data, set before picks open and never changed
// mid-season.
var nflRoster = []models.Team{
	// good: top tier, one pick each
	{Name: "Chiefs", City: "Kansas City", Tier: models.TierGood, Conference: "AFC", Division: "West"},
	{Name: "Bills", City: "Buffalo", Tier: models.TierGood, Conference: "AFC", Division: "East"},
	{Name: "Ravens", City: "Baltimore", Tier: models.TierGood, Conference: "AFC", Division: "North"},
	{Name: "Bengals", City: "Cincinnati", Tier: models.TierGood, Conference: "AFC", Division: "North"},
	{Name: "Eagles", City: "Philadelphia", Tier: models.TierGood, Conference: "NFC", Division: "East"},
	{Name: "Lions", City: "Detroit", Tier: models.TierGood, Conference: "NFC", Division: "North"},
	{Name: "Packers", City: "Green Bay", Tier: models.TierGood, Conference: "NFC", Division: "North"},
	{Name: "49ers", City: "San Francisco", Tier: models.TierGood, Conference: "NFC", Division: "West"},

	// bad: middle tier, one pick each
	{Name: "Chargers", City: "Los Angeles", Tier: models.TierBad, Conference: "AFC", Division: "West"},
	{Name: "Broncos", City: "Denver", Tier: models.TierBad, Conference: "AFC", Division: "West"},
	{Name: "Texans", City: "Houston", Tier: models.TierBad, Conference: "AFC", Division: "South"},
	{Name: "Steelers", City: "Pittsburgh", Tier: models.TierBad, Conference: "AFC", Division: "North"},
	{Name: "Rams", City: "Los Angeles", Tier: models.TierBad, Conference: "NFC", Division: "West"},
	{Name: "Commanders", City: "Washington", Tier: models.TierBad, Conference: "NFC", Division: "East"},
	{Name: "Buccaneers", City: "Tampa Bay", Tier: models.TierBad, Conference: "NFC", Division: "South"},
	{Name: "Vikings", City: "Minnesota", Tier: models.TierBad, Conference: "NFC", Division: "North"},

	// ugly: bottom tier, three picks each
	{Name: "Dolphins", City: "Miami", Tier: models.TierUgly, Conference: "AFC", Division: "East"},
	{Name: "Patriots", City: "New England", Tier: models.TierUgly, Conference: "AFC", Division: "East"},
	{Name: "Jets", City: "New York", Tier: models.TierUgly, Conference: "AFC", Division: "East"},
	{Name: "Browns", City: "Cleveland", Tier: models.TierUgly, Conference: "AFC", Division: "North"},
	{Name: "Colts", City: "Indianapolis", Tier: models.TierUgly, Conference: "AFC", Division: "South"},
	{Name: "Jaguars", City: "Jacksonville", Tier: models.TierUgly, Conference: "AFC", Division: "South"},
	{Name: "Titans", City: "Tennessee", Tier: models.TierUgly, Conference: "AFC", Division: "South"},
	{Name: "Raiders", City: "Las Vegas", Tier: models.TierUgly, Conference: "AFC", Division: "West"},
	{Name: "Cowboys", City: "Dallas", Tier: models.TierUgly, Conference: "NFC", Division: "East"},
	{Name: "Giants", City: "New York", Tier: models.TierUgly, Conference: "NFC", Division: "East"},
	{Name: "Bears", City: "Chicago", Tier: models.TierUgly, Conference: "NFC", Division: "North"},
	{Name: "Falcons", City: "Atlanta", Tier: models.TierUgly, Conference: "NFC", Division: "South"},
	{Name: "Panthers", City: "Carolina", Tier: models.TierUgly, Conference: "NFC", Division: "South"},
	{Name: "Saints", City: "New Orleans", Tier: models.TierUgly, Conference: "NFC", Division: "South"},
	{Name: "Cardinals", City: "Arizona", Tier: models.TierUgly, Conference: "NFC", Division: "West"},
	{Name: "Seahawks", City: "Seattle", Tier: models.TierUgly, Conference: "NFC", Division: "West"},
}

// SeedTeams inserts the roster once. A non-empty teams table is left alone.
func SeedTeams(ctx context.Context, db *bun.DB) error {
	count, err := db.NewSelect().Model((*models.Team)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("counting teams: %w", err)
	}
	if count > 0 {
		return nil
	}

	teams := make([]models.Team, len(nflRoster))
	copy(teams, nflRoster)
	if _, err := db.NewInsert().Model(&teams).Exec(ctx); err != nil {
		return fmt.Errorf("seeding teams: %w", err)
	}

	zap.L().Info("seeded team roster", zap.Int("teams", len(teams)))
	return nil
}
