package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Game is one fetched game result, keyed by the provider's game id.
// Scores stay null until the provider reports them. Processed is owned by the
// standings ledger and flips true exactly once per counted game.
type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	ProviderGameID string    `bun:"provider_game_id,notnull,unique" json:"providerGameID"`
	SeasonID       int64     `bun:"season_id,notnull" json:"seasonID"`
	Week           int       `bun:"week,notnull" json:"week"`
	HomeTeamID     int64     `bun:"home_team_id,notnull" json:"homeTeamID"`
	AwayTeamID     int64     `bun:"away_team_id,notnull" json:"awayTeamID"`
	HomeScore      *int      `bun:"home_score" json:"homeScore,omitempty"`
	AwayScore      *int      `bun:"away_score" json:"awayScore,omitempty"`
	Completed      bool      `bun:"completed,notnull,default:false" json:"completed"`
	Processed      bool      `bun:"processed,notnull,default:false" json:"processed"`
	GameDate       time.Time `bun:"game_date,notnull" json:"gameDate"`
}
