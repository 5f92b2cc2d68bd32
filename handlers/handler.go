package handlers

import (
	"context"

	"github.com/jwillison/gbupool/engine"
	"github.com/jwillison/gbupool/models"
)

// Store is the record-store surface the route handlers read and write.
// db.Store implements it.
type Store interface {
	CurrentSeason(ctx context.Context) (*models.Season, error)
	TeamsByTier(ctx context.Context, tier models.Tier) ([]models.Team, error)
	TeamsByIDs(ctx context.Context, ids []int64) (map[int64]models.Team, error)
	ParticipantByName(ctx context.Context, name string) (*models.Participant, error)
	CreateParticipant(ctx context.Context, name string) (*models.Participant, error)
	PicksFor(ctx context.Context, participantID, seasonID int64) (*models.Picks, error)
	SavePicks(ctx context.Context, p *models.Picks) error
	SetPicksLocked(ctx context.Context, seasonID int64, locked bool) error
	SetPicksRevealed(ctx context.Context, seasonID int64, revealed bool) error
	AdvanceWeek(ctx context.Context, seasonID int64) (int, error)
	Leaderboard(ctx context.Context, seasonID int64) ([]models.LeaderboardRow, error)
	SeasonStandings(ctx context.Context, seasonID int64) ([]models.StandingsRow, error)
	GamesForWeek(ctx context.Context, seasonID int64, week int) ([]models.Game, error)
}

// Updater is the scoring-engine surface exposed over HTTP.
type Updater interface {
	RefreshSeason(ctx context.Context) (engine.RefreshStats, error)
	RepairSeason(ctx context.Context) (engine.RepairStats, error)
	ComputeScore(ctx context.Context, participantID, seasonID int64) error
}

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	store   Store
	updater Updater
}

// New creates a Handler with the given store and updater.
func New(store Store, updater Updater) *Handler {
	return &Handler{store: store, updater: updater}
}
