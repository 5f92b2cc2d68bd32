// Package engine implements the season scoring engine: result normalization,
// the standings ledger, score aggregation, and the refresh/repair
// orchestration that ties them together.
package engine

import (
	"context"
	"time"

	"github.com/jwillison/gbupool/models"
)

// RawResult is one game result as reported by the external score provider.
// Scores are nil until the provider reports them.
type RawResult struct {
	ProviderGameID string
	Date           time.Time
	Week           int
	HomeTeamName   string
	AwayTeamName   string
	HomeScore      *int
	AwayScore      *int
	Completed      bool
}

// ResultProvider fetches raw game results for a season week. A failed fetch
// aborts the whole refresh cycle; retry policy belongs to the caller.
type ResultProvider interface {
	FetchResults(ctx context.Context, year, week int) ([]RawResult, error)
}

// Store is the transactional record store the engine runs against.
// Lookups return (nil, nil) when no row exists.
type Store interface {
	// CurrentSeason returns the season with the highest year.
	CurrentSeason(ctx context.Context) (*models.Season, error)

	// ResolveTeam matches a team by exact name, falling back to exact city
	// only when no name matches. Cities are shared (New York, Los Angeles);
	// names are unique, so a city match must never shadow a name match.
	ResolveTeam(ctx context.Context, name, city string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)

	// UpsertGame writes a game keyed by provider game id. A new game is
	// inserted as given; an existing game has only its scores, completed
	// flag, and game date updated. On return g carries the persisted row's
	// id and processed marker.
	UpsertGame(ctx context.Context, g *models.Game) error

	// CompletedGames returns the season's games with completed = true and
	// both scores reported, ordered by game date ascending.
	CompletedGames(ctx context.Context, seasonID int64) ([]models.Game, error)

	// MarkGameProcessed flips processed false -> true and reports whether
	// this call made the flip. A false return means another cycle already
	// counted the game.
	MarkGameProcessed(ctx context.Context, gameID int64) (bool, error)
	ResetProcessed(ctx context.Context, seasonID int64) error

	StandingsFor(ctx context.Context, teamID, seasonID int64) (*models.Standings, error)
	EnsureStandings(ctx context.Context, teamID, seasonID int64) error
	AddWin(ctx context.Context, teamID, seasonID int64) error
	AddLoss(ctx context.Context, teamID, seasonID int64) error
	DeleteStandings(ctx context.Context, seasonID int64) error

	PicksFor(ctx context.Context, participantID, seasonID int64) (*models.Picks, error)
	// PickedParticipants returns the ids of every participant with picks
	// saved for the season.
	PickedParticipants(ctx context.Context, seasonID int64) ([]int64, error)

	// SaveScore overwrites the participant's score row for the season,
	// creating it if absent.
	SaveScore(ctx context.Context, sc *models.Score) error

	// RunInTx runs fn against a transaction-scoped store. fn returning an
	// error rolls every write back.
	RunInTx(ctx context.Context, fn func(Store) error) error
}
