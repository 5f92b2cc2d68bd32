package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/jwillison/gbupool/engine"
	"github.com/jwillison/gbupool/models"
)

// Store is the bun-backed record store. It satisfies both the engine's store
// contract and the handlers' read/write needs. Lookups return (nil, nil)
// when no row matches. Upserts are written as explicit read-then-write
// against the documented natural keys rather than leaning on ON CONFLICT.
type Store struct {
	db bun.IDB
}

// NewStore wraps a bun database handle.
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

var _ engine.Store = (*Store)(nil)

// RunInTx hands fn a transaction-scoped Store. An error from fn rolls the
// whole transaction back.
func (s *Store) RunInTx(ctx context.Context, fn func(engine.Store) error) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(&Store{db: tx})
	})
}

// CurrentSeason returns the season with the highest year, or nil before any
// season exists.
func (s *Store) CurrentSeason(ctx context.Context) (*models.Season, error) {
	season := new(models.Season)
	err := s.db.NewSelect().Model(season).
		OrderExpr("year DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return season, nil
}

// ResolveTeam matches a team by exact name, falling back to city only when
// no name matches. Names are unique in the roster; cities are not (New York,
// Los Angeles), so a city match must never shadow a name match.
func (s *Store) ResolveTeam(ctx context.Context, name, city string) (*models.Team, error) {
	team := new(models.Team)
	err := s.db.NewSelect().Model(team).
		Where("name = ?", name).
		Scan(ctx)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	team = new(models.Team)
	err = s.db.NewSelect().Model(team).
		Where("city = ?", city).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return team, nil
}

// ListTeams returns the full seeded roster.
func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.NewSelect().Model(&teams).OrderExpr("name ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return teams, nil
}

// TeamsByTier returns the roster slice for one draft pool.
func (s *Store) TeamsByTier(ctx context.Context, tier models.Tier) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.NewSelect().Model(&teams).
		Where("tier = ?", tier).
		OrderExpr("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// TeamsByIDs returns the named teams keyed by id. Unknown ids are simply
// absent from the map.
func (s *Store) TeamsByIDs(ctx context.Context, ids []int64) (map[int64]models.Team, error) {
	var teams []models.Team
	err := s.db.NewSelect().Model(&teams).
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]models.Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out, nil
}

// UpsertGame writes a game keyed by provider game id. An existing row keeps
// its identity and processed marker; only scores, the completed flag, and
// the game date are refreshed.
func (s *Store) UpsertGame(ctx context.Context, g *models.Game) error {
	existing := new(models.Game)
	err := s.db.NewSelect().Model(existing).
		Where("provider_game_id = ?", g.ProviderGameID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		g.Processed = false
		_, err := s.db.NewInsert().Model(g).Exec(ctx)
		return err
	}
	if err != nil {
		return err
	}

	existing.HomeScore = g.HomeScore
	existing.AwayScore = g.AwayScore
	existing.Completed = g.Completed
	existing.GameDate = g.GameDate
	_, err = s.db.NewUpdate().Model(existing).
		Column("home_score", "away_score", "completed", "game_date").
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}

	*g = *existing
	return nil
}

// GameByProviderID returns one game by its provider id.
func (s *Store) GameByProviderID(ctx context.Context, providerGameID string) (*models.Game, error) {
	game := new(models.Game)
	err := s.db.NewSelect().Model(game).
		Where("provider_game_id = ?", providerGameID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return game, nil
}

// GamesForWeek returns the season's games for one week, earliest first.
func (s *Store) GamesForWeek(ctx context.Context, seasonID int64, week int) ([]models.Game, error) {
	var games []models.Game
	err := s.db.NewSelect().Model(&games).
		Where("season_id = ? AND week = ?", seasonID, week).
		OrderExpr("game_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return games, nil
}

// CompletedGames returns the season's games with final scores, ordered by
// game date ascending. This is the replay input for repairs.
func (s *Store) CompletedGames(ctx context.Context, seasonID int64) ([]models.Game, error) {
	var games []models.Game
	err := s.db.NewSelect().Model(&games).
		Where("season_id = ? AND completed AND home_score IS NOT NULL AND away_score IS NOT NULL", seasonID).
		OrderExpr("game_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return games, nil
}

// MarkGameProcessed flips processed false -> true, reporting whether this
// call made the flip. The WHERE clause is the compare-and-set that keeps two
// overlapping cycles from both counting the same game.
func (s *Store) MarkGameProcessed(ctx context.Context, gameID int64) (bool, error) {
	res, err := s.db.NewUpdate().Model((*models.Game)(nil)).
		Set("processed = TRUE").
		Where("id = ? AND processed = FALSE", gameID).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ResetProcessed clears every processed marker for the season.
func (s *Store) ResetProcessed(ctx context.Context, seasonID int64) error {
	_, err := s.db.NewUpdate().Model((*models.Game)(nil)).
		Set("processed = FALSE").
		Where("season_id = ?", seasonID).
		Exec(ctx)
	return err
}

// StandingsFor returns one team's record for a season, or nil if the team
// has not been touched yet.
func (s *Store) StandingsFor(ctx context.Context, teamID, seasonID int64) (*models.Standings, error) {
	st := new(models.Standings)
	err := s.db.NewSelect().Model(st).
		Where("team_id = ? AND season_id = ?", teamID, seasonID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return st, nil
}

// EnsureStandings creates the zero record for (team, season) if absent.
func (s *Store) EnsureStandings(ctx context.Context, teamID, seasonID int64) error {
	st, err := s.StandingsFor(ctx, teamID, seasonID)
	if err != nil {
		return err
	}
	if st != nil {
		return nil
	}
	_, err = s.db.NewInsert().
		Model(&models.Standings{TeamID: teamID, SeasonID: seasonID}).
		On("CONFLICT (team_id, season_id) DO NOTHING").
		Exec(ctx)
	return err
}

// AddWin increments the team's win count, creating the zero record first if
// needed. Only the ledger calls this.
func (s *Store) AddWin(ctx context.Context, teamID, seasonID int64) error {
	return s.bumpRecord(ctx, teamID, seasonID, "wins = wins + 1")
}

// AddLoss increments the team's loss count, creating the zero record first
// if needed. Only the ledger calls this.
func (s *Store) AddLoss(ctx context.Context, teamID, seasonID int64) error {
	return s.bumpRecord(ctx, teamID, seasonID, "losses = losses + 1")
}

func (s *Store) bumpRecord(ctx context.Context, teamID, seasonID int64, set string) error {
	if err := s.EnsureStandings(ctx, teamID, seasonID); err != nil {
		return err
	}
	_, err := s.db.NewUpdate().Model((*models.Standings)(nil)).
		Set(set).
		Where("team_id = ? AND season_id = ?", teamID, seasonID).
		Exec(ctx)
	return err
}

// DeleteStandings removes every record for the season ahead of a rebuild.
func (s *Store) DeleteStandings(ctx context.Context, seasonID int64) error {
	_, err := s.db.NewDelete().Model((*models.Standings)(nil)).
		Where("season_id = ?", seasonID).
		Exec(ctx)
	return err
}

// SeasonStandings returns the season's records joined with team identity,
// best record first.
func (s *Store) SeasonStandings(ctx context.Context, seasonID int64) ([]models.StandingsRow, error) {
	var rows []models.StandingsRow
	q := `
SELECT st.team_id, t.name AS team, t.city, t.tier,
	st.wins, st.losses, st.made_playoffs, st.made_super_bowl
FROM standings st
INNER JOIN teams t ON t.id = st.team_id
WHERE st.season_id = ?
ORDER BY st.wins DESC, st.losses ASC, t.name ASC`
	if err := s.db.NewRaw(q, seasonID).Scan(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PicksFor returns a participant's picks for the season, or nil if they have
// not drafted.
func (s *Store) PicksFor(ctx context.Context, participantID, seasonID int64) (*models.Picks, error) {
	picks := new(models.Picks)
	err := s.db.NewSelect().Model(picks).
		Where("participant_id = ? AND season_id = ?", participantID, seasonID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return picks, nil
}

// SavePicks writes a picks row keyed by (participant, season), replacing any
// previous draft.
func (s *Store) SavePicks(ctx context.Context, p *models.Picks) error {
	existing, err := s.PicksFor(ctx, p.ParticipantID, p.SeasonID)
	if err != nil {
		return err
	}
	if existing == nil {
		_, err := s.db.NewInsert().Model(p).Exec(ctx)
		return err
	}

	p.ID = existing.ID
	_, err = s.db.NewUpdate().Model(p).
		Column("good_team_id", "bad_team_id", "ugly_team_1_id", "ugly_team_2_id", "ugly_team_3_id").
		WherePK().
		Exec(ctx)
	return err
}

// PickedParticipants returns the ids of every participant with picks for the
// season.
func (s *Store) PickedParticipants(ctx context.Context, seasonID int64) ([]int64, error) {
	var ids []int64
	err := s.db.NewSelect().
		Model((*models.Picks)(nil)).
		ColumnExpr("DISTINCT participant_id").
		Where("season_id = ?", seasonID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveScore overwrites the participant's score row for the season, creating
// it if absent.
func (s *Store) SaveScore(ctx context.Context, sc *models.Score) error {
	existing := new(models.Score)
	err := s.db.NewSelect().Model(existing).
		Where("participant_id = ? AND season_id = ?", sc.ParticipantID, sc.SeasonID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		_, err := s.db.NewInsert().Model(sc).Exec(ctx)
		return err
	}
	if err != nil {
		return err
	}

	sc.ID = existing.ID
	_, err = s.db.NewUpdate().Model(sc).
		Column("regular_season_points", "playoff_points", "super_bowl_points", "total_points", "last_updated").
		WherePK().
		Exec(ctx)
	return err
}

// ParticipantByName returns a participant by exact name, or nil.
func (s *Store) ParticipantByName(ctx context.Context, name string) (*models.Participant, error) {
	p := new(models.Participant)
	err := s.db.NewSelect().Model(p).
		Where("name = ?", name).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateParticipant registers a new participant name.
func (s *Store) CreateParticipant(ctx context.Context, name string) (*models.Participant, error) {
	p := &models.Participant{Name: name}
	if _, err := s.db.NewInsert().Model(p).Exec(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPicksLocked flips the season's lock flag.
func (s *Store) SetPicksLocked(ctx context.Context, seasonID int64, locked bool) error {
	return s.setSeasonFlag(ctx, seasonID, "picks_locked = ?", locked)
}

// SetPicksRevealed flips the season's reveal flag.
func (s *Store) SetPicksRevealed(ctx context.Context, seasonID int64, revealed bool) error {
	return s.setSeasonFlag(ctx, seasonID, "picks_revealed = ?", revealed)
}

func (s *Store) setSeasonFlag(ctx context.Context, seasonID int64, set string, val bool) error {
	res, err := s.db.NewUpdate().Model((*models.Season)(nil)).
		Set(set, val).
		Where("id = ?", seasonID).
		Exec(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("season %d not found", seasonID)
	}
	return nil
}

// AdvanceWeek bumps the season's week counter and returns the new week.
func (s *Store) AdvanceWeek(ctx context.Context, seasonID int64) (int, error) {
	var week int
	err := s.db.NewRaw(
		`UPDATE seasons SET current_week = current_week + 1 WHERE id = ? RETURNING current_week`,
		seasonID,
	).Scan(ctx, &week)
	if err != nil {
		return 0, err
	}
	return week, nil
}

const leaderboardSQL = `
SELECT sc.participant_id, pa.name,
	sc.regular_season_points, sc.playoff_points, sc.super_bowl_points,
	sc.total_points, sc.last_updated,
	gt.name AS good_team, bt.name AS bad_team,
	ut1.name AS ugly_team_1, ut2.name AS ugly_team_2, ut3.name AS ugly_team_3
FROM scores sc
INNER JOIN participants pa ON pa.id = sc.participant_id
INNER JOIN picks p ON p.participant_id = sc.participant_id AND p.season_id = sc.season_id
LEFT JOIN teams gt ON p.good_team_id = gt.id
LEFT JOIN teams bt ON p.bad_team_id = bt.id
LEFT JOIN teams ut1 ON p.ugly_team_1_id = ut1.id
LEFT JOIN teams ut2 ON p.ugly_team_2_id = ut2.id
LEFT JOIN teams ut3 ON p.ugly_team_3_id = ut3.id
WHERE sc.season_id = ?
ORDER BY sc.total_points DESC, pa.name ASC`

// Leaderboard returns every scored participant with their picked team names,
// highest total first, names breaking ties.
func (s *Store) Leaderboard(ctx context.Context, seasonID int64) ([]models.LeaderboardRow, error) {
	var rows []models.LeaderboardRow
	if err := s.db.NewRaw(leaderboardSQL, seasonID).Scan(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
