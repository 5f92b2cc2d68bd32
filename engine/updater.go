package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jwillison/gbupool/models"
)

// ErrUnknownTeam marks a raw result whose team names do not match the seeded
// roster. The roster is fixed for the season, so this is a data mismatch to
// fix by hand, not something to retry.
var ErrUnknownTeam = errors.New("team name does not match the seeded roster")

// Updater runs refresh and repair cycles against the store. One cycle at a
// time is the expected mode; the ledger's per-game compare-and-set keeps
// accidental overlap from double-counting.
type Updater struct {
	store    Store
	provider ResultProvider
	log      *zap.Logger
	now      func() time.Time
}

// New creates an Updater.
func New(store Store, provider ResultProvider, log *zap.Logger) *Updater {
	return &Updater{
		store:    store,
		provider: provider,
		log:      log,
		now:      time.Now,
	}
}

// RefreshStats summarizes one refresh cycle.
type RefreshStats struct {
	Year          int `json:"year"`
	Week          int `json:"week"`
	GamesFetched  int `json:"gamesFetched"`
	GamesApplied  int `json:"gamesApplied"`
	GamesSkipped  int `json:"gamesSkipped"`
	ScoresUpdated int `json:"scoresUpdated"`
}

// RepairStats summarizes one repair cycle.
type RepairStats struct {
	GamesReplayed int `json:"gamesReplayed"`
	ScoresUpdated int `json:"scoresUpdated"`
}

// RefreshSeason runs one full update cycle for the current season's week:
// fetch results, upsert and apply each game, backfill zero standings rows,
// and recompute every participant's score. No current season is a valid
// pre-season state, not an error. A provider failure aborts the cycle before
// any state changes; a single bad game is skipped and the rest proceed.
func (u *Updater) RefreshSeason(ctx context.Context) (RefreshStats, error) {
	var stats RefreshStats

	season, err := u.store.CurrentSeason(ctx)
	if err != nil {
		return stats, fmt.Errorf("loading current season: %w", err)
	}
	if season == nil {
		u.log.Info("no active season, nothing to refresh")
		return stats, nil
	}
	stats.Year = season.Year
	stats.Week = season.CurrentWeek

	u.log.Info("refreshing season",
		zap.Int("year", season.Year),
		zap.Int("week", season.CurrentWeek))

	raws, err := u.provider.FetchResults(ctx, season.Year, season.CurrentWeek)
	if err != nil {
		return stats, fmt.Errorf("fetching results for week %d: %w", season.CurrentWeek, err)
	}
	stats.GamesFetched = len(raws)

	for _, raw := range raws {
		game, err := u.normalizeResult(ctx, season, raw)
		if err != nil {
			stats.GamesSkipped++
			u.log.Warn("skipping game",
				zap.String("provider_game_id", raw.ProviderGameID),
				zap.String("home", raw.HomeTeamName),
				zap.String("away", raw.AwayTeamName),
				zap.Error(err))
			continue
		}
		if err := u.applyResult(ctx, game); err != nil {
			stats.GamesSkipped++
			u.log.Error("applying game result failed",
				zap.String("provider_game_id", game.ProviderGameID),
				zap.Error(err))
			continue
		}
		stats.GamesApplied++
	}

	if err := u.ensureStandings(ctx, season.ID); err != nil {
		return stats, err
	}

	updated, err := u.recomputeScores(ctx, season.ID)
	stats.ScoresUpdated = updated
	if err != nil {
		return stats, err
	}

	u.log.Info("refresh complete",
		zap.Int("games_applied", stats.GamesApplied),
		zap.Int("games_skipped", stats.GamesSkipped),
		zap.Int("scores_updated", stats.ScoresUpdated))
	return stats, nil
}

// RepairSeason rebuilds the season's standings from the immutable game log
// and recomputes every score. It is the only supported correction for
// corrupted derived state, and converges even if a previous repair was
// interrupted part way.
func (u *Updater) RepairSeason(ctx context.Context) (RepairStats, error) {
	var stats RepairStats

	season, err := u.store.CurrentSeason(ctx)
	if err != nil {
		return stats, fmt.Errorf("loading current season: %w", err)
	}
	if season == nil {
		u.log.Info("no active season, nothing to repair")
		return stats, nil
	}

	replayed, err := u.rebuildStandings(ctx, season.ID)
	stats.GamesReplayed = replayed
	if err != nil {
		return stats, err
	}

	if err := u.ensureStandings(ctx, season.ID); err != nil {
		return stats, err
	}

	updated, err := u.recomputeScores(ctx, season.ID)
	stats.ScoresUpdated = updated
	if err != nil {
		return stats, err
	}

	u.log.Info("repair complete",
		zap.Int("games_replayed", stats.GamesReplayed),
		zap.Int("scores_updated", stats.ScoresUpdated))
	return stats, nil
}

// normalizeResult maps a raw provider result onto seeded team identities and
// upserts the game row. The processed marker is never written here; for an
// existing game only scores, the completed flag, and the date change.
func (u *Updater) normalizeResult(ctx context.Context, season *models.Season, raw RawResult) (*models.Game, error) {
	home, err := u.resolveTeam(ctx, raw.HomeTeamName)
	if err != nil {
		return nil, err
	}
	away, err := u.resolveTeam(ctx, raw.AwayTeamName)
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		ProviderGameID: raw.ProviderGameID,
		SeasonID:       season.ID,
		Week:           raw.Week,
		HomeTeamID:     home.ID,
		AwayTeamID:     away.ID,
		HomeScore:      raw.HomeScore,
		AwayScore:      raw.AwayScore,
		Completed:      raw.Completed,
		GameDate:       raw.Date,
	}
	if err := u.store.UpsertGame(ctx, game); err != nil {
		return nil, fmt.Errorf("upserting game %s: %w", raw.ProviderGameID, err)
	}
	return game, nil
}

// resolveTeam matches a provider display name ("Kansas City Chiefs") against
// the roster: the last word as the team name, the rest as the city. The store
// resolves by name first, so shared-city pairs (Jets/Giants, Chargers/Rams)
// land on the right row.
func (u *Updater) resolveTeam(ctx context.Context, displayName string) (*models.Team, error) {
	name, city := splitDisplayName(displayName)
	team, err := u.store.ResolveTeam(ctx, name, city)
	if err != nil {
		return nil, fmt.Errorf("resolving team %q: %w", displayName, err)
	}
	if team == nil {
		return nil, fmt.Errorf("%q: %w", displayName, ErrUnknownTeam)
	}
	return team, nil
}

func splitDisplayName(full string) (name, city string) {
	full = strings.TrimSpace(full)
	i := strings.LastIndex(full, " ")
	if i < 0 {
		return full, full
	}
	return full[i+1:], full[:i]
}

// ensureStandings backfills a zero standings row for every seeded team so
// reads never have to special-case missing records.
func (u *Updater) ensureStandings(ctx context.Context, seasonID int64) error {
	teams, err := u.store.ListTeams(ctx)
	if err != nil {
		return fmt.Errorf("listing teams: %w", err)
	}
	for _, t := range teams {
		if err := u.store.EnsureStandings(ctx, t.ID, seasonID); err != nil {
			return fmt.Errorf("ensuring standings for team %d: %w", t.ID, err)
		}
	}
	return nil
}
