package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jwillison/gbupool/models"
)

// ErrCorruptGame marks a game whose processed flag is set without final
// scores. The ledger never produces such a row; one on disk means outside
// interference and wants a manual repair, not a silent fix.
var ErrCorruptGame = errors.New("game marked processed without final scores")

// applyResult folds one game into the season standings, at most once.
//
// The processed compare-and-set and the two increments commit in a single
// transaction, so an interrupted call leaves the game uncounted and a
// concurrent call sees either nothing or the finished result.
func (u *Updater) applyResult(ctx context.Context, g *models.Game) error {
	if g.Processed {
		if g.HomeScore == nil || g.AwayScore == nil {
			return fmt.Errorf("game %s: %w", g.ProviderGameID, ErrCorruptGame)
		}
		return nil
	}
	if !g.Completed || g.HomeScore == nil || g.AwayScore == nil {
		return nil
	}

	return u.store.RunInTx(ctx, func(s Store) error {
		marked, err := s.MarkGameProcessed(ctx, g.ID)
		if err != nil {
			return fmt.Errorf("marking game %s processed: %w", g.ProviderGameID, err)
		}
		if !marked {
			// Another cycle counted this game first.
			return nil
		}

		home, away := *g.HomeScore, *g.AwayScore
		if home == away {
			// Tied game: nobody's record moves, but the game stays
			// processed so replays terminate.
			u.log.Warn("tied game, no standings change",
				zap.String("provider_game_id", g.ProviderGameID))
			return nil
		}

		winner, loser := g.HomeTeamID, g.AwayTeamID
		if away > home {
			winner, loser = g.AwayTeamID, g.HomeTeamID
		}

		if err := s.AddWin(ctx, winner, g.SeasonID); err != nil {
			return fmt.Errorf("adding win for team %d: %w", winner, err)
		}
		if err := s.AddLoss(ctx, loser, g.SeasonID); err != nil {
			return fmt.Errorf("adding loss for team %d: %w", loser, err)
		}
		return nil
	})
}

// rebuildStandings wipes the season's derived win/loss records and replays
// every completed game from the immutable game log, oldest first. Running it
// again always lands on the same records.
func (u *Updater) rebuildStandings(ctx context.Context, seasonID int64) (int, error) {
	if err := u.store.DeleteStandings(ctx, seasonID); err != nil {
		return 0, fmt.Errorf("deleting standings: %w", err)
	}
	if err := u.store.ResetProcessed(ctx, seasonID); err != nil {
		return 0, fmt.Errorf("resetting processed flags: %w", err)
	}

	games, err := u.store.CompletedGames(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("loading completed games: %w", err)
	}

	replayed := 0
	for i := range games {
		if err := u.applyResult(ctx, &games[i]); err != nil {
			return replayed, fmt.Errorf("replaying game %s: %w", games[i].ProviderGameID, err)
		}
		replayed++
	}
	return replayed, nil
}
