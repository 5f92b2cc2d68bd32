package engine

import (
	"context"
	"fmt"

	"github.com/jwillison/gbupool/models"
)

// Scoring constants: 2 points per regular-season win, 5 for making the
// playoffs, 10 for making the Super Bowl. Losses score nothing.
const (
	PointsPerWin   = 2
	PlayoffBonus   = 5
	SuperBowlBonus = 10
)

// ComputeScore rederives one participant's score for a season from their
// picks and the current standings, and overwrites their score row. A
// participant without picks is skipped and no row is written. Pure with
// respect to store state: repeated calls rewrite identical points.
func (u *Updater) ComputeScore(ctx context.Context, participantID, seasonID int64) error {
	picks, err := u.store.PicksFor(ctx, participantID, seasonID)
	if err != nil {
		return fmt.Errorf("loading picks for participant %d: %w", participantID, err)
	}
	if picks == nil {
		return nil
	}

	var regular, playoff, superBowl int
	for _, teamID := range picks.TeamIDs() {
		st, err := u.store.StandingsFor(ctx, teamID, seasonID)
		if err != nil {
			return fmt.Errorf("loading standings for team %d: %w", teamID, err)
		}
		if st == nil {
			// Team untouched this season counts as zero everything.
			continue
		}
		regular += st.Wins * PointsPerWin
		if st.MadePlayoffs {
			playoff += PlayoffBonus
		}
		if st.MadeSuperBowl {
			superBowl += SuperBowlBonus
		}
	}

	score := &models.Score{
		ParticipantID:       participantID,
		SeasonID:            seasonID,
		RegularSeasonPoints: regular,
		PlayoffPoints:       playoff,
		SuperBowlPoints:     superBowl,
		TotalPoints:         regular + playoff + superBowl,
		LastUpdated:         u.now(),
	}
	if err := u.store.SaveScore(ctx, score); err != nil {
		return fmt.Errorf("saving score for participant %d: %w", participantID, err)
	}
	return nil
}

// recomputeScores runs ComputeScore for every participant with picks in the
// season. Order between participants does not matter.
func (u *Updater) recomputeScores(ctx context.Context, seasonID int64) (int, error) {
	ids, err := u.store.PickedParticipants(ctx, seasonID)
	if err != nil {
		return 0, fmt.Errorf("listing participants with picks: %w", err)
	}

	updated := 0
	for _, id := range ids {
		if err := u.ComputeScore(ctx, id, seasonID); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
