package engine

import (
	"errors"
	"fmt"

	"github.com/jwillison/gbupool/models"
)

// ErrInvalidPicks wraps every picks validation failure.
var ErrInvalidPicks = errors.New("invalid picks")

// ValidatePicks checks a picks row against the roster before it may be
// persisted: five distinct teams, the good slot filled by a good-tier team,
// the bad slot by a bad-tier team, and all three ugly slots by ugly-tier
// teams. teams maps team id to the seeded team row.
func ValidatePicks(p *models.Picks, teams map[int64]models.Team) error {
	slots := []struct {
		teamID int64
		want   models.Tier
		label  string
	}{
		{p.GoodTeamID, models.TierGood, "good team"},
		{p.BadTeamID, models.TierBad, "bad team"},
		{p.UglyTeam1ID, models.TierUgly, "ugly team 1"},
		{p.UglyTeam2ID, models.TierUgly, "ugly team 2"},
		{p.UglyTeam3ID, models.TierUgly, "ugly team 3"},
	}

	seen := make(map[int64]struct{}, len(slots))
	for _, slot := range slots {
		team, ok := teams[slot.teamID]
		if !ok {
			return fmt.Errorf("%w: %s %d does not exist", ErrInvalidPicks, slot.label, slot.teamID)
		}
		if team.Tier != slot.want {
			return fmt.Errorf("%w: %s %s is %s-tier, want %s",
				ErrInvalidPicks, slot.label, team.Name, team.Tier, slot.want)
		}
		if _, dup := seen[slot.teamID]; dup {
			return fmt.Errorf("%w: %s picked more than once", ErrInvalidPicks, team.Name)
		}
		seen[slot.teamID] = struct{}{}
	}
	return nil
}
