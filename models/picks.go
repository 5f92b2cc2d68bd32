package models

import "github.com/uptrace/bun"

// Picks is a participant's drafted teams for a season: one good, one bad,
// three ugly, all distinct. Immutable once the season locks.
type Picks struct {
	bun.BaseModel `bun:"table:picks,alias:p"`

	ID            int64 `bun:"id,pk,autoincrement" json:"id"`
	ParticipantID int64 `bun:"participant_id,notnull,unique:picks_no_dupes" json:"participantID"`
	SeasonID      int64 `bun:"season_id,notnull,unique:picks_no_dupes" json:"seasonID"`
	GoodTeamID    int64 `bun:"good_team_id,notnull" json:"goodTeamID"`
	BadTeamID     int64 `bun:"bad_team_id,notnull" json:"badTeamID"`
	UglyTeam1ID   int64 `bun:"ugly_team_1_id,notnull" json:"uglyTeam1ID"`
	UglyTeam2ID   int64 `bun:"ugly_team_2_id,notnull" json:"uglyTeam2ID"`
	UglyTeam3ID   int64 `bun:"ugly_team_3_id,notnull" json:"uglyTeam3ID"`
}

// TeamIDs returns the five picked team ids in slot order.
func (p *Picks) TeamIDs() [5]int64 {
	return [5]int64{p.GoodTeamID, p.BadTeamID, p.UglyTeam1ID, p.UglyTeam2ID, p.UglyTeam3ID}
}
